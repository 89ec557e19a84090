// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"authgate/internal/delivery/http/response"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccountHandler holds dependencies for credential-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the registration request. Domain negatives (duplicate
// email) are rendered here as HTTP 200 with success:false; only faults
// propagate to the error middleware.
func (h *AccountHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.FieldsRequired(c)
	}
	if err := c.Validate(&input); err != nil {
		return response.FieldsRequired(c)
	}

	err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
			return response.Negative(c, domainerrors.ErrEmailAlreadyRegistered.Message())
		}

		return errors.WithStack(err)
	}

	return response.Success(c, "Registration successful")
}

// Login handles the login request. Unknown email and password mismatch are
// domain negatives rendered as HTTP 200 with success:false.
func (h *AccountHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.FieldsRequired(c)
	}
	if err := c.Validate(&input); err != nil {
		return response.FieldsRequired(c)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			return response.Negative(c, domainerrors.ErrAccountNotFound.Message())
		}
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return response.Negative(c, domainerrors.ErrInvalidCredentials.Message())
		}

		return errors.WithStack(err)
	}

	return response.SuccessWithName(c, "Login successful", output.Name)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
