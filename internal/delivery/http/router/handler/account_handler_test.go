package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"authgate/internal/delivery/http/middleware"
	"authgate/internal/delivery/http/validator"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/mock"
)

type mockAccountUsecase struct {
	mock.Mock
}

func (m *mockAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) error {
	args := m.Called(input)

	return args.Error(0)
}

func (m *mockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(input)
	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func newTestServer(t *testing.T) (*echo.Echo, *mockAccountUsecase) {
	t.Helper()

	uc := &mockAccountUsecase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAccountHandler(uc, logger)
	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
	e.GET("/health", HealthCheck)

	t.Cleanup(func() {
		uc.AssertExpectations(t)
	})

	return e, uc
}

func TestAccountHandler_Register_Success(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("Register", &usecase.RegisterInput{
		Name:     "Ann",
		Email:    "a@x.com",
		Password: "secret1",
	}).Return(nil)

	apitest.New().
		Handler(e).
		Post("/register").
		JSON(`{"name":"Ann","email":"a@x.com","password":"secret1"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, true)).
		Assert(jsonpath.Equal(`$.message`, "Registration successful")).
		End()
}

func TestAccountHandler_Register_MissingFields(t *testing.T) {
	e, uc := newTestServer(t)

	// No expectations on the usecase: validation rejects before it is reached.
	for name, body := range map[string]string{
		"no name":        `{"email":"a@x.com","password":"secret1"}`,
		"empty email":    `{"name":"Ann","email":"","password":"secret1"}`,
		"empty password": `{"name":"Ann","email":"a@x.com","password":""}`,
		"empty body":     `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			apitest.New().
				Handler(e).
				Post("/register").
				JSON(body).
				Expect(t).
				Status(http.StatusBadRequest).
				Assert(jsonpath.Equal(`$.success`, false)).
				Assert(jsonpath.Equal(`$.message`, "All fields are required")).
				End()
		})
	}

	uc.AssertNotCalled(t, "Register", mock.Anything)
}

func TestAccountHandler_Register_DuplicateEmail(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("Register", mock.AnythingOfType("*usecase.RegisterInput")).
		Return(errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration rejected"))

	apitest.New().
		Handler(e).
		Post("/register").
		JSON(`{"name":"Ann","email":"a@x.com","password":"secret1"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, false)).
		Assert(jsonpath.Equal(`$.message`, "Email already registered")).
		End()
}

func TestAccountHandler_Register_StoreFault(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("Register", mock.AnythingOfType("*usecase.RegisterInput")).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to create account"))

	apitest.New().
		Handler(e).
		Post("/register").
		JSON(`{"name":"Ann","email":"a@x.com","password":"secret1"}`).
		Expect(t).
		Status(http.StatusInternalServerError).
		Assert(jsonpath.Equal(`$.success`, false)).
		Assert(jsonpath.Equal(`$.message`, "Database error")).
		End()
}

func TestAccountHandler_Login_Success(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("Login", &usecase.LoginInput{
		Email:    "a@x.com",
		Password: "secret1",
	}).Return(&usecase.LoginOutput{Name: "Ann"}, nil)

	apitest.New().
		Handler(e).
		Post("/login").
		JSON(`{"email":"a@x.com","password":"secret1"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, true)).
		Assert(jsonpath.Equal(`$.message`, "Login successful")).
		Assert(jsonpath.Equal(`$.name`, "Ann")).
		End()
}

func TestAccountHandler_Login_MissingFields(t *testing.T) {
	e, uc := newTestServer(t)

	apitest.New().
		Handler(e).
		Post("/login").
		JSON(`{"email":"a@x.com"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal(`$.success`, false)).
		Assert(jsonpath.Equal(`$.message`, "All fields are required")).
		End()

	uc.AssertNotCalled(t, "Login", mock.Anything)
}

func TestAccountHandler_Login_UnknownEmail(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("Login", mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrAccountNotFound, "login failed"))

	apitest.New().
		Handler(e).
		Post("/login").
		JSON(`{"email":"missing@x.com","password":"secret1"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, false)).
		Assert(jsonpath.Equal(`$.message`, "User not found")).
		Assert(jsonpath.NotPresent(`$.name`)).
		End()
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("Login", mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	apitest.New().
		Handler(e).
		Post("/login").
		JSON(`{"email":"a@x.com","password":"wrong"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.success`, false)).
		Assert(jsonpath.Equal(`$.message`, "Invalid credentials")).
		End()
}

func TestAccountHandler_Login_StoreFault(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("Login", mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to find account by email"))

	apitest.New().
		Handler(e).
		Post("/login").
		JSON(`{"email":"a@x.com","password":"secret1"}`).
		Expect(t).
		Status(http.StatusInternalServerError).
		Assert(jsonpath.Equal(`$.success`, false)).
		Assert(jsonpath.Equal(`$.message`, "Database error")).
		End()
}

func TestHealthCheck(t *testing.T) {
	e, _ := newTestServer(t)

	apitest.New().
		Handler(e).
		Get("/health").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.status`, "ok")).
		End()
}
