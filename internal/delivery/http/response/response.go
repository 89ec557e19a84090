// Package response renders the wire envelope shared by both endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the flat envelope returned by every endpoint. The success flag
// carries the real outcome: domain negatives (duplicate email, unknown user,
// wrong password) are HTTP 200 with success:false, per the defined contract.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Name    string `json:"name,omitempty"`
}

// Success renders a positive outcome.
func Success(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
	})
}

// SuccessWithName renders a positive login outcome carrying the account's display name.
func SuccessWithName(c echo.Context, message, name string) error {
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Name:    name,
	})
}

// Negative renders a domain negative: a well-formed request that failed a
// business rule. Not an error status.
func Negative(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Response{
		Success: false,
		Message: message,
	})
}

// FieldsRequired renders the 400 validation response for missing or empty fields.
func FieldsRequired(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "All fields are required",
	})
}

// Error renders a fault with the given status and opaque message.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}
