package serviceutils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/employee_roster/internal/domain"
	"github.com/locvowork/employee_roster/internal/logger"
	"github.com/locvowork/employee_roster/pkg/simpleexcel"
)

// Response is the JSON envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func ResponseSuccess(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ResponseError(c echo.Context, status int, message string, err error) error {
	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}

	ctx := c.Request().Context()
	if status < http.StatusInternalServerError {
		logger.WarnLog(ctx, "%s: %v", message, err)
	} else {
		logger.ErrorLog(ctx, err, "%s", message)
	}
	return c.JSON(status, resp)
}

// StatusFor maps service errors onto HTTP status codes.
func StatusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound
	case errors.Is(err, simpleexcel.ErrUnsupportedFile),
		errors.Is(err, simpleexcel.ErrRowOutOfRange):
		return http.StatusBadRequest
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}
