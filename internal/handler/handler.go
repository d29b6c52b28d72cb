package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shop-backoffice/internal/repository"
	"shop-backoffice/internal/service"
)

// httpError maps the closed error kinds onto HTTP statuses. Anything
// unrecognized bubbles up to echo's error handler as a 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}
