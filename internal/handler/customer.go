package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shop-backoffice/internal/service"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

func (h *CustomerHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	customers, err := h.customerService.List(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	customer, err := h.customerService.Get(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, customer)
}
