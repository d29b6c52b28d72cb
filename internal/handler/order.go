package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	orders, err := h.orderService.List(ctx, c.QueryParam("status"), limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	details, err := h.orderService.Get(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, details)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.orderService.UpdateStatus(ctx, c.Param("id"), req.Status); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.orderService.Dashboard(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, stats)
}
