package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/service"
)

type CouponHandler struct {
	couponService service.CouponService
}

func NewCouponHandler(couponService service.CouponService) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
	}
}

// Validate is the checkout-facing validation endpoint. Ineligible
// coupons come back as a 200 with valid=false and a Hebrew reason.
func (h *CouponHandler) Validate(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ValidateCouponRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.couponService.Validate(ctx, req.Code, req.OrderTotal)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CouponHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	coupons, err := h.couponService.List(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, coupons)
}

func (h *CouponHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	coupon, err := h.couponService.Create(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, coupon)
}

func (h *CouponHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.couponService.Delete(ctx, c.Param("id")); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CouponHandler) SetActive(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ToggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.couponService.SetActive(ctx, c.Param("id"), req.Active); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
