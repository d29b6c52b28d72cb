package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/service"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// -------- products --------

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.ListProducts(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	product, err := h.catalogService.CreateProduct(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	product, err := h.catalogService.UpdateProduct(ctx, c.Param("id"), &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.catalogService.DeleteProduct(ctx, c.Param("id")); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) SetProductInStock(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ToggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.catalogService.SetProductInStock(ctx, c.Param("id"), req.Active); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// -------- shipping options --------

func (h *CatalogHandler) ListShippingOptions(c echo.Context) error {
	ctx := c.Request().Context()

	activeOnly := c.QueryParam("active") == "true"
	options, err := h.catalogService.ListShippingOptions(ctx, activeOnly)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, options)
}

func (h *CatalogHandler) CreateShippingOption(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ShippingOptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	option, err := h.catalogService.CreateShippingOption(ctx, &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, option)
}

func (h *CatalogHandler) UpdateShippingOption(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ShippingOptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	option, err := h.catalogService.UpdateShippingOption(ctx, c.Param("id"), &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, option)
}

func (h *CatalogHandler) DeleteShippingOption(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.catalogService.DeleteShippingOption(ctx, c.Param("id")); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
