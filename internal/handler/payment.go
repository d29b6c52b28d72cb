package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/model"
	"shop-backoffice/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// HandleCallback receives the gateway callback. The gateway delivers
// it as a form POST, a JSON POST, or a GET with query parameters,
// depending on how the merchant terminal is configured.
func (h *PaymentHandler) HandleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	var cb model.PaymentCallback
	if err := c.Bind(&cb); err != nil {
		return c.JSON(http.StatusInternalServerError, dto.WebhookResponse{
			Success: false,
			Error:   "invalid payload",
		})
	}
	// POSTs without a recognized body may still carry the fields in
	// the query string.
	if cb.ResultCode == "" && c.Request().Method == http.MethodPost {
		_ = (&echo.DefaultBinder{}).BindQueryParams(c, &cb)
	}

	result, err := h.paymentService.Reconcile(ctx, &cb)
	if err != nil {
		c.Logger().Errorf("payment webhook: %v", err)

		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrPaymentDeclined) {
			status = http.StatusBadRequest
		}
		return c.JSON(status, dto.WebhookResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, dto.WebhookResponse{
		Success:     true,
		OrderNumber: result.OrderNumber,
	})
}
