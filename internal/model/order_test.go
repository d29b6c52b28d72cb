package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shop-backoffice/internal/model"
)

func TestRound2(t *testing.T) {
	assert.InDelta(t, 4.99, model.Round2(4.994), 0.0001)
	assert.InDelta(t, 5, model.Round2(4.995), 0.0001)
	assert.InDelta(t, 10, model.Round2(10), 0.0001)
}

func TestRecalculateTotal(t *testing.T) {
	order := &model.Order{
		ProductsTotal:  113.4,
		ShippingCost:   20,
		DiscountAmount: 10,
		TotalAmount:    999,
	}
	order.RecalculateTotal()
	assert.InDelta(t, 123.4, order.TotalAmount, 0.0001)

	// floating point drift gets rounded away
	order = &model.Order{ProductsTotal: 0.1, ShippingCost: 0.2}
	order.RecalculateTotal()
	assert.Equal(t, 0.3, order.TotalAmount)
}

func TestOrderStatus(t *testing.T) {
	assert.True(t, model.StatusPaid.Valid())
	assert.True(t, model.StatusRefunded.Valid())
	assert.False(t, model.OrderStatus("teleported").Valid())

	assert.Equal(t, "שולם", model.StatusPaid.Label())
	assert.Equal(t, "ממתין לתשלום", model.StatusPending.Label())
}

func TestOrderItemLineTotal(t *testing.T) {
	item := &model.OrderItem{PriceAtPurchase: 56.7, Quantity: 2}
	assert.InDelta(t, 113.4, item.LineTotal(), 0.0001)
}

func TestDiscountType(t *testing.T) {
	assert.True(t, model.DiscountPercent.Valid())
	assert.True(t, model.DiscountFixed.Valid())
	assert.False(t, model.DiscountType("bogo").Valid())
}
