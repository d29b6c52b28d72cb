package notify_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-backoffice/internal/model"
	"shop-backoffice/internal/notify"
)

func sampleOrder() *model.Order {
	customerID := "cust-1"
	return &model.Order{
		ID:             "order-1",
		OrderNumber:    42,
		CustomerID:     &customerID,
		CustomerEmail:  "dana@example.com",
		RecipientName:  "דנה לוי",
		Phone:          "050-1234567",
		City:           "תל אביב",
		Street:         "דיזנגוף",
		HouseNumber:    "10",
		Apartment:      "4",
		ZipCode:        "6433222",
		ProductsTotal:  1250,
		ShippingCost:   30,
		DiscountAmount: 45.5,
		CouponCode:     "SAVE10",
		TotalAmount:    1234.5,
		Status:         model.StatusPaid,
		CreatedAt:      time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
}

func sampleItems() []*model.OrderItem {
	return []*model.OrderItem{
		{Name: "בושם 50 מ\"ל", PriceAtPurchase: 250, Quantity: 2},
		{Name: "נר ריחני", PriceAtPurchase: 125, Quantity: 6},
	}
}

func TestBuildOrderMessage(t *testing.T) {
	msg := notify.BuildOrderMessage(sampleOrder(), "", time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC))

	assert.Contains(t, msg, "הזמנה חדשה")
	assert.Contains(t, msg, "#00042")
	assert.Contains(t, msg, "דנה לוי")
	assert.Contains(t, msg, "₪1,234.5")
}

func TestBuildOrderMessageOverride(t *testing.T) {
	msg := notify.BuildOrderMessage(sampleOrder(), "בדיקת מערכת", time.Now())
	assert.Equal(t, "בדיקת מערכת", msg)
}

func TestBuildOrderEmail(t *testing.T) {
	order := sampleOrder()
	subject, html, err := notify.BuildOrderEmail(order, sampleItems(), "NIL Perfumes")
	require.NoError(t, err)

	assert.Contains(t, subject, "#00042")
	assert.Contains(t, subject, "NIL Perfumes")

	assert.Contains(t, html, "בושם 50 מ&#34;ל")
	assert.Contains(t, html, "נר ריחני")
	assert.Contains(t, html, "₪250")
	assert.Contains(t, html, "₪500") // line total for two units
	assert.Contains(t, html, "הנחה (SAVE10)")
	assert.Contains(t, html, "₪1,234.5")
	assert.Contains(t, html, "דיזנגוף 10, דירה 4")
	assert.Contains(t, html, "תל אביב, 6433222")
}

func TestBuildOrderEmailWithoutDiscount(t *testing.T) {
	order := sampleOrder()
	order.DiscountAmount = 0
	order.CouponCode = ""
	order.Apartment = ""
	order.ZipCode = ""

	_, html, err := notify.BuildOrderEmail(order, sampleItems(), "NIL Perfumes")
	require.NoError(t, err)

	assert.NotContains(t, html, "הנחה")
	assert.NotContains(t, html, "דירה")
	assert.Contains(t, html, "דיזנגוף 10")
}

type recordingTelegram struct {
	mu       sync.Mutex
	messages []string
}

func (c *recordingTelegram) SendMessage(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, text)
	return nil
}

type recordingMail struct {
	mu   sync.Mutex
	sent []string // "to|subject"
}

func (c *recordingMail) Send(_ context.Context, to, subject, html string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, to+"|"+subject)
	return nil
}

func TestAsyncDispatcherDeliversQueuedTasks(t *testing.T) {
	telegram := &recordingTelegram{}
	mail := &recordingMail{}
	d := notify.NewAsyncDispatcher(telegram, mail, "NIL Perfumes")

	order := sampleOrder()
	d.Submit(notify.Task{Kind: notify.TaskTelegram, Order: order})
	d.Submit(notify.Task{Kind: notify.TaskEmail, Order: order, Items: sampleItems()})
	d.Close() // drains the queue

	require.Len(t, telegram.messages, 1)
	assert.Contains(t, telegram.messages[0], "#00042")

	require.Len(t, mail.sent, 1)
	parts := strings.SplitN(mail.sent[0], "|", 2)
	assert.Equal(t, "dana@example.com", parts[0])
	assert.Contains(t, parts[1], "#00042")
}
