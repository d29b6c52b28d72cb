package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shop-backoffice/internal/format"
)

func TestAmount(t *testing.T) {
	assert.Equal(t, "250", format.Amount(250))
	assert.Equal(t, "1,234.5", format.Amount(1234.5))
	assert.Equal(t, "0.99", format.Amount(0.99))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "₪123.4", format.Currency(123.4))
	assert.Equal(t, "₪1,250", format.Currency(1250))
}

func TestOrderNumber(t *testing.T) {
	assert.Equal(t, "#00042", format.OrderNumber(42))
	assert.Equal(t, "#12345", format.OrderNumber(12345))
}

func TestDate(t *testing.T) {
	// 22:30 UTC crosses midnight in Asia/Jerusalem
	at := time.Date(2026, 8, 30, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, "31.8.2026", format.Date(at))
}
