package notify

import (
	"fmt"
	"time"

	"shop-backoffice/internal/format"
	"shop-backoffice/internal/model"
)

// BuildOrderMessage composes the staff Telegram summary for a paid
// order. A non-empty override is sent verbatim instead.
func BuildOrderMessage(order *model.Order, override string, now time.Time) string {
	if override != "" {
		return override
	}

	return fmt.Sprintf(`🛒 *הזמנה חדשה!*

📦 הזמנה: %s
👤 לקוח: %s
💰 סכום: %s

⏰ %s`,
		format.OrderNumber(order.OrderNumber),
		order.RecipientName,
		format.Currency(order.TotalAmount),
		format.DateTime(now),
	)
}
