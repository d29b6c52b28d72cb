package notify

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"shop-backoffice/internal/format"
	"shop-backoffice/internal/model"
)

var orderEmailTmpl = template.Must(template.New("orderEmail").Parse(`<!DOCTYPE html>
<html dir="rtl" lang="he">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f5f5f5;">
  <table width="100%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; background-color: #ffffff;">

    <tr>
      <td style="background-color: #1a1a1a; padding: 30px; text-align: center;">
        <h1 style="color: #ffffff; margin: 0; font-size: 24px;">{{.StoreName}}</h1>
      </td>
    </tr>

    <tr>
      <td style="padding: 40px 30px;">

        <h2 style="color: #333; margin: 0 0 20px;">תודה על הזמנתך! 🎉</h2>
        <p style="color: #666; line-height: 1.6; margin: 0 0 30px;">
          הזמנתך התקבלה בהצלחה. להלן פרטי ההזמנה:
        </p>

        <table width="100%" style="background-color: #f9f9f9; border-radius: 8px; margin-bottom: 30px;">
          <tr>
            <td style="padding: 20px;">
              <p style="margin: 0 0 10px;"><strong>מספר הזמנה:</strong> {{.OrderNumber}}</p>
              <p style="margin: 0 0 10px;"><strong>תאריך:</strong> {{.OrderDate}}</p>
              <p style="margin: 0;"><strong>סטטוס:</strong> <span style="color: #22c55e;">שולם ✓</span></p>
            </td>
          </tr>
        </table>

        <h3 style="color: #333; margin: 0 0 15px;">פריטים שהוזמנו</h3>
        <table width="100%" cellpadding="0" cellspacing="0" style="border: 1px solid #eee; border-radius: 8px; margin-bottom: 30px;">
          <thead>
            <tr style="background-color: #f9f9f9;">
              <th style="padding: 12px; text-align: right; border-bottom: 2px solid #eee;">מוצר</th>
              <th style="padding: 12px; text-align: center; border-bottom: 2px solid #eee;">כמות</th>
              <th style="padding: 12px; text-align: left; border-bottom: 2px solid #eee;">מחיר</th>
              <th style="padding: 12px; text-align: left; border-bottom: 2px solid #eee;">סה"כ</th>
            </tr>
          </thead>
          <tbody>
            {{range .Items}}
            <tr>
              <td style="padding: 12px; border-bottom: 1px solid #eee;">{{.Name}}</td>
              <td style="padding: 12px; border-bottom: 1px solid #eee; text-align: center;">{{.Quantity}}</td>
              <td style="padding: 12px; border-bottom: 1px solid #eee; text-align: left;">{{.UnitPrice}}</td>
              <td style="padding: 12px; border-bottom: 1px solid #eee; text-align: left;">{{.LineTotal}}</td>
            </tr>
            {{end}}
          </tbody>
        </table>

        <table width="100%" style="margin-bottom: 30px;">
          <tr>
            <td style="padding: 8px 0; color: #666;">סה"כ מוצרים:</td>
            <td style="padding: 8px 0; text-align: left;">{{.ProductsTotal}}</td>
          </tr>
          <tr>
            <td style="padding: 8px 0; color: #666;">משלוח:</td>
            <td style="padding: 8px 0; text-align: left;">{{.ShippingCost}}</td>
          </tr>
          {{if .Discount}}
          <tr>
            <td style="padding: 8px 0; color: #22c55e;">הנחה ({{.CouponCode}}):</td>
            <td style="padding: 8px 0; text-align: left; color: #22c55e;">-{{.Discount}}</td>
          </tr>
          {{end}}
          <tr style="border-top: 2px solid #333;">
            <td style="padding: 15px 0; font-size: 18px; font-weight: bold;">סה"כ לתשלום:</td>
            <td style="padding: 15px 0; text-align: left; font-size: 18px; font-weight: bold;">{{.TotalAmount}}</td>
          </tr>
        </table>

        <h3 style="color: #333; margin: 0 0 15px;">כתובת למשלוח</h3>
        <table width="100%" style="background-color: #f9f9f9; border-radius: 8px;">
          <tr>
            <td style="padding: 20px;">
              <p style="margin: 0 0 5px;"><strong>{{.RecipientName}}</strong></p>
              <p style="margin: 0 0 5px;">{{.StreetLine}}</p>
              <p style="margin: 0 0 5px;">{{.CityLine}}</p>
              <p style="margin: 0;">טלפון: {{.Phone}}</p>
            </td>
          </tr>
        </table>

      </td>
    </tr>

    <tr>
      <td style="background-color: #f5f5f5; padding: 30px; text-align: center;">
        <p style="color: #999; margin: 0 0 10px; font-size: 14px;">
          יש שאלות? צרו קשר: support@nilperfumes.com
        </p>
        <p style="color: #999; margin: 0; font-size: 12px;">
          © {{.Year}} {{.StoreName}}. כל הזכויות שמורות.
        </p>
      </td>
    </tr>

  </table>
</body>
</html>
`))

type emailItem struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type emailData struct {
	StoreName     string
	OrderNumber   string
	OrderDate     string
	Items         []emailItem
	ProductsTotal string
	ShippingCost  string
	Discount      string
	CouponCode    string
	TotalAmount   string
	RecipientName string
	StreetLine    string
	CityLine      string
	Phone         string
	Year          int
}

// BuildOrderEmail composes the RTL confirmation email for a paid
// order and returns the subject line with the rendered HTML document.
func BuildOrderEmail(order *model.Order, items []*model.OrderItem, storeName string) (string, string, error) {
	data := emailData{
		StoreName:     storeName,
		OrderNumber:   format.OrderNumber(order.OrderNumber),
		OrderDate:     format.Date(order.CreatedAt),
		ProductsTotal: format.Currency(order.ProductsTotal),
		ShippingCost:  format.Currency(order.ShippingCost),
		TotalAmount:   format.Currency(order.TotalAmount),
		RecipientName: order.RecipientName,
		StreetLine:    streetLine(order),
		CityLine:      cityLine(order),
		Phone:         order.Phone,
		Year:          time.Now().Year(),
	}

	if order.DiscountAmount > 0 {
		data.Discount = format.Currency(order.DiscountAmount)
		data.CouponCode = order.CouponCode
	}

	for _, item := range items {
		data.Items = append(data.Items, emailItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: format.Currency(item.PriceAtPurchase),
			LineTotal: format.Currency(item.LineTotal()),
		})
	}

	var out strings.Builder
	if err := orderEmailTmpl.Execute(&out, data); err != nil {
		return "", "", fmt.Errorf("render order email: %w", err)
	}

	subject := fmt.Sprintf("אישור הזמנה %s - %s", format.OrderNumber(order.OrderNumber), storeName)
	return subject, out.String(), nil
}

func streetLine(order *model.Order) string {
	line := strings.TrimSpace(order.Street + " " + order.HouseNumber)
	if order.Apartment != "" {
		line += ", דירה " + order.Apartment
	}
	return line
}

func cityLine(order *model.Order) string {
	line := order.City
	if order.ZipCode != "" {
		line += ", " + order.ZipCode
	}
	return line
}
