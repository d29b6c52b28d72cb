package model

// OrderStatus is the order lifecycle enum. Admin writes are free-form
// across all statuses; the payment webhook is the only automated
// transition (pending -> paid).
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPaid       OrderStatus = "paid"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
	StatusRefunded   OrderStatus = "refunded"
)

var orderStatusLabels = map[OrderStatus]string{
	StatusPending:    "ממתין לתשלום",
	StatusPaid:       "שולם",
	StatusProcessing: "בטיפול",
	StatusShipped:    "נשלח",
	StatusDelivered:  "נמסר",
	StatusCancelled:  "בוטל",
	StatusRefunded:   "הוחזר",
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

// Label returns the Hebrew display label shown in the back office.
func (s OrderStatus) Label() string {
	return orderStatusLabels[s]
}

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

func (t DiscountType) Valid() bool {
	return t == DiscountPercent || t == DiscountFixed
}
