package model

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount half-up to 2 decimal places.
func Round2(amount float64) float64 {
	v, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return v
}

// RecalculateTotal restores the order total invariant:
// total = round2(products_total + shipping_cost - discount_amount).
func (o *Order) RecalculateTotal() {
	total := decimal.NewFromFloat(o.ProductsTotal).
		Add(decimal.NewFromFloat(o.ShippingCost)).
		Sub(decimal.NewFromFloat(o.DiscountAmount))
	o.TotalAmount, _ = total.Round(2).Float64()
}
