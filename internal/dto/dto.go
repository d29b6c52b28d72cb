package dto

import (
	"time"

	"shop-backoffice/internal/model"
)

// -------- payment webhook --------

type WebhookResponse struct {
	Success     bool   `json:"success"`
	OrderNumber int    `json:"order_number,omitempty"`
	Error       string `json:"error,omitempty"`
}

// WebhookResult is what a reconciled callback produced. AlreadyPaid is
// set when the order had been confirmed by an earlier delivery and the
// handler only echoed success back.
type WebhookResult struct {
	OrderNumber int
	AlreadyPaid bool
}

// -------- coupons --------

type ValidateCouponRequest struct {
	Code       string  `json:"code"`
	OrderTotal float64 `json:"order_total"`
}

type CouponValidation struct {
	Valid          bool          `json:"valid"`
	Coupon         *model.Coupon `json:"coupon,omitempty"`
	DiscountAmount float64       `json:"discountAmount,omitempty"`
	Reason         string        `json:"error,omitempty"`
}

type CreateCouponRequest struct {
	Code           string     `json:"code"`
	DiscountType   string     `json:"discount_type"`
	DiscountValue  float64    `json:"discount_value"`
	MinOrderAmount float64    `json:"min_order_amount"`
	MaxUses        *int       `json:"max_uses"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

type CouponSummary struct {
	Coupon        *model.Coupon `json:"coupon"`
	IsValid       bool          `json:"is_valid"`
	InvalidReason string        `json:"invalid_reason,omitempty"`
}

// -------- orders --------

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderDetails struct {
	Order          *model.Order          `json:"order"`
	Items          []*model.OrderItem    `json:"items"`
	Customer       *model.Customer       `json:"customer,omitempty"`
	ShippingOption *model.ShippingOption `json:"shipping_option,omitempty"`
}

type DashboardStats struct {
	TodayOrders    int64          `json:"today_orders"`
	TodayRevenue   float64        `json:"today_revenue"`
	MonthlyRevenue float64        `json:"monthly_revenue"`
	OpenOrders     int64          `json:"open_orders"`
	RecentOrders   []*model.Order `json:"recent_orders"`
}

// -------- catalog --------

type ProductRequest struct {
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
	InStock      bool    `json:"in_stock"`
	DisplayOrder int     `json:"display_order"`
}

type ShippingOptionRequest struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	IsActive     bool    `json:"is_active"`
	DisplayOrder int     `json:"display_order"`
}

type ToggleRequest struct {
	Active bool `json:"active"`
}
