package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID           string `gorm:"primaryKey;size:36"`
	Slug         string `gorm:"size:128;uniqueIndex;not null"`
	Name         string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text"`
	Price        float64
	ImageURL     string `gorm:"size:512"`
	InStock      bool   `gorm:"not null;default:true"`
	DisplayOrder int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ShippingOption struct {
	ID           string `gorm:"primaryKey;size:36"`
	Name         string `gorm:"size:255;not null"`
	Price        float64
	IsActive     bool `gorm:"not null;default:true"`
	DisplayOrder int  `gorm:"not null;default:0"`
}

// Customer rows are keyed by lowercase email. Aggregates only grow:
// nothing in the system decrements them, not even cancel/refund.
type Customer struct {
	ID          string `gorm:"primaryKey;size:36"`
	Email       string `gorm:"size:255;uniqueIndex;not null"`
	FullName    string `gorm:"size:255"`
	Phone       string `gorm:"size:32"`
	TotalOrders int    `gorm:"not null;default:0"`
	TotalSpent  float64
	LastOrderAt *time.Time
	CreatedAt   time.Time
}

type Coupon struct {
	ID             string `gorm:"primaryKey;size:36"`
	Code           string `gorm:"size:64;uniqueIndex;not null"` // stored upper-cased
	DiscountType   DiscountType
	DiscountValue  float64
	MinOrderAmount float64 // 0 = no minimum
	MaxUses        *int    // nil = unlimited
	UsageCount     int     `gorm:"not null;default:0"`
	ExpiresAt      *time.Time
	IsActive       bool `gorm:"not null;default:true"`
	CreatedAt      time.Time
}

type Order struct {
	ID            string `gorm:"primaryKey;size:36"`
	OrderNumber   int    `gorm:"uniqueIndex;not null"` // human-facing, sequential
	CustomerID    *string
	CustomerEmail string `gorm:"size:255;not null"`
	RecipientName string `gorm:"size:255;not null"`
	Phone         string `gorm:"size:32"`
	City          string `gorm:"size:128"`
	Street        string `gorm:"size:255"`
	HouseNumber   string `gorm:"size:16"`
	Apartment     string `gorm:"size:16"`
	ZipCode       string `gorm:"size:16"`
	Notes         string `gorm:"type:text"`

	ShippingOptionID *string
	ShippingCost     float64
	ProductsTotal    float64
	DiscountAmount   float64
	CouponCode       string `gorm:"size:64"` // snapshot of the code used, not a live reference
	TotalAmount      float64

	Status            OrderStatus `gorm:"size:32;index;not null"`
	PaymentProviderID string      `gorm:"size:64"` // set by the payment webhook on success

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID        string `gorm:"primaryKey;size:36"`
	OrderID   string `gorm:"size:36;index;not null"`
	ProductID *string
	Name      string `gorm:"size:255;not null"` // product name at purchase time
	// Unit price at purchase time, independent of the live product price.
	PriceAtPurchase float64
	Quantity        int `gorm:"not null"`
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (s *ShippingOption) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (c *Customer) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *Coupon) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// LineTotal is quantity times the captured unit price.
func (i *OrderItem) LineTotal() float64 {
	return float64(i.Quantity) * i.PriceAtPurchase
}
