package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/format"
	"shop-backoffice/internal/model"
	"shop-backoffice/internal/repository"
)

// ErrInvalidInput marks admin requests rejected before touching
// storage. Handlers map it to a 400.
var ErrInvalidInput = errors.New("invalid input")

// Shopper-facing rejection reasons, in Hebrew like the storefront.
const (
	reasonCodeNotFound = "קוד קופון לא נמצא"
	reasonInactive     = "הקופון אינו פעיל"
	reasonExpired      = "פג תוקף הקופון"
	reasonExhausted    = "הקופון מוצה"
)

type CouponService interface {
	Validate(ctx context.Context, code string, orderTotal float64) (*dto.CouponValidation, error)
	IncrementUsage(ctx context.Context, couponID string) error
	Create(ctx context.Context, req *dto.CreateCouponRequest) (*model.Coupon, error)
	List(ctx context.Context) ([]*dto.CouponSummary, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

type couponServiceImpl struct {
	couponRepo repository.CouponRepository
}

func NewCouponService(couponRepo repository.CouponRepository) CouponService {
	return &couponServiceImpl{
		couponRepo: couponRepo,
	}
}

// CalculateDiscount computes the discount a coupon grants on an order
// total. Percent discounts round half-up to 2 decimals; fixed
// discounts never exceed the order total.
func CalculateDiscount(coupon *model.Coupon, orderTotal float64) float64 {
	if coupon.DiscountType == model.DiscountPercent {
		v, _ := decimal.NewFromFloat(orderTotal).
			Mul(decimal.NewFromFloat(coupon.DiscountValue)).
			Div(decimal.NewFromInt(100)).
			Round(2).
			Float64()
		return v
	}
	return math.Min(coupon.DiscountValue, orderTotal)
}

// rejectionReason runs the eligibility chain and returns the first
// failure, or "" when the coupon applies.
func rejectionReason(coupon *model.Coupon, orderTotal float64, now time.Time) string {
	switch {
	case !coupon.IsActive:
		return reasonInactive
	case coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(now):
		return reasonExpired
	case coupon.MaxUses != nil && coupon.UsageCount >= *coupon.MaxUses:
		return reasonExhausted
	case coupon.MinOrderAmount > 0 && orderTotal < coupon.MinOrderAmount:
		return fmt.Sprintf("מינימום הזמנה לקופון: ₪%s", format.Amount(coupon.MinOrderAmount))
	}
	return ""
}

// Validate checks a code against an order total. Business rejection
// is a result, not an error; only storage failures return an error.
func (s *couponServiceImpl) Validate(ctx context.Context, code string, orderTotal float64) (*dto.CouponValidation, error) {
	coupon, err := s.couponRepo.FindByCode(ctx, code)
	if errors.Is(err, repository.ErrNotFound) {
		return &dto.CouponValidation{Valid: false, Reason: reasonCodeNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find coupon: %w", err)
	}

	if reason := rejectionReason(coupon, orderTotal, time.Now()); reason != "" {
		return &dto.CouponValidation{Valid: false, Reason: reason}, nil
	}

	return &dto.CouponValidation{
		Valid:          true,
		Coupon:         coupon,
		DiscountAmount: CalculateDiscount(coupon, orderTotal),
	}, nil
}

func (s *couponServiceImpl) IncrementUsage(ctx context.Context, couponID string) error {
	return s.couponRepo.IncrementUsage(ctx, couponID)
}

func (s *couponServiceImpl) Create(ctx context.Context, req *dto.CreateCouponRequest) (*model.Coupon, error) {
	code := strings.TrimSpace(req.Code)
	discountType := model.DiscountType(req.DiscountType)

	if code == "" {
		return nil, fmt.Errorf("%w: coupon code is required", ErrInvalidInput)
	}
	if !discountType.Valid() {
		return nil, fmt.Errorf("%w: unknown discount type %q", ErrInvalidInput, req.DiscountType)
	}
	if req.DiscountValue <= 0 {
		return nil, fmt.Errorf("%w: discount value must be positive", ErrInvalidInput)
	}
	if discountType == model.DiscountPercent && req.DiscountValue > 100 {
		return nil, fmt.Errorf("%w: percent discount cannot exceed 100", ErrInvalidInput)
	}

	coupon := &model.Coupon{
		Code:           strings.ToUpper(code),
		DiscountType:   discountType,
		DiscountValue:  req.DiscountValue,
		MinOrderAmount: req.MinOrderAmount,
		MaxUses:        req.MaxUses,
		ExpiresAt:      req.ExpiresAt,
		IsActive:       true,
	}
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, fmt.Errorf("create coupon: %w", err)
	}

	return coupon, nil
}

// List returns all coupons with the same validity display the shopper
// validation would produce, ignoring the order-minimum rule.
func (s *couponServiceImpl) List(ctx context.Context) ([]*dto.CouponSummary, error) {
	coupons, err := s.couponRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}

	now := time.Now()
	summaries := make([]*dto.CouponSummary, len(coupons))
	for i, coupon := range coupons {
		reason := rejectionReason(coupon, coupon.MinOrderAmount, now)
		summaries[i] = &dto.CouponSummary{
			Coupon:        coupon,
			IsValid:       reason == "",
			InvalidReason: reason,
		}
	}

	return summaries, nil
}

func (s *couponServiceImpl) Delete(ctx context.Context, id string) error {
	return s.couponRepo.Delete(ctx, id)
}

func (s *couponServiceImpl) SetActive(ctx context.Context, id string, active bool) error {
	return s.couponRepo.SetActive(ctx, id, active)
}
