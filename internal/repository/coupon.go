package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"shop-backoffice/internal/model"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *model.Coupon) error
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)
	List(ctx context.Context) ([]*model.Coupon, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	IncrementUsage(ctx context.Context, id string) error
	IncrementUsageByCode(ctx context.Context, code string) error
}

type couponRepoImpl struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepoImpl{
		db: db,
	}
}

func (r *couponRepoImpl) Create(ctx context.Context, coupon *model.Coupon) error {
	coupon.Code = strings.ToUpper(coupon.Code)
	return translate(r.db.WithContext(ctx).Create(coupon).Error)
}

func (r *couponRepoImpl) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&coupon).Error

	if err != nil {
		return nil, translate(err)
	}

	return &coupon, nil
}

func (r *couponRepoImpl) List(ctx context.Context) ([]*model.Coupon, error) {
	var coupons []*model.Coupon
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&coupons).Error

	if err != nil {
		return nil, translate(err)
	}

	return coupons, nil
}

func (r *couponRepoImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Coupon{})

	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *couponRepoImpl) SetActive(ctx context.Context, id string, active bool) error {
	result := r.db.WithContext(ctx).Model(&model.Coupon{}).
		Where("id = ?", id).
		Update("is_active", active)

	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *couponRepoImpl) IncrementUsage(ctx context.Context, id string) error {
	return r.incrementUsage(ctx, "id = ?", id)
}

func (r *couponRepoImpl) IncrementUsageByCode(ctx context.Context, code string) error {
	return r.incrementUsage(ctx, "code = ?", strings.ToUpper(code))
}

// incrementUsage bumps usage_count in SQL; a plain read-then-write
// would drop redemptions under concurrent webhook deliveries.
func (r *couponRepoImpl) incrementUsage(ctx context.Context, query string, arg interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Coupon{}).
		Where(query, arg).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))

	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
