package repository

import (
	"context"

	"gorm.io/gorm"

	"shop-backoffice/internal/model"
)

type ShippingOptionRepository interface {
	Create(ctx context.Context, option *model.ShippingOption) error
	FindByID(ctx context.Context, id string) (*model.ShippingOption, error)
	List(ctx context.Context, activeOnly bool) ([]*model.ShippingOption, error)
	Update(ctx context.Context, option *model.ShippingOption) error
	Delete(ctx context.Context, id string) error
}

type shippingOptionRepoImpl struct {
	db *gorm.DB
}

func NewShippingOptionRepository(db *gorm.DB) ShippingOptionRepository {
	return &shippingOptionRepoImpl{
		db: db,
	}
}

func (r *shippingOptionRepoImpl) Create(ctx context.Context, option *model.ShippingOption) error {
	return translate(r.db.WithContext(ctx).Create(option).Error)
}

func (r *shippingOptionRepoImpl) FindByID(ctx context.Context, id string) (*model.ShippingOption, error) {
	var option model.ShippingOption
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&option).Error

	if err != nil {
		return nil, translate(err)
	}

	return &option, nil
}

func (r *shippingOptionRepoImpl) List(ctx context.Context, activeOnly bool) ([]*model.ShippingOption, error) {
	q := r.db.WithContext(ctx).Order("display_order ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var options []*model.ShippingOption
	if err := q.Find(&options).Error; err != nil {
		return nil, translate(err)
	}

	return options, nil
}

func (r *shippingOptionRepoImpl) Update(ctx context.Context, option *model.ShippingOption) error {
	result := r.db.WithContext(ctx).Model(&model.ShippingOption{}).
		Where("id = ?", option.ID).
		Updates(map[string]interface{}{
			"name":          option.Name,
			"price":         option.Price,
			"is_active":     option.IsActive,
			"display_order": option.DisplayOrder,
		})

	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *shippingOptionRepoImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ShippingOption{})

	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
