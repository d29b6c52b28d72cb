package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"shop-backoffice/internal/model"
)

type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	FindOrCreate(ctx context.Context, email, fullName, phone string) (*model.Customer, error)
	List(ctx context.Context) ([]*model.Customer, error)
	ApplyOrderStats(ctx context.Context, id string, orderAmount float64, at time.Time) error
}

type customerRepoImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepoImpl{
		db: db,
	}
}

func (r *customerRepoImpl) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customer).Error

	if err != nil {
		return nil, translate(err)
	}

	return &customer, nil
}

func (r *customerRepoImpl) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&customer).Error

	if err != nil {
		return nil, translate(err)
	}

	return &customer, nil
}

func (r *customerRepoImpl) FindOrCreate(ctx context.Context, email, fullName, phone string) (*model.Customer, error) {
	existing, err := r.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	customer := &model.Customer{
		Email:    strings.ToLower(email),
		FullName: fullName,
		Phone:    phone,
	}
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, translate(err)
	}

	return customer, nil
}

func (r *customerRepoImpl) List(ctx context.Context) ([]*model.Customer, error) {
	var customers []*model.Customer
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&customers).Error

	if err != nil {
		return nil, translate(err)
	}

	return customers, nil
}

// ApplyOrderStats bumps the customer aggregates for one confirmed
// order. Increments happen in SQL so concurrent confirmations cannot
// lose updates.
func (r *customerRepoImpl) ApplyOrderStats(ctx context.Context, id string, orderAmount float64, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_orders":  gorm.Expr("total_orders + 1"),
			"total_spent":   gorm.Expr("total_spent + ?", orderAmount),
			"last_order_at": at,
		})

	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
