package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"shop-backoffice/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order, items []*model.OrderItem) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindByNumber(ctx context.Context, orderNumber int) (*model.Order, error)
	List(ctx context.Context, status model.OrderStatus, limit int) ([]*model.Order, error)
	Recent(ctx context.Context, limit int) ([]*model.Order, error)
	GetItems(ctx context.Context, orderID string) ([]*model.OrderItem, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
	MarkPaid(ctx context.Context, orderNumber int, providerID string) (bool, error)
	PaidTotalsSince(ctx context.Context, since time.Time) (int64, float64, error)
	CountByStatuses(ctx context.Context, statuses []model.OrderStatus) (int64, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

// Create stores an order with its items, assigning the next sequential
// order number when none is set. The total invariant is restored
// before the write.
func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order, items []*model.OrderItem) error {
	order.RecalculateTotal()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.OrderNumber == 0 {
			var next int
			err := tx.Model(&model.Order{}).
				Select("COALESCE(MAX(order_number), 0) + 1").
				Scan(&next).Error
			if err != nil {
				return err
			}
			order.OrderNumber = next
		}

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range items {
			item.OrderID = order.ID
		}
		if len(items) > 0 {
			return tx.Create(&items).Error
		}
		return nil
	})

	return translate(err)
}

func (r *orderRepoImpl) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&order).Error

	if err != nil {
		return nil, translate(err)
	}

	return &order, nil
}

func (r *orderRepoImpl) FindByNumber(ctx context.Context, orderNumber int) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		First(&order).Error

	if err != nil {
		return nil, translate(err)
	}

	return &order, nil
}

func (r *orderRepoImpl) List(ctx context.Context, status model.OrderStatus, limit int) ([]*model.Order, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var orders []*model.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, translate(err)
	}

	return orders, nil
}

func (r *orderRepoImpl) Recent(ctx context.Context, limit int) ([]*model.Order, error) {
	return r.List(ctx, "", limit)
}

func (r *orderRepoImpl) GetItems(ctx context.Context, orderID string) ([]*model.OrderItem, error) {
	var items []*model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&items).Error

	if err != nil {
		return nil, translate(err)
	}

	return items, nil
}

func (r *orderRepoImpl) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkPaid flips a pending order to paid and records the provider
// transaction id. The status guard makes the transition idempotent:
// a second delivery of the same callback affects zero rows and the
// caller skips its side effects.
func (r *orderRepoImpl) MarkPaid(ctx context.Context, orderNumber int, providerID string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_number = ? AND status = ?", orderNumber, model.StatusPending).
		Updates(map[string]interface{}{
			"status":              model.StatusPaid,
			"payment_provider_id": providerID,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return false, translate(result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *orderRepoImpl) PaidTotalsSince(ctx context.Context, since time.Time) (int64, float64, error) {
	var row struct {
		Orders  int64
		Revenue float64
	}
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("status = ? AND created_at >= ?", model.StatusPaid, since).
		Scan(&row).Error

	if err != nil {
		return 0, 0, translate(err)
	}

	return row.Orders, row.Revenue, nil
}

func (r *orderRepoImpl) CountByStatuses(ctx context.Context, statuses []model.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("status IN ?", statuses).
		Count(&count).Error

	return count, translate(err)
}
