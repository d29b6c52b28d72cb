package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/format"
	"shop-backoffice/internal/model"
	"shop-backoffice/internal/repository"
)

type OrderService interface {
	List(ctx context.Context, status string, limit int) ([]*model.Order, error)
	Get(ctx context.Context, id string) (*dto.OrderDetails, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Dashboard(ctx context.Context) (*dto.DashboardStats, error)
}

type orderServiceImpl struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	shippingRepo repository.ShippingOptionRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	shippingRepo repository.ShippingOptionRepository,
) OrderService {
	return &orderServiceImpl{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		shippingRepo: shippingRepo,
	}
}

func (s *orderServiceImpl) List(ctx context.Context, status string, limit int) ([]*model.Order, error) {
	var filter model.OrderStatus
	if status != "" && status != "all" {
		filter = model.OrderStatus(status)
		if !filter.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
		}
	}

	return s.orderRepo.List(ctx, filter, limit)
}

// Get loads an order with its items and, when referenced, the customer
// and shipping option. The optional relations are best-effort: a
// missing row degrades to an absent field, matching how the back
// office renders it.
func (s *orderServiceImpl) Get(ctx context.Context, id string) (*dto.OrderDetails, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.orderRepo.GetItems(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}

	details := &dto.OrderDetails{
		Order: order,
		Items: items,
	}

	if order.CustomerID != nil {
		customer, err := s.customerRepo.FindByID(ctx, *order.CustomerID)
		if err == nil {
			details.Customer = customer
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("get order customer: %w", err)
		}
	}

	if order.ShippingOptionID != nil {
		option, err := s.shippingRepo.FindByID(ctx, *order.ShippingOptionID)
		if err == nil {
			details.ShippingOption = option
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("get order shipping option: %w", err)
		}
	}

	return details, nil
}

// UpdateStatus is the free-form admin write: any valid status is
// accepted, no side effects. Cancelling or refunding does not reverse
// customer aggregates or coupon usage.
func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	next := model.OrderStatus(status)
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	return s.orderRepo.UpdateStatus(ctx, id, next)
}

func (s *orderServiceImpl) Dashboard(ctx context.Context) (*dto.DashboardStats, error) {
	now := time.Now().In(format.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	todayOrders, todayRevenue, err := s.orderRepo.PaidTotalsSince(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("today totals: %w", err)
	}

	_, monthlyRevenue, err := s.orderRepo.PaidTotalsSince(ctx, firstOfMonth)
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}

	openOrders, err := s.orderRepo.CountByStatuses(ctx, []model.OrderStatus{
		model.StatusPaid,
		model.StatusProcessing,
	})
	if err != nil {
		return nil, fmt.Errorf("open orders count: %w", err)
	}

	recent, err := s.orderRepo.Recent(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}

	return &dto.DashboardStats{
		TodayOrders:    todayOrders,
		TodayRevenue:   todayRevenue,
		MonthlyRevenue: monthlyRevenue,
		OpenOrders:     openOrders,
		RecentOrders:   recent,
	}, nil
}
