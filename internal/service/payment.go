package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/model"
	"shop-backoffice/internal/notify"
	"shop-backoffice/internal/repository"
)

const gatewaySuccessCode = "0"

// Reconciliation failure classes. Declined maps to a client error at
// the webhook; the rest are integrity failures.
var (
	ErrMalformedCallback = errors.New("missing required fields")
	ErrPaymentDeclined   = errors.New("payment failed")
	ErrOrderNotFound     = errors.New("order not found")
	ErrAmountMismatch    = errors.New("amount mismatch")
)

type PaymentService interface {
	Reconcile(ctx context.Context, cb *model.PaymentCallback) (*dto.WebhookResult, error)
}

type paymentServiceImpl struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	couponRepo   repository.CouponRepository
	dispatcher   notify.Dispatcher
}

func NewPaymentService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	couponRepo repository.CouponRepository,
	dispatcher notify.Dispatcher,
) PaymentService {
	return &paymentServiceImpl{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		couponRepo:   couponRepo,
		dispatcher:   dispatcher,
	}
}

// Reconcile turns a gateway callback into a confirmed order.
//
// Everything up to the paid transition is fail-fast with no writes.
// Once the transition commits, customer aggregates, coupon usage and
// notifications are best-effort: their failures are logged and
// swallowed so the gateway still sees success.
func (s *paymentServiceImpl) Reconcile(ctx context.Context, cb *model.PaymentCallback) (*dto.WebhookResult, error) {
	if cb.ResultCode == "" || cb.OrderNumber == "" {
		return nil, ErrMalformedCallback
	}

	if cb.ResultCode != gatewaySuccessCode {
		return nil, fmt.Errorf("%w: gateway code %s", ErrPaymentDeclined, cb.ResultCode)
	}

	orderNumber, err := strconv.Atoi(cb.OrderNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: bad order number %q", ErrMalformedCallback, cb.OrderNumber)
	}

	order, err := s.orderRepo.FindByNumber(ctx, orderNumber)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, orderNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("find order %d: %w", orderNumber, err)
	}

	// Gateway reports agorot; compare in shekels with a one-agora
	// tolerance for float rounding.
	minorUnits, err := strconv.ParseInt(cb.Amount, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad amount %q", ErrMalformedCallback, cb.Amount)
	}
	paidAmount := float64(minorUnits) / 100
	if math.Abs(paidAmount-order.TotalAmount) > 0.01 {
		return nil, fmt.Errorf("%w: paid %.2f, expected %.2f", ErrAmountMismatch, paidAmount, order.TotalAmount)
	}

	// The authoritative write. The pending guard makes redelivered
	// callbacks a no-op: we echo success without repeating side
	// effects.
	transitioned, err := s.orderRepo.MarkPaid(ctx, orderNumber, cb.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("mark order %d paid: %w", orderNumber, err)
	}
	if !transitioned {
		log.Printf("order %d already reconciled, skipping side effects", orderNumber)
		return &dto.WebhookResult{OrderNumber: orderNumber, AlreadyPaid: true}, nil
	}

	if order.CustomerID != nil {
		err := s.customerRepo.ApplyOrderStats(ctx, *order.CustomerID, order.TotalAmount, time.Now())
		if err != nil {
			log.Printf("update customer stats for order %d: %v", orderNumber, err)
		}
	}

	if order.CouponCode != "" {
		if err := s.couponRepo.IncrementUsageByCode(ctx, order.CouponCode); err != nil {
			log.Printf("increment coupon %s usage for order %d: %v", order.CouponCode, orderNumber, err)
		}
	}

	items, err := s.orderRepo.GetItems(ctx, order.ID)
	if err != nil {
		log.Printf("load items for order %d notifications: %v", orderNumber, err)
	}

	order.Status = model.StatusPaid
	order.PaymentProviderID = cb.TransactionID
	s.dispatcher.Submit(notify.Task{Kind: notify.TaskTelegram, Order: order})
	s.dispatcher.Submit(notify.Task{Kind: notify.TaskEmail, Order: order, Items: items})

	return &dto.WebhookResult{OrderNumber: orderNumber}, nil
}
