package repository_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shop-backoffice/internal/client"
	"shop-backoffice/internal/model"
	"shop-backoffice/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, client.Migrate(db))
	return db
}

func pendingOrder(email string) *model.Order {
	return &model.Order{
		CustomerEmail: email,
		RecipientName: "דנה לוי",
		Phone:         "050-1234567",
		City:          "תל אביב",
		Street:        "דיזנגוף",
		HouseNumber:   "10",
		ProductsTotal: 100,
		ShippingCost:  20,
		Status:        model.StatusPending,
	}
}

func TestOrderCreateAssignsSequentialNumbers(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	first := pendingOrder("a@example.com")
	second := pendingOrder("b@example.com")

	require.NoError(t, repo.Create(ctx, first, nil))
	require.NoError(t, repo.Create(ctx, second, nil))

	assert.Equal(t, 1, first.OrderNumber)
	assert.Equal(t, 2, second.OrderNumber)
	assert.NotEmpty(t, first.ID)
}

func TestOrderCreateRestoresTotalInvariant(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	order := pendingOrder("a@example.com")
	order.ProductsTotal = 100
	order.ShippingCost = 20
	order.DiscountAmount = 5.5
	order.TotalAmount = 999 // stale value, must be recomputed

	require.NoError(t, repo.Create(ctx, order, []*model.OrderItem{
		{Name: "בושם 50 מ\"ל", PriceAtPurchase: 50, Quantity: 2},
	}))

	assert.InDelta(t, 114.5, order.TotalAmount, 0.001)

	items, err := repo.GetItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, order.ID, items[0].OrderID)
}

func TestOrderMarkPaidOnlyTransitionsPending(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	order := pendingOrder("a@example.com")
	require.NoError(t, repo.Create(ctx, order, nil))

	transitioned, err := repo.MarkPaid(ctx, order.OrderNumber, "TX-100")
	require.NoError(t, err)
	assert.True(t, transitioned)

	got, err := repo.FindByNumber(ctx, order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaid, got.Status)
	assert.Equal(t, "TX-100", got.PaymentProviderID)

	// second delivery of the same callback affects nothing
	transitioned, err = repo.MarkPaid(ctx, order.OrderNumber, "TX-200")
	require.NoError(t, err)
	assert.False(t, transitioned)

	got, err = repo.FindByNumber(ctx, order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, "TX-100", got.PaymentProviderID)
}

func TestOrderUpdateStatusUnknownID(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewOrderRepository(db)

	err := repo.UpdateStatus(context.Background(), "no-such-id", model.StatusShipped)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderListFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	paid := pendingOrder("a@example.com")
	require.NoError(t, repo.Create(ctx, paid, nil))
	_, err := repo.MarkPaid(ctx, paid.OrderNumber, "TX-1")
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, pendingOrder("b@example.com"), nil))

	all, err := repo.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyPaid, err := repo.List(ctx, model.StatusPaid, 0)
	require.NoError(t, err)
	require.Len(t, onlyPaid, 1)
	assert.Equal(t, paid.OrderNumber, onlyPaid[0].OrderNumber)
}

func TestCustomerApplyOrderStatsIncrements(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCustomerRepository(db)
	ctx := context.Background()

	customer, err := repo.FindOrCreate(ctx, "Dana@Example.com", "דנה לוי", "")
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", customer.Email)

	at := time.Now()
	require.NoError(t, repo.ApplyOrderStats(ctx, customer.ID, 123.4, at))
	require.NoError(t, repo.ApplyOrderStats(ctx, customer.ID, 50, at))

	got, err := repo.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalOrders)
	assert.InDelta(t, 173.4, got.TotalSpent, 0.001)
	require.NotNil(t, got.LastOrderAt)
}

func TestCouponIncrementUsageByCode(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCouponRepository(db)
	ctx := context.Background()

	coupon := &model.Coupon{
		Code:          "save10",
		DiscountType:  model.DiscountPercent,
		DiscountValue: 10,
		IsActive:      true,
	}
	require.NoError(t, repo.Create(ctx, coupon))
	assert.Equal(t, "SAVE10", coupon.Code)

	// lookup and increment are case-insensitive
	require.NoError(t, repo.IncrementUsageByCode(ctx, "Save10"))
	require.NoError(t, repo.IncrementUsage(ctx, coupon.ID))

	got, err := repo.FindByCode(ctx, "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, 2, got.UsageCount)

	assert.ErrorIs(t, repo.IncrementUsageByCode(ctx, "NOPE"), repository.ErrNotFound)
}
