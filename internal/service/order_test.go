package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-backoffice/internal/model"
	"shop-backoffice/internal/repository"
	"shop-backoffice/internal/service"
)

func newOrderService(t *testing.T) (service.OrderService, repository.OrderRepository) {
	t.Helper()
	db := newTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	shippingRepo := repository.NewShippingOptionRepository(db)
	return service.NewOrderService(orderRepo, customerRepo, shippingRepo), orderRepo
}

func seedOrder(t *testing.T, repo repository.OrderRepository, email string, paid bool) *model.Order {
	t.Helper()
	ctx := context.Background()

	order := &model.Order{
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
	require.NoError(t, repo.Create(ctx, order, []*model.OrderItem{
		{Name: "בושם 50 מ\"ל", PriceAtPurchase: 50, Quantity: 2},
	}))

	if paid {
		transitioned, err := repo.MarkPaid(ctx, order.OrderNumber, "TX-1")
		require.NoError(t, err)
		require.True(t, transitioned)
	}
	return order
}

func TestOrderListRejectsUnknownStatus(t *testing.T) {
	orders, _ := newOrderService(t)

	_, err := orders.List(context.Background(), "teleported", 0)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	// "" and "all" both mean no filter
	for _, status := range []string{"", "all"} {
		_, err := orders.List(context.Background(), status, 0)
		assert.NoError(t, err)
	}
}

func TestOrderGetIncludesItems(t *testing.T) {
	orders, repo := newOrderService(t)
	seeded := seedOrder(t, repo, "a@example.com", false)

	details, err := orders.Get(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.OrderNumber, details.Order.OrderNumber)
	require.Len(t, details.Items, 1)
	assert.Nil(t, details.Customer)

	_, err = orders.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderUpdateStatusFreeForm(t *testing.T) {
	orders, repo := newOrderService(t)
	seeded := seedOrder(t, repo, "a@example.com", true)
	ctx := context.Background()

	// admins may move the order anywhere, including backwards
	require.NoError(t, orders.UpdateStatus(ctx, seeded.ID, "shipped"))
	require.NoError(t, orders.UpdateStatus(ctx, seeded.ID, "processing"))

	got, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusProcessing, got.Status)

	assert.ErrorIs(t, orders.UpdateStatus(ctx, seeded.ID, "teleported"), service.ErrInvalidInput)
}

func TestDashboardStats(t *testing.T) {
	orders, repo := newOrderService(t)

	seedOrder(t, repo, "a@example.com", true)
	seedOrder(t, repo, "b@example.com", true)
	seedOrder(t, repo, "c@example.com", false) // pending, not revenue

	stats, err := orders.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TodayOrders)
	assert.InDelta(t, 240, stats.TodayRevenue, 0.001)
	assert.InDelta(t, 240, stats.MonthlyRevenue, 0.001)
	assert.Equal(t, int64(2), stats.OpenOrders)
	assert.Len(t, stats.RecentOrders, 3)
}
