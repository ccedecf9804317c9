package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/domain/model/pricelist"
	"kirana/internal/core/domain/model/pricing"
	"kirana/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Remove(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockPriceListRepository struct{ mock.Mock }

func (m *MockPriceListRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPriceListRepository) Add(ctx context.Context, item *pricelist.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPriceListRepository) Get(ctx context.Context, id int64) (*pricelist.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricelist.Item), args.Error(1)
}

func (m *MockPriceListRepository) GetAll(ctx context.Context) ([]*pricelist.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricelist.Item), args.Error(1)
}

func (m *MockPriceListRepository) Update(ctx context.Context, item *pricelist.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPriceListRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationQueue struct{ mock.Mock }

func (m *MockNotificationQueue) Enqueue(n ports.Notification) error {
	args := m.Called(n)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func storedOrder(t *testing.T, id int64, now time.Time) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Ravi Kumar", "9876543210", "12 Bazaar Street")
	require.NoError(t, err)
	line, err := order.NewLine(1, "Rice (1kg)", decimal.NewFromInt(45), 2)
	require.NoError(t, err)

	quote := pricing.DefaultTariff().Quote(line.Total(), nil)
	o, err := order.NewOrder(id, customer, []order.Line{line}, "", quote, nil, now)
	require.NoError(t, err)

	return o
}
