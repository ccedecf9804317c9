package queries_test

import (
	"context"
	"testing"
	"time"

	"kirana/internal/core/application/usecases/queries"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/domain/model/pricelist"
	"kirana/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
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

func makeOrder(t *testing.T, id int64) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Ravi Kumar", "9876543210", "12 Bazaar Street")
	require.NoError(t, err)
	line, err := order.NewLine(1, "Rice (1kg)", decimal.NewFromInt(45), 1)
	require.NoError(t, err)

	quote := pricing.DefaultTariff().Quote(line.Total(), nil)
	o, err := order.NewOrder(id, customer, []order.Line{line}, "", quote, nil, time.Now())
	require.NoError(t, err)

	return o
}

func TestGetAllOrdersQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	stored := []*order.Order{makeOrder(t, 1), makeOrder(t, 2)}

	repo := new(MockOrderRepository)
	repo.On("GetAll", ctx).Return(stored, nil).Once()

	orders, err := queries.NewGetAllOrdersQueryHandler(repo).Handle(ctx, queries.NewGetAllOrdersQuery())
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].ID())
	assert.Equal(t, int64(2), orders[1].ID())
	repo.AssertExpectations(t)
}

func TestGetAllOrdersQueryHandler_Handle_NotConstructedQuery(t *testing.T) {
	handler := queries.NewGetAllOrdersQueryHandler(new(MockOrderRepository))

	_, err := handler.Handle(context.Background(), queries.GetAllOrdersQuery{})
	require.Error(t, err)
}

func TestGetPriceListQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	rice, err := pricelist.NewItem(1, "Rice (1kg)", decimal.NewFromInt(45), "Grains")
	require.NoError(t, err)

	repo := new(MockPriceListRepository)
	repo.On("GetAll", ctx).Return([]*pricelist.Item{rice}, nil).Once()

	items, err := queries.NewGetPriceListQueryHandler(repo).Handle(ctx, queries.NewGetPriceListQuery())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Rice (1kg)", items[0].Name())
	repo.AssertExpectations(t)
}

func TestGetPriceListQueryHandler_Handle_NotConstructedQuery(t *testing.T) {
	handler := queries.NewGetPriceListQueryHandler(new(MockPriceListRepository))

	_, err := handler.Handle(context.Background(), queries.GetPriceListQuery{})
	require.Error(t, err)
}
