package orderusecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"goshop/internal/shop/domain/entities"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) Create(ctx context.Context, order *entities.Order) (*entities.Order, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, orderID, userID string) (*entities.Order, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *mockOrderRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entities.Order, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Order), args.Int(1), args.Error(2)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, orderID, userID string, from, next entities.OrderStatus, restock bool) error {
	args := m.Called(ctx, orderID, userID, from, next, restock)
	return args.Error(0)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id string) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockProductRepository) FindByIDs(ctx context.Context, ids []string) ([]*entities.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *mockProductRepository) List(ctx context.Context, limit, offset int) ([]*entities.Product, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Product), args.Int(1), args.Error(2)
}

func (m *mockProductRepository) Update(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPromotionRepository struct {
	mock.Mock
}

func (m *mockPromotionRepository) Create(ctx context.Context, promo *entities.PromotionEvent, productIDs []string) (*entities.PromotionEvent, error) {
	args := m.Called(ctx, promo, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PromotionEvent), args.Error(1)
}

func (m *mockPromotionRepository) FindActiveForProduct(ctx context.Context, productID string, now time.Time) (*entities.PromotionEvent, error) {
	args := m.Called(ctx, productID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PromotionEvent), args.Error(1)
}

func (m *mockPromotionRepository) FindActiveForProducts(ctx context.Context, productIDs []string, now time.Time) (map[string]*entities.PromotionEvent, error) {
	args := m.Called(ctx, productIDs, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*entities.PromotionEvent), args.Error(1)
}
