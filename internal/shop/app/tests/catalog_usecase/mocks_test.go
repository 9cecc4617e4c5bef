package catalogusecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"goshop/internal/shop/domain/entities"
)

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

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *mockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Category), args.Error(1)
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
