package repositories

import (
	"context"
	"time"

	"goshop/internal/shop/domain/entities"
)

// ProductRepository определяет интерфейс для операций с товарами.
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) (*entities.Product, error)

	FindByID(ctx context.Context, id string) (*entities.Product, error)

	FindByIDs(ctx context.Context, ids []string) ([]*entities.Product, error)

	List(ctx context.Context, limit, offset int) ([]*entities.Product, int, error)

	Update(ctx context.Context, product *entities.Product) (*entities.Product, error)

	Delete(ctx context.Context, id string) error
}

// CategoryRepository определяет интерфейс для операций с категориями.
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) (*entities.Category, error)

	FindBySlug(ctx context.Context, slug string) (*entities.Category, error)

	List(ctx context.Context) ([]*entities.Category, error)
}

// PromotionRepository определяет интерфейс для операций с акциями.
type PromotionRepository interface {
	Create(ctx context.Context, promo *entities.PromotionEvent, productIDs []string) (*entities.PromotionEvent, error)

	// FindActiveForProduct возвращает действующую акцию для товара
	// либо nil, если активных акций нет.
	FindActiveForProduct(ctx context.Context, productID string, now time.Time) (*entities.PromotionEvent, error)

	// FindActiveForProducts возвращает действующие акции для набора товаров,
	// сгруппированные по идентификатору товара.
	FindActiveForProducts(ctx context.Context, productIDs []string, now time.Time) (map[string]*entities.PromotionEvent, error)
}
