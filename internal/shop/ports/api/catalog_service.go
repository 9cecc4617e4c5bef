package api

import (
	"context"

	"github.com/shopspring/decimal"

	"goshop/internal/shop/domain/entities"
)

// ProductView - товар вместе с актуальной ценой с учетом действующей акции.
type ProductView struct {
	Product        *entities.Product
	EffectivePrice decimal.Decimal
	Promotion      *entities.PromotionEvent
}

// CatalogUseCase определяет основной порт каталога товаров.
type CatalogUseCase interface {
	ListProducts(ctx context.Context, limit, offset int) ([]*ProductView, int, error)

	GetProduct(ctx context.Context, productID string) (*ProductView, error)

	CreateProduct(ctx context.Context, product *entities.Product) (*entities.Product, error)

	UpdateProduct(ctx context.Context, product *entities.Product) (*entities.Product, error)

	ListCategories(ctx context.Context) ([]*entities.Category, error)

	CreateCategory(ctx context.Context, category *entities.Category) (*entities.Category, error)

	CreatePromotion(ctx context.Context, promo *entities.PromotionEvent, productIDs []string) (*entities.PromotionEvent, error)
}
