package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/api"
	"goshop/internal/shop/ports/repositories"
	"goshop/pkg/logger"
)

const (
	methodListProducts   = "ListProducts"
	methodGetProduct     = "GetProduct"
	methodCreateProduct  = "CreateProduct"
	methodUpdateProduct  = "UpdateProduct"
	methodListCategories = "ListCategories"
	methodCreateCategory = "CreateCategory"
	methodCreatePromo    = "CreatePromotion"

	msgListingProducts  = "listing products"
	msgFetchingProduct  = "fetching product"
	msgProductInvalid   = "product failed validation"
	msgProductCreated   = "product created"
	msgProductUpdated   = "product updated"
	msgListingCats      = "listing categories"
	msgCategoryCreated  = "category created"
	msgPromotionCreated = "promotion created"

	msgErrListProducts   = "failed to list products"
	msgErrFetchProduct   = "failed to fetch product"
	msgErrFetchPromo     = "failed to fetch promotion"
	msgErrCreateProduct  = "failed to create product"
	msgErrUpdateProduct  = "failed to update product"
	msgErrListCategories = "failed to list categories"
	msgErrCreateCategory = "failed to create category"
	msgErrCreatePromo    = "failed to create promotion"

	errCtxListingProducts   = "listing products"
	errCtxFetchingProduct   = "fetching product"
	errCtxValidatingProduct = "validating product"
	errCtxCreatingProduct   = "creating product"
	errCtxUpdatingProduct   = "updating product"
	errCtxListingCategories = "listing categories"
	errCtxCreatingCategory  = "creating category"
	errCtxCreatingPromotion = "creating promotion"

	defaultProductPageSize = 20
)

// CatalogUseCaseImpl реализует интерфейс CatalogUseCase.
type CatalogUseCaseImpl struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	promoRepo    repositories.PromotionRepository
	now          func() time.Time
}

// NewCatalogUseCase создает новый экземпляр сервиса каталога.
func NewCatalogUseCase(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	promoRepo repositories.PromotionRepository,
) api.CatalogUseCase {
	return &CatalogUseCaseImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		promoRepo:    promoRepo,
		now:          time.Now,
	}
}

// ListProducts возвращает страницу каталога с актуальными ценами.
func (c *CatalogUseCaseImpl) ListProducts(ctx context.Context, limit, offset int) ([]*api.ProductView, int, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListProducts))
	log.Debug(ctx, msgListingProducts, zap.Int("limit", limit), zap.Int("offset", offset))

	if limit <= 0 {
		limit = defaultProductPageSize
	}
	if offset < 0 {
		offset = 0
	}

	products, total, err := c.productRepo.List(ctx, limit, offset)
	if err != nil {
		log.Error(ctx, msgErrListProducts, zap.Error(err))
		return nil, 0, fmt.Errorf("%s: %w", errCtxListingProducts, err)
	}

	productIDs := make([]string, 0, len(products))
	for _, product := range products {
		productIDs = append(productIDs, product.ID)
	}

	now := c.now()
	promos, err := c.promoRepo.FindActiveForProducts(ctx, productIDs, now)
	if err != nil {
		log.Error(ctx, msgErrFetchPromo, zap.Error(err))
		return nil, 0, fmt.Errorf("%s: %w", errCtxListingProducts, err)
	}

	views := make([]*api.ProductView, 0, len(products))
	for _, product := range products {
		promo := promos[product.ID]
		views = append(views, &api.ProductView{
			Product:        product,
			EffectivePrice: entities.EffectivePrice(product, promo, now),
			Promotion:      promo,
		})
	}

	return views, total, nil
}

// GetProduct возвращает товар с актуальной ценой.
func (c *CatalogUseCaseImpl) GetProduct(ctx context.Context, productID string) (*api.ProductView, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetProduct), zap.String("productID", productID))
	log.Debug(ctx, msgFetchingProduct)

	product, err := c.productRepo.FindByID(ctx, productID)
	if err != nil {
		log.Debug(ctx, msgErrFetchProduct, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProduct, err)
	}

	now := c.now()
	promo, err := c.promoRepo.FindActiveForProduct(ctx, productID, now)
	if err != nil {
		log.Error(ctx, msgErrFetchPromo, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProduct, err)
	}

	return &api.ProductView{
		Product:        product,
		EffectivePrice: entities.EffectivePrice(product, promo, now),
		Promotion:      promo,
	}, nil
}

// CreateProduct валидирует и сохраняет новый товар.
func (c *CatalogUseCaseImpl) CreateProduct(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateProduct))

	if violations := product.Validate(); !violations.Empty() {
		log.Debug(ctx, msgProductInvalid, zap.Int("violations", len(violations)))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingProduct, violations)
	}

	created, err := c.productRepo.Create(ctx, product)
	if err != nil {
		log.Error(ctx, msgErrCreateProduct, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingProduct, err)
	}

	log.Info(ctx, msgProductCreated, zap.String("productID", created.ID))
	return created, nil
}

// UpdateProduct валидирует и сохраняет изменения товара.
func (c *CatalogUseCaseImpl) UpdateProduct(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateProduct), zap.String("productID", product.ID))

	if violations := product.Validate(); !violations.Empty() {
		log.Debug(ctx, msgProductInvalid, zap.Int("violations", len(violations)))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingProduct, violations)
	}

	updated, err := c.productRepo.Update(ctx, product)
	if err != nil {
		log.Error(ctx, msgErrUpdateProduct, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingProduct, err)
	}

	log.Info(ctx, msgProductUpdated)
	return updated, nil
}

// ListCategories возвращает все категории.
func (c *CatalogUseCaseImpl) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListCategories))
	log.Debug(ctx, msgListingCats)

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		log.Error(ctx, msgErrListCategories, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingCategories, err)
	}

	return categories, nil
}

// CreateCategory сохраняет новую категорию.
func (c *CatalogUseCaseImpl) CreateCategory(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateCategory))

	created, err := c.categoryRepo.Create(ctx, category)
	if err != nil {
		log.Error(ctx, msgErrCreateCategory, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingCategory, err)
	}

	log.Info(ctx, msgCategoryCreated, zap.String("categoryID", created.ID))
	return created, nil
}

// CreatePromotion сохраняет новую акцию и привязывает ее к товарам.
func (c *CatalogUseCaseImpl) CreatePromotion(ctx context.Context, promo *entities.PromotionEvent, productIDs []string) (*entities.PromotionEvent, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreatePromo))

	created, err := c.promoRepo.Create(ctx, promo, productIDs)
	if err != nil {
		log.Error(ctx, msgErrCreatePromo, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingPromotion, err)
	}

	log.Info(ctx, msgPromotionCreated, zap.String("promotionID", created.ID))
	return created, nil
}
