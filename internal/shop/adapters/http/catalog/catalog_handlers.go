// Package catalog содержит HTTP обработчики каталога товаров.
package catalog

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goshop/internal/shop/adapters/http/dto"
	"goshop/internal/shop/adapters/http/httperr"
	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/api"
	"goshop/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerListProducts    = "catalog handler: list products"
	LogHandlerGetProduct      = "catalog handler: get product"
	LogHandlerCreateProduct   = "catalog handler: create product"
	LogHandlerUpdateProduct   = "catalog handler: update product"
	LogHandlerListCategories  = "catalog handler: list categories"
	LogHandlerCreateCategory  = "catalog handler: create category"
	LogHandlerCreatePromotion = "catalog handler: create promotion"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"

	defaultPageSize = 20
	maxPageSize     = 100
)

// Handler содержит HTTP обработчики каталога.
type Handler struct {
	catalogUseCase api.CatalogUseCase
}

// NewHandler создает новый экземпляр обработчика каталога.
func NewHandler(catalogUseCase api.CatalogUseCase) *Handler {
	return &Handler{catalogUseCase: catalogUseCase}
}

// parsePagination читает limit и offset из query-параметров.
func parsePagination(ctx fiber.Ctx) (int, int) {
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset, err := strconv.Atoi(ctx.Query("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return limit, offset
}

// ListProducts обрабатывает запрос на получение страницы товаров.
func (h *Handler) ListProducts(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListProducts)

	limit, offset := parsePagination(ctx)

	views, totalCount, err := h.catalogUseCase.ListProducts(requestCtx, limit, offset)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(dto.NewProductListResponse(views, totalCount, limit, offset))
}

// GetProduct обрабатывает запрос на получение товара.
func (h *Handler) GetProduct(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetProduct)

	view, err := h.catalogUseCase.GetProduct(requestCtx, ctx.Params("id"))
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(dto.NewProductResponse(view))
}

// CreateProduct обрабатывает запрос на создание товара.
func (h *Handler) CreateProduct(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreateProduct)

	var req dto.CreateProductRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	product, err := h.catalogUseCase.CreateProduct(requestCtx, &entities.Product{
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusCreated).JSON(dto.NewProductResponse(&api.ProductView{
		Product:        product,
		EffectivePrice: product.Price,
	}))
}

// UpdateProduct обрабатывает запрос на обновление товара.
func (h *Handler) UpdateProduct(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateProduct)

	var req dto.UpdateProductRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	product, err := h.catalogUseCase.UpdateProduct(requestCtx, &entities.Product{
		ID:         ctx.Params("id"),
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(dto.NewProductResponse(&api.ProductView{
		Product:        product,
		EffectivePrice: product.Price,
	}))
}

// ListCategories обрабатывает запрос на получение дерева категорий.
func (h *Handler) ListCategories(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListCategories)

	categories, err := h.catalogUseCase.ListCategories(requestCtx)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	list := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		list = append(list, dto.NewCategoryResponse(category))
	}

	return ctx.Status(http.StatusOK).JSON(fiber.Map{
		"categories": list,
	})
}

// CreateCategory обрабатывает запрос на создание категории.
func (h *Handler) CreateCategory(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreateCategory)

	var req dto.CreateCategoryRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	category, err := h.catalogUseCase.CreateCategory(requestCtx, &entities.Category{
		Name:     req.Name,
		Slug:     req.Slug,
		Level:    req.Level,
		ParentID: req.ParentID,
	})
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusCreated).JSON(dto.NewCategoryResponse(category))
}

// CreatePromotion обрабатывает запрос на создание акции.
func (h *Handler) CreatePromotion(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreatePromotion)

	var req dto.CreatePromotionRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	promo, err := h.catalogUseCase.CreatePromotion(requestCtx, &entities.PromotionEvent{
		Name:           req.Name,
		PriceReduction: req.PriceReduction,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
	}, req.ProductIDs)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusCreated).JSON(dto.NewPromotionResponse(promo))
}
