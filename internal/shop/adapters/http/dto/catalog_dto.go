package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/api"
)

// CreateProductRequest содержит данные для создания товара.
type CreateProductRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	CategoryID string          `json:"category_id"`
}

// UpdateProductRequest содержит данные для обновления товара.
type UpdateProductRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	CategoryID string          `json:"category_id"`
}

// PromotionResponse содержит данные акции.
type PromotionResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	PriceReduction decimal.Decimal `json:"price_reduction"`
	StartsAt       time.Time       `json:"starts_at"`
	EndsAt         time.Time       `json:"ends_at"`
}

// ProductResponse содержит данные товара вместе с актуальной ценой.
type ProductResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Price          decimal.Decimal    `json:"price"`
	EffectivePrice decimal.Decimal    `json:"effective_price"`
	Stock          int                `json:"stock"`
	CategoryID     string             `json:"category_id,omitempty"`
	Promotion      *PromotionResponse `json:"promotion,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// ProductListResponse содержит страницу товаров.
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalCount int               `json:"total_count"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}

// CategoryResponse содержит данные категории.
type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Level    int    `json:"level"`
	ParentID string `json:"parent_id,omitempty"`
}

// CreateCategoryRequest содержит данные для создания категории.
type CreateCategoryRequest struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Level    int    `json:"level"`
	ParentID string `json:"parent_id"`
}

// CreatePromotionRequest содержит данные для создания акции.
type CreatePromotionRequest struct {
	Name           string          `json:"name"`
	PriceReduction decimal.Decimal `json:"price_reduction"`
	StartsAt       time.Time       `json:"starts_at"`
	EndsAt         time.Time       `json:"ends_at"`
	ProductIDs     []string        `json:"product_ids"`
}

// NewPromotionResponse преобразует акцию в ответ API.
func NewPromotionResponse(promo *entities.PromotionEvent) *PromotionResponse {
	if promo == nil {
		return nil
	}
	return &PromotionResponse{
		ID:             promo.ID,
		Name:           promo.Name,
		PriceReduction: promo.PriceReduction,
		StartsAt:       promo.StartsAt,
		EndsAt:         promo.EndsAt,
	}
}

// NewProductResponse преобразует товар с актуальной ценой в ответ API.
func NewProductResponse(view *api.ProductView) ProductResponse {
	return ProductResponse{
		ID:             view.Product.ID,
		Name:           view.Product.Name,
		Price:          view.Product.Price,
		EffectivePrice: view.EffectivePrice,
		Stock:          view.Product.Stock,
		CategoryID:     view.Product.CategoryID,
		Promotion:      NewPromotionResponse(view.Promotion),
		CreatedAt:      view.Product.CreatedAt,
		UpdatedAt:      view.Product.UpdatedAt,
	}
}

// NewProductListResponse преобразует страницу товаров в ответ API.
func NewProductListResponse(views []*api.ProductView, totalCount, limit, offset int) ProductListResponse {
	products := make([]ProductResponse, 0, len(views))
	for _, view := range views {
		products = append(products, NewProductResponse(view))
	}
	return ProductListResponse{
		Products:   products,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}
}

// NewCategoryResponse преобразует категорию в ответ API.
func NewCategoryResponse(category *entities.Category) CategoryResponse {
	return CategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		Slug:     category.Slug,
		Level:    category.Level,
		ParentID: category.ParentID,
	}
}
