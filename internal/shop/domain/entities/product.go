package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Ошибки домена каталога.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrEmptyProductName   = errors.New("product name cannot be empty")
	ErrProductNameTooLong = errors.New("product name is too long")
	ErrNonPositivePrice   = errors.New("price must be greater than zero")
	ErrNegativeStock      = errors.New("stock cannot be negative")
	ErrCategoryNotFound   = errors.New("category not found")
)

// MaxProductNameLength - максимальная длина названия товара.
const MaxProductNameLength = 255

// Product представляет товар каталога.
type Product struct {
	ID         string
	Name       string
	Price      decimal.Decimal
	Stock      int
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate проверяет инварианты товара и собирает нарушения по полям.
func (p *Product) Validate() ValidationErrors {
	violations := ValidationErrors{}

	if p.Name == "" {
		violations.Add("name", ErrEmptyProductName.Error())
	} else if len(p.Name) > MaxProductNameLength {
		violations.Add("name", ErrProductNameTooLong.Error())
	}

	if !p.Price.IsPositive() {
		violations.Add("price", ErrNonPositivePrice.Error())
	}

	if p.Stock < 0 {
		violations.Add("stock", ErrNegativeStock.Error())
	}

	return violations
}

// Category представляет узел дерева категорий.
// ParentID - слабая ссылка: удаление родителя не удаляет потомков.
type Category struct {
	ID       string
	Name     string
	Slug     string
	Level    int
	ParentID string
}
