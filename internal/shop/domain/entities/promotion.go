package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// minEffectivePrice - нижняя граница цены после применения скидки.
var minEffectivePrice = decimal.NewFromFloat(0.01)

// PromotionEvent представляет временную акцию, снижающую цену товара.
type PromotionEvent struct {
	ID             string
	Name           string
	PriceReduction decimal.Decimal
	StartsAt       time.Time
	EndsAt         time.Time
}

// ActiveAt сообщает, действует ли акция в указанный момент.
func (p *PromotionEvent) ActiveAt(now time.Time) bool {
	return !now.Before(p.StartsAt) && now.Before(p.EndsAt)
}

// Apply возвращает цену со скидкой, не опускаясь ниже минимальной цены.
func (p *PromotionEvent) Apply(price decimal.Decimal) decimal.Decimal {
	reduced := price.Sub(p.PriceReduction)
	if reduced.LessThan(minEffectivePrice) {
		return minEffectivePrice
	}
	return reduced
}

// EffectivePrice возвращает актуальную цену товара с учетом акции.
// Акция может быть nil либо неактивной - тогда действует базовая цена.
func EffectivePrice(product *Product, promo *PromotionEvent, now time.Time) decimal.Decimal {
	if promo == nil || !promo.ActiveAt(now) {
		return product.Price
	}
	return promo.Apply(product.Price)
}
