package repositories

import (
	"context"

	"goshop/internal/shop/domain/entities"
)

// OrderRepository определяет интерфейс для операций с заказами.
type OrderRepository interface {
	// Create атомарно списывает остатки и сохраняет заказ со строками.
	// Возвращает entities.ErrInsufficientStock, если остатка какого-либо
	// товара не хватает, - заказ при этом не создается.
	Create(ctx context.Context, order *entities.Order) (*entities.Order, error)

	// FindByID возвращает заказ со строками только владельцу:
	// чужой или несуществующий заказ - entities.ErrOrderNotFound.
	FindByID(ctx context.Context, orderID, userID string) (*entities.Order, error)

	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entities.Order, int, error)

	// UpdateStatus переводит заказ в новый статус при условии, что текущий
	// статус не изменился с момента чтения. При restock возвращает
	// списанные остатки товарам заказа.
	UpdateStatus(ctx context.Context, orderID, userID string, from, next entities.OrderStatus, restock bool) error
}
