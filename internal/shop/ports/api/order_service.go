package api

import (
	"context"

	"goshop/internal/shop/domain/entities"
)

// OrderItemInput - позиция создаваемого заказа.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// OrderUseCase определяет основной порт для операций с заказами.
// Каждая операция ограничена заказами запрашивающего пользователя.
type OrderUseCase interface {
	CreateOrder(ctx context.Context, userID string, items []OrderItemInput) (*entities.Order, error)

	GetOrder(ctx context.Context, orderID, userID string) (*entities.Order, error)

	ListOrders(ctx context.Context, userID string, limit, offset int) ([]*entities.Order, int, error)

	TransitionStatus(ctx context.Context, orderID, userID string, next entities.OrderStatus) (*entities.Order, error)
}
