package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"goshop/internal/shop/domain/entities"
)

// OrderItemRequest - позиция создаваемого заказа.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest содержит данные для создания заказа.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest содержит целевой статус заказа.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse содержит строку заказа с зафиксированной ценой.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse содержит данные заказа.
type OrderResponse struct {
	ID         string              `json:"id"`
	Status     string              `json:"status"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	Items      []OrderItemResponse `json:"items,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// OrderListResponse содержит страницу заказов пользователя.
type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	TotalCount int             `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

// NewOrderResponse преобразует заказ в ответ API.
func NewOrderResponse(order *entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		})
	}
	return OrderResponse{
		ID:         order.ID,
		Status:     string(order.Status),
		TotalPrice: order.TotalPrice,
		Items:      items,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

// NewOrderListResponse преобразует страницу заказов в ответ API.
func NewOrderListResponse(orders []*entities.Order, totalCount, limit, offset int) OrderListResponse {
	list := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		list = append(list, NewOrderResponse(order))
	}
	return OrderListResponse{
		Orders:     list,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}
}
