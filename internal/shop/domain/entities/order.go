package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Ошибки домена заказов.
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrEmptyOrder          = errors.New("order must contain at least one item")
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")
	ErrInsufficientStock   = errors.New("insufficient product stock")
	ErrInvalidTransition   = errors.New("illegal order status transition")
)

// OrderStatus - статус жизненного цикла заказа.
type OrderStatus string

// Статусы заказа.
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// legalTransitions перечисляет разрешенные ребра графа статусов.
// delivered и cancelled - терминальные состояния без исходящих ребер.
var legalTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// Valid сообщает, является ли значение известным статусом.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal сообщает, является ли статус терминальным.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo проверяет допустимость перехода в новый статус.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem - строка заказа. UnitPrice фиксируется в момент оформления
// и не пересчитывается при изменении цены товара.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal возвращает стоимость строки заказа.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order представляет заказ пользователя.
type Order struct {
	ID         string
	UserID     string
	Status     OrderStatus
	TotalPrice decimal.Decimal
	Items      []OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewOrder создает заказ в статусе pending и вычисляет итоговую сумму
// из зафиксированных цен строк.
func NewOrder(userID string, items []OrderItem) *Order {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Subtotal())
	}

	return &Order{
		UserID:     userID,
		Status:     OrderStatusPending,
		TotalPrice: total,
		Items:      items,
	}
}

// Transition переводит заказ в новый статус, проверяя допустимость ребра.
func (o *Order) Transition(next OrderStatus) error {
	if !next.Valid() || !o.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	o.Status = next
	return nil
}
