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
	methodCreateOrder      = "CreateOrder"
	methodGetOrder         = "GetOrder"
	methodListOrders       = "ListOrders"
	methodTransitionStatus = "TransitionStatus"

	msgCreatingOrder    = "creating order"
	msgOrderInvalid     = "order input failed validation"
	msgOrderCreated     = "order created"
	msgFetchingOrder    = "fetching order"
	msgListingOrders    = "listing user orders"
	msgTransitioning    = "transitioning order status"
	msgIllegalEdge      = "illegal status transition requested"
	msgOrderTransferred = "order status transitioned"

	msgErrFetchProducts    = "failed to fetch products for order"
	msgErrFetchPromotions  = "failed to fetch active promotions"
	msgErrPersistOrder     = "failed to persist order"
	msgErrFetchOrder       = "failed to fetch order"
	msgErrListOrders       = "failed to list orders"
	msgErrTransitionStatus = "failed to update order status"

	errCtxValidatingItems    = "validating order items"
	errCtxFetchingProducts   = "fetching products"
	errCtxFetchingPromotions = "fetching promotions"
	errCtxPersistingOrder    = "persisting order"
	errCtxFetchingOrder      = "fetching order"
	errCtxListingOrders      = "listing orders"
	errCtxTransitioning      = "transitioning order status"

	defaultOrderPageSize = 10
)

// OrderUseCaseImpl реализует интерфейс OrderUseCase.
type OrderUseCaseImpl struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	promoRepo   repositories.PromotionRepository
	now         func() time.Time
}

// NewOrderUseCase создает новый экземпляр сервиса заказов.
func NewOrderUseCase(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	promoRepo repositories.PromotionRepository,
) api.OrderUseCase {
	return &OrderUseCaseImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		promoRepo:   promoRepo,
		now:         time.Now,
	}
}

// CreateOrder оформляет заказ: проверяет позиции, фиксирует актуальные цены
// (с учетом действующих акций) в строках заказа и атомарно списывает остатки.
// Сумма заказа вычисляется из зафиксированных цен и далее не зависит от
// изменений цен товаров.
func (o *OrderUseCaseImpl) CreateOrder(ctx context.Context, userID string, items []api.OrderItemInput) (*entities.Order, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateOrder), zap.String("userID", userID))
	log.Debug(ctx, msgCreatingOrder, zap.Int("items", len(items)))

	if userID == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingItems, entities.ErrEmptyUserID)
	}

	violations := entities.ValidationErrors{}
	if len(items) == 0 {
		violations.Add("items", entities.ErrEmptyOrder.Error())
	}
	for i, item := range items {
		if item.ProductID == "" {
			violations.Add(fmt.Sprintf("items[%d].product_id", i), entities.ErrProductNotFound.Error())
		}
		if item.Quantity <= 0 {
			violations.Add(fmt.Sprintf("items[%d].quantity", i), entities.ErrNonPositiveQuantity.Error())
		}
	}
	if !violations.Empty() {
		log.Debug(ctx, msgOrderInvalid, zap.Int("violations", len(violations)))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingItems, violations)
	}

	productIDs := make([]string, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := o.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		log.Error(ctx, msgErrFetchProducts, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProducts, err)
	}

	byID := make(map[string]*entities.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	for i, item := range items {
		if _, known := byID[item.ProductID]; !known {
			violations.Add(fmt.Sprintf("items[%d].product_id", i), entities.ErrProductNotFound.Error())
		}
	}
	if !violations.Empty() {
		log.Debug(ctx, msgOrderInvalid, zap.Int("violations", len(violations)))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingItems, violations)
	}

	now := o.now()
	promos, err := o.promoRepo.FindActiveForProducts(ctx, productIDs, now)
	if err != nil {
		log.Error(ctx, msgErrFetchPromotions, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingPromotions, err)
	}

	orderItems := make([]entities.OrderItem, 0, len(items))
	for _, item := range items {
		product := byID[item.ProductID]
		orderItems = append(orderItems, entities.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: entities.EffectivePrice(product, promos[item.ProductID], now),
		})
	}

	order := entities.NewOrder(userID, orderItems)

	created, err := o.orderRepo.Create(ctx, order)
	if err != nil {
		log.Error(ctx, msgErrPersistOrder, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxPersistingOrder, err)
	}

	log.Info(ctx, msgOrderCreated,
		zap.String("orderID", created.ID),
		zap.String("total", created.TotalPrice.String()))
	return created, nil
}

// GetOrder возвращает заказ только его владельцу.
func (o *OrderUseCaseImpl) GetOrder(ctx context.Context, orderID, userID string) (*entities.Order, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetOrder),
		zap.String("orderID", orderID),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgFetchingOrder)

	order, err := o.orderRepo.FindByID(ctx, orderID, userID)
	if err != nil {
		log.Debug(ctx, msgErrFetchOrder, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingOrder, err)
	}

	return order, nil
}

// ListOrders возвращает заказы пользователя, новые первыми.
func (o *OrderUseCaseImpl) ListOrders(ctx context.Context, userID string, limit, offset int) ([]*entities.Order, int, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListOrders), zap.String("userID", userID))
	log.Debug(ctx, msgListingOrders, zap.Int("limit", limit), zap.Int("offset", offset))

	if limit <= 0 {
		limit = defaultOrderPageSize
	}
	if offset < 0 {
		offset = 0
	}

	orders, total, err := o.orderRepo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		log.Error(ctx, msgErrListOrders, zap.Error(err))
		return nil, 0, fmt.Errorf("%s: %w", errCtxListingOrders, err)
	}

	return orders, total, nil
}

// TransitionStatus переводит заказ по разрешенному ребру графа статусов.
// Отмена заказа возвращает списанные остатки.
func (o *OrderUseCaseImpl) TransitionStatus(ctx context.Context, orderID, userID string, next entities.OrderStatus) (*entities.Order, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodTransitionStatus),
		zap.String("orderID", orderID),
		zap.String("userID", userID),
		zap.String("next", string(next)),
	)
	log.Debug(ctx, msgTransitioning)

	order, err := o.orderRepo.FindByID(ctx, orderID, userID)
	if err != nil {
		log.Debug(ctx, msgErrFetchOrder, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingOrder, err)
	}

	from := order.Status
	if err := order.Transition(next); err != nil {
		log.Debug(ctx, msgIllegalEdge, zap.String("from", string(from)))
		return nil, fmt.Errorf("%s: %w", errCtxTransitioning, err)
	}

	restock := next == entities.OrderStatusCancelled
	if err := o.orderRepo.UpdateStatus(ctx, orderID, userID, from, next, restock); err != nil {
		log.Error(ctx, msgErrTransitionStatus, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxTransitioning, err)
	}

	log.Info(ctx, msgOrderTransferred, zap.String("from", string(from)))
	return order, nil
}
