package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/repositories"
	"goshop/pkg/logger"
)

// OrderRepository реализует интерфейс repositories.OrderRepository для работы с Postgres.
type OrderRepository struct {
	pool PgxPoolInterface
}

// NewOrderRepository создает новый экземпляр репозитория заказов.
func NewOrderRepository(pool PgxPoolInterface) repositories.OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create атомарно списывает остатки и сохраняет заказ со строками.
// Условное списание закрывает гонку одновременных заказов одного товара:
// при нехватке остатка транзакция откатывается целиком.
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) (*entities.Order, error) {
	log := logger.Log(ctx).With(zap.String("repository", "order"), zap.String("method", "Create"))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error starting transaction", zap.Error(err))
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i := range order.Items {
		item := &order.Items[i]
		result, err := tx.Exec(ctx,
			`UPDATE products SET stock = stock - $1, updated_at = NOW() WHERE id = $2 AND stock >= $1`,
			item.Quantity, item.ProductID,
		)
		if err != nil {
			log.Error(ctx, "error decrementing stock", zap.Error(err), zap.String("productID", item.ProductID))
			return nil, fmt.Errorf("error decrementing stock: %w", err)
		}
		if result.RowsAffected() == 0 {
			log.Debug(ctx, "insufficient stock", zap.String("productID", item.ProductID), zap.Int("quantity", item.Quantity))
			return nil, entities.ErrInsufficientStock
		}
	}

	created := *order
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, status, total_price)
         VALUES ($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		order.UserID, order.Status, order.TotalPrice,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		log.Error(ctx, "error inserting order", zap.Error(err))
		return nil, fmt.Errorf("error inserting order: %w", err)
	}

	created.Items = make([]entities.OrderItem, len(order.Items))
	copy(created.Items, order.Items)
	for i := range created.Items {
		item := &created.Items[i]
		item.OrderID = created.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, unit_price)
             VALUES ($1, $2, $3, $4)
             RETURNING id`,
			item.OrderID, item.ProductID, item.Quantity, item.UnitPrice,
		).Scan(&item.ID)
		if err != nil {
			log.Error(ctx, "error inserting order item", zap.Error(err), zap.String("productID", item.ProductID))
			return nil, fmt.Errorf("error inserting order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing order", zap.Error(err))
		return nil, fmt.Errorf("error committing order: %w", err)
	}

	log.Debug(ctx, "order created", zap.String("orderID", created.ID))
	return &created, nil
}

// FindByID возвращает заказ со строками только владельцу.
// Несуществующий и чужой заказ неразличимы для вызывающей стороны.
func (r *OrderRepository) FindByID(ctx context.Context, orderID, userID string) (*entities.Order, error) {
	log := logger.Log(ctx).With(zap.String("repository", "order"), zap.String("method", "FindByID"))

	var order entities.Order
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, status, total_price, created_at, updated_at
         FROM orders
         WHERE id = $1 AND user_id = $2`,
		orderID, userID,
	).Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.TotalPrice,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "order not found or not owned", zap.String("orderID", orderID))
			return nil, entities.ErrOrderNotFound
		}
		log.Error(ctx, "error finding order", zap.Error(err))
		return nil, fmt.Errorf("error querying order: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, order_id, product_id, quantity, unit_price
         FROM order_items
         WHERE order_id = $1
         ORDER BY id`,
		orderID,
	)
	if err != nil {
		log.Error(ctx, "error querying order items", zap.Error(err))
		return nil, fmt.Errorf("error querying order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item entities.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
		)
		if err != nil {
			log.Error(ctx, "error scanning order item row", zap.Error(err))
			return nil, fmt.Errorf("error scanning order item row: %w", err)
		}
		order.Items = append(order.Items, item)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating order item rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating order item rows: %w", err)
	}

	return &order, nil
}

// ListByUserID возвращает заказы пользователя без строк, новые первыми.
func (r *OrderRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entities.Order, int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "order"), zap.String("method", "ListByUserID"))

	var totalCount int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`,
		userID,
	).Scan(&totalCount)
	if err != nil {
		log.Error(ctx, "error counting orders", zap.Error(err))
		return nil, 0, fmt.Errorf("error counting orders: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, status, total_price, created_at, updated_at
         FROM orders
         WHERE user_id = $1
         ORDER BY created_at DESC
         LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		log.Error(ctx, "error listing orders", zap.Error(err))
		return nil, 0, fmt.Errorf("error listing orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*entities.Order, 0)
	for rows.Next() {
		var order entities.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Status,
			&order.TotalPrice,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			log.Error(ctx, "error scanning order row", zap.Error(err))
			return nil, 0, fmt.Errorf("error scanning order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating order rows", zap.Error(err))
		return nil, 0, fmt.Errorf("error iterating order rows: %w", err)
	}

	return orders, totalCount, nil
}

// UpdateStatus переводит заказ в новый статус при неизменном текущем статусе.
// При отмене заказа списанные остатки возвращаются товарам в той же транзакции.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, userID string, from, next entities.OrderStatus, restock bool) error {
	log := logger.Log(ctx).With(
		zap.String("repository", "order"),
		zap.String("method", "UpdateStatus"),
		zap.String("orderID", orderID),
	)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error starting transaction", zap.Error(err))
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := tx.Exec(ctx,
		`UPDATE orders
         SET status = $1, updated_at = NOW()
         WHERE id = $2 AND user_id = $3 AND status = $4`,
		next, orderID, userID, from,
	)
	if err != nil {
		log.Error(ctx, "error updating order status", zap.Error(err))
		return fmt.Errorf("error updating order status: %w", err)
	}
	if result.RowsAffected() == 0 {
		log.Debug(ctx, "order status changed concurrently or order not owned")
		return entities.ErrInvalidTransition
	}

	if restock {
		_, err = tx.Exec(ctx,
			`UPDATE products p
             SET stock = p.stock + oi.quantity, updated_at = NOW()
             FROM order_items oi
             WHERE oi.order_id = $1 AND oi.product_id = p.id`,
			orderID,
		)
		if err != nil {
			log.Error(ctx, "error restocking cancelled order", zap.Error(err))
			return fmt.Errorf("error restocking cancelled order: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing status update", zap.Error(err))
		return fmt.Errorf("error committing status update: %w", err)
	}

	return nil
}
