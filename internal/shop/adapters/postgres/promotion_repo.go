package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/ports/repositories"
	"goshop/pkg/logger"
)

// PromotionRepository реализует интерфейс repositories.PromotionRepository для работы с Postgres.
type PromotionRepository struct {
	pool PgxPoolInterface
}

// NewPromotionRepository создает новый экземпляр репозитория акций.
func NewPromotionRepository(pool PgxPoolInterface) repositories.PromotionRepository {
	return &PromotionRepository{pool: pool}
}

// Create сохраняет акцию и привязывает ее к товарам в одной транзакции.
func (r *PromotionRepository) Create(ctx context.Context, promo *entities.PromotionEvent, productIDs []string) (*entities.PromotionEvent, error) {
	log := logger.Log(ctx).With(zap.String("repository", "promotion"), zap.String("method", "Create"))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error starting transaction", zap.Error(err))
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
        INSERT INTO promotion_events (name, price_reduction, starts_at, ends_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, name, price_reduction, starts_at, ends_at
    `

	var created entities.PromotionEvent
	err = tx.QueryRow(ctx, query,
		promo.Name,
		promo.PriceReduction,
		promo.StartsAt,
		promo.EndsAt,
	).Scan(
		&created.ID,
		&created.Name,
		&created.PriceReduction,
		&created.StartsAt,
		&created.EndsAt,
	)
	if err != nil {
		log.Error(ctx, "error creating promotion", zap.Error(err))
		return nil, fmt.Errorf("error creating promotion: %w", err)
	}

	for _, productID := range productIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO product_promotions (product_id, promotion_id) VALUES ($1, $2)`,
			productID, created.ID,
		)
		if err != nil {
			log.Error(ctx, "error linking promotion to product", zap.Error(err), zap.String("productID", productID))
			return nil, fmt.Errorf("error linking promotion to product: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing promotion", zap.Error(err))
		return nil, fmt.Errorf("error committing promotion: %w", err)
	}

	return &created, nil
}

// FindActiveForProduct возвращает действующую акцию с наибольшей скидкой
// либо nil, если активных акций нет.
func (r *PromotionRepository) FindActiveForProduct(ctx context.Context, productID string, now time.Time) (*entities.PromotionEvent, error) {
	log := logger.Log(ctx).With(zap.String("repository", "promotion"), zap.String("method", "FindActiveForProduct"))

	query := `
        SELECT p.id, p.name, p.price_reduction, p.starts_at, p.ends_at
        FROM promotion_events p
        JOIN product_promotions pp ON pp.promotion_id = p.id
        WHERE pp.product_id = $1 AND p.starts_at <= $2 AND p.ends_at > $2
        ORDER BY p.price_reduction DESC
        LIMIT 1
    `

	var promo entities.PromotionEvent
	err := r.pool.QueryRow(ctx, query, productID, now).Scan(
		&promo.ID,
		&promo.Name,
		&promo.PriceReduction,
		&promo.StartsAt,
		&promo.EndsAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		log.Error(ctx, "error finding active promotion", zap.Error(err))
		return nil, fmt.Errorf("error querying active promotion: %w", err)
	}

	return &promo, nil
}

// FindActiveForProducts возвращает действующие акции для набора товаров.
// Для товара с несколькими акциями выигрывает наибольшая скидка.
func (r *PromotionRepository) FindActiveForProducts(ctx context.Context, productIDs []string, now time.Time) (map[string]*entities.PromotionEvent, error) {
	log := logger.Log(ctx).With(zap.String("repository", "promotion"), zap.String("method", "FindActiveForProducts"))

	if len(productIDs) == 0 {
		return map[string]*entities.PromotionEvent{}, nil
	}

	query := `
        SELECT DISTINCT ON (pp.product_id)
            pp.product_id, p.id, p.name, p.price_reduction, p.starts_at, p.ends_at
        FROM promotion_events p
        JOIN product_promotions pp ON pp.promotion_id = p.id
        WHERE pp.product_id = ANY($1) AND p.starts_at <= $2 AND p.ends_at > $2
        ORDER BY pp.product_id, p.price_reduction DESC
    `

	rows, err := r.pool.Query(ctx, query, productIDs, now)
	if err != nil {
		log.Error(ctx, "error querying active promotions", zap.Error(err))
		return nil, fmt.Errorf("error querying active promotions: %w", err)
	}
	defer rows.Close()

	promos := make(map[string]*entities.PromotionEvent)
	for rows.Next() {
		var productID string
		var promo entities.PromotionEvent
		err := rows.Scan(
			&productID,
			&promo.ID,
			&promo.Name,
			&promo.PriceReduction,
			&promo.StartsAt,
			&promo.EndsAt,
		)
		if err != nil {
			log.Error(ctx, "error scanning promotion row", zap.Error(err))
			return nil, fmt.Errorf("error scanning promotion row: %w", err)
		}
		promos[productID] = &promo
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating promotion rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating promotion rows: %w", err)
	}

	return promos, nil
}
