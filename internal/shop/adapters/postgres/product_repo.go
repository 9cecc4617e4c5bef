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

// ProductRepository реализует интерфейс repositories.ProductRepository для работы с Postgres.
type ProductRepository struct {
	pool PgxPoolInterface
}

// NewProductRepository создает новый экземпляр репозитория товаров.
func NewProductRepository(pool PgxPoolInterface) repositories.ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, name, price, stock, COALESCE(category_id::text, ''), created_at, updated_at`

// scanProduct читает строку товара.
func scanProduct(row pgx.Row) (*entities.Product, error) {
	var product entities.Product
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Stock,
		&product.CategoryID,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Create сохраняет новый товар.
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "Create"))

	query := `
        INSERT INTO products (name, price, stock, category_id)
        VALUES ($1, $2, $3, NULLIF($4, '')::uuid)
        RETURNING ` + productColumns

	created, err := scanProduct(r.pool.QueryRow(ctx, query,
		product.Name,
		product.Price,
		product.Stock,
		product.CategoryID,
	))
	if err != nil {
		log.Error(ctx, "error creating product", zap.Error(err))
		return nil, fmt.Errorf("error creating product: %w", err)
	}

	return created, nil
}

// FindByID находит товар по ID.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "FindByID"))

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "product not found", zap.String("id", id))
			return nil, entities.ErrProductNotFound
		}
		log.Error(ctx, "error finding product", zap.Error(err))
		return nil, fmt.Errorf("error querying product: %w", err)
	}

	return product, nil
}

// FindByIDs возвращает товары по набору идентификаторов.
// Отсутствующие идентификаторы не являются ошибкой - их отсутствие
// в результате проверяет вызывающая сторона.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []string) ([]*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "FindByIDs"))

	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		log.Error(ctx, "error querying products by ids", zap.Error(err))
		return nil, fmt.Errorf("error querying products by ids: %w", err)
	}
	defer rows.Close()

	products := make([]*entities.Product, 0, len(ids))
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Error(ctx, "error scanning product row", zap.Error(err))
			return nil, fmt.Errorf("error scanning product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating product rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return products, nil
}

// List возвращает страницу товаров и их общее количество.
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*entities.Product, int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "List"))

	var totalCount int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&totalCount); err != nil {
		log.Error(ctx, "error counting products", zap.Error(err))
		return nil, 0, fmt.Errorf("error counting products: %w", err)
	}

	query := `SELECT ` + productColumns + `
        FROM products
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		log.Error(ctx, "error listing products", zap.Error(err))
		return nil, 0, fmt.Errorf("error listing products: %w", err)
	}
	defer rows.Close()

	products := make([]*entities.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Error(ctx, "error scanning product row", zap.Error(err))
			return nil, 0, fmt.Errorf("error scanning product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating product rows", zap.Error(err))
		return nil, 0, fmt.Errorf("error iterating product rows: %w", err)
	}

	return products, totalCount, nil
}

// Update обновляет товар.
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "Update"))

	query := `
        UPDATE products
        SET name = $2, price = $3, stock = $4, category_id = NULLIF($5, '')::uuid, updated_at = $6
        WHERE id = $1
        RETURNING ` + productColumns

	updated, err := scanProduct(r.pool.QueryRow(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.Stock,
		product.CategoryID,
		time.Now().UTC(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "product not found for update", zap.String("id", product.ID))
			return nil, entities.ErrProductNotFound
		}
		log.Error(ctx, "error updating product", zap.Error(err))
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	return updated, nil
}

// Delete удаляет товар.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting product", zap.Error(err))
		return fmt.Errorf("error deleting product: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "product not found for deletion", zap.String("id", id))
		return entities.ErrProductNotFound
	}

	return nil
}
