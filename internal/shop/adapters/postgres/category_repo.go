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

// CategoryRepository реализует интерфейс repositories.CategoryRepository для работы с Postgres.
type CategoryRepository struct {
	pool PgxPoolInterface
}

// NewCategoryRepository создает новый экземпляр репозитория категорий.
func NewCategoryRepository(pool PgxPoolInterface) repositories.CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// Create сохраняет новую категорию.
func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "Create"))

	query := `
        INSERT INTO categories (name, slug, level, parent_id)
        VALUES ($1, $2, $3, NULLIF($4, '')::uuid)
        RETURNING id, name, slug, level, COALESCE(parent_id::text, '')
    `

	var created entities.Category
	err := r.pool.QueryRow(ctx, query,
		category.Name,
		category.Slug,
		category.Level,
		category.ParentID,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Slug,
		&created.Level,
		&created.ParentID,
	)

	if err != nil {
		log.Error(ctx, "error creating category", zap.Error(err))
		return nil, fmt.Errorf("error creating category: %w", err)
	}

	return &created, nil
}

// FindBySlug находит категорию по slug.
func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "FindBySlug"))

	query := `
        SELECT id, name, slug, level, COALESCE(parent_id::text, '')
        FROM categories
        WHERE slug = $1
    `

	var category entities.Category
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.Level,
		&category.ParentID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "category not found", zap.String("slug", slug))
			return nil, entities.ErrCategoryNotFound
		}
		log.Error(ctx, "error finding category", zap.Error(err))
		return nil, fmt.Errorf("error querying category: %w", err)
	}

	return &category, nil
}

// List возвращает все категории, упорядоченные по уровню дерева.
func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "List"))

	query := `
        SELECT id, name, slug, level, COALESCE(parent_id::text, '')
        FROM categories
        ORDER BY level, name
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing categories", zap.Error(err))
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*entities.Category, 0)
	for rows.Next() {
		var category entities.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Slug,
			&category.Level,
			&category.ParentID,
		)
		if err != nil {
			log.Error(ctx, "error scanning category row", zap.Error(err))
			return nil, fmt.Errorf("error scanning category row: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating category rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return categories, nil
}
