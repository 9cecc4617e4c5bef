package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"goshop/internal/shop/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo     repositories.UserRepository
	tokenRepo    repositories.TokenRepository
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	promoRepo    repositories.PromotionRepository
	orderRepo    repositories.OrderRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:     NewUserRepository(pool),
		tokenRepo:    NewTokenRepository(pool),
		productRepo:  NewProductRepository(pool),
		categoryRepo: NewCategoryRepository(pool),
		promoRepo:    NewPromotionRepository(pool),
		orderRepo:    NewOrderRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// TokenRepository возвращает репозиторий токенов.
func (f *RepositoryFactory) TokenRepository() repositories.TokenRepository {
	return f.tokenRepo
}

// ProductRepository возвращает репозиторий товаров.
func (f *RepositoryFactory) ProductRepository() repositories.ProductRepository {
	return f.productRepo
}

// CategoryRepository возвращает репозиторий категорий.
func (f *RepositoryFactory) CategoryRepository() repositories.CategoryRepository {
	return f.categoryRepo
}

// PromotionRepository возвращает репозиторий акций.
func (f *RepositoryFactory) PromotionRepository() repositories.PromotionRepository {
	return f.promoRepo
}

// OrderRepository возвращает репозиторий заказов.
func (f *RepositoryFactory) OrderRepository() repositories.OrderRepository {
	return f.orderRepo
}
