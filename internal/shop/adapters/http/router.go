// Package http содержит компоненты HTTP сервера магазина.
package http

import (
	"github.com/gofiber/fiber/v3"

	"goshop/internal/shop/adapters/http/auth"
	"goshop/internal/shop/adapters/http/catalog"
	"goshop/internal/shop/adapters/http/middleware"
	"goshop/internal/shop/adapters/http/orders"
	"goshop/internal/shop/adapters/http/users"
	"goshop/internal/shop/ports/api"
	"goshop/internal/shop/ports/services"
)

// UseCases объединяет основные порты приложения для маршрутизации.
type UseCases struct {
	Auth    api.AuthUseCase
	User    api.UserUseCase
	Catalog api.CatalogUseCase
	Order   api.OrderUseCase
}

// SetupRouter настраивает маршрутизацию HTTP сервера.
func SetupRouter(app *fiber.App, useCases UseCases, tokenService services.TokenService) {
	authHandler := auth.NewHandler(useCases.Auth)
	userHandler := users.NewHandler(useCases.User)
	catalogHandler := catalog.NewHandler(useCases.Catalog)
	orderHandler := orders.NewHandler(useCases.Order)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	requireAuth := middleware.NewAuthMiddleware(tokenService)

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshTokens)
	authRoutes.Post("/logout", authHandler.Logout)

	// Профиль пользователя.
	userRoutes := apiV1.Group("/user")
	userRoutes.Use(requireAuth)
	userRoutes.Get("/profile", userHandler.GetProfile)
	userRoutes.Patch("/profile", userHandler.UpdateProfile)
	userRoutes.Delete("/profile", userHandler.DeleteAccount)

	// Каталог: чтение публично, изменения требуют аутентификации.
	productRoutes := apiV1.Group("/products")
	productRoutes.Get("/", catalogHandler.ListProducts)
	productRoutes.Get("/:id", catalogHandler.GetProduct)
	productRoutes.Post("/", catalogHandler.CreateProduct, requireAuth)
	productRoutes.Put("/:id", catalogHandler.UpdateProduct, requireAuth)

	categoryRoutes := apiV1.Group("/categories")
	categoryRoutes.Get("/", catalogHandler.ListCategories)
	categoryRoutes.Post("/", catalogHandler.CreateCategory, requireAuth)

	promotionRoutes := apiV1.Group("/promotions")
	promotionRoutes.Post("/", catalogHandler.CreatePromotion, requireAuth)

	// Заказы всегда ограничены текущим пользователем.
	orderRoutes := apiV1.Group("/orders")
	orderRoutes.Use(requireAuth)
	orderRoutes.Post("/", orderHandler.CreateOrder)
	orderRoutes.Get("/", orderHandler.ListOrders)
	orderRoutes.Get("/:id", orderHandler.GetOrder)
	orderRoutes.Patch("/:id/status", orderHandler.UpdateStatus)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
