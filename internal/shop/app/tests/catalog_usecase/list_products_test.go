package catalogusecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goshop/internal/shop/app"
	"goshop/internal/shop/domain/entities"
)

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	widget := &entities.Product{
		ID:    "widget-id",
		Name:  "Widget",
		Price: decimal.RequireFromString("10.00"),
		Stock: 5,
	}
	gadget := &entities.Product{
		ID:    "gadget-id",
		Name:  "Gadget",
		Price: decimal.RequireFromString("25.00"),
		Stock: 2,
	}

	t.Run("Действующая акция снижает эффективную цену в выдаче", func(t *testing.T) {
		productRepo := new(mockProductRepository)
		categoryRepo := new(mockCategoryRepository)
		promoRepo := new(mockPromotionRepository)

		promo := &entities.PromotionEvent{
			ID:             "promo-id",
			PriceReduction: decimal.RequireFromString("3.00"),
			StartsAt:       time.Now().Add(-time.Hour),
			EndsAt:         time.Now().Add(time.Hour),
		}

		productRepo.On("List", mock.Anything, 20, 0).
			Return([]*entities.Product{widget, gadget}, 2, nil).Once()
		promoRepo.On("FindActiveForProducts", mock.Anything, []string{widget.ID, gadget.ID}, mock.Anything).
			Return(map[string]*entities.PromotionEvent{widget.ID: promo}, nil).Once()

		useCase := app.NewCatalogUseCase(productRepo, categoryRepo, promoRepo)

		views, total, err := useCase.ListProducts(ctx, 20, 0)

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, views, 2)

		assert.True(t, views[0].EffectivePrice.Equal(decimal.RequireFromString("7.00")))
		assert.Equal(t, promo, views[0].Promotion)

		assert.True(t, views[1].EffectivePrice.Equal(gadget.Price))
		assert.Nil(t, views[1].Promotion)
	})

	t.Run("Неположительный лимит заменяется значением по умолчанию", func(t *testing.T) {
		productRepo := new(mockProductRepository)
		categoryRepo := new(mockCategoryRepository)
		promoRepo := new(mockPromotionRepository)

		productRepo.On("List", mock.Anything, 20, 0).
			Return([]*entities.Product{}, 0, nil).Once()
		promoRepo.On("FindActiveForProducts", mock.Anything, []string{}, mock.Anything).
			Return(map[string]*entities.PromotionEvent{}, nil).Once()

		useCase := app.NewCatalogUseCase(productRepo, categoryRepo, promoRepo)

		_, _, err := useCase.ListProducts(ctx, -1, -5)

		require.NoError(t, err)
		productRepo.AssertExpectations(t)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()

	widget := &entities.Product{
		ID:    "widget-id",
		Name:  "Widget",
		Price: decimal.RequireFromString("10.00"),
		Stock: 5,
	}

	t.Run("Товар без акции отдается по базовой цене", func(t *testing.T) {
		productRepo := new(mockProductRepository)
		categoryRepo := new(mockCategoryRepository)
		promoRepo := new(mockPromotionRepository)

		productRepo.On("FindByID", mock.Anything, widget.ID).Return(widget, nil).Once()
		promoRepo.On("FindActiveForProduct", mock.Anything, widget.ID, mock.Anything).
			Return(nil, nil).Once()

		useCase := app.NewCatalogUseCase(productRepo, categoryRepo, promoRepo)

		view, err := useCase.GetProduct(ctx, widget.ID)

		require.NoError(t, err)
		assert.True(t, view.EffectivePrice.Equal(widget.Price))
		assert.Nil(t, view.Promotion)
	})

	t.Run("Несуществующий товар дает ErrProductNotFound", func(t *testing.T) {
		productRepo := new(mockProductRepository)
		categoryRepo := new(mockCategoryRepository)
		promoRepo := new(mockPromotionRepository)

		productRepo.On("FindByID", mock.Anything, "ghost-id").
			Return(nil, entities.ErrProductNotFound).Once()

		useCase := app.NewCatalogUseCase(productRepo, categoryRepo, promoRepo)

		view, err := useCase.GetProduct(ctx, "ghost-id")

		assert.Nil(t, view)
		require.ErrorIs(t, err, entities.ErrProductNotFound)
	})
}
