package orderrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goshop/internal/shop/adapters/postgres"
	"goshop/internal/shop/domain/entities"
	"goshop/pkg/logger"
)

func TestOrderRepository_Create(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	unitPrice := decimal.RequireFromString("9.99")
	totalPrice := decimal.RequireFromString("19.98")

	inputOrder := func() *entities.Order {
		return &entities.Order{
			UserID:     "user-uuid",
			Status:     entities.OrderStatusPending,
			TotalPrice: totalPrice,
			Items: []entities.OrderItem{
				{ProductID: "product-uuid", Quantity: 2, UnitPrice: unitPrice},
			},
		}
	}

	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное создание заказа со списанием остатков", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE products SET stock = stock -").
			WithArgs(2, "product-uuid").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs("user-uuid", entities.OrderStatusPending, totalPrice).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
					AddRow("order-uuid", now, now),
			)
		mock.ExpectQuery("INSERT INTO order_items").
			WithArgs("order-uuid", "product-uuid", 2, unitPrice).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("item-uuid"))
		mock.ExpectCommit()

		repo := postgres.NewOrderRepository(mock)
		created, err := repo.Create(ctx, inputOrder())

		require.NoError(t, err)
		assert.Equal(t, "order-uuid", created.ID)
		require.Len(t, created.Items, 1)
		assert.Equal(t, "item-uuid", created.Items[0].ID)
		assert.Equal(t, "order-uuid", created.Items[0].OrderID)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Нехватка остатка откатывает транзакцию", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE products SET stock = stock -").
			WithArgs(2, "product-uuid").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		repo := postgres.NewOrderRepository(mock)
		created, err := repo.Create(ctx, inputOrder())

		assert.Nil(t, created)
		require.ErrorIs(t, err, entities.ErrInsufficientStock)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Ошибка вставки заказа откатывает списание", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection error")

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE products SET stock = stock -").
			WithArgs(2, "product-uuid").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs("user-uuid", entities.OrderStatusPending, totalPrice).
			WillReturnError(dbError)
		mock.ExpectRollback()

		repo := postgres.NewOrderRepository(mock)
		created, err := repo.Create(ctx, inputOrder())

		assert.Nil(t, created)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error inserting order")

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}
