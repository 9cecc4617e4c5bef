package orderrepo_test

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"goshop/internal/shop/adapters/postgres"
	"goshop/internal/shop/domain/entities"
	"goshop/pkg/logger"
)

func TestOrderRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	orderID := "order-uuid"
	userID := "user-uuid"

	t.Run("Успешный перевод статуса без возврата остатков", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders").
			WithArgs(entities.OrderStatusProcessing, orderID, userID, entities.OrderStatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		repo := postgres.NewOrderRepository(mock)
		err = repo.UpdateStatus(ctx, orderID, userID, entities.OrderStatusPending, entities.OrderStatusProcessing, false)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Отмена заказа возвращает остатки в той же транзакции", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders").
			WithArgs(entities.OrderStatusCancelled, orderID, userID, entities.OrderStatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("UPDATE products p").
			WithArgs(orderID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		repo := postgres.NewOrderRepository(mock)
		err = repo.UpdateStatus(ctx, orderID, userID, entities.OrderStatusPending, entities.OrderStatusCancelled, true)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Конкурентная смена статуса откатывает транзакцию", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders").
			WithArgs(entities.OrderStatusProcessing, orderID, userID, entities.OrderStatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		repo := postgres.NewOrderRepository(mock)
		err = repo.UpdateStatus(ctx, orderID, userID, entities.OrderStatusPending, entities.OrderStatusProcessing, false)

		require.ErrorIs(t, err, entities.ErrInvalidTransition)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
