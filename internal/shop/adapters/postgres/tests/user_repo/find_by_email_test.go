package userrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goshop/internal/shop/adapters/postgres"
	"goshop/internal/shop/domain/entities"
	"goshop/pkg/logger"
)

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	expectedUser := entities.User{
		ID:           "user-uuid",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	t.Run("Успешный поиск пользователя по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, password_hash, created_at, updated_at").
			WithArgs(expectedUser.Email).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
					AddRow(expectedUser.ID, expectedUser.Email, expectedUser.PasswordHash, expectedUser.CreatedAt, expectedUser.UpdatedAt),
			)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByEmail(ctx, expectedUser.Email)

		require.NoError(t, err)
		assert.Equal(t, expectedUser.ID, user.ID)
		assert.Equal(t, expectedUser.Email, user.Email)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, password_hash, created_at, updated_at").
			WithArgs("missing@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}))

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByEmail(ctx, "missing@example.com")

		assert.Nil(t, user)
		require.ErrorIs(t, err, entities.ErrUserNotFound)

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})

	t.Run("Ошибка БД при поиске", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection error")
		mock.ExpectQuery("SELECT id, email, password_hash, created_at, updated_at").
			WithArgs(expectedUser.Email).
			WillReturnError(dbError)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByEmail(ctx, expectedUser.Email)

		assert.Nil(t, user)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error querying user by email")

		err = mock.ExpectationsWereMet()
		require.NoError(t, err)
	})
}
