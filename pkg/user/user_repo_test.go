package user

import (
	"context"
	"testing"

	"github.com/domakasa/domakasa/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoImpl(t *testing.T) {
	t.Run("should create and fetch a user by uid and email", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewUserRepo(db)
		ctx := context.Background()

		// given
		u := User{Uid: "uid-1", Email: "ivan@example.com", DisplayName: "Ivan", DisplayCurrency: CurrencyEUR}

		// when
		id, err := repo.CreateUser(ctx, u, "hash-1")

		// then
		require.NoError(t, err)
		require.NotZero(t, id)

		byUid, err := repo.GetUserByUid(ctx, "uid-1")
		require.NoError(t, err)
		assert.Equal(t, id, byUid.Id)
		assert.Equal(t, CurrencyEUR, byUid.DisplayCurrency)

		byEmail, hash, err := repo.GetUserByEmail(ctx, "ivan@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, byEmail.Id)
		assert.Equal(t, "hash-1", hash)
	})

	t.Run("should return ErrUserNotFound for unknown users", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewUserRepo(db)
		ctx := context.Background()

		_, err := repo.GetUserByUid(ctx, "missing")
		assert.ErrorIs(t, err, ErrUserNotFound)

		_, _, err = repo.GetUserByEmail(ctx, "missing@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("should update the display currency", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		repo := NewUserRepo(db)
		ctx := context.Background()

		// given
		id, err := repo.CreateUser(ctx, User{Uid: "uid-2", Email: "a@b.c", DisplayName: "A", DisplayCurrency: CurrencyEUR}, "h")
		require.NoError(t, err)

		// when
		updated, err := repo.UpdateDisplayCurrency(ctx, id, CurrencyBGN)

		// then
		require.NoError(t, err)
		assert.True(t, updated)
		stored, err := repo.GetUserByUid(ctx, "uid-2")
		require.NoError(t, err)
		assert.Equal(t, CurrencyBGN, stored.DisplayCurrency)
	})
}
