package dailycash

import (
	"context"
	"testing"

	"github.com/domakasa/domakasa/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoImpl(t *testing.T) {
	t.Run("should keep one row per user and day", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		userId := test_utils.InsertTestUser(t, db)
		repo := NewDailyCashRepo(db)
		background := context.Background()

		// when
		require.NoError(t, repo.Upsert(background, userId, Entry{Date: "2025-08-15", Amount: 12050}))
		require.NoError(t, repo.Upsert(background, userId, Entry{Date: "2025-08-15", Amount: 9900, Notes: "коригирана"}))

		// then
		all, err := repo.GetAll(background, userId)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, int64(9900), all[0].Amount)
		assert.Equal(t, "коригирана", all[0].Notes)
	})

	t.Run("should order entries newest first", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		userId := test_utils.InsertTestUser(t, db)
		repo := NewDailyCashRepo(db)
		background := context.Background()

		for _, date := range []string{"2025-08-01", "2025-08-20", "2025-08-10"} {
			require.NoError(t, repo.Upsert(background, userId, Entry{Date: date, Amount: 100}))
		}

		// when
		all, err := repo.GetAll(background, userId)

		// then
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "2025-08-20", all[0].Date)
		assert.Equal(t, "2025-08-01", all[2].Date)
	})
}
