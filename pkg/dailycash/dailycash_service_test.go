package dailycash

import (
	"context"
	"testing"

	"github.com/domakasa/domakasa/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = user.WithUser(context.Background(), user.User{Id: 1})

var dailyCashRepoStub = NewStubDailyCashRepo()

var service Service

func setup(t *testing.T) func() {
	service = NewDailyCashService(dailyCashRepoStub)
	return func() {
		t.Log("Teardown after test")
		dailyCashRepoStub.Cleanup()
	}
}

func TestServiceImpl_Record(t *testing.T) {
	t.Run("should record a snapshot for the day", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.Record(ctx, Entry{Date: "2025-08-15", Amount: 12050, Notes: "каса след такси"})

		// then
		require.NoError(t, err)
		all, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, int64(12050), all[0].Amount)
	})

	t.Run("should replace the snapshot when the day is recorded again", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.Record(ctx, Entry{Date: "2025-08-15", Amount: 12050}))

		// when
		err := service.Record(ctx, Entry{Date: "2025-08-15", Amount: 9900, Notes: "коригирана"})

		// then
		require.NoError(t, err)
		all, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, int64(9900), all[0].Amount)
		assert.Equal(t, "коригирана", all[0].Notes)
	})

	t.Run("should allow a zero amount", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.Record(ctx, Entry{Date: "2025-08-15", Amount: 0})

		// then
		assert.NoError(t, err)
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.Record(ctx, Entry{Date: "2025-08-15", Amount: -100})

		// then
		assert.Error(t, err)
	})

	t.Run("should reject a malformed date", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.Record(ctx, Entry{Date: "15.08.2025", Amount: 100})

		// then
		assert.Error(t, err)
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.Record(context.Background(), Entry{Date: "2025-08-15", Amount: 100})

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get current user")
	})
}

func TestServiceImpl_GetForRange(t *testing.T) {
	t.Run("should return only days inside the inclusive range newest first", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		for _, date := range []string{"2025-08-01", "2025-08-10", "2025-08-20"} {
			require.NoError(t, service.Record(ctx, Entry{Date: date, Amount: 100}))
		}

		// when
		entries, err := service.GetForRange(ctx, "2025-08-01", "2025-08-10")

		// then
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "2025-08-10", entries[0].Date)
		assert.Equal(t, "2025-08-01", entries[1].Date)
	})

	t.Run("should reject malformed range bounds", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.GetForRange(ctx, "2025-08", "2025-08-10")

		// then
		assert.Error(t, err)
	})
}

func TestServiceImpl_Delete(t *testing.T) {
	t.Run("should delete an entry exactly once", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.Record(ctx, Entry{Date: "2025-08-15", Amount: 100}))
		all, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)

		// when
		first, err := service.Delete(ctx, all[0].ID)
		require.NoError(t, err)
		second, err := service.Delete(ctx, all[0].ID)
		require.NoError(t, err)

		// then
		assert.True(t, first)
		assert.False(t, second)
	})
}
