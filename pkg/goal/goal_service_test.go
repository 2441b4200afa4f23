package goal

import (
	"context"
	"testing"

	"github.com/domakasa/domakasa/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = user.WithUser(context.Background(), user.User{Id: 1})

var goalRepoStub = NewStubGoalRepo()

var service Service

func setup(t *testing.T) func() {
	service = NewGoalService(goalRepoStub)
	return func() {
		t.Log("Teardown after test")
		goalRepoStub.Cleanup()
	}
}

func TestServiceImpl_Create(t *testing.T) {
	t.Run("should create a goal with zero saved", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, Goal{Title: "Ремонт на покрива", Target: 50000})

		// then
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Zero(t, created.Saved)
		assert.Equal(t, 0, created.Progress())
	})

	t.Run("should reject saved exceeding the target", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Goal{Title: "Ремонт", Target: 50000, Saved: 50001})

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed the target")
		all, _ := service.GetAll(ctx)
		assert.Empty(t, all)
	})

	t.Run("should reject a non-positive target", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Goal{Title: "Ремонт", Target: 0})

		// then
		assert.Error(t, err)
	})

	t.Run("should reject a negative saved amount", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Goal{Title: "Ремонт", Target: 50000, Saved: -1})

		// then
		assert.Error(t, err)
	})

	t.Run("should reject a malformed deadline", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Goal{Title: "Ремонт", Target: 50000, Deadline: "2025/12/31"})

		// then
		assert.Error(t, err)
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(context.Background(), Goal{Title: "Ремонт", Target: 50000})

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get current user")
	})
}

func TestServiceImpl_Update(t *testing.T) {
	t.Run("should update the saved amount within the target", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, Goal{Title: "Ремонт", Target: 50000})
		require.NoError(t, err)

		// when
		ok, err := service.Update(ctx, Goal{ID: created.ID, Title: "Ремонт", Target: 50000, Saved: 15000})

		// then
		require.NoError(t, err)
		assert.True(t, ok)
		all, _ := service.GetAll(ctx)
		require.Len(t, all, 1)
		assert.Equal(t, int64(15000), all[0].Saved)
		assert.Equal(t, 30, all[0].Progress())
	})

	t.Run("should reject an update pushing saved over the target", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, Goal{Title: "Ремонт", Target: 50000, Saved: 15000})
		require.NoError(t, err)

		// when
		_, err = service.Update(ctx, Goal{ID: created.ID, Title: "Ремонт", Target: 50000, Saved: 60000})

		// then
		assert.Error(t, err)
		all, _ := service.GetAll(ctx)
		require.Len(t, all, 1)
		assert.Equal(t, int64(15000), all[0].Saved)
	})

	t.Run("should report a missing goal", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		ok, err := service.Update(ctx, Goal{ID: 9999, Title: "Ремонт", Target: 50000})

		// then
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestServiceImpl_Delete(t *testing.T) {
	t.Run("should delete a goal exactly once", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, Goal{Title: "Ремонт", Target: 50000})
		require.NoError(t, err)

		// when
		first, err := service.Delete(ctx, created.ID)
		require.NoError(t, err)
		second, err := service.Delete(ctx, created.ID)
		require.NoError(t, err)

		// then
		assert.True(t, first)
		assert.False(t, second)
	})
}

func TestGoal_Progress(t *testing.T) {
	t.Run("should clamp progress at 100 and guard a zero target", func(t *testing.T) {
		assert.Equal(t, 0, Goal{Target: 0, Saved: 100}.Progress())
		assert.Equal(t, 52, Goal{Target: 15500, Saved: 8000}.Progress())
		assert.Equal(t, 100, Goal{Target: 100, Saved: 100}.Progress())
	})
}
