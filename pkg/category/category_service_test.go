package category

import (
	"context"
	"testing"

	"github.com/domakasa/domakasa/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = user.WithUser(context.Background(), user.User{Id: 1})

var categoryRepoStub = NewStubCategoryRepo()

var service Service

func setup(t *testing.T) func() {
	service = NewCategoryService(categoryRepoStub)
	return func() {
		t.Log("Teardown after test")
		categoryRepoStub.Cleanup()
	}
}

func TestServiceImpl_Create(t *testing.T) {
	t.Run("should create a category successfully", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, Category{Name: "Комунални"})

		// then
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Комунални", created.Name)
	})

	t.Run("should reject a duplicate name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, Category{Name: "Ремонти"})
		require.NoError(t, err)

		// when
		_, err = service.Create(ctx, Category{Name: "Ремонти"})

		// then
		assert.ErrorIs(t, err, ErrNameTaken)
	})

	t.Run("should reject a blank name before any write", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Category{Name: "   "})

		// then
		assert.Error(t, err)
		all, _ := service.GetAll(ctx)
		assert.Empty(t, all)
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(context.Background(), Category{Name: "X"})

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get current user")
	})
}

func TestServiceImpl_Ensure(t *testing.T) {
	t.Run("should create the category on first use and reuse it afterwards", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		first, err := service.Ensure(ctx, "QA")
		require.NoError(t, err)
		second, err := service.Ensure(ctx, "QA")
		require.NoError(t, err)

		// then
		assert.Equal(t, first.ID, second.ID)
		all, err := service.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
