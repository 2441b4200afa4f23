package template

import (
	"context"
	"strings"
	"testing"

	"github.com/domakasa/domakasa/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = user.WithUser(context.Background(), user.User{Id: 1})

var templateRepoStub = NewStubTemplateRepo()

var service Service

func setup(t *testing.T) func() {
	service = NewTemplateService(templateRepoStub)
	return func() {
		t.Log("Teardown after test")
		templateRepoStub.Cleanup()
	}
}

func TestServiceImpl_Create(t *testing.T) {
	t.Run("should create a template with only a name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, Template{Name: "Ток"})

		// then
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Ток", created.Name)
		assert.Zero(t, created.Amount)
	})

	t.Run("should keep optional amount and category", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, Template{Name: "Вода", Amount: 2350, CategoryID: 7})

		// then
		require.NoError(t, err)
		assert.Equal(t, int64(2350), created.Amount)
		assert.Equal(t, 7, created.CategoryID)
	})

	t.Run("should reject a blank name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Template{Name: "   "})

		// then
		assert.Error(t, err)
		all, _ := service.GetAll(ctx)
		assert.Empty(t, all)
	})

	t.Run("should reject a name over 200 characters", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Template{Name: strings.Repeat("x", 201)})

		// then
		assert.Error(t, err)
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Template{Name: "Наем", Amount: -100})

		// then
		assert.Error(t, err)
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(context.Background(), Template{Name: "Ток"})

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get current user")
	})
}

func TestServiceImpl_Update(t *testing.T) {
	t.Run("should update an existing template", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, Template{Name: "Ток"})
		require.NoError(t, err)

		// when
		ok, err := service.Update(ctx, Template{ID: created.ID, Name: "Ток и вода", Amount: 4500})

		// then
		require.NoError(t, err)
		assert.True(t, ok)
		all, _ := service.GetAll(ctx)
		require.Len(t, all, 1)
		assert.Equal(t, "Ток и вода", all[0].Name)
		assert.Equal(t, int64(4500), all[0].Amount)
	})

	t.Run("should report a missing template", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		ok, err := service.Update(ctx, Template{ID: 9999, Name: "Ток"})

		// then
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestServiceImpl_Delete(t *testing.T) {
	t.Run("should delete a template exactly once", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, Template{Name: "Ток"})
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
