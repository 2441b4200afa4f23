package apartment

import (
	"context"
	"testing"

	"github.com/domakasa/domakasa/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepoImpl(t *testing.T) {
	t.Run("should overwrite the amount on a repeated period instead of duplicating", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		userId := test_utils.InsertTestUser(t, db)
		apartments := NewApartmentRepo(db)
		payments := NewPaymentRepo(db)
		background := context.Background()

		apartmentId, err := apartments.Store(background, userId, Apartment{Name: "Ап. 3", MonthlyFee: 3500, Active: true})
		require.NoError(t, err)

		// when
		require.NoError(t, payments.Upsert(background, Payment{ApartmentID: apartmentId, Amount: 3500, Period: "2025-08"}))
		require.NoError(t, payments.Upsert(background, Payment{ApartmentID: apartmentId, Amount: 4000, Period: "2025-08"}))

		// then
		stored, err := payments.GetForPeriod(background, userId, "2025-08")
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, int64(4000), stored[0].Amount)
	})

	t.Run("should keep payments for different periods apart", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		userId := test_utils.InsertTestUser(t, db)
		apartments := NewApartmentRepo(db)
		payments := NewPaymentRepo(db)
		background := context.Background()

		apartmentId, err := apartments.Store(background, userId, Apartment{Name: "Ап. 3", MonthlyFee: 3500, Active: true})
		require.NoError(t, err)

		// when
		require.NoError(t, payments.Upsert(background, Payment{ApartmentID: apartmentId, Amount: 3500, Period: "2025-07"}))
		require.NoError(t, payments.Upsert(background, Payment{ApartmentID: apartmentId, Amount: 3500, Period: "2025-08"}))

		// then
		july, err := payments.GetForPeriod(background, userId, "2025-07")
		require.NoError(t, err)
		assert.Len(t, july, 1)
		august, err := payments.GetForPeriod(background, userId, "2025-08")
		require.NoError(t, err)
		assert.Len(t, august, 1)
	})

	t.Run("should delete by the natural key exactly once", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		userId := test_utils.InsertTestUser(t, db)
		apartments := NewApartmentRepo(db)
		payments := NewPaymentRepo(db)
		background := context.Background()

		apartmentId, err := apartments.Store(background, userId, Apartment{Name: "Ап. 3", MonthlyFee: 3500, Active: true})
		require.NoError(t, err)
		require.NoError(t, payments.Upsert(background, Payment{ApartmentID: apartmentId, Amount: 3500, Period: "2025-08"}))

		// when
		first, err := payments.Delete(background, apartmentId, "2025-08")
		require.NoError(t, err)
		second, err := payments.Delete(background, apartmentId, "2025-08")
		require.NoError(t, err)

		// then
		assert.True(t, first)
		assert.False(t, second)
	})

	t.Run("should drop payments together with their apartment", func(t *testing.T) {
		db := test_utils.SetupTestDB(t)
		userId := test_utils.InsertTestUser(t, db)
		apartments := NewApartmentRepo(db)
		payments := NewPaymentRepo(db)
		background := context.Background()

		apartmentId, err := apartments.Store(background, userId, Apartment{Name: "Ап. 3", MonthlyFee: 3500, Active: true})
		require.NoError(t, err)
		require.NoError(t, payments.Upsert(background, Payment{ApartmentID: apartmentId, Amount: 3500, Period: "2025-08"}))

		// when
		deleted, err := apartments.Delete(background, userId, apartmentId)

		// then
		require.NoError(t, err)
		assert.True(t, deleted)
		stored, err := payments.GetForPeriod(background, userId, "2025-08")
		require.NoError(t, err)
		assert.Empty(t, stored)
	})
}
