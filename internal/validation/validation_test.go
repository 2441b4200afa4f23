package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	t.Run("should accept a positive amount", func(t *testing.T) {
		assert.NoError(t, Amount("amount", 999))
	})

	t.Run("should reject zero and negative amounts", func(t *testing.T) {
		assert.Error(t, Amount("amount", 0))
		assert.Error(t, Amount("amount", -100))
	})

	t.Run("should reject amounts above the magnitude cap", func(t *testing.T) {
		assert.NoError(t, Amount("amount", MaxAmount))
		assert.Error(t, Amount("amount", MaxAmount+1))
	})
}

func TestText(t *testing.T) {
	t.Run("should require non-blank value when required", func(t *testing.T) {
		assert.Error(t, Text("title", "   ", true, 200))
		assert.NoError(t, Text("title", "Elevator fund", true, 200))
	})

	t.Run("should allow blank optional values", func(t *testing.T) {
		assert.NoError(t, Text("description", "", false, 500))
	})

	t.Run("should enforce the length bound on the trimmed value", func(t *testing.T) {
		long := make([]rune, 501)
		for i := range long {
			long[i] = 'x'
		}
		assert.Error(t, Text("description", string(long), false, 500))
	})
}

func TestDate(t *testing.T) {
	assert.NoError(t, Date("date", "2025-08-31"))
	assert.Error(t, Date("date", "31/08/2025"))
	assert.Error(t, Date("date", ""))
}

func TestFirst(t *testing.T) {
	first := Text("title", "", true, 200)
	second := Amount("amount", -1)

	err := First(nil, first, second)

	assert.Equal(t, first, err)
}
