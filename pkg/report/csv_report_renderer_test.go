package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvReportRendererImpl_RenderMonthlyReport(t *testing.T) {
	t.Run("should render the category breakdown with a total row", func(t *testing.T) {
		// given
		report := MonthlyReport{
			Period: "2025-08",
			Categories: []CategoryTotal{
				{Label: "Ток", Total: 30000, Count: 2},
				{Label: "Без категория", Total: 999, Count: 1},
			},
			Total: 30999,
		}

		// when
		csv, err := NewCsvReportRenderer().RenderMonthlyReport(report)

		// then
		require.NoError(t, err)
		expected := "Месец,2025-08\n" +
			"Категория,Брой,Сума\n" +
			"Ток,2,300.00\n" +
			"Без категория,1,9.99\n" +
			"Общо,3,309.99\n"
		assert.Equal(t, expected, csv)
	})

	t.Run("should render an empty month as just the total row", func(t *testing.T) {
		// when
		csv, err := NewCsvReportRenderer().RenderMonthlyReport(MonthlyReport{Period: "2025-08"})

		// then
		require.NoError(t, err)
		expected := "Месец,2025-08\n" +
			"Категория,Брой,Сума\n" +
			"Общо,0,0.00\n"
		assert.Equal(t, expected, csv)
	})
}
