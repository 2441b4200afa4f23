package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/domakasa/domakasa/internal/money"
	log "github.com/sirupsen/logrus"
)

// MonthlyReport is one month of spending broken down by category.
type MonthlyReport struct {
	Period     string
	Categories []CategoryTotal
	Total      int64
}

type CsvReportRendererImpl struct {
}

func NewCsvReportRenderer() *CsvReportRendererImpl {
	return &CsvReportRendererImpl{}
}

func (t *CsvReportRendererImpl) RenderMonthlyReport(report MonthlyReport) (string, error) {
	data := make([][]string, 0, len(report.Categories)+3)
	data = append(data, []string{"Месец", report.Period})
	data = append(data, []string{"Категория", "Брой", "Сума"})
	for _, c := range report.Categories {
		data = append(data, []string{c.Label, strconv.Itoa(c.Count), money.Format(c.Total)})
	}
	data = append(data, []string{"Общо", strconv.Itoa(countOf(report.Categories)), money.Format(report.Total)})

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func countOf(categories []CategoryTotal) int {
	count := 0
	for _, c := range categories {
		count += c.Count
	}
	return count
}
