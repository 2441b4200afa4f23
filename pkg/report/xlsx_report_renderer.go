package report

import (
	"fmt"

	"github.com/domakasa/domakasa/internal/money"
	"github.com/domakasa/domakasa/pkg/expense"
	"github.com/xuri/excelize/v2"
)

type XlsxReportRendererImpl struct {
}

func NewXlsxReportRenderer() *XlsxReportRendererImpl {
	return &XlsxReportRendererImpl{}
}

// RenderExpenses builds a spreadsheet with one row per expense.
// categoryNames resolves category ids to labels; unknown ids fall back to
// UncategorizedLabel.
func (t *XlsxReportRendererImpl) RenderExpenses(expenses []expense.Expense, categoryNames map[int]string) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Разходи"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("could not create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("could not drop default sheet: %w", err)
	}

	headers := []string{"Дата", "Описание", "Получател", "Категория", "Сума (лв.)"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("could not write header: %w", err)
		}
	}

	for idx, e := range expenses {
		row := idx + 2
		label := categoryNames[e.CategoryID]
		if label == "" {
			label = UncategorizedLabel
		}
		cells := map[string]any{
			fmt.Sprintf("A%d", row): e.IncurredAt,
			fmt.Sprintf("B%d", row): e.Description,
			fmt.Sprintf("C%d", row): e.Recipient,
			fmt.Sprintf("D%d", row): label,
			fmt.Sprintf("E%d", row): money.Format(e.Amount),
		}
		for cell, value := range cells {
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("could not write row %d: %w", row, err)
			}
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 12)
	_ = f.SetColWidth(sheetName, "B", "B", 40)
	_ = f.SetColWidth(sheetName, "C", "C", 25)
	_ = f.SetColWidth(sheetName, "D", "D", 20)
	_ = f.SetColWidth(sheetName, "E", "E", 12)

	return f, nil
}
