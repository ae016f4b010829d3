package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/finplan/loansim/internal/domain"
)

// ExcelWriter implements LedgerWriter by writing an xlsx workbook with the
// ledger table, the summary metrics, a stacked principal-vs-interest column
// chart and a disposable-fund line chart.
type ExcelWriter struct {
	path string
}

// NewExcelWriter creates an ExcelWriter targeting the given file path.
func NewExcelWriter(path string) *ExcelWriter {
	return &ExcelWriter{path: path}
}

// Write builds the workbook and saves it. The context is unused; excelize
// works purely in memory until SaveAs.
func (w *ExcelWriter) Write(_ context.Context, result domain.SimulationResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Ledger"); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	for i, row := range buildLedgerRows(result) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("building cell name: %w", err)
		}
		if err := f.SetSheetRow("Ledger", cell, &row); err != nil {
			return fmt.Errorf("writing ledger row %d: %w", i+1, err)
		}
	}

	if _, err := f.NewSheet("Summary"); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}
	for i, row := range buildSummaryRows(result) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("building cell name: %w", err)
		}
		if err := f.SetSheetRow("Summary", cell, &row); err != nil {
			return fmt.Errorf("writing summary row %d: %w", i+1, err)
		}
	}

	if len(result.Rows) > 0 {
		if err := w.addCharts(f, len(result.Rows)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// addCharts adds the two charts on their own sheet, referencing the ledger
// columns (rows 2..n+1; row 1 is the header).
func (w *ExcelWriter) addCharts(f *excelize.File, n int) error {
	if _, err := f.NewSheet("Charts"); err != nil {
		return fmt.Errorf("creating charts sheet: %w", err)
	}

	periods := fmt.Sprintf("Ledger!$A$2:$A$%d", n+1)
	series := func(col string) string {
		return fmt.Sprintf("Ledger!$%s$2:$%s$%d", col, col, n+1)
	}

	stacked := &excelize.Chart{
		Type:  excelize.ColStacked,
		Title: []excelize.RichTextRun{{Text: "Principal and interest per period"}},
		Series: []excelize.ChartSeries{
			{Name: "Principal", Categories: periods, Values: series("C")},
			{Name: "Interest", Categories: periods, Values: series("D")},
		},
	}
	if err := f.AddChart("Charts", "A1", stacked); err != nil {
		return fmt.Errorf("adding principal/interest chart: %w", err)
	}

	fund := &excelize.Chart{
		Type:  excelize.Line,
		Title: []excelize.RichTextRun{{Text: "Cumulative disposable fund"}},
		Series: []excelize.ChartSeries{
			{Name: "Disposable fund", Categories: periods, Values: series("G")},
		},
	}
	if err := f.AddChart("Charts", "A18", fund); err != nil {
		return fmt.Errorf("adding fund chart: %w", err)
	}
	return nil
}
