// Package xlsxreport renders a solved production plan as a spreadsheet, one
// row per layout: sheet id, machine, printing sheet size, net sheets, and
// cost. Grounded on the teacher's summary-table layout in its PDF export
// (one row per stock sheet, columns for size/parts/cost), reworked onto
// excelize worksheet cells since the ganging pipeline has no PDF Non-goal
// exemption but does need a tabular report (spec.md DOMAIN STACK).
package xlsxreport

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/ganger/internal/ganging"
)

const sheetName = "Production Plan"

var headers = []string{
	"Layout ID", "Machine", "Printing Sheet", "Net Sheets",
	"Material Cost (USD)", "Printing Cost (USD)", "Total Cost (USD)", "Jobs",
}

// Write builds a workbook summarizing baseline and every plan in plans, and
// returns it. The caller is
// responsible for saving it (f.SaveAs) or streaming it (f.Write).
func Write(baseline ganging.Plan, plans []ganging.Plan) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	row := 1
	if err := writeHeader(f, sheetName, row); err != nil {
		return nil, err
	}
	row++

	row, err := writeSection(f, "Baseline", baseline, row)
	if err != nil {
		return nil, err
	}

	for i, plan := range plans {
		row, err = writeSection(f, fmt.Sprintf("Ganged solution %d", i+1), plan, row)
		if err != nil {
			return nil, err
		}
	}

	if err := f.AutoFilter(sheetName, "A1:H1", nil); err != nil {
		return nil, err
	}
	return f, nil
}

func writeHeader(f *excelize.File, sheet string, row int) error {
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	return nil
}

func writeSection(f *excelize.File, label string, plan ganging.Plan, row int) (int, error) {
	labelCell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	if err := f.SetCellValue(sheetName, labelCell, label); err != nil {
		return row, err
	}
	row++

	for _, l := range plan.Layouts {
		values := []interface{}{
			l.LayoutID,
			l.Machine.Name,
			fmt.Sprintf("%dx%d", l.Layout.PrintingSheet.Width, l.Layout.PrintingSheet.Length),
			l.NetSheets,
			centsToDollars(l.CostBreakdown.MaterialCost),
			centsToDollars(l.CostBreakdown.PrintingCost.TotalPrintingCost),
			centsToDollars(l.TotalCost),
			jobsSummary(l.Layout),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return row, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return row, err
			}
		}
		row++
	}

	totalCell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	if err := f.SetCellValue(sheetName, totalCell, fmt.Sprintf("%s total", label)); err != nil {
		return row, err
	}
	costCell, err := excelize.CoordinatesToCellName(7, row)
	if err != nil {
		return row, err
	}
	if err := f.SetCellValue(sheetName, costCell, centsToDollars(plan.TotalCost)); err != nil {
		return row, err
	}
	row++

	return row, nil
}

func jobsSummary(l ganging.Layout) string {
	ids := l.JobIDs()
	s := ""
	for i, id := range ids {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s x%d", id, l.CountPerJob[id])
	}
	return s
}

func centsToDollars(cents int) float64 {
	return float64(cents) / 100.0
}
