package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelContentType is the MIME type of the exported workbook.
const ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const reportSheet = "Report"

var reportHeadings = []string{"JOB ID", "Invoice", "Parts Cost", "Expenses", "Revenue", "Net", "Comments"}

// firstDataRow is the first row below the table headings.
const firstDataRow = 6

// ExcelFilename names the export for a period.
func ExcelFilename(p Period) string {
	return fmt.Sprintf("maintenance-report_%s_%s.xlsx", p.Start, p.End)
}

// sheetWriter sets cells on the report sheet and keeps the first error.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) set(col, row int, v any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(reportSheet, cell, v)
}

// NewWorkbook lays the report out on a single sheet: title block, one row per
// job card, then the two totals.
func NewWorkbook(r Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), reportSheet); err != nil {
		return nil, errors.Join(err, f.Close())
	}
	w := &sheetWriter{f: f}

	w.set(1, 1, r.Company)
	w.set(1, 2, "Monthly maintenance report")
	w.set(1, 3, "ENG:")
	w.set(2, 3, r.Engineer)
	w.set(1, 4, "Period:")
	w.set(2, 4, fmt.Sprintf("%s to %s", r.Period.Start, r.Period.End))

	for i, h := range reportHeadings {
		w.set(i+1, firstDataRow-1, h)
	}

	row := firstDataRow
	for _, rr := range r.Rows {
		values := []any{rr.JobCardNo, rr.InvoiceNo, rr.PartsCost, rr.Expenses, rr.Revenue, rr.Net, rr.Comments}
		for i, v := range values {
			w.set(i+1, row, v)
		}
		row++
	}

	w.set(5, row, "Total Net Revenue")
	w.set(6, row, r.TotalNetRevenue)
	w.set(5, row+1, "Total Spare Parts Investment")
	w.set(6, row+1, r.TotalPartsInvestment)

	if w.err != nil {
		return nil, errors.Join(w.err, f.Close())
	}
	return f, nil
}

// ExportExcel writes the report workbook to w.
func ExportExcel(r Report, w io.Writer) (err error) {
	f, err := NewWorkbook(r)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
