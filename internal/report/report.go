// Package report builds the date-ranged financial report, the dashboard
// statistics and their spreadsheet export.
package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/ukydev/apex-maintenance/internal/cost"
	"github.com/ukydev/apex-maintenance/internal/models"
)

// CompanyName heads the printed and exported report.
const CompanyName = "Apex Integrated Solutions Company"

// Period is an inclusive calendar date range.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DefaultPeriod runs from the first day of now's month to now.
func DefaultPeriod(now time.Time) Period {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Period{
		Start: first.Format(models.DateLayout),
		End:   now.Format(models.DateLayout),
	}
}

// Row is one job card's line in the report.
type Row struct {
	JobCardID       string  `json:"jobCardId"`
	JobCardNo       string  `json:"jobCardNo"`
	InvoiceNo       string  `json:"invoiceNo"`
	HasInvoiceImage bool    `json:"hasInvoiceImage"`
	PartsCost       float64 `json:"partsCost"`
	Expenses        float64 `json:"expenses"`
	Revenue         float64 `json:"revenue"`
	Net             float64 `json:"net"`
	Comments        string  `json:"comments"`
}

// Report is the aggregate over one filtered set of job cards. The totals are
// the exact decimal sums of the row values, rounded to float64 once, so they
// may differ in the last bit from adding the rows' float64 values in order.
type Report struct {
	Company              string  `json:"company"`
	Engineer             string  `json:"engineer"`
	Period               Period  `json:"period"`
	Rows                 []Row   `json:"rows"`
	TotalNetRevenue      float64 `json:"totalNetRevenue"`
	TotalPartsInvestment float64 `json:"totalPartsInvestment"`
}

// NewRow projects a job card through the cost engine.
func NewRow(job models.JobCard) Row {
	return Row{
		JobCardID:       job.ID,
		JobCardNo:       job.JobCardNo,
		InvoiceNo:       job.SparePartsInvoiceNo,
		HasInvoiceImage: job.SparePartsInvoiceImage != "",
		PartsCost:       cost.SparePartsCost(job),
		Expenses:        cost.JobExpenses(job),
		Revenue:         job.TotalBilled,
		Net:             cost.NetCost(job),
		Comments:        job.Comments,
	}
}

// Aggregate builds rows and totals for jobs that have already been filtered.
// Totals are plain sums of the rows accumulated in decimal.
func Aggregate(jobs []models.JobCard) Report {
	rows := make([]Row, 0, len(jobs))
	net, parts := decimal.Zero, decimal.Zero
	for _, job := range jobs {
		row := NewRow(job)
		rows = append(rows, row)
		net = net.Add(decimal.NewFromFloat(row.Net))
		parts = parts.Add(decimal.NewFromFloat(row.PartsCost))
	}
	return Report{
		Company:              CompanyName,
		Rows:                 rows,
		TotalNetRevenue:      net.InexactFloat64(),
		TotalPartsInvestment: parts.InexactFloat64(),
	}
}

// Build filters jobs to the period and aggregates the result.
func Build(jobs []models.JobCard, period Period, engineer string) Report {
	r := Aggregate(FilterByDateRange(jobs, period.Start, period.End))
	r.Engineer = engineer
	r.Period = period
	return r
}

// Row returns the row for a job card id.
func (r Report) Row(jobID string) (Row, bool) {
	for _, row := range r.Rows {
		if row.JobCardID == jobID {
			return row, true
		}
	}
	return Row{}, false
}
