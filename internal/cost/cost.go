// Package cost computes the per-job figures used by every financial view.
// All functions are pure; absent numeric fields are zero values.
package cost

import "github.com/ukydev/apex-maintenance/internal/models"

// SparePartsCost returns the override verbatim when one is set, including
// zero or negative values. Otherwise it sums quantity * unitPrice.
func SparePartsCost(job models.JobCard) float64 {
	if job.SparePartsCostOverride != nil {
		return *job.SparePartsCostOverride
	}
	return ComputedPartsCost(job)
}

// ComputedPartsCost sums the spare-part line costs, ignoring any override.
func ComputedPartsCost(job models.JobCard) float64 {
	var total float64
	for _, p := range job.SpareParts {
		total += p.LineCost()
	}
	return total
}

// JobExpenses is labor plus travel.
func JobExpenses(job models.JobCard) float64 {
	return job.LaborCost + job.TravelCost
}

// TotalCost is expenses plus spare parts.
func TotalCost(job models.JobCard) float64 {
	return JobExpenses(job) + SparePartsCost(job)
}

// NetCost is revenue minus expenses and spare parts.
func NetCost(job models.JobCard) float64 {
	return job.TotalBilled - TotalCost(job)
}
