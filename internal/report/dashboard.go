package report

import (
	"github.com/shopspring/decimal"
	"github.com/ukydev/apex-maintenance/internal/cost"
	"github.com/ukydev/apex-maintenance/internal/models"
)

// UnknownMachineLabel labels costs of job cards whose machine no longer exists.
const UnknownMachineLabel = "Unknown"

// LabelValue is one bar or slice on a dashboard chart.
type LabelValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Dashboard summarises the whole record store.
type Dashboard struct {
	TotalJobCards       int          `json:"totalJobCards"`
	TotalCosts          float64      `json:"totalCosts"`
	TotalHours          float64      `json:"totalHours"`
	CostByMachine       []LabelValue `json:"costByMachine"`
	JobTypeDistribution []LabelValue `json:"jobTypeDistribution"`
}

// orderedSums accumulates values per label in first-seen order.
type orderedSums struct {
	index  map[string]int
	labels []string
	sums   []decimal.Decimal
}

func newOrderedSums() *orderedSums {
	return &orderedSums{index: make(map[string]int)}
}

func (o *orderedSums) add(label string, v decimal.Decimal) {
	i, ok := o.index[label]
	if !ok {
		i = len(o.labels)
		o.index[label] = i
		o.labels = append(o.labels, label)
		o.sums = append(o.sums, decimal.Zero)
	}
	o.sums[i] = o.sums[i].Add(v)
}

func (o *orderedSums) values() []LabelValue {
	out := make([]LabelValue, len(o.labels))
	for i, label := range o.labels {
		out[i] = LabelValue{Name: label, Value: o.sums[i].InexactFloat64()}
	}
	return out
}

// BuildDashboard computes totals and chart series over all data.
func BuildDashboard(data models.AppData) Dashboard {
	totalCosts, totalHours := decimal.Zero, decimal.Zero
	byMachine, byType := newOrderedSums(), newOrderedSums()

	for _, job := range data.JobCards {
		c := decimal.NewFromFloat(cost.TotalCost(job))
		totalCosts = totalCosts.Add(c)

		label := UnknownMachineLabel
		if m, ok := data.MachineByID(job.MachineID); ok {
			label = m.Label()
		}
		byMachine.add(label, c)
		byType.add(string(job.JobType), decimal.NewFromInt(1))
	}
	for _, m := range data.Machines {
		totalHours = totalHours.Add(decimal.NewFromFloat(m.CurrentHours))
	}

	return Dashboard{
		TotalJobCards:       len(data.JobCards),
		TotalCosts:          totalCosts.InexactFloat64(),
		TotalHours:          totalHours.InexactFloat64(),
		CostByMachine:       byMachine.values(),
		JobTypeDistribution: byType.values(),
	}
}
