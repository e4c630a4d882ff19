package models

import (
	"fmt"
	"math/rand"
	"time"
)

// JobType classifies a service visit.
type JobType string

const (
	JobTypeMechanical  JobType = "Mechanical"
	JobTypeElectricity JobType = "Electricity"
	JobTypePreventive  JobType = "Preventive"
	JobTypeCorrective  JobType = "Corrective"
	JobTypeEmergency   JobType = "Emergency"
)

// IsValidJobType checks if a job type is valid
func IsValidJobType(t JobType) bool {
	switch t {
	case JobTypeMechanical, JobTypeElectricity, JobTypePreventive, JobTypeCorrective, JobTypeEmergency:
		return true
	default:
		return false
	}
}

// JobStatus tracks whether a job card has been through cloud sync.
type JobStatus string

const (
	StatusPending JobStatus = "Pending"
	StatusSynced  JobStatus = "Synced"
)

// IsValidJobStatus checks if a status is valid
func IsValidJobStatus(s JobStatus) bool {
	return s == StatusPending || s == StatusSynced
}

// MaxServiceTeam is the number of technician slots on the printed card.
const MaxServiceTeam = 3

// DateLayout is the calendar date format used for job dates.
const DateLayout = "2006-01-02"

// SparePart is one line item on a job card.
type SparePart struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
}

// LineCost is quantity times unit price.
func (p SparePart) LineCost() float64 {
	return float64(p.Quantity) * p.UnitPrice
}

// JobCard is one maintenance service visit and the unit of billing.
type JobCard struct {
	ID                    string      `json:"id"`
	JobCardNo             string      `json:"jobCardNo"`
	MachineID             string      `json:"machineId" validate:"required"`
	OwnerID               string      `json:"ownerId" validate:"required"`
	Date                  string      `json:"date"`
	OpenedTime            string      `json:"openedTime"`
	ClosedTime            string      `json:"closedTime"`
	SiteLocation          string      `json:"siteLocation"`
	TravelingKm           float64     `json:"travelingKm"`
	WorkingHoursOnArrival float64     `json:"workingHoursOnArrival"`
	JobType               JobType     `json:"jobType" validate:"jobtype"`
	CustomerComplaint     string      `json:"customerComplaint"`
	Findings              string      `json:"findings"`
	WorkDone              string      `json:"workDone"`
	ServiceTeam           []string    `json:"serviceTeam" validate:"max=3"`
	SpareParts            []SparePart `json:"spareParts" validate:"dive"`
	SparePartsInvoiceNo   string      `json:"sparePartsInvoiceNo"`
	// Opaque inline image payload, typically a data URL.
	SparePartsInvoiceImage string `json:"sparePartsInvoiceImage,omitempty"`
	// When set, supersedes the summed spare-part line costs.
	SparePartsCostOverride *float64  `json:"sparePartsCostOverride,omitempty"`
	LaborCost              float64   `json:"laborCost"`
	TravelCost             float64   `json:"travelCost"`
	TotalBilled            float64   `json:"totalBilled"`
	Status                 JobStatus `json:"status" validate:"jobstatus"`
	Comments               string    `json:"comments"`

	CallDate       string `json:"callDate,omitempty"`
	CallTime       string `json:"callTime,omitempty"`
	PromiseDate    string `json:"promiseDate,omitempty"`
	Tel2           string `json:"tel2,omitempty"`
	AreaCode       string `json:"areaCode,omitempty"`
	PSSR           string `json:"pssr,omitempty"`
	Remarks        string `json:"remarks,omitempty"`
	SupervisorSign string `json:"supervisorSign,omitempty"`
}

// NewJobCard returns a draft job card carrying the form defaults.
func NewJobCard(now time.Time, rnd *rand.Rand) JobCard {
	return JobCard{
		JobCardNo:           fmt.Sprintf("apex%d", rnd.Intn(900)+100),
		Date:                now.Format(DateLayout),
		OpenedTime:          "08:00",
		ClosedTime:          "10:00",
		JobType:             JobTypeMechanical,
		SparePartsInvoiceNo: "0",
		Status:              StatusPending,
		ServiceTeam:         []string{""},
		SpareParts:          []SparePart{},
	}
}

// AddSparePart appends a part to the card. Parts missing a name, quantity or
// unit price are ignored; the return value reports whether it was added.
func (j *JobCard) AddSparePart(p SparePart) bool {
	if p.Name == "" || p.Quantity == 0 || p.UnitPrice == 0 {
		return false
	}
	j.SpareParts = append(j.SpareParts, p)
	return true
}

// RemoveSparePart drops every part with the given id.
func (j *JobCard) RemoveSparePart(id string) {
	kept := make([]SparePart, 0, len(j.SpareParts))
	for _, p := range j.SpareParts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	j.SpareParts = kept
}

// ServiceTeamMember returns the technician in slot i (zero based), or "".
func (j JobCard) ServiceTeamMember(i int) string {
	if i < 0 || i >= len(j.ServiceTeam) {
		return ""
	}
	return j.ServiceTeam[i]
}

// Float returns a pointer to v, for setting optional numeric fields.
func Float(v float64) *float64 {
	return &v
}
