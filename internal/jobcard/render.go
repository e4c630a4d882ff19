// Package jobcard projects a job card onto the fixed layout of the printed
// service form.
package jobcard

import (
	"strconv"

	"github.com/ukydev/apex-maintenance/internal/models"
)

const (
	Title    = "Job Card"
	Company  = "APEX"
	Division = "INTEGRATED SOLUTIONS"
)

// FooterBrands are printed along the bottom of every card.
var FooterBrands = []string{"HYUNDAI", "DOOSAN", "JCB", "SHANTUI", "DAEWOO", "Cummins"}

// Field is one labeled box on the form.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Document is the printable job card, grouped in layout order.
type Document struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Division       string   `json:"division"`
	Identification []Field  `json:"identification"`
	Narrative      []Field  `json:"narrative"`
	ServiceTeam    []Field  `json:"serviceTeam"`
	Signatures     []Field  `json:"signatures"`
	FooterBrands   []string `json:"footerBrands"`
}

// Value returns the first field with label across all sections.
func (d Document) Value(label string) (string, bool) {
	for _, section := range [][]Field{d.Identification, d.Narrative, d.ServiceTeam, d.Signatures} {
		for _, f := range section {
			if f.Label == label {
				return f.Value, true
			}
		}
	}
	return "", false
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Render builds the document for job. machine and owner may be nil, in which
// case the fields they supply are left blank.
func Render(job models.JobCard, machine *models.Machine, owner *models.Owner) Document {
	var model, serial, hours string
	if machine != nil {
		model, serial, hours = machine.Model, machine.SerialNumber, number(machine.CurrentHours)
	}
	var ownerName, contact string
	if owner != nil {
		ownerName, contact = owner.Name, owner.ContactNumber
	}

	ident := []Field{
		{"Model", firstNonEmpty(model, string(job.JobType))},
		{"Job Card No.", job.JobCardNo},
		{"Call date", firstNonEmpty(job.CallDate, job.Date)},
		{"M/C Serial", serial},
		{"Promise date", job.PromiseDate},
		{"Call time", job.CallTime},
		{"MC Hours", hours},
		{"Job Opened Date", job.Date},
		{"Job Opened Time", job.OpenedTime},
		{"Site Location", job.SiteLocation},
		{"Job Closed Date", job.Date},
		{"Job Closed Time", job.ClosedTime},
		{"Customer Name", ownerName},
		{"Traveling K M", number(job.TravelingKm)},
		{"Working Hours", number(job.WorkingHoursOnArrival)},
		{"Customer Contact", contact},
		{"Tel 2", job.Tel2},
		{"Area Cod", firstNonEmpty(job.AreaCode, models.DefaultAreaCode)},
		{"Tel 1", contact},
		{"PSSR", job.PSSR},
	}

	narrative := []Field{
		{"Customer Complaint", job.CustomerComplaint},
		{"Job type", string(job.JobType)},
		{"What Did You Find Wrong ?", job.Findings},
		{"work done", job.WorkDone},
		{"Remarks and walk around inspection check", job.Remarks},
		{"Service Department Comment on the Job", ""},
	}

	team := make([]Field, models.MaxServiceTeam)
	for i := range team {
		team[i] = Field{Label: strconv.Itoa(i+1) + "-", Value: job.ServiceTeamMember(i)}
	}

	signatures := []Field{
		{"Supervisor Eng Sign", job.SupervisorSign},
		{"Customer Name", ownerName},
		{"Customer Sign", ""},
	}

	return Document{
		Title:          Title,
		Company:        Company,
		Division:       Division,
		Identification: ident,
		Narrative:      narrative,
		ServiceTeam:    team,
		Signatures:     signatures,
		FooterBrands:   append([]string(nil), FooterBrands...),
	}
}
