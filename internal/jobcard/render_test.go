package jobcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/apex-maintenance/internal/models"
)

func labels(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Label
	}
	return out
}

func mustValue(t *testing.T, d Document, label string) string {
	t.Helper()
	v, ok := d.Value(label)
	require.True(t, ok, "missing field %q", label)
	return v
}

func TestRender_Seed(t *testing.T) {
	seed := models.SeedData()
	job := seed.JobCards[0]
	machine, _ := seed.MachineByID(job.MachineID)
	owner, _ := seed.OwnerByID(job.OwnerID)

	d := Render(job, &machine, &owner)

	assert.Equal(t, Title, d.Title)
	assert.Equal(t, "3CX", mustValue(t, d, "Model"))
	assert.Equal(t, "apex001", mustValue(t, d, "Job Card No."))
	assert.Equal(t, "2025-11-19", mustValue(t, d, "Call date"))
	assert.Equal(t, "SN-00234", mustValue(t, d, "M/C Serial"))
	assert.Equal(t, "1250", mustValue(t, d, "MC Hours"))
	assert.Equal(t, "2025-11-19", mustValue(t, d, "Job Closed Date"))
	assert.Equal(t, "Suleiman Mohammed", mustValue(t, d, "Customer Name"))
	assert.Equal(t, "0963366668", mustValue(t, d, "Tel 1"))
	assert.Equal(t, "+249", mustValue(t, d, "Area Cod"))
	assert.Equal(t, "1", mustValue(t, d, "Traveling K M"))
	assert.Equal(t, "Faulty wiring.", mustValue(t, d, "What Did You Find Wrong ?"))
	assert.Equal(t, []Field{{"1-", "Ali Saif"}, {"2-", ""}, {"3-", ""}}, d.ServiceTeam)
	assert.Equal(t, FooterBrands, d.FooterBrands)
}

func TestRender_Layout(t *testing.T) {
	d := Render(models.JobCard{}, nil, nil)
	assert.Equal(t, []string{
		"Model", "Job Card No.", "Call date", "M/C Serial", "Promise date", "Call time",
		"MC Hours", "Job Opened Date", "Job Opened Time", "Site Location", "Job Closed Date",
		"Job Closed Time", "Customer Name", "Traveling K M", "Working Hours", "Customer Contact",
		"Tel 2", "Area Cod", "Tel 1", "PSSR",
	}, labels(d.Identification))
	assert.Len(t, d.Narrative, 6)
	assert.Equal(t, []string{"Supervisor Eng Sign", "Customer Name", "Customer Sign"}, labels(d.Signatures))
}

func TestRender_MissingMachineAndOwner(t *testing.T) {
	job := models.JobCard{JobType: models.JobTypeEmergency, Date: "2025-11-02", WorkingHoursOnArrival: 12.5}

	d := Render(job, nil, nil)

	assert.Equal(t, "Emergency", mustValue(t, d, "Model"))
	assert.Empty(t, mustValue(t, d, "M/C Serial"))
	assert.Empty(t, mustValue(t, d, "MC Hours"))
	assert.Empty(t, mustValue(t, d, "Customer Name"))
	assert.Empty(t, mustValue(t, d, "Customer Contact"))
	assert.Equal(t, "12.5", mustValue(t, d, "Working Hours"))
	assert.Equal(t, "", d.Signatures[1].Value)
}

func TestRender_ExplicitValuesWin(t *testing.T) {
	job := models.JobCard{
		Date:        "2025-11-02",
		CallDate:    "2025-11-01",
		AreaCode:    "+971",
		ServiceTeam: []string{"A", "B", "C", "D"},
	}
	d := Render(job, nil, nil)

	assert.Equal(t, "2025-11-01", mustValue(t, d, "Call date"))
	assert.Equal(t, "2025-11-02", mustValue(t, d, "Job Opened Date"))
	assert.Equal(t, "+971", mustValue(t, d, "Area Cod"))
	assert.Len(t, d.ServiceTeam, 3)
	assert.Equal(t, "C", d.ServiceTeam[2].Value)
}

func TestRender_MachineWithoutModelFallsBack(t *testing.T) {
	d := Render(models.JobCard{JobType: models.JobTypePreventive}, &models.Machine{SerialNumber: "X"}, nil)
	assert.Equal(t, "Preventive", mustValue(t, d, "Model"))
}
