package models

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidBrand(t *testing.T) {
	tests := []struct {
		name     string
		brand    Brand
		expected bool
	}{
		{"jcb", BrandJCB, true},
		{"cummins", BrandCummins, true},
		{"other", BrandOther, true},
		{"lowercase jcb", "jcb", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidBrand(tt.brand))
		})
	}
}

func TestIsValidJobType(t *testing.T) {
	for _, jt := range []JobType{JobTypeMechanical, JobTypeElectricity, JobTypePreventive, JobTypeCorrective, JobTypeEmergency} {
		assert.True(t, IsValidJobType(jt), jt)
	}
	assert.False(t, IsValidJobType("Hydraulic"))
	assert.False(t, IsValidJobType(""))
}

func TestMachine_RatchetHours(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		reported float64
		want     float64
		changed  bool
	}{
		{"higher reading raises hours", 30, 50, 50, true},
		{"lower reading keeps hours", 80, 50, 80, false},
		{"equal reading keeps hours", 50, 50, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Machine{CurrentHours: tt.current}
			assert.Equal(t, tt.changed, m.RatchetHours(tt.reported))
			assert.Equal(t, tt.want, m.CurrentHours)
		})
	}
}

func TestNewJobCard_Defaults(t *testing.T) {
	now := time.Date(2025, time.March, 7, 15, 4, 0, 0, time.UTC)
	card := NewJobCard(now, rand.New(rand.NewSource(1)))

	assert.Regexp(t, `^apex[1-9][0-9]{2}$`, card.JobCardNo)
	assert.Equal(t, "2025-03-07", card.Date)
	assert.Equal(t, "08:00", card.OpenedTime)
	assert.Equal(t, "10:00", card.ClosedTime)
	assert.Equal(t, JobTypeMechanical, card.JobType)
	assert.Equal(t, "0", card.SparePartsInvoiceNo)
	assert.Equal(t, StatusPending, card.Status)
	assert.Equal(t, []string{""}, card.ServiceTeam)
	assert.Empty(t, card.SpareParts)
	assert.Nil(t, card.SparePartsCostOverride)
}

func TestJobCard_SpareParts(t *testing.T) {
	card := JobCard{}

	assert.False(t, card.AddSparePart(SparePart{ID: "p0", Name: "", Quantity: 1, UnitPrice: 5}))
	assert.False(t, card.AddSparePart(SparePart{ID: "p0", Name: "Filter", Quantity: 0, UnitPrice: 5}))
	assert.False(t, card.AddSparePart(SparePart{ID: "p0", Name: "Filter", Quantity: 1, UnitPrice: 0}))
	require.True(t, card.AddSparePart(SparePart{ID: "p1", Name: "Filter", Quantity: 2, UnitPrice: 50}))
	require.True(t, card.AddSparePart(SparePart{ID: "p2", Name: "Belt", Quantity: 1, UnitPrice: 30}))

	assert.Equal(t, 100.0, card.SpareParts[0].LineCost())

	card.RemoveSparePart("p1")
	require.Len(t, card.SpareParts, 1)
	assert.Equal(t, "p2", card.SpareParts[0].ID)
}

func TestJobCard_ServiceTeamMember(t *testing.T) {
	card := JobCard{ServiceTeam: []string{"Ali Saif"}}
	assert.Equal(t, "Ali Saif", card.ServiceTeamMember(0))
	assert.Equal(t, "", card.ServiceTeamMember(1))
	assert.Equal(t, "", card.ServiceTeamMember(-1))
}

func TestJobCard_OverrideSerialization(t *testing.T) {
	card := JobCard{ID: "j1"}
	data, err := json.Marshal(card)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sparePartsCostOverride")

	card.SparePartsCostOverride = Float(0)
	data, err = json.Marshal(card)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sparePartsCostOverride":0`)
}

func TestSeedData(t *testing.T) {
	seed := SeedData()
	require.Len(t, seed.Machines, 2)
	require.Len(t, seed.Owners, 2)
	require.Len(t, seed.JobCards, 1)

	owner, ok := seed.OwnerByID("o1")
	require.True(t, ok)
	assert.Equal(t, "Suleiman Mohammed", owner.Name)

	machine, ok := seed.MachineByID("m1")
	require.True(t, ok)
	assert.Equal(t, 1250.0, machine.CurrentHours)
	assert.Equal(t, "o1", machine.OwnerID)

	// Mutating one copy must not leak into the next.
	seed.Machines[0].CurrentHours = 9999
	assert.Equal(t, 1250.0, SeedData().Machines[0].CurrentHours)
}

func TestAppData_Lookups_Missing(t *testing.T) {
	seed := SeedData()
	_, ok := seed.MachineByID("missing")
	assert.False(t, ok)
	_, ok = seed.OwnerByID("missing")
	assert.False(t, ok)
	_, ok = seed.JobCardByID("missing")
	assert.False(t, ok)
}

func TestAppData_Normalize(t *testing.T) {
	data := AppData{JobCards: []JobCard{{ID: "j1"}}}
	data.Normalize()

	out, err := json.Marshal(data)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"machines":[]`)
	assert.Contains(t, string(out), `"owners":[]`)
	assert.Contains(t, string(out), `"spareParts":[]`)
}

func TestSearchOwners(t *testing.T) {
	owners := SeedData().Owners

	assert.Len(t, SearchOwners(owners, ""), 2)
	assert.Len(t, SearchOwners(owners, "suleiman"), 1)
	assert.Len(t, SearchOwners(owners, "0123"), 1)
	assert.Empty(t, SearchOwners(owners, "nobody"))
}

func TestSearchMachines(t *testing.T) {
	machines := SeedData().Machines

	assert.Len(t, SearchMachines(machines, ""), 2)
	assert.Len(t, SearchMachines(machines, "hyundai"), 1)
	assert.Len(t, SearchMachines(machines, "sn-00234"), 1)
	assert.Len(t, SearchMachines(machines, "3cx"), 1)
	assert.Empty(t, SearchMachines(machines, "volvo"))
}

func TestValidate_Owner(t *testing.T) {
	assert.NoError(t, Validate(NewOwner("o3", "Omar", "0911")))

	err := Validate(Owner{ID: "o3", Name: "Omar"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "required", verr.Fields["contactNumber"])
}

func TestValidate_Machine(t *testing.T) {
	m := NewMachine("m3", "o1")
	m.SerialNumber = "SN-1"
	m.Model = "320D"
	assert.NoError(t, Validate(m))

	m.Brand = "Volvo"
	err := Validate(m)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "brand", verr.Fields["brand"])
}

func TestValidate_JobCard(t *testing.T) {
	card := NewJobCard(time.Now(), rand.New(rand.NewSource(2)))

	err := Validate(card)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MissingJobReferencesMessage, verr.Error())

	card.MachineID = "m1"
	card.OwnerID = "o1"
	assert.NoError(t, Validate(card))

	card.ServiceTeam = []string{"a", "b", "c", "d"}
	assert.Error(t, Validate(card))

	card.ServiceTeam = []string{"a"}
	card.SpareParts = []SparePart{{ID: "p1", Name: "Seal", Quantity: 0, UnitPrice: 5}}
	err = Validate(&card)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "gt", verr.Fields["spareParts[0].quantity"])
	assert.Contains(t, verr.Error(), "spareParts[0].quantity")
}
