package models

// AppData is the whole persisted document: every mutation reads it, applies
// one change and writes it back.
type AppData struct {
	Machines []Machine `json:"machines"`
	Owners   []Owner   `json:"owners"`
	JobCards []JobCard `json:"jobCards"`
}

// Normalize replaces nil collections with empty ones so the document always
// serializes as arrays.
func (d *AppData) Normalize() {
	if d.Machines == nil {
		d.Machines = []Machine{}
	}
	if d.Owners == nil {
		d.Owners = []Owner{}
	}
	if d.JobCards == nil {
		d.JobCards = []JobCard{}
	}
	for i := range d.JobCards {
		if d.JobCards[i].SpareParts == nil {
			d.JobCards[i].SpareParts = []SparePart{}
		}
		if d.JobCards[i].ServiceTeam == nil {
			d.JobCards[i].ServiceTeam = []string{}
		}
	}
}

// MachineByID resolves a machine id. A missing id is not an error.
func (d AppData) MachineByID(id string) (Machine, bool) {
	for _, m := range d.Machines {
		if m.ID == id {
			return m, true
		}
	}
	return Machine{}, false
}

// OwnerByID resolves an owner id. A missing id is not an error.
func (d AppData) OwnerByID(id string) (Owner, bool) {
	for _, o := range d.Owners {
		if o.ID == id {
			return o, true
		}
	}
	return Owner{}, false
}

// JobCardByID resolves a job card id.
func (d AppData) JobCardByID(id string) (JobCard, bool) {
	for _, j := range d.JobCards {
		if j.ID == id {
			return j, true
		}
	}
	return JobCard{}, false
}

// SeedData returns the dataset used when nothing has been persisted yet.
// Each call returns a fresh copy.
func SeedData() AppData {
	return AppData{
		Machines: []Machine{
			{ID: "m1", SerialNumber: "SN-00234", Model: "3CX", Type: "Backhoe Loader", Brand: BrandJCB, CurrentHours: 1250, OwnerID: "o1"},
			{ID: "m2", SerialNumber: "SN-00567", Model: "R210LC", Type: "Excavator", Brand: BrandHyundai, CurrentHours: 4500, OwnerID: "o2"},
		},
		Owners: []Owner{
			{ID: "o1", Name: "Suleiman Mohammed", ContactNumber: "0963366668", AreaCode: DefaultAreaCode},
			{ID: "o2", Name: "Ahmed Khalid", ContactNumber: "0123456789", AreaCode: DefaultAreaCode},
		},
		JobCards: []JobCard{
			{
				ID:                    "j1",
				JobCardNo:             "apex001",
				MachineID:             "m1",
				OwnerID:               "o1",
				Date:                  "2025-11-19",
				OpenedTime:            "08:30",
				ClosedTime:            "11:30",
				SiteLocation:          "Al-Ansari / Market",
				TravelingKm:           1,
				WorkingHoursOnArrival: 3,
				JobType:               JobTypeElectricity,
				CustomerComplaint:     "Complete review of electrical circuits.",
				Findings:              "Faulty wiring.",
				WorkDone:              "Rewired.",
				ServiceTeam:           []string{"Ali Saif"},
				SpareParts:            []SparePart{},
				SparePartsInvoiceNo:   "0",
				LaborCost:             100000,
				TravelCost:            0,
				TotalBilled:           500000,
				Status:                StatusSynced,
				Comments:              "Repaired successfully",
			},
		},
	}
}
