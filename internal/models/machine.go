package models

// Brand is the manufacturer of a machine.
type Brand string

const (
	BrandJCB     Brand = "JCB"
	BrandHyundai Brand = "HYUNDAI"
	BrandDoosan  Brand = "DOOSAN"
	BrandShantui Brand = "SHANTUI"
	BrandDaewoo  Brand = "DAEWOO"
	BrandCummins Brand = "CUMMINS"
	BrandOther   Brand = "Other"
)

// Brands lists every supported brand in display order.
var Brands = []Brand{BrandJCB, BrandHyundai, BrandDoosan, BrandShantui, BrandDaewoo, BrandCummins, BrandOther}

// IsValidBrand checks if a brand is one of the supported manufacturers
func IsValidBrand(b Brand) bool {
	switch b {
	case BrandJCB, BrandHyundai, BrandDoosan, BrandShantui, BrandDaewoo, BrandCummins, BrandOther:
		return true
	default:
		return false
	}
}

// Machine represents a piece of heavy equipment under maintenance.
type Machine struct {
	ID                  string  `json:"id"`
	SerialNumber        string  `json:"serialNumber" validate:"required"`
	Model               string  `json:"model" validate:"required"`
	Type                string  `json:"type"` // free text, e.g. "Excavator"
	Brand               Brand   `json:"brand" validate:"brand"`
	CurrentHours        float64 `json:"currentHours"`
	OwnerID             string  `json:"ownerId" validate:"required"`
	LastMaintenanceDate string  `json:"lastMaintenanceDate,omitempty"`
}

// NewMachine returns a machine with the form defaults applied.
func NewMachine(id, ownerID string) Machine {
	return Machine{
		ID:      id,
		Brand:   BrandJCB,
		Type:    "Excavator",
		OwnerID: ownerID,
	}
}

// Label is the "<brand> <model>" name used on charts.
func (m Machine) Label() string {
	return string(m.Brand) + " " + m.Model
}

// RatchetHours raises CurrentHours to hours when hours is strictly greater.
// It reports whether the machine changed.
func (m *Machine) RatchetHours(hours float64) bool {
	if hours > m.CurrentHours {
		m.CurrentHours = hours
		return true
	}
	return false
}
