package models

// DefaultAreaCode is the dialling prefix assigned to new customers.
const DefaultAreaCode = "+249"

// Owner represents a customer who owns one or more machines.
type Owner struct {
	ID            string `json:"id"`
	Name          string `json:"name" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	AreaCode      string `json:"areaCode,omitempty"`
}

// NewOwner returns an owner with the default area code.
func NewOwner(id, name, contactNumber string) Owner {
	return Owner{
		ID:            id,
		Name:          name,
		ContactNumber: contactNumber,
		AreaCode:      DefaultAreaCode,
	}
}
