package models

import "strings"

// SearchOwners filters owners by case-insensitive name or contact substring.
func SearchOwners(owners []Owner, query string) []Owner {
	if query == "" {
		return owners
	}
	q := strings.ToLower(query)
	out := make([]Owner, 0, len(owners))
	for _, o := range owners {
		if strings.Contains(strings.ToLower(o.Name), q) || strings.Contains(o.ContactNumber, query) {
			out = append(out, o)
		}
	}
	return out
}

// SearchMachines filters machines by case-insensitive serial, model or brand.
func SearchMachines(machines []Machine, query string) []Machine {
	if query == "" {
		return machines
	}
	q := strings.ToLower(query)
	out := make([]Machine, 0, len(machines))
	for _, m := range machines {
		if strings.Contains(strings.ToLower(m.SerialNumber), q) ||
			strings.Contains(strings.ToLower(m.Model), q) ||
			strings.Contains(strings.ToLower(string(m.Brand)), q) {
			out = append(out, m)
		}
	}
	return out
}
