package models

import "strings"

// Location represents the first geocoding match for a city name
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`    // resolved city name
	State     string  `json:"state"`   // first-level administrative region (admin1)
	Country   string  `json:"country"` // country name
}

// Region formats the state and country for display, skipping empty parts
func (l Location) Region() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{l.State, l.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
