package models

import "fmt"

// Professional identifies who an appointment or catalog service belongs to.
// Admin is a viewing role only: it aggregates across the two practitioners
// and never owns an appointment itself.
type Professional string

const (
	ProfessionalDavid Professional = "David (Tattoo)"
	ProfessionalJey   Professional = "Jey (Piercing)"
	ProfessionalAdmin Professional = "Admin"
)

var validProfessionals = []Professional{
	ProfessionalDavid,
	ProfessionalJey,
	ProfessionalAdmin,
}

// Practitioners returns the professionals that can be assigned work.
func Practitioners() []Professional {
	return []Professional{ProfessionalDavid, ProfessionalJey}
}

// String implements fmt.Stringer.
func (p Professional) String() string {
	return string(p)
}

// IsValid reports whether the value is a known Professional.
func (p Professional) IsValid() bool {
	for _, candidate := range validProfessionals {
		if candidate == p {
			return true
		}
	}
	return false
}

// IsPractitioner reports whether the professional can own an appointment.
func (p Professional) IsPractitioner() bool {
	return p == ProfessionalDavid || p == ProfessionalJey
}

// ParseProfessional converts raw input into a Professional.
func ParseProfessional(value string) (Professional, error) {
	for _, candidate := range validProfessionals {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid professional %q", value)
}
