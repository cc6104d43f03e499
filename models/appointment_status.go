package models

import "fmt"

// AppointmentStatus is the lifecycle state of an appointment. The stored
// values are the labels the studio has always used, so historical data
// keeps reading back correctly.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Agendado"
	StatusConfirmed AppointmentStatus = "Confirmado"
	StatusCompleted AppointmentStatus = "Realizado"
	StatusCancelled AppointmentStatus = "Cancelado"
)

var validAppointmentStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// statusTransitions is the full lifecycle graph. Completed and Cancelled
// are terminal.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// String implements fmt.Stringer.
func (s AppointmentStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known AppointmentStatus.
func (s AppointmentStatus) IsValid() bool {
	for _, candidate := range validAppointmentStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s AppointmentStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// CanTransitionTo reports whether s -> next is a legal lifecycle edge.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, candidate := range statusTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ParseAppointmentStatus converts raw input into an AppointmentStatus.
func ParseAppointmentStatus(value string) (AppointmentStatus, error) {
	for _, candidate := range validAppointmentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid appointment status %q", value)
}
