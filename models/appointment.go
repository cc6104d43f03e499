package models

// Appointment is a scheduled session. ClientName and ServiceName are
// denormalized copies captured at creation time so that later edits to
// the client or catalog never rewrite history. Appointments are never
// deleted; only their status moves forward.
type Appointment struct {
	ID           string            `json:"id"`
	ClientID     string            `json:"clientId"`
	ClientName   string            `json:"clientName"`
	ServiceID    string            `json:"serviceId"`
	ServiceName  string            `json:"serviceName"`
	Date         string            `json:"date"` // ISO YYYY-MM-DD
	Time         string            `json:"time"` // HH:mm, 24h
	Price        float64           `json:"price"`
	Professional Professional      `json:"professional"`
	Status       AppointmentStatus `json:"status"`
}
