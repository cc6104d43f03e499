package models

// ServiceItem is a catalog entry. Each service belongs to exactly one
// practitioner; the catalog is seeded and read-mostly at runtime.
type ServiceItem struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	BasePrice    float64      `json:"basePrice"`
	DurationMin  int          `json:"durationMin"`
	Professional Professional `json:"professional"`
}
