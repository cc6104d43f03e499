package models

// Client is a studio customer. SignedTerms holds the IDs of consent
// terms the client has signed.
type Client struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Instagram   string   `json:"instagram,omitempty"`
	BirthDate   string   `json:"birthDate,omitempty"` // ISO YYYY-MM-DD
	Notes       string   `json:"notes,omitempty"`
	SignedTerms []string `json:"signedTerms"`
}
