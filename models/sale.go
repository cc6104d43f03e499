package models

// SaleItem is one checkout line. Name and Price are snapshots of the
// product at the moment it entered the cart.
type SaleItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Sale is a single bar checkout. Sales are append-only and never
// mutated after creation; Total always equals the sum of
// quantity x unit price across Items.
type Sale struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"` // ISO YYYY-MM-DD
	Items         []SaleItem    `json:"items"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}
