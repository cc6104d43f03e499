package models

// Product is a bar inventory item.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       float64         `json:"price"`
	Stock       int             `json:"stock"`
	IsAlcoholic bool            `json:"isAlcoholic"`
	Category    ProductCategory `json:"category"`
}
