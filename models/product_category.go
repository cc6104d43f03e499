package models

import "fmt"

// ProductCategory groups bar inventory for display.
type ProductCategory string

const (
	CategoryDrink ProductCategory = "Bebida"
	CategoryOther ProductCategory = "Outro"
)

var validProductCategories = []ProductCategory{
	CategoryDrink,
	CategoryOther,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
