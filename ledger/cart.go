package ledger

import "studioviking-backend/models"

// CartLine pairs a product snapshot with the desired quantity. The
// snapshot price is what the sale will be registered at, even if the
// catalog changes before checkout.
type CartLine struct {
	Product  models.Product
	Quantity int
}

// Cart is the open bar tab. It lives in memory only; nothing is
// persisted until checkout registers a sale.
type Cart struct {
	lines []CartLine
}

// Add puts one unit of a product on the tab, or bumps the quantity if
// the product is already there. Out-of-stock products are refused.
func (c *Cart) Add(product models.Product) bool {
	if product.Stock <= 0 {
		return false
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity++
			return true
		}
	}
	c.lines = append(c.lines, CartLine{Product: product, Quantity: 1})
	return true
}

// UpdateQuantity changes a line's quantity by delta, clamped to the
// range [1, stock]. Quantity never exceeds the stock captured when the
// product entered the cart.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		quantity := c.lines[i].Quantity + delta
		if quantity < 1 {
			quantity = 1
		}
		if quantity > c.lines[i].Product.Stock {
			quantity = c.lines[i].Product.Stock
		}
		c.lines[i].Quantity = quantity
		return
	}
}

// Remove drops a line from the tab.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total is the sum of snapshot price x quantity across all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// Len is the number of distinct lines on the tab.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy of the tab's lines.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Items converts the tab into sale line items for checkout.
func (c *Cart) Items() []models.SaleItem {
	items := make([]models.SaleItem, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, models.SaleItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		})
	}
	return items
}

// Clear empties the tab.
func (c *Cart) Clear() {
	c.lines = nil
}
