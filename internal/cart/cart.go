// Package cart implements the session-scoped shopping cart. Carts live in
// memory only: a cart exists until an order is built from it, then it is
// cleared. Nothing here ever touches the database.
package cart

import "sync"

// Product is the catalog data needed to put an item in the cart.
type Product struct {
	ID    string
	Name  string
	Price float64
	Image string
}

// LineItem is one cart line. Lines are keyed by (ProductID, Color): adding
// the same product in the same color merges quantities instead of appending.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Color     string  `json:"color"`
}

// Cart holds the line items for one session. Safe for concurrent use.
type Cart struct {
	mu     sync.RWMutex
	items  []LineItem
	isOpen bool
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add merges the product into an existing line when (ProductID, Color)
// matches, otherwise appends a new line. Quantities below one count as one.
func (c *Cart) Add(p Product, quantity int, color string) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == p.ID && c.items[i].Color == color {
			c.items[i].Quantity += quantity
			return
		}
	}

	c.items = append(c.items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Image:     p.Image,
		Quantity:  quantity,
		Color:     color,
	})
}

// Remove deletes the matching line. No-op when no line matches.
func (c *Cart) Remove(productID, color string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID, color)
}

// SetQuantity overwrites the quantity of the matching line. A quantity of
// zero or less removes the line.
func (c *Cart) SetQuantity(productID, color string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID, color)
		return
	}

	for i := range c.items {
		if c.items[i].ProductID == productID && c.items[i].Color == color {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) removeLocked(productID, color string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID == productID && item.Color == color {
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []LineItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Total recomputes the cart total on every read so it can never go stale.
func (c *Cart) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total float64
	for _, item := range c.items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Clear empties the cart. Called once, after an order is persisted.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// SetOpen toggles the drawer flag. Purely presentational; it never blocks
// cart mutation.
func (c *Cart) SetOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isOpen = open
}

// IsOpen reports the drawer flag.
func (c *Cart) IsOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isOpen
}
