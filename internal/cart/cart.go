// Package cart implements the shopping cart: an ordered list of lines keyed
// by product id, with derived totals.
//
// Quantities are always positive while a line exists. A quantity change that
// would reach zero removes the line after the update is applied, never
// before. Totals are exact decimals; rounding happens only when a total is
// formatted for display.
//
// Cart is not safe for concurrent use.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
)

// Line is one product and its requested quantity.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns price times quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds at most one line per product, in insertion order.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

func (c *Cart) index(id int) int {
	for i, l := range c.lines {
		if l.Product.ID == id {
			return i
		}
	}
	return -1
}

// Add puts one unit of p in the cart: an existing line is incremented, a new
// line is appended at the end.
func (c *Cart) Add(p catalog.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// UpdateQuantity sets the line's quantity to max(0, quantity+delta) and then
// drops the line if the result is zero.
func (c *Cart) UpdateQuantity(id, delta int) error {
	i := c.index(id)
	if i < 0 {
		return errors.NewCartError("update quantity", errors.ErrLineNotFound).WithProductID(id)
	}

	c.lines[i].Quantity = max(0, c.lines[i].Quantity+delta)

	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.Quantity > 0 {
			kept = append(kept, l)
		}
	}
	c.lines = kept
	return nil
}

// Remove drops the line for id regardless of its quantity.
func (c *Cart) Remove(id int) error {
	i := c.index(id)
	if i < 0 {
		return errors.NewCartError("remove line", errors.ErrLineNotFound).WithProductID(id)
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in cart order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line returns the line for id.
func (c *Cart) Line(id int) (Line, bool) {
	if i := c.index(id); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// Len returns the number of lines (not items).
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total returns the exact sum of every line subtotal.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount returns the sum of quantities; this drives the cart badge.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Summary is a read-only view of a cart at one point in time.
type Summary struct {
	Lines     []Line          `json:"lines"`
	ItemCount int             `json:"itemCount"`
	Total     decimal.Decimal `json:"total"`
}

// Snapshot captures the current lines and totals.
func (c *Cart) Snapshot() Summary {
	return Summary{
		Lines:     c.Lines(),
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
	}
}

// IsEmpty reports whether the summary has no lines.
func (s Summary) IsEmpty() bool {
	return len(s.Lines) == 0
}
