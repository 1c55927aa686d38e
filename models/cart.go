package models

import (
	"github.com/google/uuid"
)

// CartLine is one distinct product entry in the cart. Lines are unique by
// Name: adding the same product again increments Quantity instead of
// creating a second line.
type CartLine struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	ImageURL  string    `json:"image_url"`
	Quantity  int       `json:"quantity"`
}

func (l CartLine) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart is the ordered collection of cart lines. Insertion order is display
// order. The zero value is an empty cart ready for use.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add merges the product into the cart: an existing line with the same name
// (exact, case-sensitive) gets its quantity bumped, otherwise a new line with
// quantity 1 and a fresh id is appended. Returns the affected line's index.
func (c *Cart) Add(name string, unitPrice int64, imageURL string) int {
	for i := range c.Lines {
		if c.Lines[i].Name == name {
			c.Lines[i].Quantity++
			return i
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ID:        uuid.New(),
		Name:      name,
		UnitPrice: unitPrice,
		ImageURL:  imageURL,
		Quantity:  1,
	})
	return len(c.Lines) - 1
}

// SetQuantity sets the quantity of the line at index. Values below 1 are
// clamped to 1; a line never drops to zero through quantity edits, removal
// is a separate operation. Returns false when index is out of range.
func (c *Cart) SetQuantity(index, quantity int) bool {
	if index < 0 || index >= len(c.Lines) {
		return false
	}
	if quantity < 1 {
		quantity = 1
	}
	c.Lines[index].Quantity = quantity
	return true
}

// Remove deletes the line at index; subsequent lines shift down.
func (c *Cart) Remove(index int) bool {
	if index < 0 || index >= len(c.Lines) {
		return false
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.Lines = nil
}

// Total is always recomputed from the lines, never cached.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount sums quantities across lines (distinct from the line count);
// this is what the badge shows.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

func (c *Cart) Len() int {
	return len(c.Lines)
}
