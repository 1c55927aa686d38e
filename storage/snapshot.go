package storage

import (
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"bellezamay-cart/models"
)

// snapshotLine is the wire shape of a persisted cart line. The field names
// match what the old storefront script wrote to localStorage, so carts
// migrated from it still load.
type snapshotLine struct {
	ID       any    `json:"id"`
	Name     string `json:"nombre"`
	Price    int64  `json:"precio"`
	ImageURL string `json:"imagen"`
	Quantity int    `json:"cantidad"`
}

func encodeSnapshot(cart models.Cart) ([]byte, error) {
	lines := make([]snapshotLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, snapshotLine{
			ID:       l.ID.String(),
			Name:     l.Name,
			Price:    l.UnitPrice,
			ImageURL: l.ImageURL,
			Quantity: l.Quantity,
		})
	}
	return json.Marshal(lines)
}

// decodeSnapshot parses a persisted snapshot. ok is false when the content
// cannot be parsed at all; individual ids that are not uuids (the old script
// used timestamp-based numbers) are replaced with fresh ones.
func decodeSnapshot(data []byte) (models.Cart, bool) {
	var lines []snapshotLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return models.Cart{}, false
	}

	var cart models.Cart
	for _, l := range lines {
		if l.Name == "" || l.Quantity < 1 {
			continue
		}
		id := uuid.New()
		if s, okStr := l.ID.(string); okStr {
			if parsed, err := uuid.Parse(s); err == nil {
				id = parsed
			}
		}
		cart.Lines = append(cart.Lines, models.CartLine{
			ID:        id,
			Name:      l.Name,
			UnitPrice: l.Price,
			ImageURL:  l.ImageURL,
			Quantity:  l.Quantity,
		})
	}
	return cart, true
}
