package storage

import (
	"context"

	"bellezamay-cart/models"
)

// SnapshotStore persists one cart snapshot per session key. Load never
// surfaces malformed content to the caller: a missing or unparsable snapshot
// comes back as an empty cart with a nil error, so a corrupt row can at
// worst lose a cart, never break the page.
type SnapshotStore interface {
	Load(ctx context.Context, key string) (models.Cart, error)
	Save(ctx context.Context, key string, cart models.Cart) error
}
