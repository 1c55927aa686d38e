package cart

import "errors"

var (
	// ErrInvalidProduct rejects adds with an empty name or a non-positive
	// price, e.g. a promo box whose discounted price could not be read.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrLineNotFound means the positional index does not reference a
	// current cart line.
	ErrLineNotFound = errors.New("cart line not found")

	// ErrNotConfirmed means the user declined the confirmation prompt; the
	// cart is untouched.
	ErrNotConfirmed = errors.New("not confirmed")
)
