// Package checkout hands the cart off to the external payment page. The
// service never talks to the payment provider; it only builds the link the
// shopper opens, with the formatted total attached as an informational
// parameter the provider is free to ignore.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"bellezamay-cart/cart"
	"bellezamay-cart/utils"
)

var (
	// ErrEmptyCart aborts checkout before any navigation happens.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNotConfirmed means the shopper declined the total; nothing beyond
	// the snapshot write has happened.
	ErrNotConfirmed = errors.New("checkout not confirmed")
)

type Handoff struct {
	// BaseURL is the fixed external payment link.
	BaseURL string
	Confirm cart.Confirmer
}

// PaymentURL validates the cart, persists it so the shopper can come back,
// confirms the exact total, and returns the payment link carrying the
// formatted total in the monto query parameter.
func (h *Handoff) PaymentURL(ctx context.Context, store *cart.Store) (string, error) {
	if store.Len() == 0 {
		return "", ErrEmptyCart
	}

	if err := store.Persist(ctx); err != nil {
		return "", err
	}

	total := utils.FormatCOP(store.Total())
	prompt := fmt.Sprintf("El total a pagar es %s. ¿Deseas continuar con el pago?", total)
	if !h.Confirm.Confirm(prompt) {
		return "", ErrNotConfirmed
	}

	u, err := url.Parse(h.BaseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("monto", total)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
