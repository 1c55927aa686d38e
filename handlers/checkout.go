package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bellezamay-cart/cart"
	"bellezamay-cart/checkout"
	"bellezamay-cart/logger"
	"bellezamay-cart/storage"
	"bellezamay-cart/utils"
)

type CheckoutHandler struct {
	Snapshots   storage.SnapshotStore
	Renderer    cart.Renderer
	PaymentLink string
	Log         *logger.Logger
}

// Checkout validates the cart and, once the shopper confirms the total,
// returns the external payment URL for the client to open in a new tab. The
// service itself never navigates anywhere.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	store, ok := sessionStore(c, h.Snapshots, h.Renderer, h.Log)
	if !ok {
		return
	}

	handoff := &checkout.Handoff{BaseURL: h.PaymentLink, Confirm: requestConfirmer(c)}
	paymentURL, err := handoff.PaymentURL(c.Request.Context(), store)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "🛒 Tu carrito está vacío"})
		case errors.Is(err, checkout.ErrNotConfirmed):
			c.JSON(http.StatusOK, gin.H{"message": "Pago cancelado"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start checkout"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payment_url": paymentURL,
		"total":       utils.FormatCOP(store.Total()),
	})
}
