package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bellezamay-cart/cart"
	"bellezamay-cart/logger"
	"bellezamay-cart/storage"
	"bellezamay-cart/utils"
)

type CartHandler struct {
	Snapshots storage.SnapshotStore
	Renderer  cart.Renderer
	Log       *logger.Logger
}

// GetCart returns the cart as JSON for the storefront script.
func (h *CartHandler) GetCart(c *gin.Context) {
	store, ok := sessionStore(c, h.Snapshots, h.Renderer, h.Log)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lines":           store.Lines(),
		"count":           store.ItemCount(),
		"total":           store.Total(),
		"total_formatted": utils.FormatCOP(store.Total()),
	})
}

// GetPanel returns the rendered panel fragment. Opening the panel always
// re-renders from current state, so it is never stale.
func (h *CartHandler) GetPanel(c *gin.Context) {
	store, ok := sessionStore(c, h.Snapshots, h.Renderer, h.Log)
	if !ok {
		return
	}

	store.ShowPanel(c.DefaultQuery("open", "1") != "0")
	respondPanel(c, store)
}

// GetBadge returns the compact counter fragment.
func (h *CartHandler) GetBadge(c *gin.Context) {
	store, ok := sessionStore(c, h.Snapshots, h.Renderer, h.Log)
	if !ok {
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(store.Badge()))
}

// AddToCart adds a product from a wired promo box. Field names match what
// the wired forms post.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req struct {
		Nombre string `form:"nombre" json:"nombre"`
		Precio int64  `form:"precio" json:"precio"`
		Imagen string `form:"imagen" json:"imagen"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Producto inválido."})
		return
	}

	store, ok := sessionStore(c, h.Snapshots, h.Renderer, h.Log)
	if !ok {
		return
	}

	if err := store.AddItem(c.Request.Context(), req.Nombre, req.Precio, req.Imagen); err != nil {
		if errors.Is(err, cart.ErrInvalidProduct) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Producto inválido."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		return
	}

	respondPanel(c, store)
}

// UpdateQuantity sets a line's quantity from raw input; the store clamps
// anything non-numeric or below 1 to 1.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid line index"})
		return
	}

	store, ok := sessionStore(c, h.Snapshots, h.Renderer, h.Log)
	if !ok {
		return
	}

	raw := c.PostForm("cantidad")
	if raw == "" {
		raw = c.Query("cantidad")
	}
	if err := store.SetQuantity(c.Request.Context(), index, raw); err != nil {
		if errors.Is(err, cart.ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart line not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quantity"})
		return
	}

	respondPanel(c, store)
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid line index"})
		return
	}

	store, ok := sessionStore(c, h.Snapshots, h.Renderer, h.Log)
	if !ok {
		return
	}

	if err := store.RemoveItem(c.Request.Context(), index); err != nil {
		if errors.Is(err, cart.ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart line not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from cart"})
		return
	}

	respondPanel(c, store)
}

// ClearCart empties the cart; it goes through the confirmation prompt, so a
// request without confirm=true leaves the cart untouched.
func (h *CartHandler) ClearCart(c *gin.Context) {
	store, ok := sessionStore(c, h.Snapshots, h.Renderer, h.Log)
	if !ok {
		return
	}

	if err := store.Clear(c.Request.Context()); err != nil {
		if errors.Is(err, cart.ErrNotConfirmed) {
			c.JSON(http.StatusConflict, gin.H{"error": "Confirmation required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	respondPanel(c, store)
}
