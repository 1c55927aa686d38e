package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bellezamay-cart/cart"
	"bellezamay-cart/logger"
	"bellezamay-cart/middleware"
	"bellezamay-cart/storage"
)

// sessionStore builds the request's cart store: session key from the cookie,
// lines from the snapshot store, confirmations answered by the request's
// confirm field. Returns false after writing the error response.
func sessionStore(c *gin.Context, snapshots storage.SnapshotStore, renderer cart.Renderer, log *logger.Logger) (*cart.Store, bool) {
	sid, ok := middleware.SessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No cart session"})
		return nil, false
	}

	store, err := cart.NewStore(c.Request.Context(), sid.String(), snapshots, renderer, requestConfirmer(c), log)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return nil, false
	}
	return store, true
}

// requestConfirmer maps the modal confirm dialog onto the request: the
// client answers the prompt up front via the confirm field.
func requestConfirmer(c *gin.Context) cart.Confirmer {
	return cart.ConfirmerFunc(func(string) bool {
		v := c.PostForm("confirm")
		if v == "" {
			v = c.Query("confirm")
		}
		ok, _ := strconv.ParseBool(v)
		return ok
	})
}

// respondPanel writes the rendered panel fragment with the badge count in a
// header so the storefront can update the counter without a second request.
func respondPanel(c *gin.Context, store *cart.Store) {
	c.Header("X-Cart-Count", strconv.Itoa(store.ItemCount()))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(store.Panel()))
}
