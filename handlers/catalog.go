package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bellezamay-cart/catalog"
)

type CatalogHandler struct {
	Scanner *catalog.Scanner
}

// WireListing takes listing markup in the request body and returns it with
// one add-to-cart control wired onto each promo box. Already-wired boxes are
// left alone, so the storefront can re-post its page safely.
func (h *CatalogHandler) WireListing(c *gin.Context) {
	wired, boxes, err := h.Scanner.Wire(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse listing markup"})
		return
	}

	c.Header("X-Promo-Count", strconv.Itoa(len(boxes)))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(wired))
}

// ScanListing extracts the promo boxes without rewriting the markup.
func (h *CatalogHandler) ScanListing(c *gin.Context) {
	boxes, err := h.Scanner.Scan(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse listing markup"})
		return
	}

	c.JSON(http.StatusOK, boxes)
}
