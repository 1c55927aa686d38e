// Package render projects cart state into the storefront's panel markup.
// Rendering rebuilds the whole fragment from the lines on every call, so
// per-line controls always carry current indices and nothing is patched in
// place.
package render

import (
	"fmt"
	"strings"

	"bellezamay-cart/models"
	"bellezamay-cart/utils"
)

type PanelRenderer struct{}

func NewPanelRenderer() *PanelRenderer {
	return &PanelRenderer{}
}

// RenderPanel builds the slide-out cart panel. The class names match the
// storefront stylesheet (.cart-sidebar and friends).
func (r *PanelRenderer) RenderPanel(lines []models.CartLine, open bool) string {
	class := "cart-sidebar"
	if open {
		class += " open"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<aside id="cart-sidebar" class="%s">`, class)
	b.WriteString(`<div class="cart-header">`)
	b.WriteString(`<h2>🛍️ Tu carrito</h2>`)
	b.WriteString(`<button class="cerrar-carrito" aria-label="Cerrar carrito">&times;</button>`)
	b.WriteString(`</div>`)

	b.WriteString(`<div class="cart-body">`)
	if len(lines) == 0 {
		b.WriteString(`<div class="cart-items" id="cart-items"></div>`)
		b.WriteString(`<div class="cart-empty" id="cart-empty">Tu carrito está vacío</div>`)
	} else {
		b.WriteString(`<div class="cart-items" id="cart-items">`)
		for idx, l := range lines {
			r.renderLine(&b, idx, l)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)

	c := models.Cart{Lines: lines}
	b.WriteString(`<div class="cart-footer">`)
	fmt.Fprintf(&b, `<div class="cart-total">Total: <strong id="cart-total">%s</strong></div>`, utils.FormatCOP(c.Total()))
	b.WriteString(`<div class="cart-actions">`)
	b.WriteString(`<button id="vaciar-carrito" class="btn-pago">Vaciar</button>`)
	b.WriteString(`<button id="checkout" class="btn-pago">Finalizar compra</button>`)
	b.WriteString(`</div>`)
	b.WriteString(`</div>`)
	b.WriteString(`</aside>`)
	return b.String()
}

func (r *PanelRenderer) renderLine(b *strings.Builder, idx int, l models.CartLine) {
	name := utils.EscapeMarkup(l.Name)

	b.WriteString(`<div class="cart-item">`)
	fmt.Fprintf(b, `<img class="cart-img" src="%s" alt="%s" />`, utils.EscapeMarkup(l.ImageURL), name)
	b.WriteString(`<div class="cart-info">`)
	fmt.Fprintf(b, `<p class="cart-name">%s</p>`, name)
	fmt.Fprintf(b, `<p class="cart-price">%s</p>`, utils.FormatCOP(l.UnitPrice))
	b.WriteString(`<div class="cart-qty">`)
	b.WriteString(`<label>Cantidad:</label>`)
	fmt.Fprintf(b, `<input class="cantidad-input" type="number" min="1" value="%d" data-index="%d">`, l.Quantity, idx)
	fmt.Fprintf(b, `<button class="eliminar-item" data-index="%d" aria-label="Eliminar">Eliminar</button>`, idx)
	b.WriteString(`</div>`)
	fmt.Fprintf(b, `<p class="cart-sub">Subtotal: <strong>%s</strong></p>`, utils.FormatCOP(l.Subtotal()))
	b.WriteString(`</div>`)
	b.WriteString(`</div>`)
}

// RenderBadge renders the compact item counter next to the cart icon.
func (r *PanelRenderer) RenderBadge(count int) string {
	return fmt.Sprintf(`<span class="cart-count">%d</span>`, count)
}
