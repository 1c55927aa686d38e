package render

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"bellezamay-cart/models"
)

func line(name string, price int64, qty int) models.CartLine {
	return models.CartLine{ID: uuid.New(), Name: name, UnitPrice: price, ImageURL: "/img/p.jpg", Quantity: qty}
}

func TestRenderPanelEmptyState(t *testing.T) {
	html := NewPanelRenderer().RenderPanel(nil, false)

	if !strings.Contains(html, "Tu carrito está vacío") {
		t.Error("expected empty placeholder")
	}
	if !strings.Contains(html, `<strong id="cart-total">$0</strong>`) {
		t.Error("expected zero total")
	}
	if strings.Contains(html, "cart-item\"") {
		t.Error("empty cart must not render item rows")
	}
}

func TestRenderPanelLines(t *testing.T) {
	lines := []models.CartLine{
		line("Crema", 35000, 2),
		line("Serum", 48000, 1),
	}
	html := NewPanelRenderer().RenderPanel(lines, false)

	for _, want := range []string{
		`<p class="cart-name">Crema</p>`,
		`<p class="cart-price">$35.000</p>`,
		`Subtotal: <strong>$70.000</strong>`,
		`<p class="cart-name">Serum</p>`,
		`<strong id="cart-total">$118.000</strong>`,
		`value="2" data-index="0"`,
		`value="1" data-index="1"`,
		`<button class="eliminar-item" data-index="0"`,
		`<button class="eliminar-item" data-index="1"`,
		`<button id="vaciar-carrito" class="btn-pago">Vaciar</button>`,
		`<button id="checkout" class="btn-pago">Finalizar compra</button>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("panel missing %q", want)
		}
	}
	if strings.Contains(html, "Tu carrito está vacío") {
		t.Error("non-empty cart must not show the empty placeholder")
	}
}

func TestRenderPanelOpenClass(t *testing.T) {
	r := NewPanelRenderer()

	open := r.RenderPanel(nil, true)
	if !strings.Contains(open, `class="cart-sidebar open"`) {
		t.Error("expected open class on open panel")
	}

	closed := r.RenderPanel(nil, false)
	if !strings.Contains(closed, `class="cart-sidebar"`) {
		t.Error("expected no open class on closed panel")
	}
}

func TestRenderPanelEscapesNames(t *testing.T) {
	lines := []models.CartLine{line(`<script>alert("x")</script>`, 1000, 1)}
	html := NewPanelRenderer().RenderPanel(lines, false)

	if strings.Contains(html, "<script>") {
		t.Error("unescaped markup leaked into the panel")
	}
	if !strings.Contains(html, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;") {
		t.Error("expected escaped product name")
	}
}

func TestRenderBadge(t *testing.T) {
	got := NewPanelRenderer().RenderBadge(3)
	if got != `<span class="cart-count">3</span>` {
		t.Errorf("unexpected badge: %q", got)
	}
}
