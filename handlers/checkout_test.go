package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestCheckoutEmptyCart(t *testing.T) {
	router, _ := setupRouter()
	cl := newClient(t, router)

	w := cl.do("POST", "/api/checkout", url.Values{"confirm": {"true"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Tu carrito está vacío") {
		t.Errorf("expected empty-cart notice, got %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "payment_url") {
		t.Error("empty-cart checkout must not produce a payment URL")
	}
}

func TestCheckoutDeclined(t *testing.T) {
	router, _ := setupRouter()
	cl := newClient(t, router)
	cl.addItem("Crema", 35000, "")

	w := cl.do("POST", "/api/checkout", url.Values{"confirm": {"false"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "payment_url") {
		t.Error("declined checkout must not produce a payment URL")
	}

	// Cart untouched.
	get := cl.do("GET", "/api/cart", nil)
	var cartResp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(get.Body.Bytes(), &cartResp); err != nil {
		t.Fatal(err)
	}
	if cartResp.Count != 1 {
		t.Errorf("declined checkout changed the cart, count = %d", cartResp.Count)
	}
}

func TestCheckoutConfirmed(t *testing.T) {
	router, _ := setupRouter()
	cl := newClient(t, router)
	cl.addItem("Crema", 35000, "")

	w := cl.do("POST", "/api/checkout", url.Values{"confirm": {"true"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		PaymentURL string `json:"payment_url"`
		Total      string `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != "$35.000" {
		t.Errorf("expected total $35.000, got %q", resp.Total)
	}

	u, err := url.Parse(resp.PaymentURL)
	if err != nil {
		t.Fatalf("payment URL does not parse: %v", err)
	}
	if u.Host != "link.mercadopago.com.co" {
		t.Errorf("unexpected payment host %q", u.Host)
	}
	if monto := u.Query().Get("monto"); monto != "$35.000" {
		t.Errorf("expected monto $35.000, got %q", monto)
	}
}
