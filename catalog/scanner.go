// Package catalog discovers purchasable products in the storefront's listing
// markup and wires an add-to-cart control onto each promo box. The scanner
// only reads the listing; its single mutation is appending one control per
// box, and scanning already-wired markup changes nothing.
package catalog

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PromoBox is the name/price/image triple extracted from one listing box.
// JSON names match the storefront script's vocabulary.
type PromoBox struct {
	Name     string `json:"nombre"`
	Price    int64  `json:"precio"`
	ImageURL string `json:"imagen"`
}

const (
	promoContainerClass = "promociones"
	boxClass            = "caja"
	priceClass          = "precio-descuento"
	addControlClass     = "btn-agregar"

	// fallbackName stands in when a box has no image or no alt text.
	fallbackName = "Producto"
)

// Scanner wires promo boxes to the cart's add endpoint.
type Scanner struct {
	// AddPath is the form action the wired controls post to.
	AddPath string
}

func NewScanner(addPath string) *Scanner {
	return &Scanner{AddPath: addPath}
}

// Scan parses the listing and returns the extracted boxes without touching
// the markup.
func (s *Scanner) Scan(r io.Reader) ([]PromoBox, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	boxes := make([]PromoBox, 0)
	for _, node := range findPromoBoxes(doc) {
		boxes = append(boxes, extractBox(node))
	}
	return boxes, nil
}

// Wire parses the listing, appends one add-to-cart form to every promo box
// that does not already carry one, and returns the rewritten markup together
// with the extracted boxes. Wiring twice is a no-op the second time.
func (s *Scanner) Wire(r io.Reader) (string, []PromoBox, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", nil, err
	}

	boxes := make([]PromoBox, 0)
	for _, node := range findPromoBoxes(doc) {
		box := extractBox(node)
		boxes = append(boxes, box)
		if findFirst(node, func(n *html.Node) bool { return hasClass(n, addControlClass) }) != nil {
			continue
		}
		node.AppendChild(s.addControl(box))
	}

	var b strings.Builder
	if err := html.Render(&b, doc); err != nil {
		return "", nil, err
	}
	return b.String(), boxes, nil
}

// addControl builds the form.btn-agregar node. The button stops click
// propagation so a click target wrapping the box does not also fire.
func (s *Scanner) addControl(box PromoBox) *html.Node {
	form := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Form,
		Data:     "form",
		Attr: []html.Attribute{
			{Key: "class", Val: addControlClass},
			{Key: "method", Val: "post"},
			{Key: "action", Val: s.AddPath},
		},
	}

	form.AppendChild(hiddenInput("nombre", box.Name))
	form.AppendChild(hiddenInput("precio", strconv.FormatInt(box.Price, 10)))
	form.AppendChild(hiddenInput("imagen", box.ImageURL))

	button := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Button,
		Data:     "button",
		Attr: []html.Attribute{
			{Key: "type", Val: "submit"},
			{Key: "onclick", Val: "event.stopPropagation()"},
		},
	}
	button.AppendChild(&html.Node{Type: html.TextNode, Data: "Agregar al carrito"})
	form.AppendChild(button)
	return form
}

func hiddenInput(name, value string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Input,
		Data:     "input",
		Attr: []html.Attribute{
			{Key: "type", Val: "hidden"},
			{Key: "name", Val: name},
			{Key: "value", Val: value},
		},
	}
}

// extractBox reads the triple out of one promo box: name from the image's
// alt text, image from its src, price from the discounted-price text. A
// missing price yields 0, which the add path rejects downstream.
func extractBox(box *html.Node) PromoBox {
	out := PromoBox{Name: fallbackName}

	if img := findFirst(box, func(n *html.Node) bool { return n.Type == html.ElementNode && n.DataAtom == atom.Img }); img != nil {
		out.ImageURL = attr(img, "src")
		if alt := attr(img, "alt"); alt != "" {
			out.Name = alt
		}
	}

	if priceNode := findFirst(box, func(n *html.Node) bool { return hasClass(n, priceClass) }); priceNode != nil {
		if price, ok := ExtractPrice(textContent(priceNode)); ok {
			out.Price = price
		}
	}
	return out
}

// findPromoBoxes returns every .caja element inside a .promociones container,
// in document order.
func findPromoBoxes(doc *html.Node) []*html.Node {
	var boxes []*html.Node
	var containers []*html.Node
	walk(doc, func(n *html.Node) {
		if hasClass(n, promoContainerClass) {
			containers = append(containers, n)
		}
	})
	for _, c := range containers {
		walk(c, func(n *html.Node) {
			if n != c && hasClass(n, boxClass) {
				boxes = append(boxes, n)
			}
		})
	}
	return boxes
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if pred(c) {
			return c
		}
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, f := range strings.Fields(attr(n, "class")) {
		if f == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}
