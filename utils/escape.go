package utils

import "html"

// EscapeMarkup escapes the five reserved markup characters (&<>"') so that
// product names scraped from the listing cannot inject markup into the panel.
func EscapeMarkup(s string) string {
	return html.EscapeString(s)
}
