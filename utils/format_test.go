package utils

import "testing"

func TestFormatCOP(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "$0"},
		{35000, "$35.000"},
		{70000, "$70.000"},
		{167000, "$167.000"},
		{1250000, "$1.250.000"},
	}

	for _, tc := range cases {
		if got := FormatCOP(tc.amount); got != tc.want {
			t.Errorf("FormatCOP(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestEscapeMarkup(t *testing.T) {
	got := EscapeMarkup(`Crema <"5&'s">`)
	want := "Crema &lt;&#34;5&amp;&#39;s&#34;&gt;"
	if got != want {
		t.Errorf("EscapeMarkup = %q, want %q", got, want)
	}
}

func TestEscapeMarkupPlainTextUntouched(t *testing.T) {
	if got := EscapeMarkup("Crema hidratante"); got != "Crema hidratante" {
		t.Errorf("plain text changed: %q", got)
	}
}
