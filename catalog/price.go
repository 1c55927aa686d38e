package catalog

import "strconv"

// ExtractPrice pulls the integer peso amount out of a display string such as
// "$35.000" by keeping only its digits. ok is false when the text carries no
// digits at all.
func ExtractPrice(text string) (price int64, ok bool) {
	digits := make([]byte, 0, len(text))
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits = append(digits, byte(r))
		}
	}
	if len(digits) == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
