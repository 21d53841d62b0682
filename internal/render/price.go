package render

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice reads a product price out of its display text: the currency
// suffix is stripped and the remainder parsed as a decimal. The text
// format belongs to the page markup, not to the cart; this function is
// the single place that contract is interpreted.
func ParsePrice(text, suffix string) (float64, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), suffix))
	price, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("price text %q: %w", text, err)
	}
	if price < 0 {
		return 0, fmt.Errorf("price text %q: negative price", text)
	}
	return price, nil
}

// FormatPrice is the inverse of ParsePrice.
func FormatPrice(amount float64, suffix string) string {
	return strconv.FormatFloat(amount, 'f', -1, 64) + " " + suffix
}
