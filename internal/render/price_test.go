package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"450 грн", 450},
		{"95.5 грн", 95.5},
		{"  120 грн  ", 120},
		{"0 грн", 0},
		{"300", 300}, // suffix already absent
	}
	for _, tc := range cases {
		got, err := ParsePrice(tc.text, "грн")
		require.NoError(t, err, "text %q", tc.text)
		assert.Equal(t, tc.want, got, "text %q", tc.text)
	}
}

func TestParsePriceRejectsGarbage(t *testing.T) {
	for _, text := range []string{"", "грн", "дорого грн", "12,50 грн", "-5 грн"} {
		_, err := ParsePrice(text, "грн")
		assert.Error(t, err, "text %q", text)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "200 грн", FormatPrice(200, "грн"))
	assert.Equal(t, "95.5 грн", FormatPrice(95.5, "грн"))
	assert.Equal(t, "0 грн", FormatPrice(0, "грн"))
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, price := range []float64{1, 95.5, 450, 0.01} {
		got, err := ParsePrice(FormatPrice(price, "грн"), "грн")
		require.NoError(t, err)
		assert.Equal(t, price, got)
	}
}
