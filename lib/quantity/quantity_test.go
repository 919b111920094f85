package quantity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		text     string
		expected float64
		ok       bool
	}{
		{text: "2", expected: 2, ok: true},
		{text: "1.5", expected: 1.5, ok: true},
		{text: "1/2", expected: 0.5, ok: true},
		{text: "3/4", expected: 0.75, ok: true},
		{text: "1 1/2", expected: 1.5, ok: true},
		{text: "1-1/2", expected: 1.5, ok: true},
		{text: "2 3/4", expected: 2.75, ok: true},
		{text: "  2  ", expected: 2, ok: true},
		{text: "", ok: false},
		{text: "-", ok: false},
		{text: "   ", ok: false},
		{text: "a pinch", ok: false},
		{text: "1/0", ok: false},
	}

	for _, c := range testCases {
		t.Run(c.text, func(t *testing.T) {
			value, ok := ParseQuantity(c.text)
			require.Equal(t, c.ok, ok)
			if c.ok {
				require.InDelta(t, c.expected, value, 1e-9)
			}
		})
	}
}
