package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "Rs.0.00"},
		{"500", "Rs.500.00"},
		{"1500", "Rs.1,500.00"},
		{"123456", "Rs.1,23,456.00"},
		{"12345678.5", "Rs.1,23,45,678.50"},
		{"-2500", "-Rs.2,500.00"},
		{"999.999", "Rs.1,000.00"},
	}

	for _, c := range cases {
		amount, err := decimal.NewFromString(c.in)
		assert.NoError(t, err)
		assert.Equal(t, c.want, Format(amount), "input %s", c.in)
	}
}
