package schema

import (
	"testing"

	"adlens/domain/core"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected core.Number
	}{
		{"plain integer", "123", core.Num(123)},
		{"plain float", "12.5", core.Num(12.5)},
		{"negative", "-4.2", core.Num(-4.2)},
		{"dollar sign", "$1,234.50", core.Num(1234.5)},
		{"euro", "€99", core.Num(99)},
		{"currency code", "1200 USD", core.Num(1200)},
		{"percent", "3.5%", core.Num(3.5)},
		{"accounting negative", "($12.00)", core.Num(-12)},
		{"inner spaces", "1 234", core.Num(1234)},
		{"empty", "", core.None()},
		{"whitespace", "   ", core.None()},
		{"text", "n/a", core.None()},
		{"lone currency", "$", core.None()},
		{"infinity rejected", "Inf", core.None()},
		{"nan rejected", "NaN", core.None()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, parseNumber(test.raw))
		})
	}
}

func TestParseDateCell(t *testing.T) {
	d := parseDate("2024-06-30")
	assert.NotNil(t, d)
	assert.Equal(t, "2024-06-30", d.String())

	assert.Nil(t, parseDate("garbage"))
	assert.Nil(t, parseDate(""))
}
