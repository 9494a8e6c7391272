package format

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "zero", value: "0", expected: "$0.00"},
		{name: "centavos", value: "12.5", expected: "$12.50"},
		{name: "abaixo de mil", value: "999", expected: "$999.00"},
		{name: "arredonda para centavos", value: "999.994", expected: "$999.99"},
		{name: "arredondamento cruza o limite de mil", value: "999.995", expected: "$1K"},
		{name: "exatamente mil", value: "1000", expected: "$1K"},
		{name: "mil e quinhentos", value: "1500", expected: "$1.5K"},
		{name: "trunca em vez de arredondar", value: "1599.99", expected: "$1.5K"},
		{name: "valor mockado do dashboard", value: "153800", expected: "$153.8K"},
		{name: "logo abaixo de um milhão", value: "999999", expected: "$999.9K"},
		{name: "exatamente um milhão", value: "1000000", expected: "$1M"},
		{name: "milhões com decimal", value: "2750000", expected: "$2.7M"},
		{name: "bilhão", value: "1000000000", expected: "$1B"},
		{name: "negativo abaixo de mil", value: "-12.3", expected: "-$12.30"},
		{name: "negativo abreviado", value: "-1500", expected: "-$1.5K"},
		{name: "negativo que arredonda para zero", value: "-0.001", expected: "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(decimal.RequireFromString(tt.value)))
		})
	}
}

func TestFormatter_CustomSymbol(t *testing.T) {
	f := New("R$", "invalid-locale-@@")

	assert.Equal(t, "R$1.5K", f.FormatNumber(decimal.NewFromInt(1500)))
	assert.Equal(t, "R$0.00", f.FormatNumber(decimal.Zero))
}

func TestFormatter_Currency(t *testing.T) {
	assert.Equal(t, "$0.00", Default.Currency(decimal.Zero))
	assert.Equal(t, "$10.10", Default.Currency(decimal.RequireFromString("10.1")))
	assert.Equal(t, "-$3.00", Default.Currency(decimal.NewFromInt(-3)))
}

func TestFormatNumber_Deterministic(t *testing.T) {
	v := decimal.RequireFromString("123456.78")
	first := FormatNumber(v)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, FormatNumber(v))
	}
}

func TestFormatNumber_BeyondInt64(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "1e28", value: "1e28", expected: "$10000000000000000000B"},
		{name: "1.23e29", value: "1.23e29", expected: "$123000000000000000000B"},
		{name: "limite de int64 em bilhões", value: "9223372036854775807000000000", expected: "$9223372036854775807B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatNumber(decimal.RequireFromString(tt.value))

			assert.NotContains(t, got, "-")
			assert.Equal(t, tt.expected, strings.ReplaceAll(got, ",", ""))
		})
	}
}
