// Package format formata valores monetários para exibição no dashboard
package format

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type tier struct {
	threshold decimal.Decimal
	suffix    string
}

// Do maior para o menor
var tiers = []tier{
	{threshold: decimal.New(1, 9), suffix: "B"},
	{threshold: decimal.New(1, 6), suffix: "M"},
	{threshold: decimal.New(1, 3), suffix: "K"},
}

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

type Formatter struct {
	symbol  string
	printer *message.Printer
}

// Default usa "$" e en-US
var Default = New("$", "en-US")

// New cria um Formatter; um locale inválido cai para en-US
func New(symbol string, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}

	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

// FormatNumber formata com o Formatter padrão
func FormatNumber(v decimal.Decimal) string {
	return Default.FormatNumber(v)
}

// FormatNumber arredonda para centavos e abrevia a partir de mil.
// Abreviações mantêm uma casa decimal truncada, ex: 999999 -> $999.9K, 1500 -> $1.5K.
func (f *Formatter) FormatNumber(v decimal.Decimal) string {
	v = v.Round(2)

	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Abs()
	}

	for _, t := range tiers {
		if v.GreaterThanOrEqual(t.threshold) {
			scaled := v.Div(t.threshold).Truncate(1)
			return sign + f.symbol + f.abbreviated(scaled) + t.suffix
		}
	}

	return sign + f.symbol + f.printer.Sprintf("%.2f", v.InexactFloat64())
}

// Currency formata sempre com duas casas, sem abreviação
func (f *Formatter) Currency(v decimal.Decimal) string {
	v = v.Round(2)
	if v.IsNegative() {
		return "-" + f.symbol + f.printer.Sprintf("%.2f", v.Abs().InexactFloat64())
	}
	return f.symbol + f.printer.Sprintf("%.2f", v.InexactFloat64())
}

func (f *Formatter) abbreviated(scaled decimal.Decimal) string {
	if scaled.Equal(scaled.Truncate(0)) {
		// IntPart estoura int64 acima de ~9.2e18
		if scaled.LessThanOrEqual(maxInt64) {
			return f.printer.Sprintf("%d", scaled.IntPart())
		}
		return f.printer.Sprintf("%.0f", scaled.InexactFloat64())
	}
	return f.printer.Sprintf("%.1f", scaled.InexactFloat64())
}
