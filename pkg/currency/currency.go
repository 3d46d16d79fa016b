package currency

import (
	"fmt"
	"strings"

	"github.com/amirasaad/priceconv/pkg/domain"
	"github.com/shopspring/decimal"
)

const (
	// DefaultDecimals is the default number of decimal places for prices
	DefaultDecimals = 2
	// RateDecimals is the number of decimal places shown for exchange rates
	RateDecimals = 4
)

// CurrencyMeta holds currency-specific metadata
type CurrencyMeta struct {
	Code       string
	Name       string
	Symbol     string
	WeightUnit string // unit prices in this currency are quoted per
	Decimals   int
}

// Known currencies. Prices in ILS are quoted per kilogram, prices in CAD per pound.
var (
	ILS = CurrencyMeta{Code: "ILS", Name: "Israeli New Shekel", Symbol: "₪", WeightUnit: "kg", Decimals: 2}
	CAD = CurrencyMeta{Code: "CAD", Name: "Canadian Dollar", Symbol: "$", WeightUnit: "lb", Decimals: 2}
)

var known = map[string]CurrencyMeta{
	ILS.Code: ILS,
	CAD.Code: CAD,
}

// Get returns currency metadata for the given code
func Get(code string) (CurrencyMeta, bool) {
	meta, ok := known[strings.ToUpper(strings.TrimSpace(code))]
	return meta, ok
}

// Pair is an ordered base/quote pair; rates are quote units per one base unit.
type Pair struct {
	Base  CurrencyMeta
	Quote CurrencyMeta
}

// DefaultPair is ILS→CAD.
var DefaultPair = Pair{Base: ILS, Quote: CAD}

// NewPair looks up both codes. Only the ILS/CAD pair is supported.
func NewPair(base, quote string) (Pair, error) {
	b, okBase := Get(base)
	q, okQuote := Get(quote)
	if !okBase || !okQuote || b.Code == q.Code {
		return Pair{}, fmt.Errorf("%w: %s/%s", domain.ErrUnsupportedPair, base, quote)
	}
	return Pair{Base: b, Quote: q}, nil
}

// Oriented returns (source, target), swapping base and quote when reversed.
func (p Pair) Oriented(reversed bool) (source, target CurrencyMeta) {
	if reversed {
		return p.Quote, p.Base
	}
	return p.Base, p.Quote
}

// String returns "BASE/QUOTE"
func (p Pair) String() string {
	return p.Base.Code + "/" + p.Quote.Code
}

// FormatFixed rounds v half away from zero to places decimals.
func FormatFixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

// FormatAmount formats v with the currency's decimals, without symbol.
func (c CurrencyMeta) FormatAmount(v float64) string {
	return FormatFixed(v, int32(c.Decimals))
}

// FormatPrice formats v prefixed with the currency symbol, e.g. "$43.66".
func (c CurrencyMeta) FormatPrice(v float64) string {
	return c.Symbol + c.FormatAmount(v)
}
