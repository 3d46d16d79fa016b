package widget

import (
	"fmt"

	"github.com/amirasaad/priceconv/pkg/converter"
	"github.com/amirasaad/priceconv/pkg/currency"
)

// Title is the heading shown by every front end.
const Title = "Price Converter"

// Side describes one end of the conversion as displayed.
type Side struct {
	Code       string `json:"code"`
	Symbol     string `json:"symbol"`
	WeightUnit string `json:"weight_unit"`
}

// View is the display model of a State. Every string is ready to print.
type View struct {
	Title            string  `json:"title"`
	Source           Side    `json:"source"`
	Target           Side    `json:"target"`
	PairLabel        string  `json:"pair_label"`
	Mode             string  `json:"mode"`
	Direction        string  `json:"direction"`
	Input            string  `json:"input"`
	InputLabel       string  `json:"input_label"`
	Placeholder      string  `json:"placeholder"`
	Result           float64 `json:"result"`
	ResultLabel      string  `json:"result_label"`
	ResultText       string  `json:"result_text"`
	ResultUnit       string  `json:"result_unit,omitempty"`
	Rate             float64 `json:"rate"`
	RateText         string  `json:"rate_text"`
	WeightFactorText string  `json:"weight_factor_text,omitempty"`
	SwitchLabel      string  `json:"switch_label"`
	Loading          bool    `json:"loading"`
	RefreshEnabled   bool    `json:"refresh_enabled"`
	Warning          string  `json:"warning,omitempty"`
	RateSource       string  `json:"rate_source"`
	RateDate         string  `json:"rate_date,omitempty"`
	Footer           string  `json:"footer"`
}

// View renders the current state.
func (w *Widget) View() View {
	return Render(w.pair, w.State())
}

// Render maps a state to display strings.
func Render(pair currency.Pair, s State) View {
	src, dst := pair.Oriented(s.Inverted)

	inputLabel := "Price in " + src.Symbol
	resultUnit := ""
	factor := ""
	if s.WeightMode {
		inputLabel += " per " + src.WeightUnit
		resultUnit = "/ " + dst.WeightUnit
		factor = fmt.Sprintf("1 kg = %s lb", currency.FormatFixed(converter.KgToLb, currency.RateDecimals))
	}

	return View{
		Title:            Title,
		Source:           side(src),
		Target:           side(dst),
		PairLabel:        src.Code + " ⇄ " + dst.Code,
		Mode:             s.Mode().String(),
		Direction:        s.Direction().String(),
		Input:            s.Input,
		InputLabel:       inputLabel,
		Placeholder:      "0.00",
		Result:           s.Result,
		ResultLabel:      "Estimated Price in " + dst.Code,
		ResultText:       dst.FormatPrice(s.Result),
		ResultUnit:       resultUnit,
		Rate:             s.Rate,
		RateText:         RateText(pair, s.Direction(), s.Rate),
		WeightFactorText: factor,
		SwitchLabel:      fmt.Sprintf("Switch Direction (%s → %s)", src.Code, dst.Code),
		Loading:          s.Loading,
		RefreshEnabled:   !s.Loading,
		Warning:          s.Error,
		RateSource:       s.RateSource,
		RateDate:         s.RateDate,
		Footer:           "Live Market Rates • " + sourceLabel(s.RateSource),
	}
}

// RateText formats the rate as seen from the source side, e.g. "1 ILS = 0.4366 CAD".
func RateText(pair currency.Pair, dir converter.Direction, rate float64) string {
	src, dst := pair.Oriented(dir.IsReverse())
	shown := converter.DisplayRate(dir, rate)
	return fmt.Sprintf("1 %s = %s %s", src.Code, currency.FormatFixed(shown, currency.RateDecimals), dst.Code)
}

func side(c currency.CurrencyMeta) Side {
	return Side{Code: c.Code, Symbol: c.Symbol, WeightUnit: c.WeightUnit}
}

func sourceLabel(source string) string {
	switch source {
	case "frankfurter", "fallback", "":
		return "Frankfurter API"
	default:
		return source
	}
}
