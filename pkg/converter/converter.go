// Package converter holds the price conversion arithmetic between the base and
// quote currency, with an optional per-weight adjustment between kilograms and
// pounds.
package converter

import (
	"fmt"
	"strings"

	"github.com/amirasaad/priceconv/pkg/domain"
)

const (
	// KgToLb is the number of pounds in one kilogram.
	KgToLb = 2.20462

	// DefaultRate is the ILS→CAD rate used until a live rate is fetched.
	DefaultRate = 0.4366
)

// Direction selects which currency is the source of a conversion.
type Direction int

const (
	// Forward converts base to quote (ILS→CAD).
	Forward Direction = iota
	// Reverse converts quote to base (CAD→ILS).
	Reverse
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Reverse {
		return Forward
	}
	return Reverse
}

// IsReverse reports whether d converts quote to base.
func (d Direction) IsReverse() bool { return d == Reverse }

// String returns the wire name of the direction.
func (d Direction) String() string {
	if d == Reverse {
		return "cad-ils"
	}
	return "ils-cad"
}

// ParseDirection accepts "ils-cad"/"forward" and "cad-ils"/"reverse".
// An empty string is Forward.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ils-cad", "forward":
		return Forward, nil
	case "cad-ils", "reverse":
		return Reverse, nil
	default:
		return Forward, fmt.Errorf("%w: %q", domain.ErrInvalidDirection, s)
	}
}

// Mode selects between a total price and a per-weight price.
type Mode int

const (
	// Total treats the amount as a plain price.
	Total Mode = iota
	// PerWeight treats the amount as a price per kg (ILS) or per lb (CAD).
	PerWeight
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	if m == PerWeight {
		return "weight"
	}
	return "total"
}

// ParseMode accepts "total" and "weight". An empty string is Total.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "total":
		return Total, nil
	case "weight", "per-weight":
		return PerWeight, nil
	default:
		return Total, fmt.Errorf("%w: %q", domain.ErrInvalidMode, s)
	}
}

// Convert applies rate (quote units per one base unit) to amount.
//
// Forward without weight is amount*rate. Forward with weight turns a price
// per kg into a price per lb, so the product is divided by KgToLb. Reverse
// divides by rate and, with weight, turns a price per lb into a price per kg.
func Convert(amount float64, dir Direction, weightMode bool, rate float64) float64 {
	if !dir.IsReverse() {
		if weightMode {
			return (amount * rate) / KgToLb
		}
		return amount * rate
	}
	if weightMode {
		return (amount * KgToLb) / rate
	}
	return amount / rate
}

// DisplayRate returns the rate as seen from the source currency of dir.
func DisplayRate(dir Direction, rate float64) float64 {
	if dir.IsReverse() {
		return 1 / rate
	}
	return rate
}
