package domain

import "errors"

// Rate errors
var (
	// ErrRateUnavailable is returned when the live rate could not be retrieved
	ErrRateUnavailable = errors.New("exchange rate unavailable")
	// ErrInvalidRate is returned when a rate is zero, negative or not finite
	ErrInvalidRate = errors.New("exchange rate must be a positive finite number")
	// ErrUnsupportedPair is returned when a currency pair is not ILS/CAD
	ErrUnsupportedPair = errors.New("unsupported currency pair")
	// ErrRefreshInProgress is returned when the refresh control is used while a fetch is pending
	ErrRefreshInProgress = errors.New("rate refresh already in progress")
)

// Input errors
var (
	// ErrInvalidDirection is returned when a direction name is not recognized
	ErrInvalidDirection = errors.New("invalid conversion direction")
	// ErrInvalidMode is returned when a mode name is not recognized
	ErrInvalidMode = errors.New("invalid conversion mode")
)
