package resistor

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewBands matches an InvalidBandCountError with fewer than MinBands bands.
	ErrTooFewBands = errors.New("not enough color bands")
	// ErrTooManyBands matches an InvalidBandCountError with more than MaxBands bands.
	ErrTooManyBands = errors.New("too many color bands")
)

// InvalidBandCountError is returned when a resistor has fewer than MinBands
// or more than MaxBands bands.
type InvalidBandCountError struct {
	Count int
}

// TooFew reports whether the resistor had fewer bands than required.
func (e *InvalidBandCountError) TooFew() bool {
	return e.Count < MinBands
}

// TooMany reports whether the resistor had more bands than allowed.
func (e *InvalidBandCountError) TooMany() bool {
	return e.Count > MaxBands
}

func (e *InvalidBandCountError) Error() string {
	if e.TooMany() {
		return fmt.Sprintf("%v: got %d, at most %d allowed", ErrTooManyBands, e.Count, MaxBands)
	}
	return fmt.Sprintf("%v: got %d, at least %d required", ErrTooFewBands, e.Count, MinBands)
}

// Is matches ErrTooFewBands or ErrTooManyBands depending on the count.
func (e *InvalidBandCountError) Is(target error) bool {
	switch target {
	case ErrTooFewBands:
		return e.TooFew()
	case ErrTooManyBands:
		return e.TooMany()
	}
	return false
}

// BandError reports which band could not be decoded. Err is usually a
// *colorcode.UnsupportedRoleError.
type BandError struct {
	Position int // zero based, first band first
	Err      error
}

func (e *BandError) Error() string {
	return fmt.Sprintf("band %d: %v", e.Position+1, e.Err)
}

func (e *BandError) Unwrap() error {
	return e.Err
}
