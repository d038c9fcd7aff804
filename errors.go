package edid

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput is returned when the input is too short for the field read.
	ErrTruncatedInput = errors.New("edid: truncated input")
	// ErrInvalidManufacturer is returned for a letter code outside A..Z.
	ErrInvalidManufacturer = errors.New("edid: invalid manufacturer id")
)

func truncated(field string, need, have int) error {
	return fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncatedInput, field, need, have)
}

// need checks that b covers [0, end) for the named field.
func need(b []byte, field string, end int) error {
	if len(b) < end {
		return truncated(field, end, len(b))
	}
	return nil
}
