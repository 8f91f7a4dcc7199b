package entities

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPlayType = errors.New("unknown play type")
	ErrPlayNotFound    = errors.New("play not found")
	ErrInvalidAudience = errors.New("invalid audience")
	ErrAmountOverflow  = errors.New("amount overflows int64")
)

// UnknownPlayTypeError reports a play whose type tag has no pricing rule.
type UnknownPlayTypeError struct {
	Type string
}

func (e *UnknownPlayTypeError) Error() string {
	return fmt.Sprintf("unknown type: %s", e.Type)
}

func (e *UnknownPlayTypeError) Unwrap() error {
	return ErrUnknownPlayType
}

// MissingPlayError reports a performance referencing a play absent from the catalog.
type MissingPlayError struct {
	PlayID string
}

func (e *MissingPlayError) Error() string {
	return fmt.Sprintf("play not found: %s", e.PlayID)
}

func (e *MissingPlayError) Unwrap() error {
	return ErrPlayNotFound
}
