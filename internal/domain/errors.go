package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrResourceMissing = errors.New("resource missing")
	ErrUnknownAvatar   = errors.New("unknown avatar")
)

// Both wrap ErrInvalidInput.
var (
	ErrHeightNotPositive = fmt.Errorf("%w: height must be greater than zero", ErrInvalidInput)
	ErrNegativeWeight    = fmt.Errorf("%w: weight must not be negative", ErrInvalidInput)
)
