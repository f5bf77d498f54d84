package priceformat

import (
	"errors"

	pdecimal "github.com/rpgo/pricefmt/pkg/decimal"
)

var (
	// ErrConfiguration indicates an unknown option key or an invalid option value at construction.
	ErrConfiguration = errors.New("invalid formatter configuration")

	// ErrInvalidArgument indicates an invalid argument passed to a mutator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotNumeric indicates a bound value that cannot be read as a number.
	ErrNotNumeric = pdecimal.ErrNotNumeric
)
