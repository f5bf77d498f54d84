package decimal

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotNumeric is returned when a value cannot be coerced into a decimal number.
var ErrNotNumeric = errors.New("value is not numeric")

// Coerce converts a numeric-like value (integers, floats, numeric strings,
// json.Number or decimal.Decimal) into a decimal.Decimal.
func Coerce(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero, fmt.Errorf("%w: nil decimal", ErrNotNumeric)
		}
		return *n, nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int8:
		return decimal.NewFromInt(int64(n)), nil
	case int16:
		return decimal.NewFromInt(int64(n)), nil
	case int32:
		return decimal.NewFromInt32(n), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case uint:
		return fromUint64(uint64(n)), nil
	case uint8:
		return fromUint64(uint64(n)), nil
	case uint16:
		return fromUint64(uint64(n)), nil
	case uint32:
		return fromUint64(uint64(n)), nil
	case uint64:
		return fromUint64(n), nil
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrNotNumeric, n)
		}
		return decimal.NewFromFloat32(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrNotNumeric, n)
		}
		return decimal.NewFromFloat(n), nil
	case json.Number:
		return fromString(n.String())
	case string:
		return fromString(n)
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", ErrNotNumeric, v)
	}
}

func fromUint64(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func fromString(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty string", ErrNotNumeric)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return d, nil
}

// Fixed is a number rounded to a fixed count of decimal places and split
// into sign, integer digits and fractional digits.
type Fixed struct {
	Negative bool
	Integer  string
	Fraction string
}

// NewFixed rounds d half away from zero to places decimal places.
// A value that rounds to zero carries no sign.
func NewFixed(d decimal.Decimal, places int) Fixed {
	if places < 0 {
		places = 0
	}
	s := d.StringFixed(int32(places))
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	integer, fraction, _ := strings.Cut(s, ".")
	return Fixed{Negative: neg, Integer: integer, Fraction: fraction}
}

// FractionIsZero reports whether every fractional digit is '0'.
// An empty fraction counts as zero.
func (f Fixed) FractionIsZero() bool {
	return strings.Trim(f.Fraction, "0") == ""
}

// Format joins the parts using decSep between integer and fraction and
// thousandsSep between groups of three integer digits. The decimal
// separator is omitted when the fraction is empty.
func (f Fixed) Format(decSep, thousandsSep string) string {
	var b strings.Builder
	if f.Negative {
		b.WriteByte('-')
	}
	b.WriteString(Group(f.Integer, thousandsSep))
	if f.Fraction != "" {
		b.WriteString(decSep)
		b.WriteString(f.Fraction)
	}
	return b.String()
}

// Group inserts sep between every group of three digits, counted from the right.
func Group(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
