package priceformat

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// SymbolPosition places the currency symbol relative to the number.
type SymbolPosition int

const (
	// SymbolAfter renders "4.50 €".
	SymbolAfter SymbolPosition = 1
	// SymbolBefore renders "€ 4.50".
	SymbolBefore SymbolPosition = 2
)

// Valid reports whether p is SymbolAfter or SymbolBefore.
func (p SymbolPosition) Valid() bool {
	return p == SymbolAfter || p == SymbolBefore
}

func (p SymbolPosition) String() string {
	switch p {
	case SymbolAfter:
		return "after"
	case SymbolBefore:
		return "before"
	default:
		return fmt.Sprintf("SymbolPosition(%d)", int(p))
	}
}

// MarshalText encodes the position as "after" or "before".
func (p SymbolPosition) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: symbol position %d", ErrInvalidArgument, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes "after" or "before".
func (p *SymbolPosition) UnmarshalText(text []byte) error {
	pos, err := ParseSymbolPosition(string(text))
	if err != nil {
		return err
	}
	*p = pos
	return nil
}

// ParseSymbolPosition reads "after" or "before", ignoring case and surrounding space.
func ParseSymbolPosition(s string) (SymbolPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "after":
		return SymbolAfter, nil
	case "before":
		return SymbolBefore, nil
	default:
		return 0, fmt.Errorf("%w: unknown symbol position %q", ErrInvalidArgument, s)
	}
}

// MaxDecimals is the largest accepted number of decimal places.
const MaxDecimals = 64

// Option keys accepted by NewFromMap and Config.Set.
const (
	OptCurrency           = "currency"
	OptDecimals           = "decimals"
	OptDecimalSeparator   = "decimalSeparator"
	OptThousandsSeparator = "thousandsSeparator"
	OptSymbolPosition     = "symbolPosition"
	OptSymbolSeparator    = "symbolSeparator"
	OptUnbreakable        = "unbreakable"
	OptTrimTrailingZeros  = "trimTrailingZeros"
	OptAutoTrailingZeros  = "autoTrailingZeros"
)

// OptionNames returns every recognised option key in sorted order.
func OptionNames() []string {
	names := []string{
		OptCurrency,
		OptDecimals,
		OptDecimalSeparator,
		OptThousandsSeparator,
		OptSymbolPosition,
		OptSymbolSeparator,
		OptUnbreakable,
		OptTrimTrailingZeros,
		OptAutoTrailingZeros,
	}
	sort.Strings(names)
	return names
}

// Config holds the formatting rules of a Formatter.
type Config struct {
	// Currency is an ISO 4217 code from the symbol table or a literal symbol.
	Currency           string         `yaml:"currency" json:"currency"`
	Decimals           int            `yaml:"decimals" json:"decimals"`
	DecimalSeparator   string         `yaml:"decimalSeparator" json:"decimalSeparator"`
	ThousandsSeparator string         `yaml:"thousandsSeparator" json:"thousandsSeparator"`
	SymbolPosition     SymbolPosition `yaml:"symbolPosition" json:"symbolPosition"`
	SymbolSeparator    string         `yaml:"symbolSeparator" json:"symbolSeparator"`
	// Unbreakable replaces every space of the output with NBSP.
	Unbreakable       bool `yaml:"unbreakable" json:"unbreakable"`
	TrimTrailingZeros bool `yaml:"trimTrailingZeros" json:"trimTrailingZeros"`
	AutoTrailingZeros bool `yaml:"autoTrailingZeros" json:"autoTrailingZeros"`
}

// DefaultConfig returns the built-in defaults: "4.50 €" style output with
// non-breaking spaces and automatic trailing zero removal.
func DefaultConfig() Config {
	return Config{
		Currency:           "EUR",
		Decimals:           2,
		DecimalSeparator:   ".",
		ThousandsSeparator: "",
		SymbolPosition:     SymbolAfter,
		SymbolSeparator:    " ",
		Unbreakable:        true,
		TrimTrailingZeros:  false,
		AutoTrailingZeros:  true,
	}
}

// Validate checks the fields with a restricted domain.
func (c Config) Validate() error {
	if c.Decimals < 0 || c.Decimals > MaxDecimals {
		return fmt.Errorf("%w: %s must be between 0 and %d, got %d", ErrConfiguration, OptDecimals, MaxDecimals, c.Decimals)
	}
	if !c.SymbolPosition.Valid() {
		return fmt.Errorf("%w: %s must be %q or %q, got %d", ErrConfiguration, OptSymbolPosition, SymbolAfter, SymbolBefore, int(c.SymbolPosition))
	}
	return nil
}

// ConfigFromMap applies options on top of DefaultConfig. Keys are applied
// in sorted order so the reported error is deterministic.
func ConfigFromMap(options map[string]any) (Config, error) {
	cfg := DefaultConfig()
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := cfg.Set(k, options[k]); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Set assigns a single option by key. Unknown keys and values of the wrong
// type fail with ErrConfiguration.
func (c *Config) Set(key string, value any) error {
	var err error
	switch key {
	case OptCurrency:
		c.Currency, err = stringOption(key, value)
	case OptDecimals:
		c.Decimals, err = decimalsOption(value)
	case OptDecimalSeparator:
		c.DecimalSeparator, err = stringOption(key, value)
	case OptThousandsSeparator:
		c.ThousandsSeparator, err = stringOption(key, value)
	case OptSymbolPosition:
		c.SymbolPosition, err = positionOption(value)
	case OptSymbolSeparator:
		c.SymbolSeparator, err = stringOption(key, value)
	case OptUnbreakable:
		c.Unbreakable, err = boolOption(key, value)
	case OptTrimTrailingZeros:
		c.TrimTrailingZeros, err = boolOption(key, value)
	case OptAutoTrailingZeros:
		c.AutoTrailingZeros, err = boolOption(key, value)
	default:
		return fmt.Errorf("%w: unknown option %q (known: %s)", ErrConfiguration, key, strings.Join(OptionNames(), ", "))
	}
	return err
}

func stringOption(key string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrConfiguration, key, value)
	}
	return s, nil
}

func boolOption(key string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a bool, got %T", ErrConfiguration, key, value)
	}
	return b, nil
}

func decimalsOption(value any) (int, error) {
	var n float64
	switch v := value.(type) {
	case int:
		n = float64(v)
	case int8:
		n = float64(v)
	case int16:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint8:
		n = float64(v)
	case uint16:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	case float32:
		n = float64(v)
	case float64:
		n = v
	default:
		return 0, fmt.Errorf("%w: %s must be an integer, got %T", ErrConfiguration, OptDecimals, value)
	}
	if math.IsNaN(n) || n != math.Trunc(n) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrConfiguration, OptDecimals, value)
	}
	if n < 0 || n > MaxDecimals {
		return 0, fmt.Errorf("%w: %s must be between 0 and %d, got %v", ErrConfiguration, OptDecimals, MaxDecimals, value)
	}
	return int(n), nil
}

func positionOption(value any) (SymbolPosition, error) {
	var pos SymbolPosition
	switch v := value.(type) {
	case SymbolPosition:
		pos = v
	case int:
		pos = SymbolPosition(v)
	case string:
		p, err := ParseSymbolPosition(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrConfiguration, OptSymbolPosition, err)
		}
		pos = p
	default:
		return 0, fmt.Errorf("%w: %s must be \"after\" or \"before\", got %T", ErrConfiguration, OptSymbolPosition, value)
	}
	if !pos.Valid() {
		return 0, fmt.Errorf("%w: %s must be \"after\" or \"before\", got %d", ErrConfiguration, OptSymbolPosition, int(pos))
	}
	return pos, nil
}
