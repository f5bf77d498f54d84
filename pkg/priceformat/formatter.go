package priceformat

import (
	"fmt"
	"strings"

	pdecimal "github.com/rpgo/pricefmt/pkg/decimal"
	"github.com/shopspring/decimal"
)

// NBSP replaces every space of the output when Unbreakable is set.
const NBSP = "&nbsp;"

// Formatter renders a bound value according to its live Config.
// The zero value is not usable; construct with New or NewFromMap.
type Formatter struct {
	baseline Config
	cfg      Config

	value    decimal.Decimal
	currency string

	// err is the first failure of the current chain, returned by Render.
	err error
}

// New creates a Formatter whose baseline is cfg.
func New(cfg Config) (*Formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Formatter{baseline: cfg, cfg: cfg}, nil
}

// NewFromMap creates a Formatter from option keys (see OptionNames) laid
// over DefaultConfig.
func NewFromMap(options map[string]any) (*Formatter, error) {
	cfg, err := ConfigFromMap(options)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// Format starts a new chain: it drops any pending error, binds the value
// to render and, when currency is given and not empty, the currency to
// display. Without a currency the previously bound one is kept, falling
// back to the configured Currency.
func (f *Formatter) Format(value any, currency ...string) *Formatter {
	f.err = nil
	d, err := pdecimal.Coerce(value)
	if err != nil {
		f.err = fmt.Errorf("format: %w", err)
		return f
	}
	f.value = d
	if len(currency) > 0 && currency[0] != "" {
		f.currency = currency[0]
	}
	return f
}

func (f *Formatter) apply(fn func(c *Config) error) *Formatter {
	if f.err != nil {
		return f
	}
	if err := fn(&f.cfg); err != nil {
		f.err = err
	}
	return f
}

// SymbolSeparator sets the string between the number and the symbol.
func (f *Formatter) SymbolSeparator(sep string) *Formatter {
	return f.apply(func(c *Config) error {
		c.SymbolSeparator = sep
		return nil
	})
}

// Decimals sets the number of decimal places.
func (f *Formatter) Decimals(n int) *Formatter {
	return f.apply(func(c *Config) error {
		if n < 0 || n > MaxDecimals {
			return fmt.Errorf("%w: decimals must be between 0 and %d, got %d", ErrInvalidArgument, MaxDecimals, n)
		}
		c.Decimals = n
		return nil
	})
}

// DecimalSeparator sets the separator between integer and fractional digits.
func (f *Formatter) DecimalSeparator(sep string) *Formatter {
	return f.apply(func(c *Config) error {
		c.DecimalSeparator = sep
		return nil
	})
}

// ThousandsSeparator sets the separator between groups of three integer digits.
func (f *Formatter) ThousandsSeparator(sep string) *Formatter {
	return f.apply(func(c *Config) error {
		c.ThousandsSeparator = sep
		return nil
	})
}

// SymbolPosition places the symbol before or after the number.
func (f *Formatter) SymbolPosition(pos SymbolPosition) *Formatter {
	return f.apply(func(c *Config) error {
		if !pos.Valid() {
			return fmt.Errorf("%w: unknown symbol position %d", ErrInvalidArgument, int(pos))
		}
		c.SymbolPosition = pos
		return nil
	})
}

// SymbolBefore is SymbolPosition(SymbolBefore).
func (f *Formatter) SymbolBefore() *Formatter { return f.SymbolPosition(SymbolBefore) }

// SymbolAfter is SymbolPosition(SymbolAfter).
func (f *Formatter) SymbolAfter() *Formatter { return f.SymbolPosition(SymbolAfter) }

// Unbreakable toggles replacing spaces with NBSP.
func (f *Formatter) Unbreakable(on bool) *Formatter {
	return f.apply(func(c *Config) error {
		c.Unbreakable = on
		return nil
	})
}

// TrimTrailingZeros toggles stripping trailing zeros from the fraction.
// It always turns AutoTrailingZeros off.
func (f *Formatter) TrimTrailingZeros(on bool) *Formatter {
	return f.apply(func(c *Config) error {
		c.AutoTrailingZeros = false
		c.TrimTrailingZeros = on
		return nil
	})
}

// AutoTrailingZeros toggles dropping an all-zero fraction. TrimTrailingZeros
// is left as is.
func (f *Formatter) AutoTrailingZeros(on bool) *Formatter {
	return f.apply(func(c *Config) error {
		c.AutoTrailingZeros = on
		return nil
	})
}

// Render formats the bound value with the live configuration, then resets
// the configuration to the baseline and clears any pending error. The bound
// value and currency are kept.
func (f *Formatter) Render() (string, error) {
	defer f.reset()
	if f.err != nil {
		return "", f.err
	}
	cfg := f.cfg

	fixed := pdecimal.NewFixed(f.value, cfg.Decimals)
	if cfg.AutoTrailingZeros || cfg.TrimTrailingZeros {
		switch {
		case fixed.FractionIsZero():
			fixed.Fraction = ""
		case cfg.TrimTrailingZeros:
			fixed.Fraction = strings.TrimRight(fixed.Fraction, "0")
		}
	}
	number := fixed.Format(cfg.DecimalSeparator, cfg.ThousandsSeparator)

	symbol := Symbol(f.Currency())
	var out string
	if cfg.SymbolPosition == SymbolAfter {
		out = number + cfg.SymbolSeparator + symbol
	} else {
		out = symbol + cfg.SymbolSeparator + number
	}

	if cfg.Unbreakable {
		out = strings.ReplaceAll(out, " ", NBSP)
	}
	return out, nil
}

// String implements fmt.Stringer. It renders like Render and returns an
// empty string on error.
func (f *Formatter) String() string {
	s, err := f.Render()
	if err != nil {
		return ""
	}
	return s
}

func (f *Formatter) reset() {
	f.cfg = f.baseline
	f.err = nil
}

// Currency returns the currency the next Render displays.
func (f *Formatter) Currency() string {
	if f.currency != "" {
		return f.currency
	}
	return f.cfg.Currency
}

// Value returns the bound value.
func (f *Formatter) Value() decimal.Decimal { return f.value }

// Config returns the live configuration, including unrendered mutations.
func (f *Formatter) Config() Config { return f.cfg }

// Baseline returns the configuration restored after every Render.
func (f *Formatter) Baseline() Config { return f.baseline }

// Err returns the pending error of the current chain, if any.
func (f *Formatter) Err() error { return f.err }

// Clone returns an independent copy, including the live configuration,
// bound value and pending error.
func (f *Formatter) Clone() *Formatter {
	c := *f
	return &c
}
