package priceformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, 2, cfg.Decimals)
	assert.Equal(t, ".", cfg.DecimalSeparator)
	assert.Equal(t, "", cfg.ThousandsSeparator)
	assert.Equal(t, SymbolAfter, cfg.SymbolPosition)
	assert.Equal(t, " ", cfg.SymbolSeparator)
	assert.True(t, cfg.Unbreakable)
	assert.False(t, cfg.TrimTrailingZeros)
	assert.True(t, cfg.AutoTrailingZeros)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromMap(t *testing.T) {
	cfg, err := ConfigFromMap(map[string]any{
		OptCurrency:           "USD",
		OptDecimals:           int64(5),
		OptDecimalSeparator:   ",",
		OptThousandsSeparator: ".",
		OptSymbolPosition:     "Before",
		OptSymbolSeparator:    "",
		OptUnbreakable:        false,
		OptTrimTrailingZeros:  true,
		OptAutoTrailingZeros:  false,
	})
	require.NoError(t, err)
	assert.Equal(t, Config{
		Currency:           "USD",
		Decimals:           5,
		DecimalSeparator:   ",",
		ThousandsSeparator: ".",
		SymbolPosition:     SymbolBefore,
		SymbolSeparator:    "",
		Unbreakable:        false,
		TrimTrailingZeros:  true,
		AutoTrailingZeros:  false,
	}, cfg)

	// a subset keeps the other defaults
	cfg, err = ConfigFromMap(map[string]any{OptDecimals: 3.0})
	require.NoError(t, err)
	want := DefaultConfig()
	want.Decimals = 3
	assert.Equal(t, want, cfg)
}

func TestConfigFromMapDecimalTypes(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"int", 3, 3},
		{"uint8", uint8(0), 0},
		{"uint64", uint64(3), 3},
		{"float32", float32(4), 4},
		{"float64", float64(MaxDecimals), MaxDecimals},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ConfigFromMap(map[string]any{OptDecimals: tt.value})
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Decimals)
		})
	}
}

func TestValidateDecimalsRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Decimals = MaxDecimals
	assert.NoError(t, cfg.Validate())

	cfg.Decimals = MaxDecimals + 1
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "decimals must be between 0 and 64")

	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestConfigFromMapErrors(t *testing.T) {
	tests := []struct {
		name    string
		options map[string]any
		msg     string
	}{
		{"unknown key", map[string]any{"decSep": ","}, `unknown option "decSep"`},
		{"negative decimals", map[string]any{OptDecimals: -1}, "decimals must be between 0"},
		{"fractional decimals", map[string]any{OptDecimals: 2.5}, "decimals must be an integer"},
		{"fractional float32 decimals", map[string]any{OptDecimals: float32(2.5)}, "decimals must be an integer"},
		{"too many decimals", map[string]any{OptDecimals: MaxDecimals + 1}, "decimals must be between 0 and 64"},
		{"too many uint64 decimals", map[string]any{OptDecimals: uint64(1 << 40)}, "decimals must be between 0 and 64"},
		{"string decimals", map[string]any{OptDecimals: "2"}, "decimals must be an integer"},
		{"bad position", map[string]any{OptSymbolPosition: "middle"}, "symbolPosition"},
		{"bad position number", map[string]any{OptSymbolPosition: 3}, "symbolPosition"},
		{"bad position type", map[string]any{OptSymbolPosition: true}, "symbolPosition"},
		{"non-string currency", map[string]any{OptCurrency: 978}, "currency must be a string"},
		{"non-bool unbreakable", map[string]any{OptUnbreakable: "yes"}, "unbreakable must be a bool"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConfigFromMap(tt.options)
			require.ErrorIs(t, err, ErrConfiguration)
			assert.Contains(t, err.Error(), tt.msg)

			_, err = NewFromMap(tt.options)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestOptionNames(t *testing.T) {
	names := OptionNames()
	assert.Len(t, names, 9)
	assert.IsIncreasing(t, names)
	for _, n := range names {
		cfg := DefaultConfig()
		err := cfg.Set(n, struct{}{})
		// every key is recognised, only the value type is wrong
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "unknown option")
	}
}

func TestParseSymbolPosition(t *testing.T) {
	pos, err := ParseSymbolPosition(" AFTER ")
	require.NoError(t, err)
	assert.Equal(t, SymbolAfter, pos)

	pos, err = ParseSymbolPosition("before")
	require.NoError(t, err)
	assert.Equal(t, SymbolBefore, pos)

	_, err = ParseSymbolPosition("left")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, "SymbolPosition(7)", SymbolPosition(7).String())
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SymbolPosition = SymbolBefore

	b, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(b), "symbolPosition: before")

	var got Config
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, cfg, got)

	_, err = yaml.Marshal(Config{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSymbols(t *testing.T) {
	want := map[string]string{
		"AUD": "$", "CAD": "$", "CHF": "CHF", "CNY": "¥", "EUR": "€", "GBP": "£",
		"HKD": "$", "JPY": "¥", "NOK": "kr", "SEK": "kr", "USD": "$",
	}
	assert.Equal(t, want, Symbols())
	for code, sym := range want {
		assert.Equal(t, sym, Symbol(code))
	}
	assert.Equal(t, "BTC", Symbol("BTC"))
	assert.Equal(t, "usd", Symbol("usd"))
	assert.Len(t, Codes(), len(want))
	assert.Equal(t, "AUD", Codes()[0])

	// the returned table is a copy
	Symbols()["EUR"] = "E"
	assert.Equal(t, "€", Symbol("EUR"))
}
