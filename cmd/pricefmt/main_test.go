package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/pricefmt/internal/logging"
	"github.com/rpgo/pricefmt/internal/output"
	"github.com/rpgo/pricefmt/pkg/priceformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilesFile = "../../testdata/profiles.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(logging.NopLogger{})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFormatDefaults(t *testing.T) {
	out, err := execute(t, "format", "4", "4.1234", "4.5")
	require.NoError(t, err)
	assert.Equal(t, "4&nbsp;€\n4.12&nbsp;€\n4.50&nbsp;€\n", out)
}

func TestFormatFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "symbol before",
			args: []string{"format", "--decimals", "5", "--symbol-position", "before", "--unbreakable=false", "45678.1234"},
			want: "€ 45678.12340\n",
		},
		{
			name: "currency override",
			args: []string{"format", "-c", "USD", "--decimals", "5", "--thousands-separator", ",", "--unbreakable=false", "40000.1234"},
			want: "40,000.12340 $\n",
		},
		{
			name: "trim",
			args: []string{"format", "--decimals", "5", "--thousands-separator", ",", "--trim-trailing-zeros", "--unbreakable=false", "40000.1234"},
			want: "40,000.1234 €\n",
		},
		{
			name: "no auto",
			args: []string{"format", "--auto-trailing-zeros=false", "--symbol-separator", "", "4"},
			want: "4.00€\n",
		},
		{
			name: "negative value",
			args: []string{"format", "--unbreakable=false", "--", "-12.5"},
			want: "-12.50 €\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFormatWithProfiles(t *testing.T) {
	out, err := execute(t, "--profiles", profilesFile, "format", "--profile", "us", "1999.99", "40000")
	require.NoError(t, err)
	assert.Equal(t, "$1,999.99\n$40,000\n", out)

	// flags override the profile
	out, err = execute(t, "--profiles", profilesFile, "format", "-p", "de", "--decimals", "0", "1234.5")
	require.NoError(t, err)
	assert.Equal(t, "1.235 €\n", out)

	// the default profile of the file
	out, err = execute(t, "--profiles", profilesFile, "format", "4")
	require.NoError(t, err)
	assert.Equal(t, "4&nbsp;€\n", out)
}

func TestFormatOutputFormats(t *testing.T) {
	out, err := execute(t, "format", "-o", "csv", "--unbreakable=false", "4.5")
	require.NoError(t, err)
	assert.Equal(t, "Input,Value,Currency,Output\n4.5,4.5,EUR,4.50 €\n", out)

	out, err = execute(t, "format", "-o", "json", "4.5")
	require.NoError(t, err)
	assert.Contains(t, out, `"output": "4.50&nbsp;€"`)

	_, err = execute(t, "format", "-o", "pdf", "4.5")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestFormatOutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	out, err := execute(t, "format", "--out-file", path, "7")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7&nbsp;€\n", string(data))
}

func TestFormatErrors(t *testing.T) {
	_, err := execute(t, "format", "abc")
	assert.ErrorIs(t, err, priceformat.ErrNotNumeric)

	_, err = execute(t, "format", "--symbol-position", "middle", "1")
	assert.ErrorIs(t, err, priceformat.ErrConfiguration)

	_, err = execute(t, "format", "--decimals", "-1", "1")
	assert.ErrorIs(t, err, priceformat.ErrConfiguration)

	_, err = execute(t, "format", "--decimals", "65", "1")
	assert.ErrorIs(t, err, priceformat.ErrConfiguration)

	_, err = execute(t, "format", "--profile", "us", "1")
	assert.Error(t, err)

	_, err = execute(t, "--profiles", profilesFile, "format", "--profile", "missing", "1")
	assert.Error(t, err)

	_, err = execute(t, "format")
	assert.Error(t, err)
}

func TestSymbolsCmd(t *testing.T) {
	out, err := execute(t, "symbols")
	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Regexp(t, `(?m)^EUR\s+€$`, out)
	assert.Regexp(t, `(?m)^SEK\s+kr$`, out)
}

func TestProfilesCmd(t *testing.T) {
	out, err := execute(t, "--profiles", profilesFile, "profiles")
	require.NoError(t, err)
	assert.Equal(t, "crypto\nde\neur (default)\neur-plain\nus\n", out)

	out, err = execute(t, "--profiles", profilesFile, "profiles", "--show")
	require.NoError(t, err)
	assert.Contains(t, out, "symbolPosition: before")
	assert.Contains(t, out, "currency: BTC")

	_, err = execute(t, "profiles")
	assert.Error(t, err)
}
