package main

import (
	"fmt"

	"github.com/rpgo/pricefmt/internal/config"
	"github.com/rpgo/pricefmt/internal/output"
	"github.com/rpgo/pricefmt/pkg/priceformat"
	"github.com/spf13/cobra"
)

type formatOptions struct {
	profile  string
	currency string
	format   string
	outFile  string

	decimals           int
	decimalSeparator   string
	thousandsSeparator string
	symbolPosition     string
	symbolSeparator    string
	unbreakable        bool
	trimTrailingZeros  bool
	autoTrailingZeros  bool
}

func newFormatCmd(a *app) *cobra.Command {
	opts := &formatOptions{}
	cmd := &cobra.Command{
		Use:   "format VALUE...",
		Short: "Render one or more values",
		Long: `Render one or more values with a formatter profile.

Flags that are set override the selected profile. Use "--" before
negative values.`,
		Example: `  pricefmt format 4.5
  pricefmt format --currency USD --symbol-position before --symbol-separator "" 1999.99
  pricefmt --profiles profiles.yaml format --profile de -o csv 1234.5 99`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, a, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.profile, "profile", "p", "", "profile name from --profiles (default: the file's default profile)")
	flags.StringVarP(&opts.currency, "currency", "c", "", "currency code or literal symbol for these values")
	flags.StringVarP(&opts.format, "output", "o", "console", "output format: "+fmt.Sprint(output.AvailableFormatterNames()))
	flags.StringVar(&opts.outFile, "out-file", "", "write the report to this file instead of stdout")

	d := priceformat.DefaultConfig()
	flags.IntVar(&opts.decimals, "decimals", d.Decimals, "decimal places")
	flags.StringVar(&opts.decimalSeparator, "decimal-separator", d.DecimalSeparator, "decimal separator")
	flags.StringVar(&opts.thousandsSeparator, "thousands-separator", d.ThousandsSeparator, "thousands separator")
	flags.StringVar(&opts.symbolPosition, "symbol-position", d.SymbolPosition.String(), "symbol position: before or after")
	flags.StringVar(&opts.symbolSeparator, "symbol-separator", d.SymbolSeparator, "separator between number and symbol")
	flags.BoolVar(&opts.unbreakable, "unbreakable", d.Unbreakable, "replace spaces with "+priceformat.NBSP)
	flags.BoolVar(&opts.trimTrailingZeros, "trim-trailing-zeros", d.TrimTrailingZeros, "strip trailing zeros from the fraction")
	flags.BoolVar(&opts.autoTrailingZeros, "auto-trailing-zeros", d.AutoTrailingZeros, "drop an all-zero fraction")
	return cmd
}

// flagOptions maps format flags onto formatter option keys.
var flagOptions = []struct {
	flag string
	key  string
	get  func(o *formatOptions) any
}{
	{"decimals", priceformat.OptDecimals, func(o *formatOptions) any { return o.decimals }},
	{"decimal-separator", priceformat.OptDecimalSeparator, func(o *formatOptions) any { return o.decimalSeparator }},
	{"thousands-separator", priceformat.OptThousandsSeparator, func(o *formatOptions) any { return o.thousandsSeparator }},
	{"symbol-position", priceformat.OptSymbolPosition, func(o *formatOptions) any { return o.symbolPosition }},
	{"symbol-separator", priceformat.OptSymbolSeparator, func(o *formatOptions) any { return o.symbolSeparator }},
	{"unbreakable", priceformat.OptUnbreakable, func(o *formatOptions) any { return o.unbreakable }},
	{"trim-trailing-zeros", priceformat.OptTrimTrailingZeros, func(o *formatOptions) any { return o.trimTrailingZeros }},
	{"auto-trailing-zeros", priceformat.OptAutoTrailingZeros, func(o *formatOptions) any { return o.autoTrailingZeros }},
}

func runFormat(cmd *cobra.Command, a *app, opts *formatOptions, args []string) error {
	if output.GetFormatterByName(opts.format) == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, opts.format)
	}

	cfg, profile, err := resolveConfig(a, opts.profile)
	if err != nil {
		return err
	}
	for _, fo := range flagOptions {
		if !cmd.Flags().Changed(fo.flag) {
			continue
		}
		if err := cfg.Set(fo.key, fo.get(opts)); err != nil {
			return fmt.Errorf("--%s: %w", fo.flag, err)
		}
		a.logger.Debugf("flag --%s overrides %s", fo.flag, fo.key)
	}

	f, err := priceformat.New(cfg)
	if err != nil {
		return err
	}
	batch, err := output.RenderBatch(f, profile, args, opts.currency)
	if err != nil {
		return err
	}
	a.logger.Debugf("rendered %d values with profile %q", len(batch.Entries), profile)

	if opts.outFile != "" {
		if err := output.WriteFormatted(output.GetFormatterByName(opts.format), batch, opts.outFile); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.outFile, err)
		}
		a.logger.Infof("wrote %s", opts.outFile)
		return nil
	}
	return output.GenerateReport(cmd.OutOrStdout(), batch, opts.format)
}

// resolveConfig picks the profile configuration, or the built-in defaults
// when no profiles file is given.
func resolveConfig(a *app, name string) (priceformat.Config, string, error) {
	set, err := a.loadProfiles()
	if err != nil {
		return priceformat.Config{}, "", err
	}
	if set == nil {
		if name != "" {
			return priceformat.Config{}, "", fmt.Errorf("--profile %q requires --profiles: %w", name, config.ErrProfileNotFound)
		}
		return priceformat.DefaultConfig(), "", nil
	}
	if name == "" {
		name = set.Default
	}
	cfg, err := set.Config(name)
	if err != nil {
		return priceformat.Config{}, "", err
	}
	return cfg, name, nil
}
