package main

import (
	"fmt"

	"github.com/rpgo/pricefmt/internal/config"
	"github.com/rpgo/pricefmt/internal/logging"
	"github.com/spf13/cobra"
)

// app carries state shared by the subcommands.
type app struct {
	logger       logging.Logger
	profilesPath string
	verbose      bool
}

// newRootCmd builds the command tree. A nil logger is replaced by a zap
// logger once flags are parsed.
func newRootCmd(logger logging.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:           "pricefmt",
		Short:         "Format prices with configurable separators, precision and currency symbols",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			l, err := logging.New(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialise logger: %w", err)
			}
			a.logger = l
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.profilesPath, "profiles", "", "YAML file of named formatter profiles")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newFormatCmd(a), newSymbolsCmd(), newProfilesCmd(a))
	return root
}

// loadProfiles returns nil when no profiles file was given.
func (a *app) loadProfiles() (*config.ProfileSet, error) {
	if a.profilesPath == "" {
		return nil, nil
	}
	return config.NewProfileParser(a.logger).LoadFromFile(a.profilesPath)
}
