package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newProfilesCmd(a *app) *cobra.Command {
	var showConfig bool
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the profiles of the --profiles file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.loadProfiles()
			if err != nil {
				return err
			}
			if set == nil {
				return errors.New("no profiles file given, use --profiles")
			}
			out := cmd.OutOrStdout()
			if showConfig {
				b, err := yaml.Marshal(set.Profiles)
				if err != nil {
					return err
				}
				_, err = out.Write(b)
				return err
			}
			for _, name := range set.Names() {
				marker := ""
				if name == set.Default {
					marker = " (default)"
				}
				fmt.Fprintf(out, "%s%s\n", name, marker)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showConfig, "show", false, "print the resolved configuration of every profile as YAML")
	return cmd
}
