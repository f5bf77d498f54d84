package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rpgo/pricefmt/pkg/priceformat"
	"github.com/spf13/cobra"
)

func newSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List the known currency codes and their symbols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tSYMBOL")
			for _, code := range priceformat.Codes() {
				fmt.Fprintf(tw, "%s\t%s\n", code, priceformat.Symbol(code))
			}
			return tw.Flush()
		},
	}
}
