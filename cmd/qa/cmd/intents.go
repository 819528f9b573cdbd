package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/regimeproprio/app-chatbot-rpps/internal/catalog"
)

func newIntentsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "intents",
		Short: "Lista as intents na ordem de avaliação",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "INTENT\tTHRESHOLD\tPADRÕES\tRESPOSTAS\tALCANÇÁVEL")
			for _, i := range engine.Catalog().Intents() {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", i.Name, i.Threshold, len(i.Patterns), len(i.Responses), yesNo(i))
			}
			return tw.Flush()
		},
	}
}

func yesNo(i *catalog.Intent) string {
	if i.Reachable() {
		return "sim"
	}
	return "não"
}
