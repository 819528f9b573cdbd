package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *options) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Compila o catálogo e aponta intents inalcançáveis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cat := engine.Catalog()
			unreachable := cat.Unreachable()

			fmt.Fprintf(out, "%d intents, %d respostas de fallback\n", cat.Len(), len(cat.FallbackResponses()))
			for _, i := range unreachable {
				fmt.Fprintf(out, "inalcançável: %s (threshold %d, %d padrões)\n", i.Name, i.Threshold, len(i.Patterns))
			}

			if strict && len(unreachable) > 0 {
				return fmt.Errorf("%d intents inalcançáveis", len(unreachable))
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "falha se houver intent inalcançável")
	return cmd
}
