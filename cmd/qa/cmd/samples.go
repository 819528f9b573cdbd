package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSamplesCmd(opts *options) *cobra.Command {
	var minRate float64

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Executa os exemplos do catálogo e mede a taxa de acerto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			total, hits := 0, 0
			for _, i := range engine.Catalog().Intents() {
				for _, sample := range i.Samples {
					total++
					res := engine.Resolve(cmd.Context(), sample)
					if res.IntentName() == i.Name {
						hits++
						continue
					}
					got := res.IntentName()
					if got == "" {
						got = "fallback"
					}
					fmt.Fprintf(out, "erro: %q esperava %s, obteve %s (%s)\n", sample, i.Name, got, res.Layer)
				}
			}

			if total == 0 {
				fmt.Fprintln(out, "nenhum exemplo no catálogo")
				return nil
			}

			rate := float64(hits) / float64(total)
			fmt.Fprintf(out, "%d/%d exemplos corretos (%.1f%%)\n", hits, total, rate*100)
			if rate < minRate {
				return fmt.Errorf("taxa de acerto %.3f abaixo do mínimo %.3f", rate, minRate)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&minRate, "min-rate", 0, "taxa mínima de acerto para sucesso")
	return cmd
}
