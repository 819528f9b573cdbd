package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/regimeproprio/app-chatbot-rpps/internal/intent"
	"github.com/regimeproprio/app-chatbot-rpps/internal/utils"
)

func newAskCmd(opts *options) *cobra.Command {
	var explain, asHTML bool

	cmd := &cobra.Command{
		Use:   "ask <pergunta>",
		Short: "Responde uma pergunta",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}

			res := engine.Resolve(cmd.Context(), strings.Join(args, " "))
			printResolution(cmd.OutOrStdout(), res, explain, asHTML)
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "mostra camada, intent e pontuação")
	cmd.Flags().BoolVar(&asHTML, "html", false, "imprime a resposta em HTML")
	return cmd
}

func printResolution(w io.Writer, res *intent.Resolution, explain, asHTML bool) {
	reply := res.Reply
	if asHTML {
		reply = utils.ReplyToHTML(reply)
	}
	fmt.Fprintln(w, reply)

	if !explain {
		return
	}

	name := res.IntentName()
	if name == "" {
		name = "-"
	}
	fmt.Fprintf(w, "  camada: %s  intent: %s  score: %d  similaridade: %.3f\n",
		res.Layer, name, res.Score, res.Similarity)
	fmt.Fprintf(w, "  normalizado: %q  radicais: %q\n", res.Query.Normalized, res.Query.Stemmed)
}
