package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newChatCmd(opts *options) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Conversa interativa (uma pergunta por linha, 'sair' encerra)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			fmt.Fprint(out, "> ")
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "sair" || line == "exit" {
					break
				}
				if line != "" {
					printResolution(out, engine.Resolve(cmd.Context(), line), explain, false)
				}
				fmt.Fprint(out, "> ")
			}
			fmt.Fprintln(out)
			return scanner.Err()
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "mostra camada, intent e pontuação")
	return cmd
}
