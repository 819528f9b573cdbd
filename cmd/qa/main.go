// qa consulta o motor de intents pela linha de comando.
package main

import (
	"os"

	"github.com/regimeproprio/app-chatbot-rpps/cmd/qa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
