package cmd

import (
	"github.com/spf13/cobra"

	"github.com/regimeproprio/app-chatbot-rpps/internal/app"
	"github.com/regimeproprio/app-chatbot-rpps/internal/config"
	"github.com/regimeproprio/app-chatbot-rpps/internal/intent"
)

// options guarda as flags globais; zero mantém o valor do ambiente
type options struct {
	catalogPath string
	stemmer     string
	cutoff      float64
}

// NewRootCmd monta a árvore de comandos
func NewRootCmd() *cobra.Command {
	opts := &options{cutoff: -1}

	root := &cobra.Command{
		Use:          "qa",
		Short:        "qa: consulta o chatbot de RPPS pela linha de comando",
		Long:         "Classifica perguntas com o catálogo de intents, lista intents e valida catálogos.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "arquivo YAML de intents (default: CHATBOT_CATALOG_PATH ou catálogo embutido)")
	root.PersistentFlags().StringVar(&opts.stemmer, "stemmer", "", "idioma do stemmer Snowball (default: CHATBOT_STEMMER_LANGUAGE)")
	root.PersistentFlags().Float64Var(&opts.cutoff, "cutoff", -1, "cutoff de similaridade (default: CHATBOT_SIMILARITY_CUTOFF)")

	root.AddCommand(newAskCmd(opts))
	root.AddCommand(newChatCmd(opts))
	root.AddCommand(newIntentsCmd(opts))
	root.AddCommand(newValidateCmd(opts))
	root.AddCommand(newSamplesCmd(opts))

	return root
}

// Execute executa o comando raiz
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) chatbotConfig() config.ChatbotConfig {
	cfg := config.LoadConfig().Chatbot
	if o.catalogPath != "" {
		cfg.CatalogPath = o.catalogPath
	}
	if o.stemmer != "" {
		cfg.StemmerLanguage = o.stemmer
	}
	if o.cutoff >= 0 {
		cfg.SimilarityCutoff = o.cutoff
	}
	return cfg
}

func (o *options) engine() (*intent.Engine, error) {
	return app.NewEngine(o.chatbotConfig())
}
