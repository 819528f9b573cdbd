// Package app monta o motor de intents a partir da configuração.
package app

import (
	"fmt"
	"log"

	"github.com/regimeproprio/app-chatbot-rpps/internal/catalog"
	"github.com/regimeproprio/app-chatbot-rpps/internal/config"
	"github.com/regimeproprio/app-chatbot-rpps/internal/intent"
	"github.com/regimeproprio/app-chatbot-rpps/internal/text"
)

// NewEngine compila o catálogo e cria o motor. Qualquer erro aqui é de
// configuração e deve abortar a inicialização.
func NewEngine(cfg config.ChatbotConfig) (*intent.Engine, error) {
	stemmer, err := text.NewSnowballStemmer(cfg.StemmerLanguage)
	if err != nil {
		return nil, fmt.Errorf("stemmer: %w", err)
	}

	var opts []catalog.Option
	if cfg.AffinityKeywords != nil {
		opts = append(opts, catalog.WithAffinityKeywords(cfg.AffinityKeywords...))
	}
	if cfg.PatternTimeout > 0 {
		opts = append(opts, catalog.WithMatchTimeout(cfg.PatternTimeout))
	}

	cat, err := catalog.Load(cfg.CatalogPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("catálogo: %w", err)
	}

	source := "embutido"
	if cfg.CatalogPath != "" {
		source = cfg.CatalogPath
	}
	log.Printf("Catálogo %s carregado: %d intents (stemmer %s)", source, cat.Len(), stemmer.Language())

	for _, i := range cat.Unreachable() {
		log.Printf("Aviso: intent %q tem threshold %d e só %d padrões; só é alcançável por similaridade",
			i.Name, i.Threshold, len(i.Patterns))
	}

	engineOpts := []intent.EngineOption{
		intent.WithStemmer(stemmer),
		intent.WithSimilarityCutoff(cfg.SimilarityCutoff),
	}
	if cfg.CacheTTL > 0 {
		engineOpts = append(engineOpts, intent.WithResolutionCache(intent.NewResolutionCache(cfg.CacheTTL, cfg.CacheMaxSize)))
	}

	return intent.NewEngine(cat, engineOpts...)
}
