// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - GIN_MODE: Modo do gin, debug/release/test (default: release)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor (default: localhost:4317)
//
// ## Chatbot
//   - CHATBOT_CATALOG_PATH: Arquivo YAML de intents (default: catálogo embutido)
//   - CHATBOT_STEMMER_LANGUAGE: Idioma do stemmer Snowball (default: english)
//   - CHATBOT_SIMILARITY_CUTOFF: Similaridade mínima, exclusiva, do fallback (default: 0.6)
//   - CHATBOT_PATTERN_TIMEOUT_MS: Timeout de avaliação de cada padrão (default: 250)
//   - CHATBOT_MAX_MESSAGE_LENGTH: Tamanho máximo da mensagem na API (default: 4000)
//   - CHATBOT_AFFINITY_KEYWORDS: Palavras que aceitam artigo opcional, separadas por vírgula (default: ecac)
//   - CHATBOT_CACHE_TTL_SECONDS: Validade das decisões em cache, 0 desabilita (default: 300)
//   - CHATBOT_CACHE_MAX_SIZE: Máximo de mensagens em cache (default: 1000)
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrInvalidCutoff        = errors.New("CHATBOT_SIMILARITY_CUTOFF deve estar em [0, 1]")
	ErrInvalidTimeout       = errors.New("CHATBOT_PATTERN_TIMEOUT_MS deve ser positivo")
	ErrInvalidMessageLength = errors.New("CHATBOT_MAX_MESSAGE_LENGTH deve ser positivo")
	ErrInvalidCache         = errors.New("CHATBOT_CACHE_TTL_SECONDS e CHATBOT_CACHE_MAX_SIZE não podem ser negativos")
)

type Config struct {
	ServerPort string
	GinMode    string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string

	Chatbot ChatbotConfig
}

// ChatbotConfig contém a configuração do motor de intents
type ChatbotConfig struct {
	// Caminho do catálogo YAML; vazio usa o catálogo embutido
	CatalogPath string

	StemmerLanguage  string
	SimilarityCutoff float64
	PatternTimeout   time.Duration
	MaxMessageLength int
	AffinityKeywords []string

	// Cache de decisões; TTL zero desabilita
	CacheTTL     time.Duration
	CacheMaxSize int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "release"),

		// Tracing configuration
		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),

		Chatbot: ChatbotConfig{
			CatalogPath:      getEnv("CHATBOT_CATALOG_PATH", ""),
			StemmerLanguage:  getEnv("CHATBOT_STEMMER_LANGUAGE", "english"),
			SimilarityCutoff: getEnvFloat("CHATBOT_SIMILARITY_CUTOFF", 0.6),
			PatternTimeout:   time.Duration(getEnvInt("CHATBOT_PATTERN_TIMEOUT_MS", 250)) * time.Millisecond,
			MaxMessageLength: getEnvInt("CHATBOT_MAX_MESSAGE_LENGTH", 4000),
			AffinityKeywords: getEnvList("CHATBOT_AFFINITY_KEYWORDS", []string{"ecac"}),
			CacheTTL:         time.Duration(getEnvInt("CHATBOT_CACHE_TTL_SECONDS", 300)) * time.Second,
			CacheMaxSize:     getEnvInt("CHATBOT_CACHE_MAX_SIZE", 1000),
		},
	}
}

// Validate verifica os valores que o motor não aceita
func (c *Config) Validate() error {
	if c.Chatbot.SimilarityCutoff < 0 || c.Chatbot.SimilarityCutoff > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidCutoff, c.Chatbot.SimilarityCutoff)
	}
	if c.Chatbot.PatternTimeout <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTimeout, c.Chatbot.PatternTimeout)
	}
	if c.Chatbot.MaxMessageLength <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMessageLength, c.Chatbot.MaxMessageLength)
	}
	if c.Chatbot.CacheTTL < 0 || c.Chatbot.CacheMaxSize < 0 {
		return fmt.Errorf("%w: ttl=%v max=%d", ErrInvalidCache, c.Chatbot.CacheTTL, c.Chatbot.CacheMaxSize)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	out := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
