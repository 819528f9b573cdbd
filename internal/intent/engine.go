package intent

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/regimeproprio/app-chatbot-rpps/internal/catalog"
	"github.com/regimeproprio/app-chatbot-rpps/internal/text"
)

var (
	ErrNilCatalog    = errors.New("catálogo não informado")
	ErrInvalidCutoff = errors.New("cutoff de similaridade deve estar em [0, 1]")
)

// Layer identifica a camada que decidiu a resposta
type Layer string

const (
	LayerPattern    Layer = "pattern"
	LayerSimilarity Layer = "similarity"
	LayerSemantic   Layer = "semantic"
	LayerFallback   Layer = "fallback"
)

// Resolution descreve como uma mensagem foi resolvida
type Resolution struct {
	Query      Query
	Intent     *catalog.Intent // nil quando caiu no fallback genérico
	Layer      Layer
	Score      int
	Similarity float64
	Reply      string
}

// Matched informa se alguma intent venceu
func (r *Resolution) Matched() bool {
	return r.Intent != nil
}

// IntentName retorna o nome da intent vencedora ou ""
func (r *Resolution) IntentName() string {
	if r.Intent == nil {
		return ""
	}
	return r.Intent.Name
}

// EngineOption configura o Engine
type EngineOption func(*Engine)

func WithSimilarityCutoff(cutoff float64) EngineOption {
	return func(e *Engine) { e.cutoff = cutoff }
}

func WithStemmer(stemmer text.Stemmer) EngineOption {
	return func(e *Engine) { e.stemmer = stemmer }
}

func WithRandomSource(random RandomSource) EngineOption {
	return func(e *Engine) { e.random = random }
}

func WithSemanticFallback(semantic SemanticFallback) EngineOption {
	return func(e *Engine) { e.semantic = semantic }
}

// WithResolutionCache reaproveita decisões de mensagens já vistas
func WithResolutionCache(cache *ResolutionCache) EngineOption {
	return func(e *Engine) { e.cache = cache }
}

// Engine orquestra as camadas de matching. Seguro para uso concorrente.
type Engine struct {
	catalog   *catalog.Catalog
	cutoff    float64
	stemmer   text.Stemmer
	random    RandomSource
	semantic  SemanticFallback
	cache     *ResolutionCache
	matcher   *Matcher
	responder *Responder
}

// NewEngine cria o motor sobre um catálogo compilado
func NewEngine(cat *catalog.Catalog, opts ...EngineOption) (*Engine, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}

	e := &Engine{
		catalog:  cat,
		cutoff:   DefaultSimilarityCutoff,
		semantic: DisabledSemanticFallback{},
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.cutoff < 0 || e.cutoff > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCutoff, e.cutoff)
	}
	if e.stemmer == nil {
		stemmer, err := text.NewSnowballStemmer(text.DefaultStemmerLanguage)
		if err != nil {
			return nil, err
		}
		e.stemmer = stemmer
	}
	if e.semantic == nil {
		e.semantic = DisabledSemanticFallback{}
	}

	e.matcher = NewMatcher(cat, e.stemmer)
	e.responder = NewResponder(e.random)

	return e, nil
}

// Catalog retorna o catálogo do motor
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Matcher retorna o matcher do motor
func (e *Engine) Matcher() *Matcher {
	return e.matcher
}

// Cache retorna o cache de decisões, nil quando desabilitado
func (e *Engine) Cache() *ResolutionCache {
	return e.cache
}

// Resolve passa a mensagem pelas camadas: padrões, similaridade, semântica e
// fallback genérico. Nunca falha.
func (e *Engine) Resolve(ctx context.Context, message string) *Resolution {
	ctx, span := otel.Tracer("intent").Start(ctx, "intent.resolve")
	defer span.End()

	res := &Resolution{Query: e.matcher.Prepare(message), Layer: LayerFallback}

	cached := false
	if e.cache != nil {
		if d, ok := e.cache.Get(res.Query.Normalized); ok {
			res.Intent = d.Intent
			res.Layer = d.Layer
			res.Score = d.Score
			res.Similarity = d.Similarity
			cached = true
		}
	}

	if !cached {
		e.decide(ctx, res)
		if e.cache != nil {
			e.cache.Set(res.Query.Normalized, CachedDecision{
				Intent:     res.Intent,
				Layer:      res.Layer,
				Score:      res.Score,
				Similarity: res.Similarity,
			})
		}
	}

	res.Reply = e.responder.Reply(e.catalog, res.Intent)

	span.SetAttributes(
		attribute.String("intent.layer", string(res.Layer)),
		attribute.String("intent.name", res.IntentName()),
		attribute.Int("intent.score", res.Score),
		attribute.Float64("intent.similarity", res.Similarity),
		attribute.Bool("intent.cached", cached),
	)

	return res
}

func (e *Engine) decide(ctx context.Context, res *Resolution) {
	if best, ok := Best(e.matcher.Score(res.Query)); ok {
		res.Intent = best.Intent
		res.Score = best.Score
		res.Layer = LayerPattern
	} else if m, ok := FallbackMatch(e.catalog, res.Query.Normalized, e.cutoff); ok {
		res.Intent = m.Intent
		res.Similarity = m.Similarity
		res.Layer = LayerSimilarity
	} else if m, ok := e.semantic.Match(ctx, res.Query); ok && m.Intent != nil {
		res.Intent = m.Intent
		res.Similarity = m.Similarity
		res.Layer = LayerSemantic
	}
}

// Classify retorna apenas o texto da resposta
func (e *Engine) Classify(ctx context.Context, message string) string {
	return e.Resolve(ctx, message).Reply
}
