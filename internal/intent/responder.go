package intent

import (
	"math/rand/v2"

	"github.com/regimeproprio/app-chatbot-rpps/internal/catalog"
)

// RandomSource fornece índices uniformes em [0, n)
type RandomSource interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// Responder escolhe a resposta entregue ao usuário
type Responder struct {
	random RandomSource
}

// NewResponder cria um responder; com random nil usa math/rand/v2
func NewResponder(random RandomSource) *Responder {
	if random == nil {
		random = globalRandom{}
	}
	return &Responder{random: random}
}

// Reply sorteia uma resposta da intent vencedora ou, sem vencedora, do fallback
func (r *Responder) Reply(cat *catalog.Catalog, winner *catalog.Intent) string {
	if winner != nil && len(winner.Responses) > 0 {
		return r.choose(winner.Responses)
	}
	return r.choose(cat.FallbackResponses())
}

func (r *Responder) choose(options []string) string {
	if len(options) == 0 {
		return ""
	}
	i := r.random.IntN(len(options))
	if i < 0 || i >= len(options) {
		i = 0
	}
	return options[i]
}
