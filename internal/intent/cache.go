package intent

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/regimeproprio/app-chatbot-rpps/internal/catalog"
)

const (
	DefaultCacheTTL     = 5 * time.Minute
	DefaultCacheMaxSize = 1000
)

// ResolutionCache guarda em memória a decisão de matching por mensagem
// normalizada. A resposta sorteada não é guardada.
type ResolutionCache struct {
	data    map[string]*CachedDecision
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int
	now     func() time.Time
}

// CachedDecision é o resultado das camadas de matching para uma mensagem
type CachedDecision struct {
	Intent     *catalog.Intent
	Layer      Layer
	Score      int
	Similarity float64
	Timestamp  time.Time
}

// NewResolutionCache cria o cache; valores não positivos usam os defaults
func NewResolutionCache(ttl time.Duration, maxSize int) *ResolutionCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if maxSize <= 0 {
		maxSize = DefaultCacheMaxSize
	}
	return &ResolutionCache{
		data:    make(map[string]*CachedDecision),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Get busca a decisão de uma mensagem normalizada
func (c *ResolutionCache) Get(normalized string) (*CachedDecision, bool) {
	key := cacheKey(normalized)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if cached, ok := c.data[key]; ok {
		if c.now().Sub(cached.Timestamp) < c.ttl {
			return cached, true
		}
	}
	return nil, false
}

// Set armazena a decisão de uma mensagem normalizada
func (c *ResolutionCache) Set(normalized string, decision CachedDecision) {
	key := cacheKey(normalized)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists && len(c.data) >= c.maxSize {
		c.cleanup()
	}

	decision.Timestamp = c.now()
	c.data[key] = &decision
}

// cleanup remove entradas expiradas e, se ainda cheio, a mais antiga
func (c *ResolutionCache) cleanup() {
	now := c.now()
	for key, cached := range c.data {
		if now.Sub(cached.Timestamp) >= c.ttl {
			delete(c.data, key)
		}
	}

	if len(c.data) >= c.maxSize {
		oldest := now
		oldestKey := ""
		for key, cached := range c.data {
			if oldestKey == "" || cached.Timestamp.Before(oldest) {
				oldest = cached.Timestamp
				oldestKey = key
			}
		}
		if oldestKey != "" {
			delete(c.data, oldestKey)
		}
	}
}

// Clear limpa todo o cache
func (c *ResolutionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*CachedDecision)
}

// Stats retorna o tamanho do cache e quantas entradas já expiraram
func (c *ResolutionCache) Stats() (size int, expired int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	size = len(c.data)
	now := c.now()
	for _, cached := range c.data {
		if now.Sub(cached.Timestamp) >= c.ttl {
			expired++
		}
	}
	return
}

func cacheKey(normalized string) string {
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:16])
}
