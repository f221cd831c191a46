package llm

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config carries everything a provider client needs. Timeout bounds a whole
// Generate call including retries; 0 disables it. MaxRetries counts extra
// attempts after the first, so 0 means exactly one call.
type Config struct {
	Provider   string
	Model      string
	APIKeys    []string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	HTTPClient *http.Client
}

// New returns the Generator for cfg.Provider
func New(cfg Config, log Logger) (Generator, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderGemini:
		return newGemini(cfg, log), nil
	case ProviderOpenAI:
		return newOpenAI(cfg, log), nil
	case ProviderAnthropic:
		return newAnthropic(cfg, log), nil
	default:
		return nil, NewUnknownProviderError(cfg.Provider)
	}
}

// keyRing rotates through API keys and is safe for concurrent use.
type keyRing struct {
	mu      sync.Mutex
	keys    []string
	current int
}

func newKeyRing(keys []string) *keyRing {
	return &keyRing{keys: keys}
}

func (k *keyRing) empty() bool {
	return len(k.keys) == 0
}

func (k *keyRing) key() (int, string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.current, k.keys[k.current]
}

// rotateFrom advances the ring unless another call already moved past idx.
func (k *keyRing) rotateFrom(idx int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.current == idx {
		k.current = (k.current + 1) % len(k.keys)
	}
}
