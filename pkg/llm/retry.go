package llm

import (
	"context"
	"fmt"
	"time"
)

// callPolicy is the explicit timeout and retry policy shared by every provider.
type callPolicy struct {
	provider   string
	keys       *keyRing
	timeout    time.Duration
	maxRetries int
	logger     Logger
}

// do runs fn with the current key, at most maxRetries+1 times. Only transient
// failures are repeated; rate limits also rotate the key.
func (p *callPolicy) do(ctx context.Context, fn func(ctx context.Context, key string) (string, error)) (string, error) {
	if p.keys.empty() {
		return "", NewMissingAPIKeyError(p.provider)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	attempts := p.maxRetries + 1
	var lastErr error

	for attempt := range attempts {
		idx, key := p.keys.key()

		text, err := fn(ctx, key)
		if err == nil {
			return text, nil
		}

		lastErr = err
		if isRateLimited(err) {
			p.logger.Warn(ctx, "%s key %d rate limited, rotating...", p.provider, idx+1)
			p.keys.rotateFrom(idx)
			lastErr = NewRateLimitedError(p.provider, err)
		}
		if ctx.Err() != nil || !isTransient(err) || attempt == attempts-1 {
			break
		}
		p.logger.Warn(ctx, "%s attempt %d/%d failed: %v", p.provider, attempt+1, attempts, err)
	}

	return "", fmt.Errorf("%s generate: %w", p.provider, lastErr)
}
