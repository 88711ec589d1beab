package translate

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerBackend wraps a backend with a circuit breaker so a run of failed
// chunk attempts stops hammering a struggling remote endpoint. An open
// breaker surfaces as an ordinary attempt error and consumes one retry,
// leaving the per-chunk fallback semantics untouched.
type BreakerBackend struct {
	backend Backend
	breaker *gobreaker.CircuitBreaker
}

// WithBreaker wraps a backend with a circuit breaker
func WithBreaker(backend Backend) *BreakerBackend {
	settings := gobreaker.Settings{
		Name:        backend.Name() + "-translation",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &BreakerBackend{
		backend: backend,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// TranslateChunk translates one chunk through the breaker
func (b *BreakerBackend) TranslateChunk(ctx context.Context, req ChunkRequest) (string, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.backend.TranslateChunk(ctx, req)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Name returns the wrapped backend's name
func (b *BreakerBackend) Name() string {
	return b.backend.Name()
}

// IsAvailable checks the wrapped backend
func (b *BreakerBackend) IsAvailable() error {
	return b.backend.IsAvailable()
}
