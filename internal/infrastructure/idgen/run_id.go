package idgen

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RunIDs hands out ULIDs that tag replay runs in logs and metrics.
// IDs issued within the same millisecond are strictly increasing.
type RunIDs struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

// Option customizes RunIDs.
type Option func(*RunIDs)

// WithClock overrides the time source used for the ULID timestamp.
func WithClock(now func() time.Time) Option {
	return func(g *RunIDs) { g.now = now }
}

// WithEntropy overrides the randomness source.
func WithEntropy(r io.Reader) Option {
	return func(g *RunIDs) { g.entropy = ulid.Monotonic(r, 0) }
}

// NewRunIDs creates a generator backed by crypto/rand and the wall clock.
func NewRunIDs(opts ...Option) *RunIDs {
	g := &RunIDs{
		now:     time.Now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns the next run id. It panics only if the entropy source fails
// or the monotonic counter overflows within one millisecond.
func (g *RunIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}
