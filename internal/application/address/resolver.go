// Package address coordinates postal-code lookups for the entry
// screens: one logical resolution per field at a time, latest call
// wins, stale results discarded.
package address

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/crm/backend/internal/domain/address"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single lookup end to end
const DefaultTimeout = 10 * time.Second

// ErrSuperseded reports that a newer resolution for the same field was
// issued while this one was in flight. The caller must discard the
// result and leave form state alone.
var ErrSuperseded = errors.New("address resolution superseded by a newer request")

// Status is the lifecycle of the lookup bound to one form field
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Resolver runs lookups against the configured provider. Concurrency is
// handled with a monotonically increasing token per field: a completion
// carrying a stale token is discarded rather than applied.
type Resolver struct {
	lookup  address.Lookup
	timeout time.Duration
	logger  *zap.Logger

	mu     sync.Mutex
	tokens map[string]uint64
	status map[string]Status
}

// Option configures a Resolver
type Option func(*Resolver)

// WithTimeout overrides the lookup timeout
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		r.timeout = d
	}
}

// NewResolver creates a resolver over the given lookup provider
func NewResolver(lookup address.Lookup, logger *zap.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		lookup:  lookup,
		timeout: DefaultTimeout,
		logger:  logger,
		tokens:  make(map[string]uint64),
		status:  make(map[string]Status),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve looks up the postal code currently typed into the given form
// field. Input shorter than a complete code is a no-op, not an error:
// both results are nil. The call blocks until the provider answers or
// the timeout fires; screens invoke it from their own goroutine and
// apply the returned address in their event loop.
func (r *Resolver) Resolve(ctx context.Context, field, rawCode string) (*address.Address, error) {
	digits := digitsOnly(rawCode)
	if len(digits) < address.PostalCodeLength {
		return nil, nil
	}

	token := r.begin(field)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resolved, err := r.lookup.Resolve(ctx, digits)
	if errors.Is(err, context.DeadlineExceeded) {
		err = address.NewLookupError(address.LookupTimeout, "address lookup timed out")
	}
	return r.finish(field, token, resolved, err)
}

// Status reports the lookup lifecycle state of a field
func (r *Resolver) Status(field string) Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.status[field]; ok {
		return s
	}
	return StatusIdle
}

func (r *Resolver) begin(field string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[field]++
	r.status[field] = StatusLoading
	return r.tokens[field]
}

func (r *Resolver) finish(field string, token uint64, resolved *address.Address, err error) (*address.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tokens[field] != token {
		r.logger.Debug("discarding stale address lookup",
			zap.String("field", field),
			zap.Uint64("token", token),
			zap.Uint64("latest", r.tokens[field]))
		return nil, ErrSuperseded
	}
	if err != nil {
		r.status[field] = StatusError
		r.logger.Warn("address lookup failed",
			zap.String("field", field),
			zap.Error(err))
		return nil, err
	}
	r.status[field] = StatusSuccess
	return resolved, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
