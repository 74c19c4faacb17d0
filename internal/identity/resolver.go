package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Loader constructs the configured provider. It returns ErrProviderLoadAbsent
// when no provider is configured.
type Loader func(ctx context.Context) (Provider, error)

// Resolver resolves the identity provider exactly once.
type Resolver struct {
	load   Loader
	logger zerolog.Logger

	once     sync.Once
	status   atomic.Int32
	provider Provider
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger receiving the init failure warning.
func WithLogger(l zerolog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = l
	}
}

// NewResolver creates an unresolved Resolver.
func NewResolver(load Loader, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		load:   load,
		logger: log.Logger,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve runs the loader on the first call and returns the cached outcome afterwards.
// Concurrent first callers block until the single loader run finished.
// The provider is nil unless the status is StatusActive.
func (r *Resolver) Resolve(ctx context.Context) (Provider, Status) {
	r.once.Do(func() {
		r.resolve(ctx)
	})

	return r.Provider(), r.Status()
}

// Status returns the current status without resolving.
func (r *Resolver) Status() Status {
	return Status(r.status.Load())
}

// Provider returns the active provider or nil.
func (r *Resolver) Provider() Provider {
	if r.Status() != StatusActive {
		return nil
	}

	return r.provider
}

// Effective returns the active provider or NullProvider.
func (r *Resolver) Effective() Provider {
	if p := r.Provider(); p != nil {
		return p
	}

	return NullProvider{}
}

func (r *Resolver) resolve(ctx context.Context) {
	p, err := r.safeLoad(ctx)

	switch {
	case err == nil && p != nil:
		r.provider = p
		r.set(StatusActive)

		return
	case err == nil, errors.Is(err, ErrProviderLoadAbsent):
	default:
		r.logger.Warn().Err(err).Msg("identity provider failed to initialize, continuing without authentication")
	}

	r.set(StatusUnavailable)
}

func (r *Resolver) safeLoad(ctx context.Context) (p Provider, err error) {
	if r.load == nil {
		return nil, ErrProviderLoadAbsent
	}

	defer func() {
		if v := recover(); v != nil {
			p = nil
			err = fmt.Errorf("%w: panic: %v", ErrProviderInitFailed, v)
		}
	}()

	return r.load(ctx)
}

func (r *Resolver) set(s Status) {
	r.status.Store(int32(s))
	providerStatus(s)
}
