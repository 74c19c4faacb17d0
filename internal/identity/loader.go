package identity

import (
	"context"
	"fmt"
)

// Factory constructs one provider kind.
type Factory func(ctx context.Context) (Provider, error)

// Factories maps provider kinds to their constructors.
type Factories map[string]Factory

// NewLoader returns a Loader building the provider of the given kind.
// An empty or unregistered kind yields ErrProviderLoadAbsent, construction
// errors are wrapped with ErrProviderInitFailed.
func NewLoader(kind string, factories Factories) Loader {
	return func(ctx context.Context) (Provider, error) {
		factory, ok := factories[kind]
		if kind == "" || !ok || factory == nil {
			return nil, ErrProviderLoadAbsent
		}

		p, err := factory(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrProviderInitFailed, kind, err)
		}

		if p == nil {
			return nil, fmt.Errorf("%w: %s: factory returned no provider", ErrProviderInitFailed, kind)
		}

		return p, nil
	}
}
