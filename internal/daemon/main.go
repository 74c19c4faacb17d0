// Package daemon assembles the database, session storage, identity provider,
// session gate and web service and runs them until shutdown.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/designspec/designspec-web/internal/config"
	"github.com/designspec/designspec-web/internal/db"
	"github.com/designspec/designspec-web/internal/gate"
	"github.com/designspec/designspec-web/internal/identity"
	"github.com/designspec/designspec-web/internal/validation"
	"github.com/designspec/designspec-web/internal/web"
	"github.com/designspec/designspec-web/internal/web/handler"
	"github.com/designspec/designspec-web/internal/web/session"
)

var (
	// ErrConfigNil is returned by New without a config.
	ErrConfigNil = errors.New("config is nil")

	// ErrInsecureNotAcknowledged is returned when no identity provider is active
	// outside of dev mode and auth.allowInsecure is not set.
	ErrInsecureNotAcknowledged = errors.New(
		"no identity provider is active, set auth.allowInsecure to serve without authentication",
	)
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	storage    fiber.Storage
	resolver   *identity.Resolver
	webService *web.Service
}

// New builds the daemon. The identity provider is resolved here, before the
// first request reaches the session gate.
func New(ctx context.Context, cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = seed(cfg, gormDB); err != nil {
		return nil, err
	}

	storage, err := newSessionStorage(cfg)
	if err != nil {
		return nil, err
	}

	sessions, err := session.NewManager(storage, cfg.Webserver.Session.ExpiryTime, !cfg.DevMode)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	resolver := identity.NewResolver(identity.NewLoader(cfg.Auth.Provider, factories(cfg, identity.Deps{
		DB:       gormDB,
		Sessions: sessions,
	})))

	_, status := resolver.Resolve(ctx)

	if err = checkInsecure(cfg, status); err != nil {
		_ = storage.Close()
		return nil, err
	}

	matcher, err := gate.NewMatcher(gate.RulesFromConfig(cfg.Gate))
	if err != nil {
		return nil, fmt.Errorf("invalid gate rules: %w", err)
	}

	webService, err := web.New(&handler.Deps{
		Cfg:       cfg,
		DB:        gormDB,
		Sessions:  sessions,
		Resolver:  resolver,
		Validator: validation.New(),
	}, gate.New(resolver, matcher))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &Daemon{
		cfg:        cfg,
		db:         gormDB,
		storage:    storage,
		resolver:   resolver,
		webService: webService,
	}, nil
}

// Start serves until SIGINT, SIGTERM or the end of ctx.
func (d *Daemon) Start(ctx context.Context) error {
	addr := net.JoinHostPort("", strconv.Itoa(d.cfg.Webserver.Port))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")
		return d.webService.Start(addr)
	})

	g.Go(func() error {
		d.webService.WaitShutdown(ctx)
		return nil
	})

	err := g.Wait()

	if cerr := d.storage.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("failed to close session storage")
	}

	return err //nolint:wrapcheck
}

// Resolver returns the identity provider resolver of the daemon.
func (d *Daemon) Resolver() *identity.Resolver {
	return d.resolver
}

// factories registers the identity providers this build ships.
func factories(cfg *config.Config, deps identity.Deps) identity.Factories {
	return identity.Factories{
		identity.KindOIDC: func(ctx context.Context) (identity.Provider, error) {
			return identity.NewOIDCProvider(ctx, cfg.Auth.OIDC, deps)
		},
		identity.KindLocal: func(context.Context) (identity.Provider, error) {
			return identity.NewLocalProvider(deps)
		},
	}
}

// checkInsecure refuses to serve without authentication unless the operator
// acknowledged it or dev mode is on.
func checkInsecure(cfg *config.Config, status identity.Status) error {
	if status == identity.StatusActive {
		return nil
	}

	if !cfg.DevMode && !cfg.Auth.AllowInsecure {
		return ErrInsecureNotAcknowledged
	}

	log.Info().Str("provider", cfg.Auth.Provider).
		Msg("running without authentication, dashboards and gated routes are open")

	return nil
}
