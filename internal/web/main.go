// Package web wires the fiber application: middleware chain, identity provider, session gate and handlers.
package web

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/gate"
	"github.com/designspec/designspec-web/internal/identity"
	fiberlog "github.com/designspec/designspec-web/internal/logger/adapter/fiber"
	"github.com/designspec/designspec-web/internal/web/handler"
	"github.com/designspec/designspec-web/internal/web/handler/api"
	"github.com/designspec/designspec-web/internal/web/handler/contact"
	"github.com/designspec/designspec-web/internal/web/handler/dashboard"
	"github.com/designspec/designspec-web/internal/web/handler/home"
	"github.com/designspec/designspec-web/internal/web/handler/login"
	"github.com/designspec/designspec-web/internal/web/handler/logout"
	"github.com/designspec/designspec-web/internal/web/handler/pages"
)

const (
	// CheckAlivePath answers 200 while serving and 503 during graceful shutdown.
	CheckAlivePath = "/health"

	// MetricsPath serves the prometheus metrics.
	MetricsPath = "/metrics"
)

// ErrGateNil is returned by New without a session gate.
var ErrGateNil = errors.New("session gate is nil")

// Service represents the web service.
type Service struct {
	App          *fiber.App
	deps         *handler.Deps
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address and returns when it stopped.
func (s *Service) Start(addr string) error {
	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// WaitShutdown waits for SIGINT, SIGTERM or the end of ctx and shuts the
// server down gracefully.
func (s *Service) WaitShutdown(ctx context.Context) {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	defer signal.Stop(irqSig)

	select {
	case sig := <-irqSig:
		log.Info().Msgf("shutdown request (signal: %v)", sig)
	case <-ctx.Done():
		log.Info().Msg("shutdown request (context done)")
	}

	s.Shutdown()
}

// Shutdown stops the server. Unless fast shutdown is set the check alive route
// fails for ShutDownTime seconds first so load balancers drain the instance.
func (s *Service) Shutdown() {
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.deps.Cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.deps.Cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates the web service. The provider behind resolver must already be
// resolved, its routes are mounted once here.
func New(deps *handler.Deps, g *gate.Gate) (*Service, error) {
	if err := deps.Check(); err != nil {
		return nil, err
	}

	if g == nil {
		return nil, ErrGateNil
	}

	cfg := deps.Cfg

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192, //nolint:mnd
			AppName:        catalog.AppName,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          newTemplateEngine(cfg.DevMode),
			ErrorHandler:   errorHandler,
		},
	)

	service := &Service{
		App:          app,
		deps:         deps,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(fiberlog.New(fiberlog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
		Fields:        accessLogFields,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:   embeddedDir(staticFiles, "static"),
				Browse: cfg.Webserver.BrowseStatic,
			},
		),
	)

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	provider := deps.Resolver.Effective()

	app.Use(provider.Wrap)
	app.Use(g.Middleware())

	provider.Mount(app)

	for _, h := range []handler.Service{
		new(home.Service),
		new(pages.Service),
		new(contact.Service),
		new(login.Service),
		new(logout.Service),
		new(dashboard.Service),
		new(api.Service),
	} {
		if err := h.Init(app, deps); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	log.Info().Str("provider", provider.Name()).Str("status", deps.Resolver.Status().String()).
		Msg("web service initialized")

	return service, nil
}

func newTemplateEngine(devMode bool) *html.Engine {
	templateEngine := html.NewFileSystem(embeddedDir(templateFiles, "templates"), ".gohtml")

	// in debug mode, use local filesystem for templates
	if devMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	templateEngine.AddFunc("sub", func(a, b int) int {
		return a - b
	})
	templateEngine.AddFunc("deref", func(v *float64) float64 {
		if v == nil {
			return 0
		}

		return *v
	})
	templateEngine.AddFunc("serviceName", func(id string) string {
		for _, s := range catalog.Services {
			if string(s.ID) == id {
				return s.Name
			}
		}

		return id
	})

	return templateEngine
}

// accessLogFields records how a request passed the gate and who made it.
func accessLogFields(c *fiber.Ctx, e *zerolog.Event) {
	if d, ok := c.Locals(gate.LocalsDecision).(gate.Decision); ok {
		e.Str("gate", d.String())
	}

	if p := identity.PrincipalFrom(c); p != nil {
		e.Str("profile_id", p.ProfileID)
	}
}

// errorHandler answers API routes with JSON and renders the error page otherwise.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	message := http.StatusText(code)

	if strings.HasPrefix(c.Path(), identity.APIPrefix) {
		return c.Status(code).JSON(fiber.Map{"error": message})
	}

	c.Status(code)

	if renderErr := c.Render("error", fiber.Map{
		"Title":    catalog.AppName,
		"AppName":  catalog.AppName,
		"Motto":    catalog.AppMotto,
		"Services": catalog.Services,
		"Contact":  catalog.ContactInfo,
		"Social":   catalog.SocialLinks,
		"Year":     time.Now().Year(),
		"Code":     code,
		"Message":  message,
	}, handler.BaseLayout); renderErr != nil {
		return c.SendString(message)
	}

	return nil
}
