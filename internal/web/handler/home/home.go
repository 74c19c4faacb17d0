// Package home serves the landing page.
package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/db/controller/portfolio"
	"github.com/designspec/designspec-web/internal/db/controller/stats"
	"github.com/designspec/designspec-web/internal/web/handler"
	"github.com/designspec/designspec-web/internal/web/navigation"
)

const (
	// TemplateName is the name of the landing page template.
	TemplateName = "home"

	featuredLimit = 6
)

// Service is the landing page handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init registers the landing page.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil {
		return handler.ErrDepsNil
	}

	if err := deps.Check(); err != nil {
		return err
	}

	s.deps = deps

	router.Get(catalog.RouteHome, s.Get)

	return nil
}

// Get renders hero, services, stats, portfolio preview and call to action.
func (s *Service) Get(c *fiber.Ctx) error {
	featured, err := portfolio.Featured(s.deps.DB, featuredLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to load featured portfolio")
	}

	completed, err := stats.CompletedProjects(s.deps.DB)
	if err != nil {
		log.Error().Err(err).Msg("failed to count completed projects")
	}

	nav := navigation.NewContext("Home", catalog.RouteHome)

	return c.Render(TemplateName, s.deps.View(c, nav, fiber.Map{
		"Featured": featured,
		"Stats":    catalog.Stats(s.deps.Now().Year(), completed),
	}), handler.BaseLayout)
}
