// Package dashboard serves the role dashboards.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/db/controller/stats"
	"github.com/designspec/designspec-web/internal/db/models"
	"github.com/designspec/designspec-web/internal/identity"
	"github.com/designspec/designspec-web/internal/web/handler"
	"github.com/designspec/designspec-web/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = catalog.RouteDashboard

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard"
)

// sections maps the :section parameter to its title.
var sections = map[string]string{ //nolint:gochecknoglobals
	"client":  "Client Dashboard",
	"admin":   "Admin Dashboard",
	"staff":   "Staff Dashboard",
	"partner": "Partner Dashboard",
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init registers /dashboard and /dashboard/:section.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil {
		return handler.ErrDepsNil
	}

	if err := deps.Check(); err != nil {
		return err
	}

	s.deps = deps

	router.Get(Path, s.Index)
	router.Get(Path+"/:section", s.Section)

	return nil
}

// Index sends principals to their role dashboard. Without a principal the
// site runs without authentication and shows the overview.
func (s *Service) Index(c *fiber.Ctx) error {
	if p := identity.PrincipalFrom(c); p != nil {
		return c.Redirect(catalog.DashboardRoute(p.Role))
	}

	nav := navigation.NewContext("Dashboard", Path).
		AddBreadcrumb("Home", catalog.RouteHome, false).
		AddBreadcrumb("Dashboard", Path, true)

	return c.Render(TemplateName, s.deps.View(c, nav, fiber.Map{
		"Sections": sections,
		"Demo":     true,
	}), handler.BaseLayout)
}

// Section renders one role dashboard.
func (s *Service) Section(c *fiber.Ctx) error {
	section := c.Params("section")

	title, ok := sections[section]
	if !ok {
		return fiber.ErrNotFound
	}

	data := fiber.Map{
		"Section":      section,
		"SectionTitle": title,
		"Demo":         true,
	}

	if p := identity.PrincipalFrom(c); p != nil {
		st, err := stats.ForProfile(s.deps.DB, ProfileOf(p), s.deps.Now())
		if err != nil {
			log.Error().Err(err).Str("profile_id", p.ProfileID).Msg("failed to load dashboard stats")
		}

		data["Demo"] = false
		data["Stats"] = st
	}

	nav := navigation.NewContext(title, c.Path()).
		AddBreadcrumb("Home", catalog.RouteHome, false).
		AddBreadcrumb("Dashboard", Path, false).
		AddBreadcrumb(title, c.Path(), true)

	return c.Render(TemplateName, s.deps.View(c, nav, data), handler.BaseLayout)
}

// ProfileOf returns the profile fields of p that stats are scoped by.
func ProfileOf(p *identity.Principal) *models.Profile {
	return &models.Profile{Base: models.Base{ID: p.ProfileID}, Role: p.Role}
}
