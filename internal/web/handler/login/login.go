// Package login renders the login page of the active provider.
package login

import (
	"github.com/gofiber/fiber/v2"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/identity"
	"github.com/designspec/designspec-web/internal/web/handler"
	"github.com/designspec/designspec-web/internal/web/navigation"
)

const (
	// Path is the path to the login page.
	Path = catalog.RouteLogin

	// TemplateName is the name of the login template.
	TemplateName = "login"
)

var errorMessages = map[string]string{ //nolint:gochecknoglobals
	"invalid":  "Invalid email or password",
	"inactive": "This account is disabled",
	"internal": "Internal server error",

	identity.LoginErrorEmailTaken: "This email belongs to another account. Sign in with that account instead.",
}

// Service is the login handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init registers GET /login. The form POST belongs to the provider.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil {
		return handler.ErrDepsNil
	}

	if err := deps.Check(); err != nil {
		return err
	}

	s.deps = deps

	router.Get(Path, s.Get)

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	if p := identity.PrincipalFrom(c); p != nil {
		return c.Redirect(catalog.DashboardRoute(p.Role))
	}

	provider := s.deps.Resolver.Effective()

	nav := navigation.NewContext("Login", Path)

	return c.Render(TemplateName, s.deps.View(c, nav, fiber.Map{
		"LocalEnabled": provider.Name() == identity.KindLocal,
		"OIDCEnabled":  provider.Name() == identity.KindOIDC,
		"Next":         identity.SafeNext(c.Query("next"), ""),
		"Error":        errorMessages[c.Query("error")],
	}), handler.BaseLayout)
}
