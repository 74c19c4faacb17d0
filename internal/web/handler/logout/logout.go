// Package logout ends sessions of providers without their own logout route.
package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/web/handler"
)

// Path is the logout path.
const Path = catalog.RouteLogout

// Service is the logout handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Init registers GET and POST /logout.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if router == nil {
		return handler.ErrDepsNil
	}

	if err := deps.Check(); err != nil {
		return err
	}

	s.deps = deps

	router.Get(Path, s.Logout)
	router.Post(Path, s.Logout)

	return nil
}

// Logout clears the session, or hands over to the provider's logout route.
func (s *Service) Logout(c *fiber.Ctx) error {
	if target := handler.LogoutURL(s.deps.Resolver.Effective()); target != Path {
		return c.Redirect(target)
	}

	if s.deps.Sessions != nil {
		if err := s.deps.Sessions.End(c); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	return c.Redirect(catalog.RouteHome)
}
