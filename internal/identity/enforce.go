package identity

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/db/models"
	"github.com/designspec/designspec-web/internal/web/session"
)

// APIPrefix marks routes answered with JSON instead of redirects.
const APIPrefix = "/api/"

// Deps are the shared dependencies of the session based providers.
type Deps struct {
	DB       *gorm.DB
	Sessions *session.Manager
	// Policy defaults to DefaultPolicy.
	Policy *Policy
}

func (d Deps) sessionAuth() sessionAuth {
	policy := DefaultPolicy()
	if d.Policy != nil {
		policy = *d.Policy
	}

	return sessionAuth{sessions: d.Sessions, policy: policy}
}

func (d Deps) check() error {
	if d.DB == nil || d.Sessions == nil {
		return ErrDependencyNil
	}

	return nil
}

// sessionAuth implements Wrap and Enforce on top of the session cookie.
type sessionAuth struct {
	sessions *session.Manager
	policy   Policy
}

func (a *sessionAuth) wrap(c *fiber.Ctx) error {
	if PrincipalFrom(c) == nil {
		if d, err := a.sessions.FromRequest(c); err == nil {
			c.Locals(LocalsPrincipal, PrincipalFromProfile(&d.Profile))
		}
	}

	return c.Next()
}

func (a *sessionAuth) enforce(c *fiber.Ctx) error {
	if !a.policy.Protected(c.Path()) {
		return c.Next()
	}

	p := PrincipalFrom(c)
	if p == nil {
		return Unauthenticated(c)
	}

	if !a.policy.Allowed(c.Path(), p.Role) {
		log.Warn().Str("profile_id", p.ProfileID).Str("role", string(p.Role)).Str("path", c.Path()).
			Msg("role is not allowed on route")

		return Forbidden(c)
	}

	return c.Next()
}

// Unauthenticated answers API routes with 401 and redirects pages to the login page.
func Unauthenticated(c *fiber.Ctx) error {
	if isAPI(c.Path()) {
		return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
			Error: "authentication required",
			Code:  "UNAUTHENTICATED",
		})
	}

	return c.Redirect(catalog.RouteLogin + "?next=" + url.QueryEscape(c.OriginalURL()))
}

// Forbidden answers API routes with a 403 JSON body and pages with fiber.ErrForbidden.
func Forbidden(c *fiber.Ctx) error {
	if isAPI(c.Path()) {
		return c.Status(fiber.StatusForbidden).JSON(models.APIResponse{
			Error: "access denied",
			Code:  "FORBIDDEN",
		})
	}

	return fiber.ErrForbidden
}

// SafeNext returns next if it is a local path, fallback otherwise.
func SafeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return fallback
	}

	return next
}

func isAPI(path string) bool {
	return strings.HasPrefix(path, APIPrefix) || path == strings.TrimSuffix(APIPrefix, "/")
}
