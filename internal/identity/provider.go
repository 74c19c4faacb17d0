package identity

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/designspec/designspec-web/internal/db/models"
)

// LocalsPrincipal is the fiber.Locals key of the authenticated Principal.
const LocalsPrincipal = "identity.principal"

// Provider is an identity integration.
type Provider interface {
	// Name identifies the provider kind.
	Name() string
	// Mount registers provider owned routes such as login callbacks.
	Mount(router fiber.Router)
	// Wrap attaches the request's principal, if any, and always continues the chain.
	Wrap(c *fiber.Ctx) error
	// Enforce rejects unauthenticated or unauthorized requests and continues otherwise.
	Enforce(c *fiber.Ctx) error
}

// Principal is the authenticated caller.
type Principal struct {
	ProfileID string          `json:"profile_id"`
	Subject   string          `json:"subject"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      models.UserRole `json:"role"`
}

// PrincipalFromProfile builds the principal of a stored profile.
func PrincipalFromProfile(p *models.Profile) *Principal {
	return &Principal{
		ProfileID: p.ID,
		Subject:   p.UserID,
		Email:     p.Email,
		Name:      p.FullName,
		Role:      p.Role,
	}
}

// PrincipalFrom returns the principal attached by Wrap or nil.
func PrincipalFrom(c *fiber.Ctx) *Principal {
	p, _ := c.Locals(LocalsPrincipal).(*Principal)
	return p
}

// BearerToken returns the token of an "Authorization: Bearer" header, empty if
// there is none. The scheme is matched case insensitively.
func BearerToken(c *fiber.Ctx) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(c.Get(fiber.HeaderAuthorization)), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

// NullProvider accepts everything. It stands in when no provider is active.
type NullProvider struct{}

// Name implements Provider.
func (NullProvider) Name() string { return "none" }

// Mount implements Provider.
func (NullProvider) Mount(fiber.Router) {}

// Wrap implements Provider.
func (NullProvider) Wrap(c *fiber.Ctx) error { return c.Next() }

// Enforce implements Provider.
func (NullProvider) Enforce(c *fiber.Ctx) error { return c.Next() }
