package identity

import (
	"strings"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/db/models"
)

// Policy decides which routes need a principal and which roles may use them.
// Protected paths without a role rule are open to every authenticated principal,
// paths outside the protected prefixes are public.
type Policy struct {
	protected []string
	rules     []policyRule
}

type policyRule struct {
	prefix string
	roles  []models.UserRole
}

// DefaultPolicy returns the dashboard role policy.
func DefaultPolicy() Policy {
	return Policy{
		protected: []string{catalog.RouteDashboard, APIPrefix + "dashboard"},
		rules:     defaultRules(),
	}
}

func defaultRules() []policyRule {
	return []policyRule{
		{catalog.RouteAdmin, []models.UserRole{models.RoleAdmin}},
		{catalog.RouteStaff, []models.UserRole{models.RoleAdmin, models.RoleStaff}},
		{catalog.RoutePartner, []models.UserRole{models.RoleAdmin, models.RolePartner}},
		{catalog.RouteClient, []models.UserRole{
			models.RolePotentialClient, models.RoleExistingClient, models.RoleAdmin, models.RoleStaff,
		}},
	}
}

// Protected reports whether path requires an authenticated principal.
func (p Policy) Protected(path string) bool {
	for _, prefix := range p.protected {
		if hasPathPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// Allowed reports whether role may access path.
func (p Policy) Allowed(path string, role models.UserRole) bool {
	for _, r := range p.rules {
		if !hasPathPrefix(path, r.prefix) {
			continue
		}

		for _, allowed := range r.roles {
			if allowed == role {
				return true
			}
		}

		return false
	}

	return true
}

func hasPathPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}

	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
