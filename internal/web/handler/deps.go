package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/config"
	"github.com/designspec/designspec-web/internal/identity"
	"github.com/designspec/designspec-web/internal/validation"
	"github.com/designspec/designspec-web/internal/web/navigation"
	"github.com/designspec/designspec-web/internal/web/session"
)

// Deps are the dependencies handed to every handler.
type Deps struct {
	Cfg       *config.Config
	DB        *gorm.DB
	Sessions  *session.Manager
	Resolver  *identity.Resolver
	Validator *validation.Validator
	// Now is the clock, time.Now when nil.
	Now func() time.Time
}

// Check verifies the dependencies every handler needs.
func (d *Deps) Check() error {
	if d == nil || d.Cfg == nil || d.DB == nil || d.Resolver == nil {
		return ErrDepsNil
	}

	if d.Validator == nil {
		d.Validator = validation.New()
	}

	if d.Now == nil {
		d.Now = time.Now
	}

	return nil
}

// View returns the template data of the layout merged with data.
func (d *Deps) View(c *fiber.Ctx, nav *navigation.Context, data fiber.Map) fiber.Map {
	principal := identity.PrincipalFrom(c)
	provider := d.Resolver.Effective()

	view := fiber.Map{
		"Title":        d.Cfg.Title,
		"AppName":      catalog.AppName,
		"Motto":        catalog.AppMotto,
		"Nav":          nav,
		"Principal":    principal,
		"ProviderName": provider.Name(),
		"AuthEnabled":  d.Resolver.Status() == identity.StatusActive,
		"LoginURL":     LoginURL(provider),
		"LogoutURL":    LogoutURL(provider),
		"Services":     catalog.Services,
		"Contact":      catalog.ContactInfo,
		"Social":       catalog.SocialLinks,
		"Year":         d.Now().Year(),
	}

	if principal != nil {
		view["DashboardURL"] = catalog.DashboardRoute(principal.Role)
	}

	for k, v := range data {
		view[k] = v
	}

	return view
}

// LoginURL is where the header login button points for provider.
func LoginURL(provider identity.Provider) string {
	if provider.Name() == identity.KindOIDC {
		return identity.LoginPath
	}

	return catalog.RouteLogin
}

// LogoutURL is where the header logout button points for provider.
func LogoutURL(provider identity.Provider) string {
	if provider.Name() == identity.KindOIDC {
		return identity.LogoutPath
	}

	return catalog.RouteLogout
}
