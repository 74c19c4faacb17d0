package identity

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/db/controller/profile"
	"github.com/designspec/designspec-web/internal/web/session"
)

// KindLocal is the provider kind of LocalProvider.
const KindLocal = "local"

// LocalProvider authenticates profiles with an argon2id password hash.
type LocalProvider struct {
	sessionAuth
	db *gorm.DB
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

// NewLocalProvider creates the local password provider.
func NewLocalProvider(deps Deps) (*LocalProvider, error) {
	if err := deps.check(); err != nil {
		return nil, err
	}

	return &LocalProvider{
		sessionAuth: deps.sessionAuth(),
		db:          deps.DB,
	}, nil
}

// Name implements Provider.
func (p *LocalProvider) Name() string { return KindLocal }

// Mount implements Provider.
func (p *LocalProvider) Mount(router fiber.Router) {
	router.Post(catalog.RouteLogin, p.Login)
}

// Wrap implements Provider.
func (p *LocalProvider) Wrap(c *fiber.Ctx) error { return p.wrap(c) }

// Enforce implements Provider.
func (p *LocalProvider) Enforce(c *fiber.Ctx) error { return p.enforce(c) }

// Login handles the login form submission.
func (p *LocalProvider) Login(c *fiber.Ctx) error {
	form := new(loginForm)
	if err := c.BodyParser(form); err != nil {
		return fiber.ErrBadRequest
	}

	fail := func(reason string) error {
		return c.Redirect(catalog.RouteLogin + "?error=" + reason + "&next=" + url.QueryEscape(form.Next))
	}

	prof, err := profile.GetByEmail(p.db, form.Email)
	switch {
	case errors.Is(err, profile.ErrProfileNotFound), errors.Is(err, profile.ErrEmailEmpty):
		return fail("invalid")
	case err != nil:
		log.Error().Err(err).Msg("failed to load profile")
		return fail("internal")
	}

	if !prof.Active {
		return fail("inactive")
	}

	if !prof.VerifyPassword(form.Password) {
		log.Info().Str("profile_id", prof.ID).Msg("invalid password")
		return fail("invalid")
	}

	if err = p.sessions.Start(c, &session.Data{Profile: *prof}); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return fail("internal")
	}

	log.Info().Str("profile_id", prof.ID).Msg("profile logged in with password")

	return c.Redirect(SafeNext(form.Next, catalog.DashboardRoute(prof.Role)))
}
