package identity

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"gorm.io/gorm"

	"github.com/designspec/designspec-web/internal/catalog"
	"github.com/designspec/designspec-web/internal/config"
	"github.com/designspec/designspec-web/internal/db/controller/profile"
	"github.com/designspec/designspec-web/internal/db/models"
	"github.com/designspec/designspec-web/internal/web/session"
)

const (
	// KindOIDC is the provider kind of OIDCProvider.
	KindOIDC = "oidc"

	// LoginPath is the path to initiate OIDC login.
	LoginPath = "/auth/oidc/login"
	// CallbackPath is the path for OIDC callback.
	CallbackPath = "/auth/oidc/callback"
	// LogoutPath is the path for OIDC logout.
	LogoutPath = "/auth/oidc/logout"

	// LoginErrorEmailTaken is the login page error code of a refused account link.
	LoginErrorEmailTaken = "email_taken"

	stateTTL      = 5 * time.Minute
	stateCapacity = 4096
	tokenTTL      = 2 * time.Minute
	tokenCapacity = 1024
)

// OIDCProvider authenticates through an OpenID Connect issuer.
// Browser logins use the authorization code flow and the session cookie,
// API clients may send an ID token as bearer token instead.
type OIDCProvider struct {
	sessionAuth
	cfg      config.OIDCAuth
	provider *oidc.Provider
	verifier *oidc.IDTokenVerifier
	oauth2   oauth2.Config
	db       *gorm.DB

	// states maps pending login states to the page requested before login.
	states *expirable.LRU[string, string]
	// tokens caches principals of verified bearer tokens.
	tokens *expirable.LRU[string, verifiedToken]
}

// verifiedToken is a cached bearer token principal. It is only served until
// the token's own expiry.
type verifiedToken struct {
	principal *Principal
	expiry    time.Time
}

// NewOIDCProvider runs issuer discovery and creates the provider.
func NewOIDCProvider(ctx context.Context, cfg config.OIDCAuth, deps Deps) (*OIDCProvider, error) {
	if err := deps.check(); err != nil {
		return nil, err
	}

	if cfg.IssuerURL == "" || cfg.ClientID == "" || cfg.RedirectURL == "" {
		return nil, ErrOIDCMisconfigured
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{oidc.ScopeOpenID, "profile", "email"}
	}

	if cfg.RoleClaim == "" {
		cfg.RoleClaim = "role"
	}

	return &OIDCProvider{
		sessionAuth: deps.sessionAuth(),
		cfg:         cfg,
		provider:    provider,
		verifier:    provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		oauth2: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       scopes,
		},
		db:     deps.DB,
		states: expirable.NewLRU[string, string](stateCapacity, nil, stateTTL),
		tokens: expirable.NewLRU[string, verifiedToken](tokenCapacity, nil, tokenTTL),
	}, nil
}

// Name implements Provider.
func (p *OIDCProvider) Name() string { return KindOIDC }

// Mount implements Provider.
func (p *OIDCProvider) Mount(router fiber.Router) {
	router.Get(LoginPath, p.Login)
	router.Get(CallbackPath, p.Callback)
	router.Get(LogoutPath, p.Logout)
}

// Wrap implements Provider. A bearer ID token takes precedence over the session cookie.
func (p *OIDCProvider) Wrap(c *fiber.Ctx) error {
	if raw := BearerToken(c); raw != "" {
		principal, err := p.verifyBearer(c.UserContext(), raw)
		if err != nil {
			log.Debug().Err(err).Msg("bearer token rejected")
		} else {
			c.Locals(LocalsPrincipal, principal)
		}
	}

	return p.wrap(c)
}

// Enforce implements Provider.
func (p *OIDCProvider) Enforce(c *fiber.Ctx) error { return p.enforce(c) }

// Login initiates the OIDC login flow.
func (p *OIDCProvider) Login(c *fiber.Ctx) error {
	state, err := generateStateToken()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate state token")
		return fiber.ErrInternalServerError
	}

	p.states.Add(state, SafeNext(c.Query("next"), ""))

	return c.Redirect(p.oauth2.AuthCodeURL(state))
}

// Callback handles the OIDC callback.
func (p *OIDCProvider) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")

	if code == "" || state == "" {
		log.Error().Msg("missing code or state in OIDC callback")
		return fiber.NewError(fiber.StatusBadRequest, "invalid callback parameters")
	}

	next, ok := p.states.Get(state)
	if !ok {
		log.Error().Msg("unknown or expired OIDC state token")
		return fiber.NewError(fiber.StatusBadRequest, "invalid state token")
	}

	p.states.Remove(state)

	ctx := c.UserContext()

	token, err := p.oauth2.Exchange(ctx, code)
	if err != nil {
		log.Error().Err(err).Msg("failed to exchange token")
		return fiber.NewError(fiber.StatusUnauthorized, "authentication failed")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		log.Error().Err(ErrNoIDToken).Msg("OIDC authentication failed")
		return fiber.NewError(fiber.StatusUnauthorized, "authentication failed")
	}

	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		log.Error().Err(err).Msg("failed to verify ID token")
		return fiber.NewError(fiber.StatusUnauthorized, "authentication failed")
	}

	ext, err := p.external(idToken)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse claims")
		return fiber.NewError(fiber.StatusUnauthorized, "authentication failed")
	}

	prof, err := profile.Sync(p.db, ext, p.defaultRole())
	if errors.Is(err, profile.ErrEmailTaken) {
		log.Warn().Str("subject", ext.Subject).Bool("email_verified", ext.EmailVerified).
			Msg("OIDC login refused, email belongs to another account")

		return c.Redirect(catalog.RouteLogin + "?error=" + LoginErrorEmailTaken)
	}

	if err != nil {
		log.Error().Err(err).Str("subject", ext.Subject).Msg("failed to sync profile")
		return fiber.ErrInternalServerError
	}

	if err = p.sessions.Start(c, &session.Data{Profile: *prof, IDToken: rawIDToken}); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return fiber.ErrInternalServerError
	}

	log.Info().Str("profile_id", prof.ID).Str("role", string(prof.Role)).Msg("profile logged in via OIDC")

	return c.Redirect(SafeNext(next, catalog.DashboardRoute(prof.Role)))
}

// Logout ends the session and redirects to the issuer's end session endpoint if it has one.
func (p *OIDCProvider) Logout(c *fiber.Ctx) error {
	var idToken string
	if d, err := p.sessions.FromRequest(c); err == nil {
		idToken = d.IDToken
	}

	if err := p.sessions.End(c); err != nil {
		log.Error().Err(err).Msg("failed to delete session")
	}

	if logoutURL := p.logoutURL(idToken, c.BaseURL()+catalog.RouteHome); logoutURL != "" {
		return c.Redirect(logoutURL)
	}

	return c.Redirect(catalog.RouteHome)
}

func (p *OIDCProvider) verifyBearer(ctx context.Context, raw string) (*Principal, error) {
	if cached, ok := p.tokens.Get(raw); ok {
		if time.Now().Before(cached.expiry) {
			return cached.principal, nil
		}

		p.tokens.Remove(raw)
	}

	idToken, err := p.verifier.Verify(ctx, raw)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	ext, err := p.external(idToken)
	if err != nil {
		return nil, err
	}

	principal := &Principal{Subject: ext.Subject, Email: ext.Email, Name: ext.FullName, Role: ext.Role}

	// the stored profile is authoritative for id and role
	if prof, err := profile.GetBySubject(p.db, models.AuthSourceOIDC, ext.Subject); err == nil {
		principal = PrincipalFromProfile(prof)
	}

	if !principal.Role.Valid() {
		principal.Role = p.defaultRole()
	}

	p.tokens.Add(raw, verifiedToken{principal: principal, expiry: idToken.Expiry})

	return principal, nil
}

// external maps ID token claims to a profile.External.
func (p *OIDCProvider) external(idToken *oidc.IDToken) (profile.External, error) {
	var claims map[string]interface{}
	if err := idToken.Claims(&claims); err != nil {
		return profile.External{}, err //nolint:wrapcheck
	}

	ext := profile.External{
		Source:        models.AuthSourceOIDC,
		Subject:       idToken.Subject,
		Email:         stringClaim(claims, "email"),
		EmailVerified: boolClaim(claims, "email_verified"),
		FullName:      stringClaim(claims, "name"),
		AvatarURL:     stringClaim(claims, "picture"),
		Role:          models.UserRole(stringClaim(claims, p.cfg.RoleClaim)),
	}

	if ext.FullName == "" {
		ext.FullName = strings.TrimSpace(stringClaim(claims, "given_name") + " " + stringClaim(claims, "family_name"))
	}

	return ext, nil
}

func (p *OIDCProvider) defaultRole() models.UserRole {
	if r := models.UserRole(p.cfg.DefaultRole); r.Valid() {
		return r
	}

	return models.RolePotentialClient
}

// logoutURL builds the issuer's end session URL, empty if it has none.
func (p *OIDCProvider) logoutURL(idToken, postLogoutRedirectURI string) string {
	var claims struct {
		EndSessionEndpoint string `json:"end_session_endpoint"`
	}

	if err := p.provider.Claims(&claims); err != nil || claims.EndSessionEndpoint == "" {
		return ""
	}

	q := url.Values{}
	q.Set("post_logout_redirect_uri", postLogoutRedirectURI)
	q.Set("client_id", p.cfg.ClientID)

	if idToken != "" {
		q.Set("id_token_hint", idToken)
	}

	return claims.EndSessionEndpoint + "?" + q.Encode()
}

// generateStateToken generates a random state token for CSRF protection.
func generateStateToken() (string, error) {
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err //nolint:wrapcheck
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

func stringClaim(claims map[string]interface{}, name string) string {
	s, _ := claims[name].(string)
	return s
}

// boolClaim reads a boolean claim. Some issuers send "true" as a string.
func boolClaim(claims map[string]interface{}, name string) bool {
	switch v := claims[name].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	default:
		return false
	}
}
