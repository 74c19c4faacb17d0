package config

import (
	"time"

	"github.com/designspec/designspec-web/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
	Storage    string // mysql, postgres, memory or redis. Empty follows DB.GormEngine.
	Redis      Redis
}

// Redis holds the connection settings of the redis session storage.
type Redis struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Auth      Auth
	Gate      Gate
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool    // enable static file browsing (for development purposes only)
	DisableRecover bool    // disable recover middleware
	Domain         string  // domain name for the webserver
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	Session        Session // session settings
}

// Auth selects the identity provider integration.
type Auth struct {
	// Provider is the kind of identity provider to activate ("oidc", "local").
	// Empty means no provider is configured and the site runs in pass-through mode.
	Provider string

	// AllowInsecure acknowledges running without an active identity provider
	// outside of dev mode. Every gated request is let through unauthenticated.
	AllowInsecure bool

	OIDC  OIDCAuth
	Local LocalAuth
}

// OIDCAuth holds the OpenID Connect settings.
type OIDCAuth struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
	RoleClaim    string // ID token claim carrying the profile role
	DefaultRole  string // role for new profiles without a role claim
}

// LocalAuth holds the settings of the local (password) provider.
type LocalAuth struct {
	// AdminEmail and AdminPasswordHash seed an admin profile on first start.
	AdminEmail        string
	AdminPasswordHash string
}

// Gate holds the ordered route rules of the session gate.
type Gate struct {
	Rules []GateRule
}

// GateRule is one ordered matcher pattern. Exclude rules stop interception.
type GateRule struct {
	Pattern string
	Exclude bool
}
