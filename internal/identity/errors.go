package identity

import "errors"

var (
	// ErrProviderLoadAbsent is returned by a loader when no provider integration is configured.
	// It is a normal state and never logged.
	ErrProviderLoadAbsent = errors.New("identity provider not configured")

	// ErrProviderInitFailed wraps construction failures of a configured provider.
	ErrProviderInitFailed = errors.New("identity provider initialization failed")

	// ErrOIDCMisconfigured is returned when required OIDC settings are missing.
	ErrOIDCMisconfigured = errors.New("oidc issuer url, client id and redirect url are required")

	// ErrNoIDToken is returned when the OAuth2 token response doesn't contain an ID token.
	ErrNoIDToken = errors.New("no id_token in token response")

	// ErrDependencyNil is returned when a provider is built without database or session manager.
	ErrDependencyNil = errors.New("provider dependency is nil")
)
