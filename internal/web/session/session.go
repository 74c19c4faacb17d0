// Package session keeps logged-in profiles in a fiber.Storage backend keyed by a cookie.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/designspec/designspec-web/internal/db/models"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

var (
	// ErrStorageNil is returned by NewManager without a storage backend.
	ErrStorageNil = errors.New("session storage is nil")
	// ErrNotFound is returned when the session id is unknown or expired.
	ErrNotFound = errors.New("session not found")
)

// Data represents the session data structure.
type Data struct {
	Profile models.Profile
	// IDToken is the raw OIDC id token, kept for RP initiated logout.
	IDToken string `json:",omitempty"`
}

// Manager reads and writes sessions.
type Manager struct {
	storage fiber.Storage
	expiry  time.Duration
	secure  bool
}

// NewManager creates a session manager. secure marks the cookie Secure.
func NewManager(storage fiber.Storage, expiry time.Duration, secure bool) (*Manager, error) {
	if storage == nil {
		return nil, ErrStorageNil
	}

	return &Manager{storage: storage, expiry: expiry, secure: secure}, nil
}

// Write writes the session data for the given session ID.
func (m *Manager) Write(sessionID string, d *Data) error {
	out, err := json.Marshal(d)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return m.storage.Set(sessionID, out, m.expiry) //nolint:wrapcheck
}

// Read reads the session data for the given session ID.
func (m *Manager) Read(sessionID string) (*Data, error) {
	if sessionID == "" {
		return nil, ErrNotFound
	}

	raw, err := m.storage.Get(sessionID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if len(raw) == 0 {
		return nil, ErrNotFound
	}

	d := new(Data)
	if err = json.Unmarshal(raw, d); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if d.Profile.ID == "" {
		return nil, ErrNotFound
	}

	return d, nil
}

// Delete removes a session.
func (m *Manager) Delete(sessionID string) error {
	return m.storage.Delete(sessionID) //nolint:wrapcheck
}

// Start stores d under a new session id and sets the session cookie.
func (m *Manager) Start(c *fiber.Ctx, d *Data) error {
	sessionID, err := GenerateSessionID()
	if err != nil {
		return err
	}

	if err = m.Write(sessionID, d); err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(m.expiry.Seconds()),
		Secure:   m.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return nil
}

// FromRequest reads the session referenced by the request cookie.
func (m *Manager) FromRequest(c *fiber.Ctx) (*Data, error) {
	return m.Read(c.Cookies(CookieName))
}

// End deletes the request's session and clears the cookie.
func (m *Manager) End(c *fiber.Ctx) error {
	var err error
	if id := c.Cookies(CookieName); id != "" {
		err = m.Delete(id)
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return err
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err //nolint:wrapcheck
	}

	return hex.EncodeToString(b), nil
}
