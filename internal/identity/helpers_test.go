package identity

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/require"

	"github.com/designspec/designspec-web/internal/web/session"
)

func newSessions(t *testing.T) *session.Manager {
	t.Helper()

	m, err := session.NewManager(memory.New(), time.Hour, false)
	require.NoError(t, err)

	return m
}

// protectedApp mounts p in front of a few public and protected routes.
func protectedApp(p Provider) *fiber.App {
	app := fiber.New()
	p.Mount(app)
	app.Use(p.Wrap, p.Enforce)

	ok := func(c *fiber.Ctx) error {
		if principal := PrincipalFrom(c); principal != nil {
			return c.SendString(principal.Email)
		}

		return c.SendString("anonymous")
	}

	for _, path := range []string{"/", "/dashboard", "/dashboard/client", "/dashboard/admin", "/api/dashboard/stats"} {
		app.Get(path, ok)
	}

	return app
}

func get(t *testing.T, app *fiber.App, path string, cookie *http.Cookie, header ...string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c
		}
	}

	return nil
}
