package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/designspec/designspec-web/internal/config"
	"github.com/designspec/designspec-web/internal/db/controller/portfolio"
	"github.com/designspec/designspec-web/internal/db/controller/profile"
	"github.com/designspec/designspec-web/internal/db/dbtest"
	"github.com/designspec/designspec-web/internal/db/models"
	"github.com/designspec/designspec-web/internal/gate"
	"github.com/designspec/designspec-web/internal/identity"
	"github.com/designspec/designspec-web/internal/web/handler"
	"github.com/designspec/designspec-web/internal/web/session"
)

var fixedNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

type site struct {
	svc *Service
	db  *gorm.DB
}

// newSite boots the web service with the given provider kind ("" for none).
func newSite(t *testing.T, kind string) site {
	t.Helper()

	cfg := &config.Config{Title: "DesignSpec Ltd"}
	cfg.Webserver.ShutDownTime = 1

	db := dbtest.Open(t)

	sessions, err := session.NewManager(memory.New(), time.Hour, false)
	require.NoError(t, err)

	resolver := identity.NewResolver(identity.NewLoader(kind, identity.Factories{
		identity.KindLocal: func(context.Context) (identity.Provider, error) {
			return identity.NewLocalProvider(identity.Deps{DB: db, Sessions: sessions})
		},
	}))
	resolver.Resolve(context.Background())

	m, err := gate.NewMatcher(gate.DefaultRules())
	require.NoError(t, err)

	svc, err := New(&handler.Deps{
		Cfg:      cfg,
		DB:       db,
		Sessions: sessions,
		Resolver: resolver,
		Now:      func() time.Time { return fixedNow },
	}, gate.New(resolver, m))
	require.NoError(t, err)

	return site{svc: svc, db: db}
}

func (s site) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	resp, err := s.svc.App.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func (s site) get(t *testing.T, path string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	return s.do(t, req)
}

func (s site) postJSON(t *testing.T, path string, v interface{}) (*http.Response, models.APIResponse) {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(b)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, body := s.do(t, req)

	var out models.APIResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out), body)

	return resp, out
}

func (s site) postForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	return s.do(t, req)
}

func TestNewRequiresDeps(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, handler.ErrDepsNil)
}

func TestPublicPages(t *testing.T) {
	s := newSite(t, "")

	require.NoError(t, portfolio.Create(s.db, &models.PortfolioItem{
		Title:       "Riverside Apartments",
		ServiceType: models.ServiceArchitecturalDesign,
		Featured:    true,
		Images:      []string{"/static/img/placeholder.svg"},
		Location:    "Nairobi",
	}))

	tests := []struct {
		path     string
		contains []string
	}{
		{"/", []string{"Designing spaces that inspire", "Architectural Design", "16+", "Riverside Apartments"}},
		{"/services", []string{"Urban Planning", "Stakeholder Coordination"}},
		{"/portfolio", []string{"Riverside Apartments", "Page 1 of 1"}},
		{"/portfolio?service=interior_design", []string{"No projects to show yet."}},
		{"/contact", []string{`action="/contact"`, "info@designspec.co.ke"}},
		{"/login", []string{"Sign in is not available"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := s.get(t, tt.path)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)

			for _, want := range tt.contains {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestStaticHealthAndMetrics(t *testing.T) {
	s := newSite(t, "")

	resp, body := s.get(t, "/static/css/site.css")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "--brand")

	resp, _ = s.get(t, CheckAlivePath)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	s.get(t, "/dashboard")

	resp, body = s.get(t, MetricsPath)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `session_gate_decisions_total{decision="continue"}`)
	assert.Contains(t, body, "identity_provider_status")

	resp, _ = s.get(t, "/nope")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestContactForm(t *testing.T) {
	s := newSite(t, "")

	resp, body := s.postForm(t, "/contact", url.Values{
		"name": {"Grace"}, "email": {"grace@example.com"}, "subject": {"Kitchen"},
		"message": {"We would like to redo our kitchen."},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Thank you")

	var n int64
	require.NoError(t, s.db.Model(&models.ContactMessage{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	resp, body = s.postForm(t, "/contact", url.Values{"name": {"G"}, "email": {"not-an-email"}})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "Please check the highlighted fields.")
}

func TestAPI(t *testing.T) {
	s := newSite(t, "")

	resp, body := s.get(t, "/api/status")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"data":{"app":"DesignSpec Ltd","provider":"none","status":"unavailable"}}`, body)

	resp, body = s.get(t, "/api/services")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "project_management")

	resp, body = s.get(t, "/api/portfolio?page=1&pageSize=5")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"data":[],"total":0,"page":1,"pageSize":5,"totalPages":0}`, body)

	resp, out := s.postJSON(t, "/api/quotes", models.QuoteRequestForm{
		FullName:     "Brian",
		Email:        "brian@example.com",
		Phone:        "0711111111",
		ServiceType:  models.ServiceUrbanPlanning,
		ProjectTitle: "Estate master plan",
		Description:  "Forty acres of mixed use development.",
		BudgetRange:  "Above KES 10,000,000",
		Timeline:     "6-12 months",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Quote request received", out.Message)

	resp, out = s.postJSON(t, "/api/quotes", models.QuoteRequestForm{Email: "x"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", out.Code)

	booking := models.AppointmentBookingForm{
		FullName:      "Brian",
		Email:         "brian@example.com",
		Phone:         "0711111111",
		ServiceType:   models.ServiceInteriorDesign,
		PreferredDate: "2026-05-06",
		PreferredTime: "10:00 AM",
	}

	resp, out = s.postJSON(t, "/api/appointments", booking)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode, out.Error)

	booking.PreferredDate = "2026-05-01"
	resp, out = s.postJSON(t, "/api/appointments", booking)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", out.Code)

	resp, out = s.postJSON(t, "/api/contact", models.ContactForm{
		Name: "Brian", Email: "brian@example.com", Subject: "Hello", Message: "Just saying hello to the team.",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var profiles int64
	require.NoError(t, s.db.Model(&models.Profile{}).Count(&profiles).Error)
	assert.EqualValues(t, 1, profiles)
}

func TestWithoutProviderDashboardIsOpen(t *testing.T) {
	s := newSite(t, "")

	resp, body := s.get(t, "/dashboard")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Authentication is not configured")

	resp, body = s.get(t, "/dashboard/admin")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Admin Dashboard")

	resp, _ = s.get(t, "/dashboard/unknown")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// the stats handler itself needs a principal
	resp, _ = s.get(t, "/api/dashboard/stats")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWithLocalProvider(t *testing.T) {
	s := newSite(t, identity.KindLocal)

	hash, err := models.HashPassword("pa55word")
	require.NoError(t, err)

	_, err = profile.CreateLocal(s.db, "staff@designspec.co.ke", "Njeri", hash, models.RoleStaff)
	require.NoError(t, err)

	resp, body := s.get(t, "/api/status")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"provider":"local"`)

	resp, _ = s.get(t, "/dashboard")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?next=%2Fdashboard", resp.Header.Get(fiber.HeaderLocation))

	resp, _ = s.get(t, "/api/dashboard/stats")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// public pages stay public
	resp, body = s.get(t, "/")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Sign in")

	resp, body = s.get(t, "/login?next=%2Fdashboard")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="password"`)

	resp, _ = s.postForm(t, "/login", url.Values{
		"email": {"staff@designspec.co.ke"}, "password": {"pa55word"},
	})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard/staff", resp.Header.Get(fiber.HeaderLocation))

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	resp, _ = s.get(t, "/dashboard", cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard/staff", resp.Header.Get(fiber.HeaderLocation))

	resp, body = s.get(t, "/dashboard/staff", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Signed in as Njeri")
	assert.Contains(t, body, "Sign out")

	resp, body = s.get(t, "/dashboard/admin", cookie)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Contains(t, body, "Forbidden")

	resp, body = s.get(t, "/api/dashboard/stats", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"total_projects":0`)

	resp, _ = s.get(t, "/logout", cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	resp, _ = s.get(t, "/dashboard/staff", cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}
