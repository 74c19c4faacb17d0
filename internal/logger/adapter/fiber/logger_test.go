package fiber_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/designspec/designspec-web/internal/logger/adapter/fiber"

	"github.com/designspec/designspec-web/internal/logger"
)

type accessEntry struct {
	IP     string `json:"IP"`
	Status int    `json:"status"`
	URI    string `json:"URI"`
	Method string `json:"method"`
	Host   string `json:"host"`
	Gate   string `json:"gate"`
}

func gateField(c *fiber.Ctx, e *zerolog.Event) {
	if d, ok := c.Locals("decision").(string); ok {
		e.Str("gate", d)
	}
}

var consoleJSON = logger.Log{
	EnableAccessLogToConsole: true,
	Console:                  logger.Console{Enabled: true},
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		config     adapter.Config
		targetPath string
		want       *accessEntry
	}{
		{
			name:       "no writer no output",
			targetPath: "/",
		},
		{
			name:       "get / json",
			config:     adapter.Config{Config: consoleJSON},
			targetPath: "/",
			want:       &accessEntry{Status: 200, URI: "/", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "query string kept",
			config:     adapter.Config{Config: consoleJSON},
			targetPath: "/?test=123",
			want:       &accessEntry{Status: 200, URI: "/?test=123", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "request fields added",
			config:     adapter.Config{Config: consoleJSON, Fields: gateField},
			targetPath: "/gated",
			want: &accessEntry{
				Status: 200, URI: "/gated", Method: fiber.MethodGet, Host: "example.com", Gate: "continue",
			},
		},
		{
			name:       "unknown route",
			config:     adapter.Config{Config: consoleJSON},
			targetPath: "/missing",
			want:       &accessEntry{Status: 404, URI: "/missing", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name: "check alive suppressed",
			config: adapter.Config{
				Config: logger.Log{
					EnableAccessLogToConsole: true,
					DisableCheckAlive:        true,
					Console:                  logger.Console{Enabled: true},
				},
				CheckAliveURI: "/api/status",
			},
			targetPath: "/api/status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := serve(t, tt.targetPath, tt.config)

			if tt.want == nil {
				assert.Empty(t, output)
				return
			}

			var got accessEntry
			require.NoError(t, json.Unmarshal([]byte(output), &got), output)

			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, tt.want.URI, got.URI)
			assert.Equal(t, tt.want.Method, got.Method)
			assert.Equal(t, tt.want.Host, got.Host)
			assert.Equal(t, tt.want.Gate, got.Gate)
		})
	}
}

func serve(t *testing.T, targetPath string, cfg adapter.Config) string {
	t.Helper()

	stdout := os.Stdout

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w

	app := fiber.New(fiber.Config{CaseSensitive: true, Immutable: true})
	app.Use(adapter.New(cfg))

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("hello test")
	})
	app.Get("/gated", func(ctx *fiber.Ctx) error {
		ctx.Locals("decision", "continue")
		return ctx.SendString("gated")
	})
	app.Get("/api/status", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})

	_, err = app.Test(httptest.NewRequest(fiber.MethodGet, targetPath, nil), -1)

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer

		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout

	require.NoError(t, err)

	return <-outC
}
