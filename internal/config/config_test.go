package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configDir(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	require.NoError(t, err)

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(configDir(t))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Title)
	assert.NotZero(t, cfg.Webserver.Port)
	assert.NotEmpty(t, cfg.Webserver.URL)
	assert.Equal(t, 24*time.Hour, cfg.Webserver.Session.ExpiryTime)
	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)

	// no provider configured by default
	assert.Empty(t, cfg.Auth.Provider)
	assert.False(t, cfg.Auth.AllowInsecure)
}

func TestReadConfigGateRules(t *testing.T) {
	cfg, err := ReadConfig(configDir(t))
	require.NoError(t, err)

	require.Len(t, cfg.Gate.Rules, 4)
	assert.False(t, cfg.Gate.Rules[0].Exclude)
	assert.True(t, cfg.Gate.Rules[1].Exclude)
	assert.True(t, cfg.Gate.Rules[2].Exclude)
	assert.Equal(t, "^/", cfg.Gate.Rules[3].Pattern)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid config",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
			},
		},
		{
			name: "missing port",
			config: Config{
				Webserver: Webserver{URL: "http://localhost:8080"},
			},
			wantErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name: "missing URL",
			config: Config{
				Webserver: Webserver{Port: 8080},
			},
			wantErr: ErrEmptyURL,
		},
		{
			name: "unknown engine",
			config: Config{
				DB:        DB{GormEngine: "oracle"},
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
			},
			wantErr: ErrUnknownGormEngine,
		},
		{
			name: "unknown session storage",
			config: Config{
				Webserver: Webserver{
					Port: 8080, URL: "http://localhost:8080",
					Session: Session{Storage: "etcd"},
				},
			},
			wantErr: ErrUnknownSessionStorage,
		},
		{
			name: "session storage on configured engine",
			config: Config{
				DB:        DB{GormEngine: EnginePostgres},
				Webserver: Webserver{
					Port: 8080, URL: "http://localhost:8080",
					Session: Session{Storage: EnginePostgres},
				},
			},
		},
		{
			name: "session storage on other engine",
			config: Config{
				DB:        DB{GormEngine: EngineMySQL},
				Webserver: Webserver{
					Port: 8080, URL: "http://localhost:8080",
					Session: Session{Storage: EnginePostgres},
				},
			},
			wantErr: ErrSessionStorageEngineMismatch,
		},
		{
			name: "sql session storage on sqlite",
			config: Config{
				Webserver: Webserver{
					Port: 8080, URL: "http://localhost:8080",
					Session: Session{Storage: EngineMySQL},
				},
			},
			wantErr: ErrSessionStorageEngineMismatch,
		},
		{
			name: "empty gate pattern",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
				Gate:      Gate{Rules: []GateRule{{Pattern: ""}}},
			},
			wantErr: ErrEmptyGatePattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"}}

	require.NoError(t, validate(&cfg))
	assert.Equal(t, defaultShutDownTime, cfg.Webserver.ShutDownTime)
	assert.Equal(t, defaultSessionExpiry, cfg.Webserver.Session.ExpiryTime)
	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	jsonOverride := `{"Title":"Test Override","Webserver":{"Port":9090},"Auth":{"Provider":"oidc"}}`
	t.Setenv(EnvConfigJSON, jsonOverride)

	cfg, err := ReadConfig(configDir(t))
	require.NoError(t, err)

	assert.Equal(t, "Test Override", cfg.Title)
	assert.Equal(t, 9090, cfg.Webserver.Port)
	assert.Equal(t, "oidc", cfg.Auth.Provider)
	// untouched sections survive the merge
	assert.NotEmpty(t, cfg.Webserver.URL)
}

func TestReadConfigWithBrokenJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":`)

	_, err := ReadConfig(configDir(t))
	assert.Error(t, err)
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
		Gate: Gate{Rules: []GateRule{{Pattern: "^/", Exclude: false}}},
	}

	tomlStr, err := DumpConfig(&cfg)
	require.NoError(t, err)
	assert.True(t, strings.Contains(tomlStr, "Test"))
	assert.True(t, strings.Contains(tomlStr, "Rules"))
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Title: "Test",
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	require.NoError(t, err)
	assert.Contains(t, jsonStr, `"Title": "Test"`)
}
