package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/txengine/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.MetricsDump)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"LOG_LEVEL":    "debug",
		"LOG_FORMAT":   "console",
		"METRICS_DUMP": "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.True(t, cfg.MetricsDump)
}

func TestLoadFromProcessEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		wantErr error
	}{
		{name: "invalid bool", environ: map[string]string{"METRICS_DUMP": "not-a-bool"}},
		{name: "unknown log format", environ: map[string]string{"LOG_FORMAT": "xml"}, wantErr: config.ErrInvalidLogFormat},
		{name: "unknown log level", environ: map[string]string{"LOG_LEVEL": "trace"}, wantErr: config.ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFrom(tt.environ)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{LogLevel: "error", LogFormat: "json"}
	assert.NoError(t, cfg.Validate())

	cfg.LogFormat = "yaml"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidLogFormat)
}
