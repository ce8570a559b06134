package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.API.Port)
	assert.Equal(t, []string{"*"}, cfg.API.AllowedOrigins)
	assert.Equal(t, 20, cfg.API.DefaultLimit)
	assert.Equal(t, 100, cfg.API.MaxLimit)
	assert.Equal(t, 50, cfg.API.RateLimit.RequestsPerSecond)
	assert.Equal(t, "./data", cfg.Data.Dir)
	assert.Equal(t, 3*time.Second, cfg.Analysis.MinDuration)
	assert.Equal(t, 5*time.Second, cfg.Analysis.MaxDuration)
	assert.Equal(t, time.Hour, cfg.Analysis.JobTTL)
	assert.Equal(t, 128, cfg.Analysis.MaxJobs)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
api:
  port: 9100
  default_limit: 25
  max_limit: 200
data:
  dir: /srv/deeptrace/data
analysis:
  min_duration: 1s
  max_duration: 2s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deeptrace.yaml"), content, 0o644))
	chdir(t, dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.API.Port)
	assert.Equal(t, 25, cfg.API.DefaultLimit)
	assert.Equal(t, 200, cfg.API.MaxLimit)
	assert.Equal(t, "/srv/deeptrace/data", cfg.Data.Dir)
	assert.Equal(t, time.Second, cfg.Analysis.MinDuration)
	assert.Equal(t, 2*time.Second, cfg.Analysis.MaxDuration)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DEEPTRACE_API_PORT", "9200")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9200, cfg.API.Port)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port out of range", map[string]string{"DEEPTRACE_API_PORT": "70000"}},
		{"max limit below default", map[string]string{"DEEPTRACE_API_MAX_LIMIT": "5"}},
		{"inverted analysis window", map[string]string{"DEEPTRACE_ANALYSIS_MAX_DURATION": "1s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
