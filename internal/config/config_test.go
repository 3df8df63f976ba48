package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/gobeam/internal/check"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, check.DefaultLimits, cfg.Limits)
	assert.Empty(t, cfg.Usage)
}

func TestLoadYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gobeam.yaml")
	data := []byte(`
usage: storage
limits:
  long_term:
    span_ratio: 360
    absolute_mm: 15
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "storage", cfg.Usage)
	assert.Equal(t, check.LimitRule{SpanRatio: 360, Absolute: 15}, cfg.Limits.LongTerm)
	// untouched categories keep their defaults
	assert.Equal(t, check.DefaultLimits.Initial, cfg.Limits.Initial)
	assert.Equal(t, check.DefaultLimits.ShortTerm, cfg.Limits.ShortTerm)
}

func TestEnvOverridesUsage(t *testing.T) {
	t.Setenv("GOBEAM_USAGE", "deck")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "deck", cfg.Usage)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
