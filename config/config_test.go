package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pachecot/chronos"
	"github.com/pachecot/chronos/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "UTC", cfg.DefaultZone)
	assert.Equal(t, "strict", cfg.DefaultResolver)
	assert.NotEmpty(t, cfg.Layout)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chronos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_zone: America/New_York\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", cfg.DefaultZone)
	assert.Equal(t, "strict", cfg.DefaultResolver, "unset fields should keep the Default() value")
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefaultFallsBackOnMissingFile(t *testing.T) {
	cfg := config.LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, config.Default(), cfg)
}

func TestResolverByName(t *testing.T) {
	strict, err := config.ResolverByName("strict")
	require.NoError(t, err)
	lenient, err := config.ResolverByName("lenient")
	require.NoError(t, err)

	ambiguous := chronos.ZoneLocalMapping{Count: chronos.MappingAmbiguous}
	_, err = strict(ambiguous)
	assert.Error(t, err, "strict resolver must reject an ambiguous mapping")
	_, err = lenient(ambiguous)
	assert.NoError(t, err, "lenient resolver must never fail on an ambiguous mapping")
}

func TestResolverByNameUnknown(t *testing.T) {
	_, err := config.ResolverByName("bogus")
	assert.Error(t, err)
}
