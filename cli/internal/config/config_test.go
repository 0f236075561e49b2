package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagrove-io/impala-dialect/dialect/impala"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, impala.DefaultHost, cfg.Host)
	assert.Equal(t, impala.DefaultPort, cfg.Port)
	assert.Equal(t, impala.DefaultDatabase, cfg.Database)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("IMPALA_DIALECT_HOST", "impalad.internal")
	t.Setenv("IMPALA_DIALECT_PORT", "21051")
	t.Setenv("IMPALA_DIALECT_DATABASE", "analytics")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "impalad.internal", cfg.Host)
	assert.Equal(t, 21051, cfg.Port)
	assert.Equal(t, "analytics", cfg.Database)

	details := cfg.ConnectionDetails()
	assert.Equal(t, "//impalad.internal:21051/analytics", details.Subname())
}

func TestLocation(t *testing.T) {
	cfg := &Config{}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.ResultsTimezone = "America/New_York"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())

	cfg.ResultsTimezone = "Neverland/Nowhere"
	_, err = cfg.Location()
	assert.Error(t, err)
}
