package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/davidleathers/credit-memo-compliance/internal/domain/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Version)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Engine.SLADays)
	assert.Equal(t, 2, cfg.Engine.MissingLevelsForHigh)
	assert.Equal(t, []string{"promotional", "promotion"}, cfg.Engine.KeywordsPromotional)
	assert.Equal(t, []string{"contract"}, cfg.Engine.KeywordsContract)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CMC_ENGINE__SLA_DAYS", "10")
	t.Setenv("CMC_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Engine.SLADays)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"engine:\n  sla_days: 7\n  keywords_contract:\n    - contract\n    - msa\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Engine.SLADays)
	assert.Equal(t, []string{"contract", "msa"}, cfg.Engine.KeywordsContract)
	assert.Equal(t, 2, cfg.Engine.MissingLevelsForHigh, "unset keys keep defaults")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConfig))
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("CMC_ENGINE__SLA_DAYS", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConfig))
}
