package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.jsonc"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLeadDays, cfg.LeadDays())
	assert.Empty(t, cfg.Target)
}

func TestLoadConfigJSONC(t *testing.T) {
	path := writeConfig(t, `{
	// three weeks is too tight for porting
	"lead_business_days": 30,
	"target": "2024-06-14", // trailing comma is fine
}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.LeadDays())
	assert.Equal(t, "2024-06-14", cfg.Target)
}

func TestLoadConfigZeroLeadDays(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"lead_business_days": 0}`))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.LeadDays())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"lead_business_days": `))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `{"lead_business_days": -3}`))
	assert.ErrorIs(t, err, ErrInvalidLeadDays)

	_, err = LoadConfig(writeConfig(t, `{"target": "next friday"}`))
	assert.Error(t, err)
}

func TestConfigDefaultTarget(t *testing.T) {
	// Monday
	now := time.Date(2024, 6, 3, 9, 15, 0, 0, time.Local)

	got, err := Config{}.DefaultTarget(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 2, 0, 0, 0, 0, time.Local), got)

	got, err = Config{Target: "2024-06-14"}.DefaultTarget(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 14, 0, 0, 0, 0, time.Local), got)
}
