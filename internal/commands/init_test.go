package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanshbendre/cashflow/internal/config"
)

func TestInitWritesConfig(t *testing.T) {
	dir := t.TempDir()
	out := &bytes.Buffer{}
	require.NoError(t, runInit(dir, false, false, out))
	assert.Contains(t, out.String(), ConfigFileName)

	cfg, err := config.Load(filepath.Join(dir, ConfigFileName))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Vendors)
	assert.NotEmpty(t, cfg.Investments)
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("patterns_wf:\n  Mine: [mine]\n"), 0o644))

	err := runInit(dir, false, false, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Existing config untouched.
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Vendors, 1)
	assert.Equal(t, "Mine", cfg.Vendors[0].Name)
}

func TestInitForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("patterns_wf:\n  Mine: [mine]\n"), 0o644))

	require.NoError(t, runInit(dir, false, true, &bytes.Buffer{}))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Greater(t, len(cfg.Vendors), 1)
}
