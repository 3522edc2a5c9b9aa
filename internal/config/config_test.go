package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := write(t, "cashflow.yaml", `
patterns_wf:
  Costco: [costco]
  Vanguard: [vanguard, vngrd]
cash_investments: [Vanguard]
import:
  layout: wellsfargo
git:
  auto_commit: true
  author_name: Test
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Vendors, 2)
	assert.Equal(t, "Costco", cfg.Vendors[0].Name)
	assert.Equal(t, []string{"costco"}, cfg.Vendors[0].Patterns)
	assert.Equal(t, "Vanguard", cfg.Vendors[1].Name)
	assert.Equal(t, []string{"vanguard", "vngrd"}, cfg.Vendors[1].Patterns)
	assert.True(t, cfg.IsInvestment("Vanguard"))
	assert.False(t, cfg.IsInvestment("Costco"))
	assert.Equal(t, "wellsfargo", cfg.Import.Layout)
	assert.True(t, cfg.Git.AutoCommit)
}

func TestLoadJSON(t *testing.T) {
	// The original tool shipped a config.json; the YAML loader must
	// accept it unchanged.
	path := write(t, "config.json", `{
  "patterns_wf": {"Costco": ["costco"], "Vanguard": ["vanguard"]},
  "cash_investments": ["Vanguard"]
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Vendors, 2)
	assert.Equal(t, "Costco", cfg.Vendors[0].Name)
	assert.True(t, cfg.IsInvestment("Vanguard"))
}

func TestPatternOrderPreserved(t *testing.T) {
	// First-match-wins classification depends on document order, which
	// a plain map would destroy.
	path := write(t, "cashflow.yaml", `
patterns_wf:
  Zeta: [z]
  Alpha: [a]
  Mid: [m]
  Beta: [b]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	names := make([]string, len(cfg.Vendors))
	for i, v := range cfg.Vendors {
		names[i] = v.Name
	}
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid", "Beta"}, names)
}

func TestMissingFieldsDefaultEmpty(t *testing.T) {
	path := write(t, "cashflow.yaml", "git:\n  auto_commit: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Vendors)
	assert.Empty(t, cfg.Investments)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Git = GitConfig{AutoCommit: true, AuthorName: "Me", AuthorEmail: "me@example.com"}

	path := filepath.Join(t.TempDir(), "cashflow.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	require.Len(t, got.Vendors, len(cfg.Vendors))
	for i := range cfg.Vendors {
		assert.Equal(t, cfg.Vendors[i].Name, got.Vendors[i].Name)
		assert.Equal(t, cfg.Vendors[i].Patterns, got.Vendors[i].Patterns)
	}
	assert.Equal(t, cfg.Investments, got.Investments)
	assert.Equal(t, cfg.Import.Layout, got.Import.Layout)
	assert.Equal(t, cfg.Git, got.Git)
}

func TestDefaultInvestmentsHavePatterns(t *testing.T) {
	cfg := Default()
	for _, inv := range cfg.Investments {
		found := false
		for _, v := range cfg.Vendors {
			if v.Name == inv {
				found = true
			}
		}
		assert.True(t, found, "investment vendor %s should have a pattern rule", inv)
	}
}
