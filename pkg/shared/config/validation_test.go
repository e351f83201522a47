package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfigFillsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SOLVERITY_HOME", home)
	t.Setenv("SOLVERITY_RESULTS_FOLDER", "")

	cfg := &Config{}
	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, home, GetSolverityHome(cfg))
	assert.Equal(t, filepath.Join(home, "results"), GetResultsHome(cfg))

	roots := GetSolverRoots(cfg)
	require.Len(t, roots, 3)
	assert.Equal(t, filepath.Join(home, "solvers"), roots[0])
}

func TestValidateConfigKeepsExplicitValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SOLVERITY_HOME", home)

	cfg := &Config{}
	cfg.Solverity.SolverRoots = []string{"/opt/solvers"}
	cfg.Tools.CompilerBin = "my-compiler"
	cfg.Tools.BoogieBin = "my-boogie"
	cfg.Tools.TimeoutSeconds = 42

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, []string{"/opt/solvers"}, GetSolverRoots(cfg))
	assert.Equal(t, "my-compiler", GetCompilerBin(cfg))
	assert.Equal(t, "my-boogie", GetBoogieBin(cfg))
	assert.Equal(t, 42, GetTimeoutSeconds(cfg))
}

func TestValidateConfigRejectsNegativeTimeout(t *testing.T) {
	t.Setenv("SOLVERITY_HOME", t.TempDir())

	cfg := &Config{}
	cfg.Tools.TimeoutSeconds = -1
	assert.Error(t, ValidateConfig(cfg))
}

func TestToolDefaults(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "solc-boogie", GetCompilerBin(cfg))
	assert.Equal(t, "boogie", GetBoogieBin(cfg))
	assert.Equal(t, 600, GetTimeoutSeconds(cfg))
}
