package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/solverity/solverity/pkg/shared/files"
)

// ValidateConfig checks the global configuration and fills in defaults for
// unset folders and solver search roots.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := updateHome(cfg); err != nil {
		return fmt.Errorf("YAML global config: failed to update home folder: %w", err)
	}
	if err := updateFolder(&cfg.Solverity.ResultsFolder, "SOLVERITY_RESULTS_FOLDER", "results", cfg); err != nil {
		return fmt.Errorf("YAML global config: failed to update results folder: %w", err)
	}
	updateSolverRoots(cfg)

	if cfg.Tools.TimeoutSeconds < 0 {
		return fmt.Errorf("YAML global config: timeout_seconds cannot be negative: %d", cfg.Tools.TimeoutSeconds)
	}
	return nil
}

// updateHome updates the HomeFolder from environment variables or sets a default value.
func updateHome(cfg *Config) error {
	if homeFolder := os.Getenv("SOLVERITY_HOME"); homeFolder != "" {
		cfg.Solverity.HomeFolder = homeFolder
	} else if cfg.Solverity.HomeFolder == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("unable to get user home folder: %w", err)
		}
		cfg.Solverity.HomeFolder = filepath.Join(userHome, ".solverity")
	}

	expandedHomePath, err := files.ExpandPath(cfg.Solverity.HomeFolder)
	if err != nil {
		return fmt.Errorf("failed to expand home path %q: %w", cfg.Solverity.HomeFolder, err)
	}
	cfg.Solverity.HomeFolder = expandedHomePath

	if err := files.CreateFolderIfNotExists(expandedHomePath); err != nil {
		return fmt.Errorf("failed to create home folder %q: %w", cfg.Solverity.HomeFolder, err)
	}
	return nil
}

// updateFolder updates a folder path in the configuration, creating it if needed.
func updateFolder(folder *string, envVar, defaultSubFolder string, cfg *Config) error {
	if envVarValue := os.Getenv(envVar); envVarValue != "" {
		*folder = envVarValue
	} else if *folder == "" {
		*folder = filepath.Join(GetSolverityHome(cfg), defaultSubFolder)
	}

	expandedPath, err := files.ExpandPath(*folder)
	if err != nil {
		return fmt.Errorf("failed to expand path %q: %w", *folder, err)
	}
	*folder = expandedPath

	if err := files.CreateFolderIfNotExists(expandedPath); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", expandedPath, err)
	}
	return nil
}

// updateSolverRoots fills in the default search roots for solver executables.
// Roots that do not exist are tolerated here; the locator skips them.
func updateSolverRoots(cfg *Config) {
	if len(cfg.Solverity.SolverRoots) > 0 {
		for i, root := range cfg.Solverity.SolverRoots {
			if expanded, err := files.ExpandPath(root); err == nil {
				cfg.Solverity.SolverRoots[i] = expanded
			}
		}
		return
	}
	cfg.Solverity.SolverRoots = []string{
		filepath.Join(GetSolverityHome(cfg), "solvers"),
		"/usr/local/bin",
		"/usr/bin",
	}
}
