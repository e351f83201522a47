package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// ValidateConfigPath checks that the given path points at a readable file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig reads the configuration file at configPath. A missing file is
// not an error: all settings have defaults filled in by ValidateConfig.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadYAML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", configPath, err)
	}

	return config, nil
}

// GetSolverityHome returns the application home folder.
func GetSolverityHome(cfg *Config) string {
	return cfg.Solverity.HomeFolder
}

// GetResultsHome returns the folder where per-run output folders are created.
func GetResultsHome(cfg *Config) string {
	return cfg.Solverity.ResultsFolder
}

// GetSolverRoots returns the ordered list of folders searched for solver executables.
func GetSolverRoots(cfg *Config) []string {
	return cfg.Solverity.SolverRoots
}

// GetCompilerBin returns the contract-to-Boogie compiler executable.
func GetCompilerBin(cfg *Config) string {
	if cfg.Tools.CompilerBin != "" {
		return cfg.Tools.CompilerBin
	}
	return "solc-boogie"
}

// GetBoogieBin returns the Boogie verifier executable.
func GetBoogieBin(cfg *Config) string {
	if cfg.Tools.BoogieBin != "" {
		return cfg.Tools.BoogieBin
	}
	return "boogie"
}

// GetTimeoutSeconds returns the default verification deadline in seconds.
func GetTimeoutSeconds(cfg *Config) int {
	if cfg.Tools.TimeoutSeconds > 0 {
		return cfg.Tools.TimeoutSeconds
	}
	return 600
}
