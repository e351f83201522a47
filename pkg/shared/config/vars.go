package config

// Config is the root of the YAML configuration file.
type Config struct {
	Solverity Solverity `yaml:"solverity"`
	Logger    Logger    `yaml:"logger"`
	Tools     Tools     `yaml:"tools"`
}

// Solverity holds folder layout and solver discovery settings.
type Solverity struct {
	HomeFolder    string   `yaml:"home_folder"`
	ResultsFolder string   `yaml:"results_folder"`
	SolverRoots   []string `yaml:"solver_roots"`
}

// Logger holds settings for the hclog logger construction.
type Logger struct {
	Level           string `yaml:"level"`
	DisableTime     *bool  `yaml:"disable_time"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
}

// Tools holds the external toolchain binaries and run limits.
type Tools struct {
	CompilerBin    string `yaml:"compiler_bin"`
	BoogieBin      string `yaml:"boogie_bin"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}
