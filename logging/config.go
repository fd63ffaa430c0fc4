package logging

// FormatConfig controls how log lines are rendered.
type FormatConfig struct {
	// Preset selects a named formatter: "text" (default), "json", or "simple".
	Preset string `yaml:"preset"`

	DisableTimestamp bool `yaml:"disable_timestamp"`
	DisableComponent bool `yaml:"disable_component"`

	// StructuredToStderr controls when structured logs are mirrored to
	// stderr: "always", "never", or "auto" (default). Auto mode mirrors
	// only in debug mode or when stderr is not an interactive terminal,
	// so log lines never tear the TUI.
	StructuredToStderr string `yaml:"structured_to_stderr"`
}

// FileConfig controls the file sink.
type FileConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Config is the "logging" extension section of homeshell.yml.
type Config struct {
	Level        string       `yaml:"level"`
	ReportCaller bool         `yaml:"report_caller"`
	Format       FormatConfig `yaml:"format"`
	File         FileConfig   `yaml:"file"`
}
