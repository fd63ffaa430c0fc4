package config

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/grovetools/homeshell/errors"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration file name.
const ConfigFileName = "homeshell.yml"

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads and parses a homeshell configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses configuration data with env var expansion.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config")
	}

	return &cfg, nil
}

// LoadDefault finds and loads the configuration with layered lookup:
// the global config (~/.config/homeshell/homeshell.yml) is the base and
// a project config found by walking up from the working directory
// overrides it wholesale.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration starting from the given directory.
func LoadFrom(startDir string) (*Config, error) {
	projectPath, err := FindConfigFile(startDir)
	if err == nil {
		return Load(projectPath)
	}

	globalPath := globalConfigPath()
	if globalPath != "" {
		if _, statErr := os.Stat(globalPath); statErr == nil {
			return Load(globalPath)
		}
	}

	return nil, err
}

// FindConfigFile walks up from startDir looking for homeshell.yml.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.ConfigNotFound(filepath.Join(startDir, ConfigFileName))
		}
		dir = parent
	}
}

// globalConfigPath returns the XDG-style global config location.
func globalConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "homeshell", ConfigFileName)
}

// expandEnvVars replaces ${VAR} references with environment values.
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarRegex.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}
