package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromBytes(t *testing.T) {
	data := []byte(`
embedding:
  enabled: true
features:
  contextual_home: true
homepage:
  default_menu_key: display
low_ram: false
`)

	cfg, err := LoadFromBytes(data)
	require.NoError(t, err)

	assert.True(t, cfg.Embedding.Enabled)
	assert.True(t, cfg.Features.ContextualHome)
	assert.Equal(t, "display", cfg.Homepage.DefaultMenuKey)
	assert.False(t, cfg.LowRAM)
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`{}`))
	require.NoError(t, err)

	assert.False(t, cfg.Embedding.Enabled)
	assert.True(t, cfg.SuggestionsEnabled(), "suggestions default to enabled")
	assert.Equal(t, DefaultMenuKey, cfg.MenuKeyOrDefault())
}

func TestSuggestionsExplicitlyDisabled(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("features:\n  suggestions: false\n"))
	require.NoError(t, err)
	assert.False(t, cfg.SuggestionsEnabled())
}

func TestEnvVarExpansion(t *testing.T) {
	t.Setenv("HOMESHELL_TEST_MENU", "sound")

	cfg, err := LoadFromBytes([]byte("homepage:\n  default_menu_key: ${HOMESHELL_TEST_MENU}\n"))
	require.NoError(t, err)
	assert.Equal(t, "sound", cfg.Homepage.DefaultMenuKey)

	// Unknown variables are left untouched rather than blanked
	cfg, err = LoadFromBytes([]byte("homepage:\n  default_menu_key: ${HOMESHELL_TEST_UNSET_VAR}\n"))
	require.NoError(t, err)
	assert.Equal(t, "${HOMESHELL_TEST_UNSET_VAR}", cfg.Homepage.DefaultMenuKey)
}

func TestUnmarshalExtension(t *testing.T) {
	data := []byte(`
embedding:
  enabled: true
logging:
  level: debug
  report_caller: true
  format:
    preset: simple
`)
	cfg, err := LoadFromBytes(data)
	require.NoError(t, err)

	var logCfg struct {
		Level        string `yaml:"level"`
		ReportCaller bool   `yaml:"report_caller"`
		Format       struct {
			Preset string `yaml:"preset"`
		} `yaml:"format"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))

	assert.Equal(t, "debug", logCfg.Level)
	assert.True(t, logCfg.ReportCaller)
	assert.Equal(t, "simple", logCfg.Format.Preset)

	// Missing extension keys leave the target zero-valued
	var other struct {
		Anything string `yaml:"anything"`
	}
	require.NoError(t, cfg.UnmarshalExtension("does-not-exist", &other))
	assert.Empty(t, other.Anything)
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	path := filepath.Join(root, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("low_ram: true\n"), 0644))

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	cfg, err := Load(found)
	require.NoError(t, err)
	assert.True(t, cfg.LowRAM)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	require.Error(t, err)
}
