package app

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
	"github.com/tejashwikalptaru/aboutdocs/internal/logger"
)

// Helper that isolates config tests from the caller's environment
func clearConfigEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvBaseDir, "")
	t.Setenv(EnvConfigPath, "")
	t.Setenv(logger.LevelEnvVar, "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aboutdocs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().AppID, cfg.AppID)
	assert.Equal(t, DefaultConfig().Documents, cfg.Documents)
	assert.Empty(t, cfg.BaseDir)
	assert.Equal(t, MarkdownConfig{}, cfg.Markdown)
}

func TestLoadConfig_File(t *testing.T) {
	clearConfigEnv(t)

	path := writeConfig(t, `
app_id: com.cyotek.colorpicker.demo
base_dir: /opt/colorpicker
log_level: debug
log_format: json
product:
  name: Cyotek Color Picker Controls
  version: 2.0.0
  copyright: Copyright 2013-2021 Cyotek Ltd.
  website: https://www.cyotek.com
documents:
  - README.md
  - LICENSE.txt
markdown:
  hard_wraps: true
  heading_ids: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "com.cyotek.colorpicker.demo", cfg.AppID)
	assert.Equal(t, "/opt/colorpicker", cfg.BaseDir)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"README.md", "LICENSE.txt"}, cfg.Documents)
	assert.Equal(t, MarkdownConfig{HardWraps: true, HeadingIDs: true}, cfg.Markdown)

	product := cfg.ProductInfo()
	assert.Equal(t, "About Cyotek Color Picker Controls", product.Title())
	assert.Equal(t, "Version 2.0.0", product.VersionLabel())
	assert.Equal(t, "https://www.cyotek.com", product.Website)

	// Unset keys keep their defaults
	assert.Equal(t, DefaultConfig().Product.Description, product.Description)
}

func TestLoadConfig_RelativeBaseDirIsRelativeToFile(t *testing.T) {
	clearConfigEnv(t)

	path := writeConfig(t, "base_dir: ../docs\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "..", "docs"), cfg.BaseDir)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(EnvBaseDir, "/srv/docs")
	t.Setenv(logger.LevelEnvVar, "error")

	path := writeConfig(t, "base_dir: /opt/other\nlog_level: debug\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/docs", cfg.BaseDir)
	assert.Equal(t, slog.LevelError, cfg.LogLevel)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearConfigEnv(t)
	require.NoError(t, os.Unsetenv(EnvBaseDir))
	require.NoError(t, os.WriteFile(".env", []byte(EnvBaseDir+"=/from/dotenv\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv(EnvBaseDir) })

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/from/dotenv", cfg.BaseDir)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	clearConfigEnv(t)

	path := writeConfig(t, "documents: [unterminated\n")

	_, err := LoadConfig(path)
	require.Error(t, err)

	var configErr *domain.ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, path, configErr.Path)
}

func TestConfigPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultConfigFile, ConfigPath())

	t.Setenv(EnvConfigPath, "/etc/aboutdocs.yaml")
	assert.Equal(t, "/etc/aboutdocs.yaml", ConfigPath())
}

func TestDocumentReferences_SkipsEmptyNames(t *testing.T) {
	cfg := Config{Documents: []string{"README.md", "", "LICENSE.txt"}}

	refs := cfg.DocumentReferences()

	require.Len(t, refs, 2)
	assert.Equal(t, "README.md", refs[0].Name)
	assert.Equal(t, "README.md", refs[0].Tag)
	assert.Equal(t, "LICENSE.txt", refs[1].Name)
}
