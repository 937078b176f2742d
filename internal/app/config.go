package app

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
	"github.com/tejashwikalptaru/aboutdocs/internal/logger"
	"github.com/tejashwikalptaru/aboutdocs/res"
)

// Environment variables read by LoadConfig.
const (
	EnvConfigPath = "ABOUTDOCS_CONFIG"
	EnvBaseDir    = "ABOUTDOCS_BASE_DIR"
)

// DefaultConfigFile is used when ABOUTDOCS_CONFIG is not set.
const DefaultConfigFile = "aboutdocs.yaml"

// Config holds application configuration.
type Config struct {
	// AppID is the unique application identifier
	AppID string `yaml:"app_id"`

	// BaseDir anchors every document and "res/" asset path. Required.
	BaseDir string `yaml:"base_dir"`

	// LogLevel controls logging verbosity
	LogLevel slog.Level `yaml:"-"`

	// LogFormat is "text" or "json"
	LogFormat string `yaml:"log_format"`

	// Product is shown in the dialog header
	Product ProductConfig `yaml:"product"`

	// Documents are the file names shown as tabs, in order
	Documents []string `yaml:"documents"`

	// Markdown tunes the CommonMark renderer
	Markdown MarkdownConfig `yaml:"markdown"`

	// TestFyneApp allows injecting a test Fyne app for testing (nil for production)
	TestFyneApp fyne.App `yaml:"-"`
}

// ProductConfig mirrors domain.ProductInfo in the config file.
type ProductConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Copyright   string `yaml:"copyright"`
	Website     string `yaml:"website"`
	Description string `yaml:"description"`
}

// MarkdownConfig holds renderer switches. Both are off by default, which is
// plain CommonMark output.
type MarkdownConfig struct {
	// HardWraps turns soft line breaks into line breaks
	HardWraps bool `yaml:"hard_wraps"`

	// HeadingIDs adds generated id attributes to HTML headings
	HeadingIDs bool `yaml:"heading_ids"`
}

// fileConfig is the on-disk shape; the level is parsed separately.
type fileConfig struct {
	Config   `yaml:",inline"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the default application configuration.
// BaseDir is left empty: the caller must supply it.
func DefaultConfig() Config {
	loggerCfg := logger.DefaultConfig()
	return Config{
		AppID:     "com.aboutdocs.app",
		LogLevel:  loggerCfg.Level,
		LogFormat: loggerCfg.Format,
		Product: ProductConfig{
			Name:        "About Docs",
			Version:     GetVersionInfo().DisplayVersion(),
			Description: res.AboutContent,
		},
		Documents: []string{"CHANGELOG.md", "README.md", "LICENSE.txt"},
	}
}

// LoadConfig builds the configuration from defaults, an optional YAML file at
// path and environment overrides. A ".env" file in the working directory is
// loaded first if present. A missing config file is not an error.
//
// A relative base_dir in the file is taken relative to the file's directory.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return Config{}, domain.NewConfigError(path, "cannot read config", err)
	default:
		file := fileConfig{Config: cfg}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, domain.NewConfigError(path, "invalid yaml", err)
		}
		cfg = file.Config
		if level, ok := logger.ParseLevel(file.LogLevel); ok {
			cfg.LogLevel = level
		}
		if cfg.BaseDir != "" && !filepath.IsAbs(cfg.BaseDir) {
			cfg.BaseDir = filepath.Join(filepath.Dir(path), cfg.BaseDir)
		}
	}

	if baseDir := os.Getenv(EnvBaseDir); baseDir != "" {
		cfg.BaseDir = baseDir
	}
	if level, ok := logger.ParseLevel(os.Getenv(logger.LevelEnvVar)); ok {
		cfg.LogLevel = level
	}

	return cfg, nil
}

// ConfigPath returns the config file selected by ABOUTDOCS_CONFIG, or the default.
func ConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	return DefaultConfigFile
}

// ProductInfo converts the product section to the domain model.
func (c Config) ProductInfo() domain.ProductInfo {
	return domain.ProductInfo{
		Name:        c.Product.Name,
		Version:     c.Product.Version,
		Copyright:   c.Product.Copyright,
		Website:     c.Product.Website,
		Description: c.Product.Description,
	}
}

// DocumentReferences converts the document list to domain references.
func (c Config) DocumentReferences() []domain.DocumentReference {
	refs := make([]domain.DocumentReference, 0, len(c.Documents))
	for _, name := range c.Documents {
		if name == "" {
			continue
		}
		refs = append(refs, domain.NewDocumentReference(name))
	}
	return refs
}
