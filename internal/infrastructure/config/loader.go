package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/unitconv/assets"
	"github.com/doeshing/unitconv/internal/domain"
	"github.com/doeshing/unitconv/internal/pkg/filesystem"
	"github.com/doeshing/unitconv/internal/ports"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "UNITCONV_CONFIG"

// FileLoader loads YAML configuration from ~/.unitconv/config.yaml (overridable via UNITCONV_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// A read-only home must not stop the converter; defaults still apply.
			_ = writeDefault(path)
			return DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return hydrateDefaults(cfg), nil
}

// Path resolves the config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".unitconv", "config.yaml")
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	return os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions)
}

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default config is invalid: %v", err))
	}
	return hydrateDefaults(cfg)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = domain.BackendText
	}
	if cfg.History.File == "" {
		cfg.History.File = domain.DefaultHistoryFile
	}
	if cfg.History.CSVFile == "" {
		cfg.History.CSVFile = domain.DefaultCSVFile
	}
	if cfg.History.SQLiteFile == "" {
		cfg.History.SQLiteFile = domain.DefaultSQLiteFile
	}
	if cfg.History.MaxEntries == 0 {
		cfg.History.MaxEntries = domain.DefaultMaxHistory
	}
	if cfg.Prompt.MaxAttempts == 0 {
		cfg.Prompt.MaxAttempts = domain.DefaultMaxAttempts
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	cfg.History.File = filesystem.ExpandPath(cfg.History.File)
	cfg.History.CSVFile = filesystem.ExpandPath(cfg.History.CSVFile)
	cfg.History.SQLiteFile = filesystem.ExpandPath(cfg.History.SQLiteFile)
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
