// Package config loads the YAML configuration file.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/shellbridge/assets"
	"github.com/doeshing/shellbridge/internal/domain"
	"github.com/doeshing/shellbridge/internal/pkg/filesystem"
	"github.com/doeshing/shellbridge/internal/ports"
)

// FileLoader loads YAML configuration from ~/.shellbridge/config.yaml
// (overridable via SHELLBRIDGE_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader; path overrides the default
// location when non-empty.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. On first run the embedded
// default configuration is written to disk and returned.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, err
		}
		if err := os.WriteFile(path, assets.DefaultConfigYAML, 0o600); err != nil {
			return domain.Config{}, err
		}
		data = assets.DefaultConfigYAML
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path reports where configuration is read from.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("SHELLBRIDGE_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".shellbridge", "config.yaml")
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Preferences.DefaultDirection == "" {
		cfg.Preferences.DefaultDirection = string(domain.DirectionAuto)
	}
	if cfg.Preferences.Color == "" {
		cfg.Preferences.Color = "auto"
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = "sqlite"
	}
	if cfg.History.RetainDays == 0 {
		cfg.History.RetainDays = 90
	}
	if cfg.Execution.Shell == "" {
		cfg.Execution.Shell = "auto"
	}
	if cfg.Execution.TimeoutSeconds == 0 {
		cfg.Execution.TimeoutSeconds = 30
	}
	return cfg
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return path
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
