package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	apperrors "github.com/chisom-ui/chisom/pkg/errors"
)

// Settings holds the user-tunable configuration for the catalog and its demos.
type Settings struct {
	LogLevel        string   `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	StateDir        string   `yaml:"state_dir"`
	RegistryPath    string   `yaml:"registry_path"`
	RegistryRepo    string   `yaml:"registry_repo" validate:"omitempty,repo_url"`
	MaxRecentColors int      `yaml:"max_recent_colors" validate:"omitempty,min=1,max=32"`
	PresetColors    []string `yaml:"preset_colors" validate:"omitempty,dive,hex_color"`
	DebounceMs      int      `yaml:"debounce_ms" validate:"omitempty,min=50,max=2000"`
}

// DefaultPresetColors is the swatch palette offered when none is configured.
var DefaultPresetColors = []string{
	"#EF4444", "#F97316", "#EAB308", "#22C55E",
	"#3B82F6", "#8B5CF6", "#EC4899", "#64748B",
}

// Default returns the settings used when no config file exists.
func Default() *Settings {
	return &Settings{
		LogLevel:        "info",
		MaxRecentColors: 6,
		PresetColors:    append([]string(nil), DefaultPresetColors...),
		DebounceMs:      300,
	}
}

// DefaultPath returns the config file location under the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chisom", "config.yaml"), nil
}

// Load reads and validates the settings file at path. A missing file yields
// the defaults; a malformed or invalid file is an error, since a user who
// wrote a config should hear about mistakes in it.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return finalize(Default())
		}
		return nil, apperrors.NewParseError(path, err)
	}

	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, apperrors.NewParseError(path, err)
	}

	return finalize(settings)
}

func finalize(settings *Settings) (*Settings, error) {
	if err := applyDefaults(settings); err != nil {
		return nil, err
	}

	if err := validatorInstance().Struct(settings); err != nil {
		return nil, convertValidationError(err)
	}

	return settings, nil
}

func applyDefaults(settings *Settings) error {
	if settings.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve state directory: %w", err)
		}
		settings.StateDir = filepath.Join(home, ".chisom")
	}
	if settings.RegistryPath == "" {
		settings.RegistryPath = filepath.Join(settings.StateDir, "registry.json")
	}
	if settings.LogLevel == "" {
		settings.LogLevel = "info"
	}
	if settings.MaxRecentColors == 0 {
		settings.MaxRecentColors = 6
	}
	if settings.DebounceMs == 0 {
		settings.DebounceMs = 300
	}
	if len(settings.PresetColors) == 0 {
		settings.PresetColors = append([]string(nil), DefaultPresetColors...)
	}
	return nil
}

// HistoryPath returns the location of the persisted recent color list.
func (s *Settings) HistoryPath() string {
	return filepath.Join(s.StateDir, "recent-colors.json")
}

// RegistryCheckoutDir returns the directory the upstream registry repository
// is synced into.
func (s *Settings) RegistryCheckoutDir() string {
	return filepath.Join(s.StateDir, "registry")
}

func convertValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperrors.NewValidationError("", "settings invalid", err)
	}

	first := validationErrors[0]
	switch first.Tag() {
	case "hex_color":
		return apperrors.NewValidationError(first.Namespace(), fmt.Sprintf("%q is not a 6-digit hex color", first.Value()), err)
	case "repo_url":
		return apperrors.NewValidationError(first.Namespace(), fmt.Sprintf("%q is not a valid repository URL", first.Value()), err)
	default:
		return apperrors.NewValidationError(first.Namespace(), fmt.Sprintf("failed %q constraint", first.Tag()), err)
	}
}
