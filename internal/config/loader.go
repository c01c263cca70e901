package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized at settings construction. They are read
// exactly once, when Load or FromEnv builds the Settings; nothing else in
// the module touches the process environment.
const (
	// EnvUILanguage fixes the display language of the tool under test.
	EnvUILanguage = "DOTNET_CLI_UI_LANGUAGE"

	// EnvPreserveTemp keeps per-test temp directories around after
	// teardown when set to a truthy value.
	EnvPreserveTemp = "DOTNET_TEST_PRESERVE_TEMP"

	// EnvDotnetUnderTest overrides the path to the dotnet binary under
	// test.
	EnvDotnetUnderTest = "DOTNET_UNDER_TEST"
)

// Default values for FileConfig.
const (
	DefaultAssetsSubdir          = "TestAssets"
	DefaultWorkFolder            = "artifacts/testwork"
	DefaultCommandTimeoutSeconds = 300
)

// DefaultFileConfig returns a FileConfig with sensible default values.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		AssetsSubdir:          DefaultAssetsSubdir,
		WorkFolder:            DefaultWorkFolder,
		CommandTimeoutSeconds: DefaultCommandTimeoutSeconds,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadFileConfig reads and parses .sdktest/config.yaml from the given base
// path. If the file doesn't exist, returns the default config. Applies
// defaults for any missing fields.
func LoadFileConfig(basePath string) (*FileConfig, error) {
	configPath := filepath.Join(basePath, ".sdktest", "config.yaml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultFileConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultFileConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateFileConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateFileConfig checks that all config values are valid.
func ValidateFileConfig(cfg *FileConfig) error {
	if cfg.AssetsSubdir == "" {
		return ValidationError{Field: "assets_subdir", Message: "must not be empty"}
	}
	if filepath.IsAbs(cfg.AssetsSubdir) {
		return ValidationError{Field: "assets_subdir", Message: "must be relative to the repository root"}
	}
	if cfg.WorkFolder == "" {
		return ValidationError{Field: "work_folder", Message: "must not be empty"}
	}
	if cfg.CommandTimeoutSeconds <= 0 {
		return ValidationError{Field: "command_timeout_seconds", Message: "must be positive"}
	}
	return nil
}

// FromEnv builds Settings from the default file config plus the environment
// toggles. This is the single point where the process environment is read.
func FromEnv() *Settings {
	cfg := DefaultFileConfig()
	return newSettings(&cfg, os.Getenv(EnvUILanguage), os.Getenv(EnvPreserveTemp), os.Getenv(EnvDotnetUnderTest))
}

// Load builds Settings from .sdktest/config.yaml under basePath merged with
// the environment toggles.
func Load(basePath string) (*Settings, error) {
	cfg, err := LoadFileConfig(basePath)
	if err != nil {
		return nil, err
	}
	return newSettings(cfg, os.Getenv(EnvUILanguage), os.Getenv(EnvPreserveTemp), os.Getenv(EnvDotnetUnderTest)), nil
}

func newSettings(cfg *FileConfig, uiLanguage, preserveTemp, dotnetOverride string) *Settings {
	dotnetPath := cfg.DotnetPath
	if dotnetOverride != "" {
		dotnetPath = dotnetOverride
	}
	return &Settings{
		DotnetPath:     dotnetPath,
		AssetsSubdir:   cfg.AssetsSubdir,
		WorkFolder:     cfg.WorkFolder,
		CommandTimeout: time.Duration(cfg.CommandTimeoutSeconds) * time.Second,
		UILanguage:     uiLanguage,
		PreserveTemp:   Truthy(preserveTemp),
	}
}

// Truthy reports whether an environment toggle value means "on".
// Only "true", "1" and "on" count, case-insensitively; anything else,
// including empty or absent, is off. Malformed values never error.
func Truthy(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1", "on":
		return true
	default:
		return false
	}
}
