package config

import "time"

// FileConfig represents the optional .sdktest/config.yaml file at the
// repository root. Every field has a default; the file only needs to name
// the values it overrides.
type FileConfig struct {
	// DotnetPath points at the dotnet binary under test. Empty means
	// "resolve from the environment or PATH".
	DotnetPath string `yaml:"dotnet_path"`

	// AssetsSubdir is the fixture-assets directory relative to the
	// repository root.
	AssetsSubdir string `yaml:"assets_subdir"`

	// WorkFolder is the directory tests execute in, relative to the
	// repository root.
	WorkFolder string `yaml:"work_folder"`

	// CommandTimeoutSeconds bounds a single external command invocation.
	CommandTimeoutSeconds int `yaml:"command_timeout_seconds"`
}

// Settings is the fully resolved harness configuration: the config file
// merged with the environment toggles, read once and passed explicitly into
// constructors. Nothing re-reads the process environment after this is
// built.
type Settings struct {
	DotnetPath     string
	AssetsSubdir   string
	WorkFolder     string
	CommandTimeout time.Duration

	// UILanguage, when non-empty, is forwarded into the environment of
	// every spawned process as DOTNET_CLI_UI_LANGUAGE so the tool under
	// test renders output in a fixed display language.
	UILanguage string

	// PreserveTemp suppresses temp-directory deletion at test teardown.
	PreserveTemp bool
}
