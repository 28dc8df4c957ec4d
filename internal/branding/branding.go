// Package branding provides compile-time identity values for the CLI.
//
// The embedded branding.yaml is baked into the binary with //go:embed; hosts
// that fork the demo app edit that file and rebuild. The placeholder token is
// part of the wire protocol: derived commands embed it, and the consuming UI
// substitutes the running binary's own invocation path for it.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	Placeholder string `yaml:"placeholder"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "termbridge",
			DisplayName: "TermBridge",
			Description: "Structured CLI results for interactive terminal UIs",
			HomeDir:     ".termbridge",
			EnvPrefix:   "TERMBRIDGE",
			Placeholder: "${APP_BIN}",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "termbridge").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".termbridge").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "TERMBRIDGE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// Placeholder returns the token derived commands embed in place of the
// running binary's invocation path (e.g., "${APP_BIN}").
func Placeholder() string { load(); return defaults.Placeholder }
