// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded into the binary; editing it renames the command,
// the environment variable prefix and the repo-level config file.
package branding

import (
	_ "embed"
	"strings"
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
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	EnvPrefix    string `yaml:"env_prefix"`
	ConfigFile   string `yaml:"config_file"`
	TsconfigFile string `yaml:"tsconfig_file"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "monoref",
			DisplayName:  "monoref",
			Description:  "Keep TypeScript project references in sync with a monorepo's package graph",
			EnvPrefix:    "MONOREF",
			ConfigFile:   ".monoref.yaml",
			TsconfigFile: "tsconfig.json",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "monoref").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "MONOREF").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigFile returns the name of the repo-level config file (e.g., ".monoref.yaml").
func ConfigFile() string { load(); return defaults.ConfigFile }

// TsconfigFile returns the default TypeScript configuration file name.
func TsconfigFile() string { load(); return defaults.TsconfigFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("ROOT") → "MONOREF_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
