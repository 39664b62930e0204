// Package branding provides compile-time identity values for the CLI.
// Values come from the embedded branding.yaml, falling back to built-in
// defaults for any key the file leaves out.
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
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	DefaultCatalog string `yaml:"default_catalog"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:        "folio",
			DisplayName:    "Folio",
			Description:    "Portfolio catalog registry",
			HomeDir:        ".folio",
			EnvPrefix:      "FOLIO",
			DefaultCatalog: "catalog.yaml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "folio").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".folio").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "FOLIO").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// DefaultCatalog returns the catalog file name used when none is configured.
func DefaultCatalog() string { load(); return defaults.DefaultCatalog }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("catalog_file") → "FOLIO_CATALOG_FILE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
