package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/folio-labs/folio/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyCatalogFile = "catalog_file"
	KeyLogLevel    = "log_level"
)

// DefaultLogLevel applies when log_level is unset.
const DefaultLogLevel = "warn"

// Dir returns the config directory. FOLIO_HOME overrides the default ~/.folio/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// CatalogFile resolves the catalog document to load, in order:
// the override (usually the --catalog flag), FOLIO_CATALOG_FILE or the
// catalog_file key, then catalog.yaml inside Dir().
func CatalogFile(override string) string {
	if override != "" {
		return override
	}
	if v := Get(KeyCatalogFile); v != "" {
		return v
	}
	return filepath.Join(Dir(), branding.DefaultCatalog())
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	if v := Get(KeyLogLevel); v != "" {
		return v
	}
	return DefaultLogLevel
}
