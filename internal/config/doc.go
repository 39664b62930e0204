// Package config manages user-level settings stored at ~/.folio/config.yaml.
// Values may also come from FOLIO_* environment variables, which take
// precedence over the file. It resolves the catalog file to load and the
// log level for the CLI.
package config
