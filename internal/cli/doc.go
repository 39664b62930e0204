// Package cli defines the Cobra command tree for the folio CLI. Each file
// registers one top-level command with the root command. Commands load the
// catalog through the importer, query the registry, and only handle flag
// parsing and output formatting themselves.
package cli
