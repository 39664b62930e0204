package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/folio-labs/folio/internal/catalog"
	"github.com/folio-labs/folio/internal/config"
	"github.com/folio-labs/folio/internal/importer"
)

// loadCatalog builds a fresh registry from the configured catalog file.
func loadCatalog(cmd *cobra.Command) (*catalog.Registry, *importer.Summary, error) {
	path := config.CatalogFile(catalogPath)
	reg := catalog.New(catalog.WithLogger(logger))

	summary, err := importer.New(reg, logger).LoadFile(cmd.Context(), path)
	if err != nil {
		return nil, nil, err
	}
	return reg, summary, nil
}

func parseKindArg(s string) (catalog.Kind, error) {
	kind, ok := catalog.ParseKind(s)
	if !ok {
		return "", fmt.Errorf("unknown kind %q (want tag, tool, or material)", s)
	}
	return kind, nil
}

func parseIDArg(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid id %q: must be a non-negative integer", s)
	}
	return id, nil
}
