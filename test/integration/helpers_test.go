//go:build integration

package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/folio-labs/folio/internal/catalog"
	"github.com/folio-labs/folio/internal/importer"
)

// setupTestEnv points FOLIO_HOME at a temp dir so nothing touches ~/.folio.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("FOLIO_HOME", home)
	t.Setenv("FOLIO_CATALOG_FILE", "")
	return home
}

// writeFile creates a file with the given content, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// loadInto imports the catalog file at path into reg and fails the test on error.
func loadInto(t *testing.T, reg *catalog.Registry, path string) *importer.Summary {
	t.Helper()
	summary, err := importer.New(reg, nil).LoadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("loading %s: %v", path, err)
	}
	return summary
}
