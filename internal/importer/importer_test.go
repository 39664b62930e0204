package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/folio-labs/folio/internal/catalog"
	"github.com/folio-labs/folio/internal/manifest"
)

const sampleCatalog = `version: "1.1.0"
tags:
  - {id: 3, name: go}
  - {id: 1, name: cli}
tools:
  - {id: 1, name: Neovim, url: "https://neovim.io"}
materials:
  - {id: 5, name: Cork, url: "https://example.com/cork"}
projects:
  - {id: 100, title: folio, tags: [1, 3], tools: [1]}
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	reg := catalog.New()
	path := writeCatalog(t, sampleCatalog)

	summary, err := New(reg, nil).LoadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}

	if summary.Source != path {
		t.Errorf("Source = %q, want %q", summary.Source, path)
	}
	if summary.Version != "1.1.0" {
		t.Errorf("Version = %q, want 1.1.0", summary.Version)
	}
	if summary.Counts[catalog.KindTag] != 2 || summary.Counts[catalog.KindTool] != 1 || summary.Counts[catalog.KindMaterial] != 1 {
		t.Errorf("Counts = %v", summary.Counts)
	}
	if summary.Projects.Len() != 1 {
		t.Errorf("Projects.Len = %d, want 1", summary.Projects.Len())
	}

	tags := reg.Tags.All()
	if len(tags) != 2 || tags[0].ID != 3 || tags[1].ID != 1 {
		t.Errorf("tags = %+v, want document order [3 1]", tags)
	}
	tool, err := reg.Tools.Get(1)
	if err != nil {
		t.Fatalf("Get tool error: %v", err)
	}
	if tool.URL != "https://neovim.io" {
		t.Errorf("tool URL = %q", tool.URL)
	}
}

func TestLoadFile_UnsupportedVersion(t *testing.T) {
	reg := catalog.New()
	path := writeCatalog(t, "version: \"3.0.0\"\ntags:\n  - {id: 1, name: x}\n")

	_, err := New(reg, nil).LoadFile(context.Background(), path)
	if err == nil {
		t.Fatal("expected version error, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported catalog version") {
		t.Errorf("error = %v, want unsupported version", err)
	}
	if reg.Tags.Len() != 0 {
		t.Errorf("tags loaded despite version error: %d", reg.Tags.Len())
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := New(catalog.New(), nil).LoadFile(context.Background(), filepath.Join(t.TempDir(), "none.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoad_InvalidRecordStopsImport(t *testing.T) {
	reg := catalog.New()
	doc := &manifest.Document{
		Tags:      []catalog.Tag{{ID: 1, Name: "ok"}},
		Tools:     []catalog.UsedTool{{ID: 1, Name: "a", URL: "https://a.example"}, {ID: 2, Name: "b", URL: "not a url"}},
		Materials: []catalog.UsedMaterial{{ID: 1, Name: "m"}},
	}

	_, err := New(reg, nil).Load(context.Background(), doc)
	var ve *catalog.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *catalog.ValidationError", err)
	}
	if ve.Field != "url" {
		t.Errorf("Field = %q, want url", ve.Field)
	}

	if reg.Tags.Len() != 1 {
		t.Errorf("tags = %d, want 1 (applied before failure)", reg.Tags.Len())
	}
	if reg.Tools.Len() != 0 {
		t.Errorf("tools = %d, want 0 (rejected batch)", reg.Tools.Len())
	}
	if reg.Materials.Len() != 0 {
		t.Errorf("materials = %d, want 0 (after failure)", reg.Materials.Len())
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reg := catalog.New()
	_, err := New(reg, nil).Load(ctx, &manifest.Document{Tags: []catalog.Tag{{ID: 1, Name: "x"}}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if reg.Tags.Len() != 0 {
		t.Errorf("tags = %d, want 0", reg.Tags.Len())
	}
}

func TestLoad_WarnsOnDuplicates(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	reg := catalog.New()
	doc := &manifest.Document{Tags: []catalog.Tag{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}}

	if _, err := New(reg, zap.New(core)).Load(context.Background(), doc); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if n := logs.FilterMessage("duplicate ids in document, last occurrence wins").Len(); n != 1 {
		t.Errorf("duplicate warnings = %d, want 1", n)
	}
	tag, _ := reg.Tags.Get(1)
	if tag.Name != "b" {
		t.Errorf("tag name = %q, want b", tag.Name)
	}
}
