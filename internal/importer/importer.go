package importer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/folio-labs/folio/internal/catalog"
	"github.com/folio-labs/folio/internal/manifest"
	"github.com/folio-labs/folio/internal/project"
)

// Summary describes what a load applied.
type Summary struct {
	Source   string
	Version  string
	Counts   map[catalog.Kind]int
	Projects *project.Index
}

// Importer upserts document records into a registry.
type Importer struct {
	reg    *catalog.Registry
	logger *zap.Logger
}

// New returns an importer writing into reg. A nil logger discards output.
func New(reg *catalog.Registry, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{reg: reg, logger: logger.Named("importer")}
}

// LoadFile parses the catalog at path, checks its format version, and loads it.
func (im *Importer) LoadFile(ctx context.Context, path string) (*Summary, error) {
	doc, err := manifest.Parse(path)
	if err != nil {
		return nil, err
	}
	if err := manifest.CheckVersion(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	summary, err := im.Load(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	summary.Source = path
	return summary, nil
}

// Load applies tags, tools, and materials in that order. Each kind is
// upserted as one batch, so a kind with an invalid record is left as it was;
// kinds applied before the failure stay applied.
func (im *Importer) Load(ctx context.Context, doc *manifest.Document) (*Summary, error) {
	steps := []struct {
		kind  catalog.Kind
		count int
		apply func() error
	}{
		{catalog.KindTag, len(doc.Tags), func() error { return im.reg.Tags.UpsertAll(doc.Tags) }},
		{catalog.KindTool, len(doc.Tools), func() error { return im.reg.Tools.UpsertAll(doc.Tools) }},
		{catalog.KindMaterial, len(doc.Materials), func() error { return im.reg.Materials.UpsertAll(doc.Materials) }},
	}

	summary := &Summary{
		Version: doc.EffectiveVersion(),
		Counts:  make(map[catalog.Kind]int, len(steps)),
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := step.apply(); err != nil {
			im.logger.Warn("rejected batch", zap.String("kind", string(step.kind)), zap.Error(err))
			return nil, err
		}
		summary.Counts[step.kind] = step.count
		im.logger.Debug("applied batch", zap.String("kind", string(step.kind)), zap.Int("count", step.count))
	}

	for kind, ids := range doc.DuplicateIDs() {
		im.logger.Warn("duplicate ids in document, last occurrence wins",
			zap.String("kind", string(kind)), zap.Ints("ids", ids))
	}

	summary.Projects = project.NewIndex(doc.Projects)
	im.logger.Info("catalog loaded",
		zap.String("version", summary.Version),
		zap.Int("tags", summary.Counts[catalog.KindTag]),
		zap.Int("tools", summary.Counts[catalog.KindTool]),
		zap.Int("materials", summary.Counts[catalog.KindMaterial]),
		zap.Int("projects", summary.Projects.Len()))
	return summary, nil
}
