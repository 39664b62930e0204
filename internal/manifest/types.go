package manifest

import (
	"github.com/folio-labs/folio/internal/catalog"
	"github.com/folio-labs/folio/internal/project"
)

// Document is the parsed form of a catalog file.
type Document struct {
	Version   string                 `yaml:"version,omitempty" json:"version,omitempty"`
	Tags      []catalog.Tag          `yaml:"tags,omitempty" json:"tags,omitempty"`
	Tools     []catalog.UsedTool     `yaml:"tools,omitempty" json:"tools,omitempty"`
	Materials []catalog.UsedMaterial `yaml:"materials,omitempty" json:"materials,omitempty"`
	Projects  []project.Project      `yaml:"projects,omitempty" json:"projects,omitempty"`
}

// DuplicateIDs returns, per kind, ids that occur more than once in the
// document. Duplicates are legal (the last occurrence wins on import) but
// usually point at an authoring mistake.
func (d *Document) DuplicateIDs() map[catalog.Kind][]int {
	out := make(map[catalog.Kind][]int)
	collect := func(kind catalog.Kind, ids []int) {
		seen := make(map[int]int, len(ids))
		for _, id := range ids {
			seen[id]++
			if seen[id] == 2 {
				out[kind] = append(out[kind], id)
			}
		}
	}

	ids := make([]int, 0, len(d.Tags))
	for _, t := range d.Tags {
		ids = append(ids, t.ID)
	}
	collect(catalog.KindTag, ids)

	ids = ids[:0]
	for _, t := range d.Tools {
		ids = append(ids, t.ID)
	}
	collect(catalog.KindTool, ids)

	ids = ids[:0]
	for _, m := range d.Materials {
		ids = append(ids, m.ID)
	}
	collect(catalog.KindMaterial, ids)

	return out
}
