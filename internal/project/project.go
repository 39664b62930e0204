package project

import (
	"fmt"

	"github.com/folio-labs/folio/internal/catalog"
)

// Project is a portfolio entry that references catalog records by id.
// Each list keeps the author's order.
type Project struct {
	ID        int    `yaml:"id" json:"id"`
	Title     string `yaml:"title,omitempty" json:"title,omitempty"`
	Tags      []int  `yaml:"tags,omitempty" json:"tags,omitempty"`
	Tools     []int  `yaml:"tools,omitempty" json:"tools,omitempty"`
	Materials []int  `yaml:"materials,omitempty" json:"materials,omitempty"`
}

// Resolved is a project with its attachment lists replaced by full records.
type Resolved struct {
	ID        int                    `json:"id"`
	Title     string                 `json:"title,omitempty"`
	Tags      []catalog.Tag          `json:"tags"`
	Tools     []catalog.UsedTool     `json:"tools"`
	Materials []catalog.UsedMaterial `json:"materials"`
}

// Resolve looks up every attachment of p in reg. The first id that does not
// resolve fails the whole call; the returned error wraps *catalog.NotFoundError.
func Resolve(reg *catalog.Registry, p Project) (*Resolved, error) {
	tags, err := reg.Tags.GetMany(p.Tags)
	if err != nil {
		return nil, fmt.Errorf("resolving project %d: %w", p.ID, err)
	}
	tools, err := reg.Tools.GetMany(p.Tools)
	if err != nil {
		return nil, fmt.Errorf("resolving project %d: %w", p.ID, err)
	}
	materials, err := reg.Materials.GetMany(p.Materials)
	if err != nil {
		return nil, fmt.Errorf("resolving project %d: %w", p.ID, err)
	}

	return &Resolved{
		ID:        p.ID,
		Title:     p.Title,
		Tags:      tags,
		Tools:     tools,
		Materials: materials,
	}, nil
}

// Dangling returns, per kind, the attachment ids of p that reg cannot resolve.
// Kinds without dangling ids are omitted. It only reports; nothing is removed.
func Dangling(reg *catalog.Registry, p Project) map[catalog.Kind][]int {
	out := make(map[catalog.Kind][]int)
	add := func(kind catalog.Kind, ids []int, has func(int) bool) {
		for _, id := range ids {
			if !has(id) {
				out[kind] = append(out[kind], id)
			}
		}
	}
	add(catalog.KindTag, p.Tags, reg.Tags.Has)
	add(catalog.KindTool, p.Tools, reg.Tools.Has)
	add(catalog.KindMaterial, p.Materials, reg.Materials.Has)
	return out
}
