package project

import "fmt"

// Index is an ordered, read-only set of projects keyed by id.
type Index struct {
	projects []Project
	byID     map[int]int
}

// NewIndex builds an index over projects. A later project with a repeated id
// replaces the earlier one in place, mirroring catalog upsert semantics.
func NewIndex(projects []Project) *Index {
	idx := &Index{byID: make(map[int]int, len(projects))}
	for _, p := range projects {
		if pos, ok := idx.byID[p.ID]; ok {
			idx.projects[pos] = p
			continue
		}
		idx.byID[p.ID] = len(idx.projects)
		idx.projects = append(idx.projects, p)
	}
	return idx
}

// Find returns the project with the given id.
func (i *Index) Find(id int) (Project, error) {
	pos, ok := i.byID[id]
	if !ok {
		return Project{}, fmt.Errorf("project %d not found", id)
	}
	return i.projects[pos], nil
}

// All returns the projects in document order.
func (i *Index) All() []Project {
	out := make([]Project, len(i.projects))
	copy(out, i.projects)
	return out
}

// Len returns the number of projects.
func (i *Index) Len() int { return len(i.projects) }
