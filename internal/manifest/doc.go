// Package manifest handles parsing and validation of catalog documents: the
// YAML files that list tags, tools, materials, and the projects referencing
// them. Documents are checked against an embedded JSON Schema and carry a
// semver format version.
package manifest
