// Package catalog holds the in-memory registry of portfolio catalog records:
// tags, used tools, and used materials. Each kind lives in its own collection
// keyed by a caller-supplied integer id, so the three id spaces never collide.
//
// A Registry is an ordinary value owned by its caller. Consumers such as the
// importer and project resolution receive it explicitly; there is no package
// level instance.
package catalog
