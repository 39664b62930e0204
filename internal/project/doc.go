// Package project models the portfolio entries that attach catalog records.
// A project stores ordered id lists per kind and resolves them through the
// catalog registry when it is rendered or exported. Referential integrity is
// not enforced: a project may point at ids that were since removed, and
// Dangling reports them.
package project
