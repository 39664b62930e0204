// Package importer loads catalog documents into a registry. It is the only
// path by which records from a file become visible to lookups: every record
// goes through the registry's upsert validation.
package importer
