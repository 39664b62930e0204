package catalog

import (
	"net/url"
	"strings"
)

func validateBase(id int, name string) error {
	if id < 0 {
		return &ValidationError{Field: "id", Reason: "must be a non-negative integer"}
	}
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return nil
}

// validateURL checks syntax only. An empty url means "not present" and passes.
func validateURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return &ValidationError{Field: "url", Reason: "not a valid URL"}
	}
	if !u.IsAbs() || (u.Host == "" && u.Opaque == "") {
		return &ValidationError{Field: "url", Reason: "must be an absolute URL"}
	}
	return nil
}
