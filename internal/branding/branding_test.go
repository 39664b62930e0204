package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "folio"},
		{"HomeDir", HomeDir(), ".folio"},
		{"EnvPrefix", EnvPrefix(), "FOLIO"},
		{"DefaultCatalog", DefaultCatalog(), "catalog.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("catalog_file"); got != "FOLIO_CATALOG_FILE" {
		t.Errorf("EnvVar(catalog_file) = %q, want FOLIO_CATALOG_FILE", got)
	}
}
