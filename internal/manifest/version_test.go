package manifest

import "testing"

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"", false},
		{"1.0.0", false},
		{"v1.4.2", false},
		{"1.9", false},
		{"2.0.0", true},
		{"0.9.0", true},
		{"not-a-version", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := CheckVersion(&Document{Version: tt.version})
			if tt.wantErr && err == nil {
				t.Errorf("CheckVersion(%q) = nil, want error", tt.version)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("CheckVersion(%q) error: %v", tt.version, err)
			}
		})
	}
}

func TestCheckVersion_UnsupportedFixture(t *testing.T) {
	doc, err := Parse(testPath("unsupported-version.yaml"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if err := CheckVersion(doc); err == nil {
		t.Fatal("expected unsupported version error, got nil")
	}
}
