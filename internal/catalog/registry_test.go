package catalog

import (
	"errors"
	"testing"
)

func TestRegistry_ExampleScenario(t *testing.T) {
	reg := New()

	if err := reg.Tags.Upsert(Tag{ID: 1, Name: "rust"}); err != nil {
		t.Fatalf("Upsert tag error: %v", err)
	}
	vscode := UsedTool{ID: 1, Name: "VS Code", URL: "https://code.visualstudio.com"}
	if err := reg.Tools.Upsert(vscode); err != nil {
		t.Fatalf("Upsert tool error: %v", err)
	}

	tag, err := reg.Tags.Get(1)
	if err != nil {
		t.Fatalf("Get tag error: %v", err)
	}
	if tag != (Tag{ID: 1, Name: "rust"}) {
		t.Errorf("Get(Tag, 1) = %+v", tag)
	}

	tool, err := reg.Tools.Get(1)
	if err != nil {
		t.Fatalf("Get tool error: %v", err)
	}
	if tool != vscode {
		t.Errorf("Get(UsedTool, 1) = %+v, want %+v", tool, vscode)
	}

	_, err = reg.Tools.Get(2)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Get(UsedTool, 2) error = %v, want *NotFoundError", err)
	}
	if nf.Kind != KindTool || nf.ID != 2 {
		t.Errorf("NotFoundError = %+v, want {tool 2}", nf)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = false, want true")
	}
	if err.Error() != "tool 2 not found" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestRegistry_IndependentNamespaces(t *testing.T) {
	reg := New()
	_ = reg.Tags.Upsert(Tag{ID: 7, Name: "tag"})
	_ = reg.Tools.Upsert(UsedTool{ID: 7, Name: "tool"})
	_ = reg.Materials.Upsert(UsedMaterial{ID: 7, Name: "material"})

	reg.Tools.Remove(7)

	if !reg.Tags.Has(7) {
		t.Error("tag 7 removed along with tool 7")
	}
	if !reg.Materials.Has(7) {
		t.Error("material 7 removed along with tool 7")
	}
	if reg.Tools.Has(7) {
		t.Error("tool 7 still present after Remove")
	}
}

func TestRegistry_Counts(t *testing.T) {
	reg := New()
	_ = reg.Tags.UpsertAll([]Tag{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})
	_ = reg.Materials.Upsert(UsedMaterial{ID: 1, Name: "m"})

	counts := reg.Counts()
	want := map[Kind]int{KindTag: 2, KindTool: 0, KindMaterial: 1}
	for kind, n := range want {
		if counts[kind] != n {
			t.Errorf("Counts()[%s] = %d, want %d", kind, counts[kind], n)
		}
	}
}

func TestRegistry_EntriesAndLookup(t *testing.T) {
	reg := New()
	_ = reg.Tools.UpsertAll([]UsedTool{
		{ID: 2, Name: "Blender", URL: "https://www.blender.org"},
		{ID: 1, Name: "FreeCAD", URL: "https://www.freecad.org"},
	})

	entries, err := reg.Entries(KindTool)
	if err != nil {
		t.Fatalf("Entries error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Entries len = %d, want 2", len(entries))
	}
	want := Entry{Kind: KindTool, ID: 2, Name: "Blender", URL: "https://www.blender.org"}
	if entries[0] != want {
		t.Errorf("Entries[0] = %+v, want %+v", entries[0], want)
	}

	e, err := reg.Lookup(KindTool, 1)
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if e.Name != "FreeCAD" {
		t.Errorf("Lookup name = %q, want FreeCAD", e.Name)
	}

	if _, err := reg.Lookup(KindTag, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup(tag, 1) error = %v, want ErrNotFound", err)
	}
	if _, err := reg.Entries(Kind("project")); err == nil {
		t.Error("Entries(project) error = nil, want unknown kind error")
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		input string
		want  Kind
	}{
		{"tag", KindTag},
		{"tags", KindTag},
		{"Tool", KindTool},
		{"tools", KindTool},
		{"material", KindMaterial},
		{" MATERIALS ", KindMaterial},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseKind(tc.input)
			if !ok {
				t.Fatalf("ParseKind(%q) returned false, want true", tc.input)
			}
			if got != tc.want {
				t.Fatalf("ParseKind(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseKind_Invalid(t *testing.T) {
	for _, input := range []string{"", "project", "usedtool", "t"} {
		t.Run(input, func(t *testing.T) {
			got, ok := ParseKind(input)
			if ok {
				t.Fatalf("ParseKind(%q) returned true, want false", input)
			}
			if got != "" {
				t.Fatalf("ParseKind(%q) = %q, want empty", input, got)
			}
		})
	}
}

func TestAllKinds_Count(t *testing.T) {
	if n := len(AllKinds()); n != 3 {
		t.Fatalf("AllKinds() returned %d kinds, want 3", n)
	}
}
