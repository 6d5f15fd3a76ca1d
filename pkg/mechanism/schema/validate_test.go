package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
)

func mustNode(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal() failed: %v", err)
	}
	return Resolve(&doc)
}

func errorKinds(errs *mechErrors.ErrorList) []mechErrors.Kind {
	var out []mechErrors.Kind
	for _, e := range errs.Errors {
		out = append(out, e.Kind)
	}
	return out
}

func TestValidate(t *testing.T) {
	keys := Keys{
		Required: []string{"name", "type"},
		Optional: []string{"scaling factor"},
	}

	tests := []struct {
		name string
		src  string
		want []mechErrors.Kind
	}{
		{
			name: "valid",
			src:  "name: A\ntype: X\nscaling factor: 2\n",
		},
		{
			name: "extension keys are ignored",
			src:  "name: A\ntype: X\n__anything: [1, 2]\n",
		},
		{
			name: "missing required keys",
			src:  "scaling factor: 2\n",
			want: []mechErrors.Kind{mechErrors.RequiredKeyNotFound, mechErrors.RequiredKeyNotFound},
		},
		{
			name: "unknown key",
			src:  "name: A\ntype: X\nscaling facter: 2\n",
			want: []mechErrors.Kind{mechErrors.UnknownKey},
		},
		{
			name: "duplicate key",
			src:  "name: A\ntype: X\nname: B\n",
			want: []mechErrors.Kind{mechErrors.InvalidKey},
		},
		{
			name: "empty key",
			src:  "name: A\ntype: X\n\"\": 1\n",
			want: []mechErrors.Kind{mechErrors.InvalidKey},
		},
		{
			name: "null object",
			src:  "~\n",
			want: []mechErrors.Kind{mechErrors.EmptyObject},
		},
		{
			name: "not a map",
			src:  "[1, 2]\n",
			want: []mechErrors.Kind{mechErrors.InvalidType},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(mustNode(t, tt.src), keys)
			if diff := cmp.Diff(tt.want, errorKinds(errs)); diff != "" {
				t.Errorf("Validate() kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_Suggestion(t *testing.T) {
	keys := Keys{Required: []string{"name"}, Optional: []string{"scaling factor"}}
	errs := Validate(mustNode(t, "name: A\nscaling facter: 2\n"), keys)
	if errs.Count() != 1 {
		t.Fatalf("Validate() returned %d errors, want 1", errs.Count())
	}
	e := errs.Errors[0]
	if e.Suggestion != "Did you mean 'scaling factor'?" {
		t.Errorf("Suggestion = %q", e.Suggestion)
	}
	if e.Location.Line != 2 || e.Location.Column != 1 {
		t.Errorf("Location = %v, want 2:1", e.Location)
	}
}

func TestKeys_With(t *testing.T) {
	base := Keys{Required: []string{"a"}, Optional: []string{"b"}}
	extended := base.With("c")
	if !extended.Allows("c") {
		t.Error("extended table should allow c")
	}
	if base.Allows("c") {
		t.Error("base table should be unchanged")
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, extended.All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtensions(t *testing.T) {
	node := mustNode(t, `
name: A
__scalar: 0.10
__string: "hello world"
__list: [1, 2]
__map:
  k: v
`)
	want := map[string]string{
		"__scalar": "0.10",
		"__string": "hello world",
		"__list":   "[1, 2]",
		"__map":    "k: v",
	}
	got := Extensions(node)
	if diff := cmp.Diff(want, map[string]string(got)); diff != "" {
		t.Errorf("Extensions() mismatch (-want +got):\n%s", diff)
	}

	if ext := Extensions(mustNode(t, "name: A\n")); ext == nil || len(ext) != 0 {
		t.Errorf("Extensions() = %v, want empty non-nil map", ext)
	}
}

func TestExtensions_ScalarRoundTrip(t *testing.T) {
	first := Extensions(mustNode(t, "__x: 1.0e-3\n"))
	again := Extensions(mustNode(t, "__x: "+first["__x"]+"\n"))
	if first["__x"] != "1.0e-3" || again["__x"] != first["__x"] {
		t.Errorf("round trip = %q then %q", first["__x"], again["__x"])
	}
}

func TestExtensions_DropsComments(t *testing.T) {
	node := mustNode(t, `
name: A
__tool:
  # generated
  a: 1 # tooling note
  b: [x, y]
`)
	if got, want := Extensions(node)["__tool"], "a: 1\nb: [x, y]"; got != want {
		t.Errorf("Extensions()[__tool] = %q, want %q", got, want)
	}

	// The document itself keeps its comments.
	if got := Lookup(Lookup(node, "__tool"), "a"); got.LineComment == "" {
		t.Error("LineComment was cleared on the source node")
	}
}
