package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

func species(names ...string) []types.Species {
	out := make([]types.Species, len(names))
	for i, n := range names {
		out[i] = types.Species{Name: n}
	}
	return out
}

func TestFind(t *testing.T) {
	items := []types.Species{{Name: "A"}, {Name: "B"}, {Name: "A", TracerType: ptr("first wins")}}

	got, ok := Find(items, "A")
	if !ok {
		t.Fatal("Find(A) not found")
	}
	if got != &items[0] {
		t.Error("Find(A) should return the first declaration")
	}
	if _, ok := Find(items, "a"); ok {
		t.Error("names must match case sensitively")
	}
	if ExistsByName(items, "C") {
		t.Error("ExistsByName(C) = true, want false")
	}
}

func ptr(s string) *string { return &s }

func TestFindDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		items []types.Species
		want  []string
	}{
		{name: "unique", items: species("A", "B", "C")},
		{name: "one pair", items: species("A", "B", "A"), want: []string{"A"}},
		{name: "listed once", items: species("A", "A", "A"), want: []string{"A"}},
		{name: "second occurrence order", items: species("B", "A", "A", "B"), want: []string{"A", "B"}},
		{name: "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, FindDuplicates(tt.items)); diff != "" {
				t.Errorf("FindDuplicates() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckDuplicates(t *testing.T) {
	if err := CheckDuplicates(species("A", "B"), mechErrors.DuplicateSpeciesDetected, "species", types.Location{}); err != nil {
		t.Fatalf("CheckDuplicates() = %v, want nil", err)
	}

	loc := types.Location{Line: 3, Column: 1}
	err := CheckDuplicates(species("A", "B", "A", "B"), mechErrors.DuplicateSpeciesDetected, "species", loc)
	if err == nil {
		t.Fatal("CheckDuplicates() = nil, want error")
	}
	if err.Kind != mechErrors.DuplicateSpeciesDetected {
		t.Errorf("Kind = %s, want DuplicateSpeciesDetected", err.Kind)
	}
	if err.Message != "Duplicate species detected: 'A', 'B'" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Location != loc {
		t.Errorf("Location = %v, want %v", err.Location, loc)
	}
}

func TestResolvePhaseReference(t *testing.T) {
	phases := []types.Phase{{Name: "gas"}, {Name: "aqueous"}}

	p, err := ResolvePhaseReference(phases, "aqueous", types.Location{})
	if err != nil || p.Name != "aqueous" {
		t.Fatalf("ResolvePhaseReference(aqueous) = %v, %v", p, err)
	}

	loc := types.Location{Line: 9, Column: 12}
	p, err = ResolvePhaseReference(phases, "aqeuous", loc)
	if p != nil || err == nil {
		t.Fatalf("ResolvePhaseReference(aqeuous) = %v, %v, want error", p, err)
	}
	if err.Kind != mechErrors.UnknownPhase || err.Location != loc {
		t.Errorf("error = %s at %v", err.Kind, err.Location)
	}
	if err.Suggestion != "Did you mean 'aqueous'?" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
}

func TestResolveSpeciesReference(t *testing.T) {
	_, err := ResolveSpeciesReference(species("H2O", "O3"), "XYZZY_LONG_NAME", types.Location{Line: 1, Column: 1})
	if err == nil || err.Kind != mechErrors.UnknownSpecies {
		t.Fatalf("ResolveSpeciesReference() error = %v, want UnknownSpecies", err)
	}
	if err.Message != "Unknown species 'XYZZY_LONG_NAME'" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Suggestion != "" {
		t.Errorf("Suggestion = %q, want none for distant names", err.Suggestion)
	}
}

func TestUnknownReferences(t *testing.T) {
	refs := []Reference{
		{Name: "A", Location: types.Location{Line: 1, Column: 1}},
		{Name: "Q", Location: types.Location{Line: 2, Column: 1}},
		{Name: "B", Location: types.Location{Line: 3, Column: 1}},
		{Name: "Q", Location: types.Location{Line: 4, Column: 1}},
	}
	got := UnknownReferences(species("A", "B"), refs)
	want := []Reference{refs[1], refs[3]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UnknownReferences() mismatch (-want +got):\n%s", diff)
	}
	if s := got[0].String(); s != "'Q' (2:1)" {
		t.Errorf("String() = %q", s)
	}
}

func TestNames(t *testing.T) {
	if diff := cmp.Diff([]string{"X", "Y"}, Names(species("X", "Y"))); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
