package parser

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
)

const legacyInline = `
camp-data:
  - type: CHEM_SPEC
    name: A
  - type: CHEM_SPEC
    name: B
    molecular weight [kg mol-1]: 0.025
    __description: reactive
  - type: CHEM_SPEC
    name: M
    tracer type: THIRD_BODY
  - type: RELATIVE_TOLERANCE
    value: 1.0e-4
  - type: MECHANISM
    name: inline
    reactions:
      - type: ARRHENIUS
        reactants:
          A:
            qty: 2
        products:
          B:
            yield: 1.5
        A: 2.0
        MUSICA name: dimer
      - type: TROE
        reactants:
          A: {}
          M: {}
        products:
          B: {}
        k0_A: 1.0
        kinf_A: 1.0
      - type: WENNBERG_TUNNELING
        reactants:
          B: {}
        products:
          A: {}
      - type: SURFACE
        gas-phase reactant: A
        gas-phase products:
          B: {}
        MUSICA name: aerosol
      - type: USER_DEFINED
        reactants:
          A: {}
        products:
          B: {}
        MUSICA name: custom
        scaling factor: 2.0
`

func TestParser_Legacy_Inline(t *testing.T) {
	res := parseString(t, legacyInline)
	if !res.Successful() {
		t.Fatalf("Parse() failed:\n%v", res.Errors)
	}
	if res.Generation != V0 {
		t.Errorf("Generation = %q, want %q", res.Generation, V0)
	}
	m := res.Mechanism

	if m.Name != "inline" {
		t.Errorf("Name = %q, want inline", m.Name)
	}
	if m.RelativeTolerance == nil || *m.RelativeTolerance != 1.0e-4 {
		t.Errorf("RelativeTolerance = %v, want 1e-4", m.RelativeTolerance)
	}
	if len(m.Species) != 3 {
		t.Fatalf("len(Species) = %d, want 3", len(m.Species))
	}
	if !m.FindSpecies("M").ThirdBody() {
		t.Error("M should be a third body")
	}
	if got := m.FindSpecies("B").Extensions["__description"]; got != "reactive" {
		t.Errorf("B extension = %q", got)
	}

	gas := m.FindPhase(LegacyGasPhase)
	if gas == nil || len(gas.Species) != 3 {
		t.Fatalf("gas phase = %+v, want all 3 species", gas)
	}

	arr := m.Reactions.Arrhenius[0]
	if arr.Name != "dimer" || arr.GasPhase != LegacyGasPhase {
		t.Errorf("Arrhenius = %q in %q", arr.Name, arr.GasPhase)
	}
	if arr.Reactants[0].Coefficient != 2 || arr.Products[0].Coefficient != 1.5 {
		t.Errorf("coefficients = %v / %v", arr.Reactants[0].Coefficient, arr.Products[0].Coefficient)
	}
	if want := 2.0 * MolesM3ToMoleculesCm3; math.Abs(arr.A-want)/want > 1e-12 {
		t.Errorf("Arrhenius A = %v, want %v", arr.A, want)
	}

	troe := m.Reactions.Troe[0]
	if want := math.Pow(MolesM3ToMoleculesCm3, 2); math.Abs(troe.K0A-want)/want > 1e-12 {
		t.Errorf("Troe k0_A = %v, want %v", troe.K0A, want)
	}
	if want := MolesM3ToMoleculesCm3; math.Abs(troe.KinfA-want)/want > 1e-12 {
		t.Errorf("Troe kinf_A = %v, want %v", troe.KinfA, want)
	}

	if got := m.Reactions.Tunneling[0].A; got != 1 {
		t.Errorf("Tunneling A = %v, want 1 for a first order reaction", got)
	}
	if got := m.Reactions.Surface[0].Name; got != "SURF.aerosol" {
		t.Errorf("Surface name = %q", got)
	}
	user := m.Reactions.UserDefined[0]
	if user.Name != "USER.custom" || user.ScalingFactor != 2 {
		t.Errorf("UserDefined = %+v", user)
	}
}

func TestParser_Legacy_CampFiles(t *testing.T) {
	res := newTestParser().Parse("testdata/legacy/camp_files")
	if !res.Successful() {
		t.Fatalf("Parse() failed:\n%v", res.Errors)
	}
	m := res.Mechanism
	if m.Name != "Chapman" {
		t.Errorf("Name = %q, want Chapman", m.Name)
	}
	if len(m.Species) != 4 {
		t.Errorf("len(Species) = %d, want 4", len(m.Species))
	}

	var names []string
	for _, r := range m.Reactions.UserDefined {
		names = append(names, r.Name)
	}
	want := []string{"PHOTO.O2_1", "EMIS.O3_source", "LOSS.O3_sink"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("user defined names mismatch (-want +got):\n%s", diff)
	}
	if emis := m.Reactions.UserDefined[1]; len(emis.Products) != 1 || len(emis.Reactants) != 0 {
		t.Errorf("emission = %+v, want one product", emis)
	}
	if loss := m.Reactions.UserDefined[2]; len(loss.Reactants) != 1 || len(loss.Products) != 0 {
		t.Errorf("loss = %+v, want one reactant", loss)
	}

	arr := m.Reactions.Arrhenius[0]
	if want := 6.0e-34 * math.Pow(MolesM3ToMoleculesCm3, 2); math.Abs(arr.A-want)/want > 1e-12 {
		t.Errorf("Arrhenius A = %v, want %v", arr.A, want)
	}
}

func TestParser_Legacy_MissingCampFile(t *testing.T) {
	res := newTestParser().Parse("testdata/legacy/camp_files/missing.yaml")
	if !res.Errors.HasKind(mechErrors.FileNotFound) {
		t.Fatalf("errors = %v, want FileNotFound", kinds(res))
	}
	e := res.Errors.ByKind(mechErrors.FileNotFound)[0]
	if got := filepath.Base(e.Location.File); got != "missing.yaml" {
		t.Errorf("Location.File = %q, want the listing document", e.Location.File)
	}
}

func TestParser_Legacy_CampFilesNeedFile(t *testing.T) {
	res := parseString(t, "camp-files:\n  - species.yaml\n")
	if diff := cmp.Diff([]mechErrors.Kind{mechErrors.InvalidFilePath}, kinds(res)); diff != "" {
		t.Errorf("error kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_Legacy_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []mechErrors.Kind
	}{
		{
			name: "neither camp-data nor camp-files",
			doc:  "name: nothing\n",
			want: []mechErrors.Kind{mechErrors.UnknownKey, mechErrors.RequiredKeyNotFound},
		},
		{
			name: "both camp-data and camp-files",
			doc:  "camp-data: []\ncamp-files: []\n",
			want: []mechErrors.Kind{mechErrors.MutuallyExclusiveOption},
		},
		{
			name: "object without type",
			doc:  "camp-data:\n  - name: A\n",
			want: []mechErrors.Kind{mechErrors.ObjectTypeNotFound},
		},
		{
			name: "unsupported object type",
			doc:  "camp-data:\n  - type: AERO_PHASE\n    name: aqueous\n",
			want: []mechErrors.Kind{mechErrors.UnknownType},
		},
		{
			name: "unsupported reaction type",
			doc:  "camp-data:\n  - type: MECHANISM\n    name: m\n    reactions:\n      - type: CMAQ_H2O2\n",
			want: []mechErrors.Kind{mechErrors.UnknownType},
		},
		{
			name: "reaction with unknown species",
			doc:  "camp-data:\n  - type: MECHANISM\n    name: m\n    reactions:\n      - type: ARRHENIUS\n        reactants:\n          X: {}\n        products: {}\n",
			want: []mechErrors.Kind{mechErrors.ReactionRequiresUnknownSpecies},
		},
		{
			name: "duplicate species",
			doc:  "camp-data:\n  - type: CHEM_SPEC\n    name: A\n  - type: CHEM_SPEC\n    name: A\n",
			want: []mechErrors.Kind{mechErrors.DuplicateSpeciesDetected},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parseString(t, tt.doc)
			if diff := cmp.Diff(tt.want, kinds(res)); diff != "" {
				t.Errorf("error kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_Legacy_VersionFallbackIsNotAnError(t *testing.T) {
	res := parseString(t, "camp-data:\n  - type: CHEM_SPEC\n    name: A\n")
	if !res.Successful() {
		t.Fatalf("Parse() failed:\n%v", res.Errors)
	}
	if res.Errors.HasKind(mechErrors.MissingVersionField) {
		t.Error("missing version should not be reported")
	}
}
