package errors

import (
	"strings"
	"testing"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

const contextSource = `version: 1.0.0
name: test
species:
  - name: A
    bogus: 1
phases: []
reactions: []
`

func TestExtractContext(t *testing.T) {
	got := ExtractContext([]byte(contextSource), types.Location{Line: 5, Column: 5}, 1)
	want := "   4 |   - name: A\n" +
		"-> 5 |     bogus: 1\n" +
		"     |     ^\n" +
		"   6 | phases: []\n"
	if got != want {
		t.Errorf("ExtractContext() =\n%s\nwant\n%s", got, want)
	}
}

func TestExtractContext_Bounds(t *testing.T) {
	tests := []struct {
		name string
		loc  types.Location
	}{
		{name: "no line", loc: types.Location{}},
		{name: "past end", loc: types.Location{Line: 99, Column: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractContext([]byte(contextSource), tt.loc, 2); got != "" {
				t.Errorf("ExtractContext() = %q, want empty", got)
			}
		})
	}

	got := ExtractContext([]byte(contextSource), types.Location{Line: 1, Column: 1}, 2)
	if !strings.HasPrefix(got, "-> 1 | version: 1.0.0") {
		t.Errorf("first-line context = %q", got)
	}
}

func TestErrorList_AddContext(t *testing.T) {
	el := NewErrorList()
	el.AddError(UnknownKey, "Non-standard key 'bogus' found", types.Location{Line: 5, Column: 5})
	el.AddError(EmptyObject, "Document is empty", types.Location{})
	el.AddContext([]byte(contextSource))

	if !strings.Contains(el.Errors[0].Context, "bogus: 1") {
		t.Errorf("Context = %q", el.Errors[0].Context)
	}
	if el.Errors[1].Context != "" {
		t.Errorf("Context without location = %q", el.Errors[1].Context)
	}
}
