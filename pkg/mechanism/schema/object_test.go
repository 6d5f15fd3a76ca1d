package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
)

func TestObject_Values(t *testing.T) {
	errs := mechErrors.NewErrorList()
	obj := NewObject(mustNode(t, `
name: A
weight: 0.5
count: 3
flag: true
coefficients: [1, 2.5]
items: [a, b]
`), errs)

	if got := obj.String("name"); got != "A" {
		t.Errorf("String() = %q, want A", got)
	}
	if got := obj.Float("weight", 1); got != 0.5 {
		t.Errorf("Float() = %v, want 0.5", got)
	}
	if got := obj.Float("missing", 7); got != 7 {
		t.Errorf("Float() default = %v, want 7", got)
	}
	if got := obj.FloatPtr("missing"); got != nil {
		t.Errorf("FloatPtr() = %v, want nil", *got)
	}
	if got := obj.Int("count", 0); got != 3 {
		t.Errorf("Int() = %v, want 3", got)
	}
	if got := obj.BoolPtr("flag"); got == nil || !*got {
		t.Errorf("BoolPtr() = %v, want true", got)
	}
	if diff := cmp.Diff([]float64{1, 2.5}, obj.Floats("coefficients")); diff != "" {
		t.Errorf("Floats() mismatch (-want +got):\n%s", diff)
	}
	if got := len(obj.Sequence("items")); got != 2 {
		t.Errorf("len(Sequence()) = %d, want 2", got)
	}
	if obj.Failed() || errs.HasErrors() {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestObject_CoercionFailures(t *testing.T) {
	tests := []struct {
		name string
		src  string
		read func(*Object)
	}{
		{name: "quoted number", src: `A: "1.0"`, read: func(o *Object) { o.Float("A", 0) }},
		{name: "word for number", src: "A: fast", read: func(o *Object) { o.Float("A", 0) }},
		{name: "null number", src: "A: ~", read: func(o *Object) { o.Float("A", 0) }},
		{name: "map for string", src: "name: {a: 1}", read: func(o *Object) { o.String("name") }},
		{name: "word for bool", src: "flag: maybe", read: func(o *Object) { o.BoolPtr("flag") }},
		{name: "scalar for sequence", src: "items: 3", read: func(o *Object) { o.Sequence("items") }},
		{name: "fraction for integer", src: "n: 2.5", read: func(o *Object) { o.Int("n", 0) }},
		{name: "float for integer", src: "n: 2.0", read: func(o *Object) { o.Int("n", 0) }},
		{name: "quoted integer", src: `n: "2"`, read: func(o *Object) { o.Int("n", 0) }},
		{name: "bad list element", src: "B: [1, x]", read: func(o *Object) { o.Floats("B") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := mechErrors.NewErrorList()
			obj := NewObject(mustNode(t, tt.src), errs)
			tt.read(obj)
			if !obj.Failed() {
				t.Error("Failed() = false, want true")
			}
			if diff := cmp.Diff([]mechErrors.Kind{mechErrors.InvalidType}, errorKinds(errs)); diff != "" {
				t.Errorf("kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
