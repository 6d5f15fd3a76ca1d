package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
)

// Object reads typed values out of a mapping node whose key set has already
// been validated. Coercion failures are appended to the shared error list as
// InvalidType and the zero value (or the default) is returned, so callers
// keep going and decide afterwards whether the entity is usable.
type Object struct {
	node *yaml.Node
	errs *mechErrors.ErrorList
	bad  int
}

// NewObject wraps node; failures are recorded in errs.
func NewObject(node *yaml.Node, errs *mechErrors.ErrorList) *Object {
	return &Object{node: Resolve(node), errs: errs}
}

// Node returns the wrapped mapping node.
func (o *Object) Node() *yaml.Node { return o.node }

// Has reports whether key is present.
func (o *Object) Has(key string) bool { return Has(o.node, key) }

// Get returns the raw value node stored under key, or nil.
func (o *Object) Get(key string) *yaml.Node { return Lookup(o.node, key) }

// Failed reports whether any coercion on this object has failed.
func (o *Object) Failed() bool { return o.bad > 0 }

func (o *Object) fail(n *yaml.Node, key, want string) {
	o.bad++
	o.errs.Addf(mechErrors.InvalidType, LocationOf(n),
		"Key '%s' must be %s, found %s", key, want, describe(n))
}

// String returns the string stored under key, or "" when absent.
func (o *Object) String(key string) string {
	n := o.Get(key)
	if n == nil {
		return ""
	}
	s, ok := AsString(n)
	if !ok {
		o.fail(n, key, "a string")
	}
	return s
}

// StringPtr returns the string stored under key, or nil when absent.
func (o *Object) StringPtr(key string) *string {
	if !o.Has(key) {
		return nil
	}
	s := o.String(key)
	return &s
}

// Float returns the number stored under key, or def when absent.
func (o *Object) Float(key string, def float64) float64 {
	n := o.Get(key)
	if n == nil {
		return def
	}
	f, ok := AsFloat(n)
	if !ok {
		o.fail(n, key, "a number")
		return def
	}
	return f
}

// FloatPtr returns the number stored under key, or nil when absent.
func (o *Object) FloatPtr(key string) *float64 {
	if !o.Has(key) {
		return nil
	}
	f := o.Float(key, 0)
	return &f
}

// Int returns the integer stored under key, or def when absent. Only plain
// integer scalars qualify: 2.5 and 2.0 are both rejected.
func (o *Object) Int(key string, def int) int {
	n := o.Get(key)
	if n == nil {
		return def
	}
	var i int
	if !isValue(n) || Resolve(n).ShortTag() != "!!int" || Resolve(n).Decode(&i) != nil {
		o.fail(n, key, "an integer")
		return def
	}
	return i
}

// BoolPtr returns the boolean stored under key, or nil when absent.
func (o *Object) BoolPtr(key string) *bool {
	n := o.Get(key)
	if n == nil {
		return nil
	}
	var b bool
	if !isValue(n) || Resolve(n).Decode(&b) != nil {
		o.fail(n, key, "a boolean")
		return nil
	}
	return &b
}

// Floats returns the list of numbers stored under key, or nil when absent.
func (o *Object) Floats(key string) []float64 {
	n := o.Get(key)
	if n == nil {
		return nil
	}
	if Resolve(n).Kind != yaml.SequenceNode {
		o.fail(n, key, "a sequence of numbers")
		return nil
	}
	items := Items(n)
	out := make([]float64, 0, len(items))
	for i, item := range items {
		f, ok := AsFloat(item)
		if !ok {
			o.fail(item, fmt.Sprintf("%s[%d]", key, i), "a number")
			continue
		}
		out = append(out, f)
	}
	return out
}

// Sequence returns the elements stored under key. A present value that is
// not a sequence is reported and yields nil.
func (o *Object) Sequence(key string) []*yaml.Node {
	n := o.Get(key)
	if n == nil {
		return nil
	}
	if IsNull(n) {
		return nil
	}
	if Resolve(n).Kind != yaml.SequenceNode {
		o.fail(n, key, "a sequence")
		return nil
	}
	return Items(n)
}

// AsString coerces a scalar node to a string.
func AsString(n *yaml.Node) (string, bool) {
	n = Resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return "", false
	}
	return n.Value, true
}

// AsFloat coerces a scalar node to a number. Quoted strings are rejected.
func AsFloat(n *yaml.Node) (float64, bool) {
	if !isValue(n) {
		return 0, false
	}
	n = Resolve(n)
	var f float64
	if err := n.Decode(&f); err != nil {
		return 0, false
	}
	return f, true
}

// isValue reports whether n is a non-null scalar.
func isValue(n *yaml.Node) bool {
	n = Resolve(n)
	return n != nil && n.Kind == yaml.ScalarNode && n.Tag != "!!null"
}
