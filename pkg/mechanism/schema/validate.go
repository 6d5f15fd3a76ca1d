package schema

import (
	"slices"

	"gopkg.in/yaml.v3"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
)

// Keys is the key table of one entity kind: the keys a node must carry and
// the keys it may carry. Extension-prefixed keys are always allowed.
type Keys struct {
	Required []string
	Optional []string
}

// All returns the required keys followed by the optional keys.
func (k Keys) All() []string {
	all := make([]string, 0, len(k.Required)+len(k.Optional))
	all = append(all, k.Required...)
	return append(all, k.Optional...)
}

// Allows reports whether key is required or optional.
func (k Keys) Allows(key string) bool {
	return slices.Contains(k.Required, key) || slices.Contains(k.Optional, key)
}

// With returns a copy of the table with extra optional keys.
func (k Keys) With(optional ...string) Keys {
	return Keys{
		Required: slices.Clone(k.Required),
		Optional: append(slices.Clone(k.Optional), optional...),
	}
}

// Validate checks the key set of node against keys and returns every
// violation found. It never consumes the node's values.
//
// Violations:
//   - EmptyObject when the node is absent or null
//   - InvalidType when the node is not a map
//   - RequiredKeyNotFound for each missing required key
//   - InvalidKey for empty, non-scalar or repeated keys
//   - UnknownKey for each key outside the table without the "__" prefix
func Validate(node *yaml.Node, keys Keys) *mechErrors.ErrorList {
	errs := mechErrors.NewErrorList()

	if IsNull(node) {
		errs.AddError(mechErrors.EmptyObject, "Object is empty", LocationOf(node))
		return errs
	}
	if !IsMap(node) {
		errs.Addf(mechErrors.InvalidType, LocationOf(node), "Expected a map, found %s", describe(node))
		return errs
	}

	entries := Entries(node)

	for _, required := range keys.Required {
		if !Has(node, required) {
			errs.AddError(mechErrors.RequiredKeyNotFound,
				"Required key '"+required+"' is missing",
				LocationOf(Resolve(node)))
		}
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		keyLoc := LocationOf(e.KeyNode)
		if e.Key == "" {
			errs.Addf(mechErrors.InvalidKey, keyLoc, "Invalid key %s", describe(e.KeyNode))
			continue
		}
		if seen[e.Key] {
			errs.Addf(mechErrors.InvalidKey, keyLoc, "Duplicate key '%s'", e.Key)
			continue
		}
		seen[e.Key] = true

		if keys.Allows(e.Key) || IsExtensionKey(e.Key) {
			continue
		}
		errs.AddErrorWithSuggestion(mechErrors.UnknownKey,
			"Non-standard key '"+e.Key+"' found",
			keyLoc,
			mechErrors.SuggestKey(e.Key, keys.All()))
	}

	return errs
}
