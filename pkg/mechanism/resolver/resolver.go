// Package resolver checks references between declared entities.
//
// Resolution is a single forward pass: a reference can only see entities
// collected by stages that already ran. Names match exactly and are case
// sensitive. When a name is declared more than once, the first declaration
// wins.
package resolver

import (
	"fmt"
	"strings"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// Named is implemented by every entity that is referenced by name.
type Named interface {
	GetName() string
}

// ExistsByName reports whether any item is named name.
func ExistsByName[T Named](items []T, name string) bool {
	_, ok := Find(items, name)
	return ok
}

// Find returns the first item named name.
func Find[T Named](items []T, name string) (*T, bool) {
	for i := range items {
		if items[i].GetName() == name {
			return &items[i], true
		}
	}
	return nil, false
}

// Names returns the names of items in order.
func Names[T Named](items []T) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.GetName())
	}
	return names
}

// FindDuplicates returns every name carried by more than one item, each
// listed once, in the order the second occurrence appears.
func FindDuplicates[T Named](items []T) []string {
	seen := make(map[string]int, len(items))
	var dups []string
	for _, item := range items {
		name := item.GetName()
		seen[name]++
		if seen[name] == 2 {
			dups = append(dups, name)
		}
	}
	return dups
}

// CheckDuplicates returns one aggregate error of the given kind naming every
// duplicated name of the collection, or nil when names are unique.
func CheckDuplicates[T Named](items []T, kind mechErrors.Kind, collection string, loc types.Location) *mechErrors.Error {
	dups := FindDuplicates(items)
	if len(dups) == 0 {
		return nil
	}
	quoted := make([]string, len(dups))
	for i, d := range dups {
		quoted[i] = "'" + d + "'"
	}
	return mechErrors.New(kind, loc, "Duplicate %s detected: %s", collection, strings.Join(quoted, ", "))
}

// ResolvePhaseReference returns the phase named name, or an UnknownPhase
// error located at loc.
func ResolvePhaseReference(phases []types.Phase, name string, loc types.Location) (*types.Phase, *mechErrors.Error) {
	if p, ok := Find(phases, name); ok {
		return p, nil
	}
	err := mechErrors.New(mechErrors.UnknownPhase, loc, "Unknown phase '%s'", name)
	err.Suggestion = mechErrors.SuggestKey(name, Names(phases))
	return nil, err
}

// ResolveSpeciesReference returns the species named name, or an
// UnknownSpecies error located at loc.
func ResolveSpeciesReference(species []types.Species, name string, loc types.Location) (*types.Species, *mechErrors.Error) {
	if s, ok := Find(species, name); ok {
		return s, nil
	}
	err := mechErrors.New(mechErrors.UnknownSpecies, loc, "Unknown species '%s'", name)
	err.Suggestion = mechErrors.SuggestKey(name, Names(species))
	return nil, err
}

// Reference is a name found in the document together with its location.
type Reference struct {
	Name     string
	Location types.Location
}

// UnknownReferences returns the references that do not name any item.
func UnknownReferences[T Named](items []T, refs []Reference) []Reference {
	var unknown []Reference
	for _, ref := range refs {
		if !ExistsByName(items, ref.Name) {
			unknown = append(unknown, ref)
		}
	}
	return unknown
}

// String formats a reference for messages.
func (r Reference) String() string {
	return fmt.Sprintf("'%s' (%s)", r.Name, r.Location)
}
