package parser

import (
	"gopkg.in/yaml.v3"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

var (
	v1Keys = schema.Keys{
		Required: []string{keyVersion, keySpecies, keyPhases, keyReactions},
		Optional: []string{keyName},
	}
	v2Keys = v1Keys.With(keyModels)
)

// parseVersioned parses a v1 or v2 document. A top level that is not a map
// or lacks a required collection is fatal; every other defect is collected
// and parsing continues.
func (p *pass) parseVersioned(root *yaml.Node, version types.Version) {
	keys := v1Keys
	if p.gen == V2 {
		keys = v2Keys
	}
	errs := schema.Validate(root, keys)
	p.errs.Merge(errs)
	if errs.HasKind(mechErrors.RequiredKeyNotFound) ||
		errs.HasKind(mechErrors.InvalidType) ||
		errs.HasKind(mechErrors.EmptyObject) {
		p.mech = nil
		return
	}

	obj := p.object(root)
	p.mech.Name = obj.String(keyName)
	p.mech.Version = version

	p.parseSpecies(obj.Get(keySpecies), obj.Sequence(keySpecies))
	p.parsePhases(obj.Get(keyPhases), obj.Sequence(keyPhases))
	if p.gen == V2 {
		p.parseModels(obj.Sequence(keyModels))
	}
	p.parseReactions(obj.Sequence(keyReactions))
}
