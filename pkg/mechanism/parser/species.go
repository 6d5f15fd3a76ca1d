package parser

import (
	"gopkg.in/yaml.v3"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/resolver"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// parseSpecies parses the species collection. Entities that fail
// validation or coercion are skipped; duplicate names are reported once.
func (p *pass) parseSpecies(list *yaml.Node, items []*yaml.Node) {
	for _, item := range items {
		if !p.validate(item, speciesKeys) {
			continue
		}
		obj := p.object(item)
		s := types.Species{
			Name:                       obj.String(keyName),
			AbsoluteTolerance:          obj.FloatPtr(keyAbsoluteTolerance),
			DiffusionCoefficient:       obj.FloatPtr(keyDiffusionCoefficient),
			MolecularWeight:            obj.FloatPtr(keyMolecularWeight),
			HenrysLawConstant298:       obj.FloatPtr(keyHLC298),
			HenrysLawExponentialFactor: obj.FloatPtr(keyHLCExponentialFactor),
			NStar:                      obj.FloatPtr(keyNStar),
			Density:                    obj.FloatPtr(keyDensity),
			TracerType:                 obj.StringPtr(keyTracerType),
			ConstantConcentration:      obj.FloatPtr(keyConstantConcentration),
			ConstantMixingRatio:        obj.FloatPtr(keyConstantMixingRatio),
			IsThirdBody:                obj.BoolPtr(keyIsThirdBody),
			Extensions:                 schema.Extensions(item),
		}
		if obj.Failed() {
			continue
		}
		p.mech.Species = append(p.mech.Species, s)
	}

	p.errs.Add(resolver.CheckDuplicates(p.mech.Species,
		mechErrors.DuplicateSpeciesDetected, "species", schema.LocationOf(list)))
}
