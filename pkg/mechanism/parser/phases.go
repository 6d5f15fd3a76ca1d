package parser

import (
	"gopkg.in/yaml.v3"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/resolver"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// parsePhases parses the phase collection. Species must already be parsed.
// A phase is kept even when it names unknown species; only schema and
// coercion failures drop it.
func (p *pass) parsePhases(list *yaml.Node, items []*yaml.Node) {
	for _, item := range items {
		if phase, ok := p.parsePhase(item); ok {
			p.mech.Phases = append(p.mech.Phases, phase)
		}
	}

	p.errs.Add(resolver.CheckDuplicates(p.mech.Phases,
		mechErrors.DuplicatePhasesDetected, "phases", schema.LocationOf(list)))
}

func (p *pass) parsePhase(item *yaml.Node) (types.Phase, bool) {
	if !p.validate(item, phaseKeys) {
		return types.Phase{}, false
	}
	obj := p.object(item)
	phase := types.Phase{
		Name:       obj.String(keyName),
		Extensions: schema.Extensions(item),
	}

	ok := true
	var refs []resolver.Reference
	for _, n := range obj.Sequence(keySpecies) {
		ps, valid := p.parsePhaseSpecies(n)
		if !valid {
			ok = false
			continue
		}
		phase.Species = append(phase.Species, ps)
		refs = append(refs, resolver.Reference{Name: ps.Name, Location: schema.LocationOf(n)})
	}
	if obj.Failed() || !ok {
		return types.Phase{}, false
	}

	p.errs.Add(resolver.CheckDuplicates(phase.Species,
		mechErrors.DuplicateSpeciesInPhaseDetected, "species in phase '"+phase.Name+"'",
		schema.LocationOf(obj.Get(keySpecies))))

	for _, ref := range resolver.UnknownReferences(p.mech.Species, refs) {
		p.errs.AddErrorWithSuggestion(mechErrors.PhaseRequiresUnknownSpecies,
			"Phase '"+phase.Name+"' requires unknown species '"+ref.Name+"'", ref.Location,
			mechErrors.SuggestKey(ref.Name, resolver.Names(p.mech.Species)))
	}
	return phase, true
}

// parsePhaseSpecies accepts a bare species name and, from v2 on, a map
// carrying a name and a phase-specific diffusion coefficient.
func (p *pass) parsePhaseSpecies(n *yaml.Node) (types.PhaseSpecies, bool) {
	if name, ok := schema.AsString(n); ok {
		return types.PhaseSpecies{Name: name}, true
	}
	if p.gen == V2 && schema.IsMap(n) {
		if !p.validate(n, phaseSpeciesKeys) {
			return types.PhaseSpecies{}, false
		}
		obj := p.object(n)
		ps := types.PhaseSpecies{
			Name:                 obj.String(keyName),
			DiffusionCoefficient: obj.FloatPtr(keyDiffusionCoefficient),
			Extensions:           schema.Extensions(n),
		}
		return ps, !obj.Failed()
	}

	want := "a species name"
	if p.gen == V2 {
		want = "a species name or a map"
	}
	p.errs.Addf(mechErrors.InvalidType, schema.LocationOf(n),
		"Phase species must be %s", want)
	return types.PhaseSpecies{}, false
}
