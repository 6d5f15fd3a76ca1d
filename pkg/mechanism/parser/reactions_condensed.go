package parser

import (
	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/resolver"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

func (p *pass) parseCondensedPhaseArrhenius(obj *schema.Object) {
	cs := p.componentSet(obj)
	params, ok := p.arrhenius(obj)
	r := types.CondensedPhaseArrhenius{
		Name:           obj.String(keyName),
		CondensedPhase: obj.String(keyCondensedPhase),
		Reactants:      cs.list(keyReactants),
		Products:       cs.list(keyProducts),
		A:              params.A,
		B:              params.B,
		C:              params.C,
		D:              params.D,
		E:              params.E,
		Extensions:     schema.Extensions(obj.Node()),
	}
	if !cs.complete() || !ok {
		return
	}
	p.checkReaction(obj, keyCondensedPhase, cs.refs)
	p.mech.Reactions.CondensedPhaseArrhenius = append(p.mech.Reactions.CondensedPhaseArrhenius, r)
}

func (p *pass) parseCondensedPhasePhotolysis(obj *schema.Object) {
	cs := p.componentSet(obj)
	r := types.CondensedPhasePhotolysis{
		Name:           obj.String(keyName),
		CondensedPhase: obj.String(keyCondensedPhase),
		Reactants:      cs.list(keyReactants),
		Products:       cs.list(keyProducts),
		ScalingFactor:  obj.Float(keyScalingFactor, 1),
		Extensions:     schema.Extensions(obj.Node()),
	}
	if !cs.complete() {
		return
	}
	p.limitComponents(obj, CondensedPhasePhotolysis, keyReactants, len(r.Reactants), 1)
	p.checkReaction(obj, keyCondensedPhase, cs.refs)
	p.mech.Reactions.CondensedPhasePhotolysis = append(p.mech.Reactions.CondensedPhasePhotolysis, r)
}

// parseAqueousEquilibrium also resolves the species standing in for water
// and requires it to belong to the condensed phase.
func (p *pass) parseAqueousEquilibrium(obj *schema.Object) {
	cs := p.componentSet(obj)
	r := types.AqueousEquilibrium{
		Name:                obj.String(keyName),
		CondensedPhase:      obj.String(keyCondensedPhase),
		CondensedPhaseWater: obj.String(keyCondensedPhaseWater),
		Reactants:           cs.list(keyReactants),
		Products:            cs.list(keyProducts),
		A:                   obj.Float(keyA, 1),
		C:                   obj.Float(keyC, 0),
		KReverse:            obj.Float(keyKReverse, 0),
		Extensions:          schema.Extensions(obj.Node()),
	}
	if !cs.complete() {
		return
	}

	known := p.requireSpecies(cs.refs)
	waterLoc := schema.LocationOf(obj.Get(keyCondensedPhaseWater))
	if _, err := resolver.ResolveSpeciesReference(p.mech.Species, r.CondensedPhaseWater, waterLoc); err != nil {
		p.errs.Add(err)
	} else {
		known = append(known, resolver.Reference{Name: r.CondensedPhaseWater, Location: waterLoc})
	}
	p.requireInPhase(p.resolvePhase(obj, keyCondensedPhase), known)
	p.mech.Reactions.AqueousEquilibrium = append(p.mech.Reactions.AqueousEquilibrium, r)
}

func (p *pass) parseWetDeposition(obj *schema.Object) {
	r := types.WetDeposition{
		Name:           obj.String(keyName),
		CondensedPhase: obj.String(keyCondensedPhase),
		ScalingFactor:  obj.Float(keyScalingFactor, 1),
		Extensions:     schema.Extensions(obj.Node()),
	}
	if obj.Failed() {
		return
	}
	p.resolvePhase(obj, keyCondensedPhase)
	p.mech.Reactions.WetDeposition = append(p.mech.Reactions.WetDeposition, r)
}

// parseSurface checks the gas-phase species and products against the gas
// phase; the condensed phase only has to exist.
func (p *pass) parseSurface(obj *schema.Object) {
	cs := p.componentSet(obj)
	species := cs.list(keyGasPhaseSpecies)
	r := types.Surface{
		Name:                obj.String(keyName),
		GasPhase:            obj.String(keyGasPhase),
		GasPhaseSpecies:     first(species),
		GasPhaseProducts:    cs.list(keyGasPhaseProducts),
		CondensedPhase:      obj.String(keyCondensedPhase),
		ReactionProbability: obj.Float(keyReactionProbability, 1),
		Extensions:          schema.Extensions(obj.Node()),
	}
	if !cs.complete() {
		return
	}
	p.limitComponents(obj, Surface, keyGasPhaseSpecies, len(species), 1)
	p.checkReaction(obj, keyGasPhase, cs.refs)
	p.resolvePhase(obj, keyCondensedPhase)
	p.mech.Reactions.Surface = append(p.mech.Reactions.Surface, r)
}

// parseSimpolPhaseTransfer checks each side against its own phase. B must
// carry exactly SimpolParameterCount coefficients.
func (p *pass) parseSimpolPhaseTransfer(obj *schema.Object) {
	gas := p.componentSet(obj)
	condensed := p.componentSet(obj)
	gasSpecies := gas.list(keyGasPhaseSpecies)
	condensedSpecies := condensed.list(keyCondensedPhaseSpecies)
	r := types.SimpolPhaseTransfer{
		Name:                  obj.String(keyName),
		GasPhase:              obj.String(keyGasPhase),
		GasPhaseSpecies:       first(gasSpecies),
		CondensedPhase:        obj.String(keyCondensedPhase),
		CondensedPhaseSpecies: first(condensedSpecies),
		Extensions:            schema.Extensions(obj.Node()),
	}
	b := obj.Floats(keyB)
	if !gas.complete() || !condensed.complete() {
		return
	}
	if len(b) != types.SimpolParameterCount {
		p.errs.Addf(mechErrors.InvalidParameterNumber, schema.LocationOf(obj.Get(keyB)),
			"Key 'B' must have %d elements, found %d", types.SimpolParameterCount, len(b))
		return
	}
	copy(r.B[:], b)

	p.limitComponents(obj, SimpolPhaseTransfer, keyGasPhaseSpecies, len(gasSpecies), 1)
	p.limitComponents(obj, SimpolPhaseTransfer, keyCondensedPhaseSpecies, len(condensedSpecies), 1)
	p.checkReaction(obj, keyGasPhase, gas.refs)
	p.checkReaction(obj, keyCondensedPhase, condensed.refs)
	p.mech.Reactions.SimpolPhaseTransfer = append(p.mech.Reactions.SimpolPhaseTransfer, r)
}
