package parser

import (
	"gopkg.in/yaml.v3"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/resolver"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// parseHenrysLaw parses an HL_PHASE_TRANSFER reaction. The gas block names
// the gas phase and the species leaving it; the particle block names the
// condensed phase, the solutes and at most one solvent.
func (p *pass) parseHenrysLaw(obj *schema.Object) {
	gasNode, particleNode := obj.Get(keyGas), obj.Get(keyParticle)
	gasValid := p.validate(gasNode, henrysLawGasKeys)
	particleValid := p.validate(particleNode, henrysLawParticleKeys)
	if !gasValid || !particleValid {
		return
	}

	gasObj, particleObj := p.object(gasNode), p.object(particleNode)
	gas := types.HenrysLawGas{
		Name:       gasObj.String(keyName),
		Extensions: schema.Extensions(gasNode),
	}
	var gasRefs []resolver.Reference
	gasOK := true
	for _, n := range gasObj.Sequence(keySpecies) {
		ps, ok := p.henrysLawGasSpecies(n)
		if !ok {
			gasOK = false
			continue
		}
		gas.Species = append(gas.Species, ps)
		gasRefs = append(gasRefs, resolver.Reference{Name: ps.Name, Location: schema.LocationOf(n)})
	}

	cs := p.componentSet(particleObj)
	solvent := cs.list(keySolvent)
	particle := types.HenrysLawParticle{
		Phase:      particleObj.String(keyPhase),
		Solutes:    cs.list(keySolutes),
		Solvent:    first(solvent),
		Extensions: schema.Extensions(particleNode),
	}

	r := types.HenrysLaw{
		Name:       obj.String(keyName),
		Gas:        gas,
		Particle:   particle,
		Extensions: schema.Extensions(obj.Node()),
	}
	if !gasOK || gasObj.Failed() || !cs.complete() || obj.Failed() {
		return
	}

	p.limitComponents(particleObj, HenrysLaw, keySolvent, len(solvent), 1)
	p.checkReaction(gasObj, keyName, gasRefs)
	p.checkReaction(particleObj, keyPhase, cs.refs)
	p.mech.Reactions.HenrysLaw = append(p.mech.Reactions.HenrysLaw, r)
}

// henrysLawGasSpecies accepts a bare name or a map with a name and an
// optional diffusion coefficient.
func (p *pass) henrysLawGasSpecies(n *yaml.Node) (types.PhaseSpecies, bool) {
	if name, ok := schema.AsString(n); ok {
		return types.PhaseSpecies{Name: name}, true
	}
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
