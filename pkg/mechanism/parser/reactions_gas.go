package parser

import (
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

func (p *pass) parseArrhenius(obj *schema.Object) {
	cs := p.componentSet(obj)
	params, ok := p.arrhenius(obj)
	r := types.Arrhenius{
		Name:       obj.String(keyName),
		GasPhase:   obj.String(keyGasPhase),
		Reactants:  cs.list(keyReactants),
		Products:   cs.list(keyProducts),
		A:          params.A,
		B:          params.B,
		C:          params.C,
		D:          params.D,
		E:          params.E,
		Extensions: schema.Extensions(obj.Node()),
	}
	if !cs.complete() || !ok {
		return
	}
	p.checkReaction(obj, keyGasPhase, cs.refs)
	p.mech.Reactions.Arrhenius = append(p.mech.Reactions.Arrhenius, r)
}

func (p *pass) parseTroe(obj *schema.Object) {
	cs := p.componentSet(obj)
	params := p.troe(obj)
	r := types.Troe{
		Name:       obj.String(keyName),
		GasPhase:   obj.String(keyGasPhase),
		Reactants:  cs.list(keyReactants),
		Products:   cs.list(keyProducts),
		K0A:        params.K0A,
		K0B:        params.K0B,
		K0C:        params.K0C,
		KinfA:      params.KinfA,
		KinfB:      params.KinfB,
		KinfC:      params.KinfC,
		Fc:         params.Fc,
		N:          params.N,
		Extensions: schema.Extensions(obj.Node()),
	}
	if !cs.complete() {
		return
	}
	p.checkReaction(obj, keyGasPhase, cs.refs)
	p.mech.Reactions.Troe = append(p.mech.Reactions.Troe, r)
}

func (p *pass) parseTernaryChemicalActivation(obj *schema.Object) {
	cs := p.componentSet(obj)
	params := p.troe(obj)
	r := types.TernaryChemicalActivation{
		Name:       obj.String(keyName),
		GasPhase:   obj.String(keyGasPhase),
		Reactants:  cs.list(keyReactants),
		Products:   cs.list(keyProducts),
		K0A:        params.K0A,
		K0B:        params.K0B,
		K0C:        params.K0C,
		KinfA:      params.KinfA,
		KinfB:      params.KinfB,
		KinfC:      params.KinfC,
		Fc:         params.Fc,
		N:          params.N,
		Extensions: schema.Extensions(obj.Node()),
	}
	if !cs.complete() {
		return
	}
	p.checkReaction(obj, keyGasPhase, cs.refs)
	p.mech.Reactions.TernaryChemicalActivation = append(p.mech.Reactions.TernaryChemicalActivation, r)
}

func (p *pass) parseBranched(obj *schema.Object) {
	cs := p.componentSet(obj)
	r := types.Branched{
		Name:            obj.String(keyName),
		GasPhase:        obj.String(keyGasPhase),
		Reactants:       cs.list(keyReactants),
		NitrateProducts: cs.list(keyNitrateProducts),
		AlkoxyProducts:  cs.list(keyAlkoxyProducts),
		X:               obj.Float(keyX, 0),
		Y:               obj.Float(keyY, 0),
		A0:              obj.Float(keyA0, 0),
		N:               obj.Int(keyLowerN, 0),
		Extensions:      schema.Extensions(obj.Node()),
	}
	if !cs.complete() {
		return
	}
	p.checkReaction(obj, keyGasPhase, cs.refs)
	p.mech.Reactions.Branched = append(p.mech.Reactions.Branched, r)
}

func (p *pass) parseTunneling(obj *schema.Object) {
	cs := p.componentSet(obj)
	r := types.Tunneling{
		Name:       obj.String(keyName),
		GasPhase:   obj.String(keyGasPhase),
		Reactants:  cs.list(keyReactants),
		Products:   cs.list(keyProducts),
		A:          obj.Float(keyA, 1),
		B:          obj.Float(keyB, 0),
		C:          obj.Float(keyC, 0),
		Extensions: schema.Extensions(obj.Node()),
	}
	if !cs.complete() {
		return
	}
	p.checkReaction(obj, keyGasPhase, cs.refs)
	p.mech.Reactions.Tunneling = append(p.mech.Reactions.Tunneling, r)
}

func (p *pass) parsePhotolysis(obj *schema.Object) {
	cs := p.componentSet(obj)
	r := types.Photolysis{
		Name:          obj.String(keyName),
		GasPhase:      obj.String(keyGasPhase),
		Reactants:     cs.list(keyReactants),
		Products:      cs.list(keyProducts),
		ScalingFactor: obj.Float(keyScalingFactor, 1),
		Extensions:    schema.Extensions(obj.Node()),
	}
	if !cs.complete() {
		return
	}
	p.limitComponents(obj, Photolysis, keyReactants, len(r.Reactants), 1)
	p.checkReaction(obj, keyGasPhase, cs.refs)
	p.mech.Reactions.Photolysis = append(p.mech.Reactions.Photolysis, r)
}

func (p *pass) parseEmission(obj *schema.Object) {
	cs := p.componentSet(obj)
	r := types.Emission{
		Name:          obj.String(keyName),
		GasPhase:      obj.String(keyGasPhase),
		Products:      cs.list(keyProducts),
		ScalingFactor: obj.Float(keyScalingFactor, 1),
		Extensions:    schema.Extensions(obj.Node()),
	}
	if !cs.complete() {
		return
	}
	p.checkReaction(obj, keyGasPhase, cs.refs)
	p.mech.Reactions.Emission = append(p.mech.Reactions.Emission, r)
}

func (p *pass) parseFirstOrderLoss(obj *schema.Object) {
	cs := p.componentSet(obj)
	r := types.FirstOrderLoss{
		Name:          obj.String(keyName),
		GasPhase:      obj.String(keyGasPhase),
		Reactants:     cs.list(keyReactants),
		ScalingFactor: obj.Float(keyScalingFactor, 1),
		Extensions:    schema.Extensions(obj.Node()),
	}
	if !cs.complete() {
		return
	}
	p.limitComponents(obj, FirstOrderLoss, keyReactants, len(r.Reactants), 1)
	p.checkReaction(obj, keyGasPhase, cs.refs)
	p.mech.Reactions.FirstOrderLoss = append(p.mech.Reactions.FirstOrderLoss, r)
}

func (p *pass) parseUserDefined(obj *schema.Object) {
	cs := p.componentSet(obj)
	r := types.UserDefined{
		Name:          obj.String(keyName),
		GasPhase:      obj.String(keyGasPhase),
		Reactants:     cs.list(keyReactants),
		Products:      cs.list(keyProducts),
		ScalingFactor: obj.Float(keyScalingFactor, 1),
		Extensions:    schema.Extensions(obj.Node()),
	}
	if !cs.complete() {
		return
	}
	p.checkReaction(obj, keyGasPhase, cs.refs)
	p.mech.Reactions.UserDefined = append(p.mech.Reactions.UserDefined, r)
}

func (p *pass) parseTaylorSeries(obj *schema.Object) {
	cs := p.componentSet(obj)
	params, ok := p.arrhenius(obj)
	r := types.TaylorSeries{
		Name:               obj.String(keyName),
		GasPhase:           obj.String(keyGasPhase),
		Reactants:          cs.list(keyReactants),
		Products:           cs.list(keyProducts),
		A:                  params.A,
		B:                  params.B,
		C:                  params.C,
		D:                  params.D,
		E:                  params.E,
		TaylorCoefficients: obj.Floats(keyTaylorCoefficients),
		Extensions:         schema.Extensions(obj.Node()),
	}
	if !cs.complete() || !ok {
		return
	}
	if r.TaylorCoefficients == nil {
		r.TaylorCoefficients = []float64{1}
	}
	p.checkReaction(obj, keyGasPhase, cs.refs)
	p.mech.Reactions.TaylorSeries = append(p.mech.Reactions.TaylorSeries, r)
}
