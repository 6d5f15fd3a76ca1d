package parser

import (
	"fmt"
	"math"
	"sort"

	"gopkg.in/yaml.v3"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/resolver"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

type legacyReactionType string

const (
	legacyArrhenius      legacyReactionType = "ARRHENIUS"
	legacyTroe           legacyReactionType = "TROE"
	legacyTernary        legacyReactionType = "TERNARY_CHEMICAL_ACTIVATION"
	legacyBranched       legacyReactionType = "WENNBERG_NO_RO2"
	legacyTunneling      legacyReactionType = "WENNBERG_TUNNELING"
	legacyPhotolysis     legacyReactionType = "PHOTOLYSIS"
	legacyEmission       legacyReactionType = "EMISSION"
	legacyFirstOrderLoss legacyReactionType = "FIRST_ORDER_LOSS"
	legacyUserDefined    legacyReactionType = "USER_DEFINED"
	legacySurface        legacyReactionType = "SURFACE"
)

// Name prefixes of legacy rate constants supplied by the host model.
const (
	photolysisPrefix     = "PHOTO."
	emissionPrefix       = "EMIS."
	firstOrderLossPrefix = "LOSS."
	userDefinedPrefix    = "USER."
	surfacePrefix        = "SURF."
)

var legacyReactionKeys = map[legacyReactionType]schema.Keys{
	legacyArrhenius: {
		Required: []string{keyType, keyReactants, keyProducts},
		Optional: []string{keyA, keyB, keyC, keyD, keyE, keyEa, keyMusicaName},
	},
	legacyTroe: {
		Required: []string{keyType, keyReactants, keyProducts},
		Optional: []string{keyK0A, keyK0B, keyK0C, keyKinfA, keyKinfB, keyKinfC, keyFc, keyN, keyMusicaName},
	},
	legacyTernary: {
		Required: []string{keyType, keyReactants, keyProducts},
		Optional: []string{keyK0A, keyK0B, keyK0C, keyKinfA, keyKinfB, keyKinfC, keyFc, keyN, keyMusicaName},
	},
	legacyBranched: {
		Required: []string{keyType, keyReactants, keyAlkoxyProducts, keyNitrateProducts, keyX, keyY, keyA0, keyLowerN},
		Optional: []string{keyMusicaName},
	},
	legacyTunneling: {
		Required: []string{keyType, keyReactants, keyProducts},
		Optional: []string{keyA, keyB, keyC, keyMusicaName},
	},
	legacyPhotolysis: {
		Required: []string{keyType, keyReactants, keyProducts, keyMusicaName},
		Optional: []string{keyScalingFactor},
	},
	legacyEmission: {
		Required: []string{keyType, keySpecies, keyMusicaName},
		Optional: []string{keyScalingFactor, keyProducts},
	},
	legacyFirstOrderLoss: {
		Required: []string{keyType, keySpecies, keyMusicaName},
		Optional: []string{keyScalingFactor},
	},
	legacyUserDefined: {
		Required: []string{keyType, keyReactants, keyProducts, keyMusicaName},
		Optional: []string{keyScalingFactor},
	},
	legacySurface: {
		Required: []string{keyType, keyGasPhaseProducts, keyGasPhaseReactant, keyMusicaName},
		Optional: []string{keyReactionProbability},
	},
}

// parseLegacyReaction dispatches one reaction of a MECHANISM object.
func (p *pass) parseLegacyReaction(n *yaml.Node) {
	node := schema.Resolve(n)
	if !schema.IsMap(node) {
		p.validate(node, schema.Keys{})
		return
	}
	typeNode := schema.Lookup(node, keyType)
	if typeNode == nil {
		p.errs.Addf(mechErrors.ObjectTypeNotFound, schema.LocationOf(node),
			"Reaction has no '%s' key", keyType)
		return
	}
	tag, _ := schema.AsString(typeNode)
	rt := legacyReactionType(tag)
	keys, known := legacyReactionKeys[rt]
	if !known {
		p.errs.AddErrorWithSuggestion(mechErrors.UnknownType,
			fmt.Sprintf("Unsupported reaction type '%s'", tag), schema.LocationOf(typeNode),
			mechErrors.SuggestType(tag, legacyTypeNames()))
		return
	}
	if !p.validate(node, keys) {
		return
	}

	obj := p.object(node)
	switch rt {
	case legacyArrhenius:
		p.parseLegacyArrhenius(obj)
	case legacyTroe, legacyTernary:
		p.parseLegacyTroe(obj, rt)
	case legacyBranched:
		p.parseLegacyBranched(obj)
	case legacyTunneling:
		p.parseLegacyTunneling(obj)
	case legacyPhotolysis:
		p.parseLegacyUserDefined(obj, photolysisPrefix, keyReactants, keyProducts)
	case legacyUserDefined:
		p.parseLegacyUserDefined(obj, userDefinedPrefix, keyReactants, keyProducts)
	case legacyEmission:
		p.parseLegacySingleSpecies(obj, emissionPrefix, false)
	case legacyFirstOrderLoss:
		p.parseLegacySingleSpecies(obj, firstOrderLossPrefix, true)
	case legacySurface:
		p.parseLegacySurface(obj)
	}
}

// legacyComponents parses a `species: {qty|yield: n}` map. A null value
// takes the default coefficient.
func (p *pass) legacyComponents(obj *schema.Object, key string, keys schema.Keys, countKey string) ([]types.ReactionComponent, []resolver.Reference, bool) {
	n := obj.Get(key)
	if schema.IsNull(n) {
		return nil, nil, true
	}
	if !schema.IsMap(n) {
		p.errs.Addf(mechErrors.InvalidType, schema.LocationOf(n),
			"Key '%s' must be a map of species", key)
		return nil, nil, false
	}

	ok := true
	var comps []types.ReactionComponent
	var refs []resolver.Reference
	for _, e := range schema.Entries(n) {
		c := types.ReactionComponent{Name: e.Key, Coefficient: types.DefaultCoefficient}
		if !schema.IsNull(e.Value) {
			if !p.validate(e.Value, keys) {
				ok = false
				continue
			}
			vo := p.object(e.Value)
			c.Coefficient = vo.Float(countKey, types.DefaultCoefficient)
			c.Extensions = schema.Extensions(e.Value)
			if vo.Failed() {
				ok = false
				continue
			}
		}
		comps = append(comps, c)
		refs = append(refs, resolver.Reference{Name: e.Key, Location: schema.LocationOf(e.KeyNode)})
	}
	return comps, refs, ok
}

func (p *pass) legacyReactants(obj *schema.Object, key string) ([]types.ReactionComponent, []resolver.Reference, bool) {
	return p.legacyComponents(obj, key, legacyReactantKeys, keyQty)
}

func (p *pass) legacyProducts(obj *schema.Object, key string) ([]types.ReactionComponent, []resolver.Reference, bool) {
	return p.legacyComponents(obj, key, legacyProductKeys, keyYield)
}

// totalMoles sums reactant coefficients; it is the reaction order used by
// the unit conversions.
func totalMoles(reactants []types.ReactionComponent) float64 {
	total := 0.0
	for _, r := range reactants {
		total += r.Coefficient
	}
	return total
}

// convert scales a rate parameter from mol m-3 to molecules cm-3 units
// for a reaction of the given order.
func convert(v, order float64) float64 {
	return v * math.Pow(MolesM3ToMoleculesCm3, order)
}

func (p *pass) parseLegacyArrhenius(obj *schema.Object) {
	reactants, rRefs, okR := p.legacyReactants(obj, keyReactants)
	products, pRefs, okP := p.legacyProducts(obj, keyProducts)
	params, ok := p.arrhenius(obj)
	if !okR || !okP || !ok || obj.Failed() {
		return
	}
	r := types.Arrhenius{
		Name:       obj.String(keyMusicaName),
		GasPhase:   LegacyGasPhase,
		Reactants:  reactants,
		Products:   products,
		A:          convert(params.A, totalMoles(reactants)-1),
		B:          params.B,
		C:          params.C,
		D:          params.D,
		E:          params.E,
		Extensions: schema.Extensions(obj.Node()),
	}
	p.requireSpecies(append(rRefs, pRefs...))
	p.mech.Reactions.Arrhenius = append(p.mech.Reactions.Arrhenius, r)
}

// parseLegacyTroe handles TROE and TERNARY_CHEMICAL_ACTIVATION, which share
// parameters but differ in the order of their unit conversions.
func (p *pass) parseLegacyTroe(obj *schema.Object, rt legacyReactionType) {
	reactants, rRefs, okR := p.legacyReactants(obj, keyReactants)
	products, pRefs, okP := p.legacyProducts(obj, keyProducts)
	params := p.troe(obj)
	if !okR || !okP || obj.Failed() {
		return
	}

	order := totalMoles(reactants)
	if rt == legacyTernary {
		order--
	}
	r := types.Troe{
		Name:       obj.String(keyMusicaName),
		GasPhase:   LegacyGasPhase,
		Reactants:  reactants,
		Products:   products,
		K0A:        convert(params.K0A, order),
		K0B:        params.K0B,
		K0C:        params.K0C,
		KinfA:      convert(params.KinfA, order-1),
		KinfB:      params.KinfB,
		KinfC:      params.KinfC,
		Fc:         params.Fc,
		N:          params.N,
		Extensions: schema.Extensions(obj.Node()),
	}
	p.requireSpecies(append(rRefs, pRefs...))
	if rt == legacyTernary {
		p.mech.Reactions.TernaryChemicalActivation = append(p.mech.Reactions.TernaryChemicalActivation, types.TernaryChemicalActivation(r))
		return
	}
	p.mech.Reactions.Troe = append(p.mech.Reactions.Troe, r)
}

func (p *pass) parseLegacyBranched(obj *schema.Object) {
	reactants, rRefs, okR := p.legacyReactants(obj, keyReactants)
	alkoxy, aRefs, okA := p.legacyProducts(obj, keyAlkoxyProducts)
	nitrate, nRefs, okN := p.legacyProducts(obj, keyNitrateProducts)
	r := types.Branched{
		Name:            obj.String(keyMusicaName),
		GasPhase:        LegacyGasPhase,
		Reactants:       reactants,
		AlkoxyProducts:  alkoxy,
		NitrateProducts: nitrate,
		X:               convert(obj.Float(keyX, 0), totalMoles(reactants)-1),
		Y:               obj.Float(keyY, 0),
		A0:              obj.Float(keyA0, 0),
		N:               obj.Int(keyLowerN, 0),
		Extensions:      schema.Extensions(obj.Node()),
	}
	if !okR || !okA || !okN || obj.Failed() {
		return
	}
	refs := append(append(rRefs, aRefs...), nRefs...)
	p.requireSpecies(refs)
	p.mech.Reactions.Branched = append(p.mech.Reactions.Branched, r)
}

func (p *pass) parseLegacyTunneling(obj *schema.Object) {
	reactants, rRefs, okR := p.legacyReactants(obj, keyReactants)
	products, pRefs, okP := p.legacyProducts(obj, keyProducts)
	r := types.Tunneling{
		Name:       obj.String(keyMusicaName),
		GasPhase:   LegacyGasPhase,
		Reactants:  reactants,
		Products:   products,
		A:          convert(obj.Float(keyA, 1), totalMoles(reactants)-1),
		B:          obj.Float(keyB, 0),
		C:          obj.Float(keyC, 0),
		Extensions: schema.Extensions(obj.Node()),
	}
	if !okR || !okP || obj.Failed() {
		return
	}
	p.requireSpecies(append(rRefs, pRefs...))
	p.mech.Reactions.Tunneling = append(p.mech.Reactions.Tunneling, r)
}

// parseLegacyUserDefined maps photolysis and user-defined reactions onto
// USER_DEFINED rates named after their MUSICA name.
func (p *pass) parseLegacyUserDefined(obj *schema.Object, prefix, reactantsKey, productsKey string) {
	reactants, rRefs, okR := p.legacyReactants(obj, reactantsKey)
	products, pRefs, okP := p.legacyProducts(obj, productsKey)
	r := types.UserDefined{
		Name:          prefix + obj.String(keyMusicaName),
		GasPhase:      LegacyGasPhase,
		Reactants:     reactants,
		Products:      products,
		ScalingFactor: obj.Float(keyScalingFactor, 1),
		Extensions:    schema.Extensions(obj.Node()),
	}
	if !okR || !okP || obj.Failed() {
		return
	}
	p.requireSpecies(append(rRefs, pRefs...))
	p.mech.Reactions.UserDefined = append(p.mech.Reactions.UserDefined, r)
}

// parseLegacySingleSpecies maps EMISSION and FIRST_ORDER_LOSS, which name a
// single species, onto USER_DEFINED rates.
func (p *pass) parseLegacySingleSpecies(obj *schema.Object, prefix string, loss bool) {
	speciesNode := obj.Get(keySpecies)
	species := obj.String(keySpecies)
	r := types.UserDefined{
		Name:          prefix + obj.String(keyMusicaName),
		GasPhase:      LegacyGasPhase,
		ScalingFactor: obj.Float(keyScalingFactor, 1),
		Extensions:    schema.Extensions(obj.Node()),
	}
	if obj.Failed() {
		return
	}
	c := types.ReactionComponent{Name: species, Coefficient: types.DefaultCoefficient}
	if loss {
		r.Reactants = []types.ReactionComponent{c}
	} else {
		r.Products = []types.ReactionComponent{c}
	}
	p.requireSpecies([]resolver.Reference{{Name: species, Location: schema.LocationOf(speciesNode)}})
	p.mech.Reactions.UserDefined = append(p.mech.Reactions.UserDefined, r)
}

func (p *pass) parseLegacySurface(obj *schema.Object) {
	reactantNode := obj.Get(keyGasPhaseReactant)
	reactant := obj.String(keyGasPhaseReactant)
	products, pRefs, okP := p.legacyProducts(obj, keyGasPhaseProducts)
	r := types.Surface{
		Name:                surfacePrefix + obj.String(keyMusicaName),
		GasPhase:            LegacyGasPhase,
		GasPhaseSpecies:     types.ReactionComponent{Name: reactant, Coefficient: types.DefaultCoefficient},
		GasPhaseProducts:    products,
		ReactionProbability: obj.Float(keyReactionProbability, 1),
		Extensions:          schema.Extensions(obj.Node()),
	}
	if !okP || obj.Failed() {
		return
	}
	refs := append([]resolver.Reference{{Name: reactant, Location: schema.LocationOf(reactantNode)}}, pRefs...)
	p.requireSpecies(refs)
	p.mech.Reactions.Surface = append(p.mech.Reactions.Surface, r)
}

func legacyTypeNames() []string {
	names := make([]string, 0, len(legacyReactionKeys))
	for t := range legacyReactionKeys {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}
