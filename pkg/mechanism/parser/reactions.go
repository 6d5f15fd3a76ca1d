package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/resolver"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// Boltzmann is the Boltzmann constant [J K-1] used to convert an
// activation energy Ea into the Arrhenius C parameter.
const Boltzmann = 1.380649e-23

// parseReactions dispatches every reaction node on its type tag.
func (p *pass) parseReactions(items []*yaml.Node) {
	for _, item := range items {
		p.parseReaction(item)
	}
}

func (p *pass) parseReaction(item *yaml.Node) {
	node := schema.Resolve(item)
	if !schema.IsMap(node) {
		p.validate(node, schema.Keys{})
		return
	}

	typeNode := schema.Lookup(node, keyType)
	if typeNode == nil {
		p.errs.AddErrorWithSuggestion(mechErrors.RequiredKeyNotFound,
			"Required key 'type' is missing", schema.LocationOf(node),
			mechErrors.SuggestMissingKey(keyType, string(Arrhenius)))
		return
	}
	tag, ok := schema.AsString(typeNode)
	if !ok {
		p.errs.Addf(mechErrors.InvalidType, schema.LocationOf(typeNode),
			"Key 'type' must be a string")
		return
	}

	rt := ReactionType(tag)
	keys, known := reactionKeys[rt]
	if !known {
		p.errs.AddErrorWithSuggestion(mechErrors.ObjectTypeNotFound,
			fmt.Sprintf("Unknown reaction type '%s'", tag), schema.LocationOf(typeNode),
			mechErrors.SuggestType(tag, tagNames(ReactionTypes())))
		return
	}
	if !p.validate(node, keys) {
		return
	}

	obj := p.object(node)
	switch rt {
	case Arrhenius:
		p.parseArrhenius(obj)
	case CondensedPhaseArrhenius:
		p.parseCondensedPhaseArrhenius(obj)
	case Troe:
		p.parseTroe(obj)
	case TernaryChemicalActivation:
		p.parseTernaryChemicalActivation(obj)
	case Branched:
		p.parseBranched(obj)
	case Tunneling:
		p.parseTunneling(obj)
	case Photolysis:
		p.parsePhotolysis(obj)
	case CondensedPhasePhotolysis:
		p.parseCondensedPhasePhotolysis(obj)
	case Emission:
		p.parseEmission(obj)
	case FirstOrderLoss:
		p.parseFirstOrderLoss(obj)
	case UserDefined:
		p.parseUserDefined(obj)
	case TaylorSeries:
		p.parseTaylorSeries(obj)
	case Surface:
		p.parseSurface(obj)
	case SimpolPhaseTransfer:
		p.parseSimpolPhaseTransfer(obj)
	case AqueousEquilibrium:
		p.parseAqueousEquilibrium(obj)
	case WetDeposition:
		p.parseWetDeposition(obj)
	case HenrysLaw:
		p.parseHenrysLaw(obj)
	}
}

// componentSet accumulates the component lists of one reaction.
type componentSet struct {
	p    *pass
	obj  *schema.Object
	refs []resolver.Reference
	ok   bool
}

func (p *pass) componentSet(obj *schema.Object) *componentSet {
	return &componentSet{p: p, obj: obj, ok: true}
}

// list parses the components under key and records their references.
func (cs *componentSet) list(key string) []types.ReactionComponent {
	comps, refs, ok := cs.p.components(cs.obj, key)
	cs.refs = append(cs.refs, refs...)
	cs.ok = cs.ok && ok
	return comps
}

// complete reports whether the reaction extracted cleanly and may be kept.
func (cs *componentSet) complete() bool {
	return cs.ok && !cs.obj.Failed()
}

// arrheniusParams holds the rate parameters shared by the Arrhenius family.
type arrheniusParams struct {
	A, B, C, D, E float64
}

// arrhenius reads A through E, deriving C from Ea when given. Ea and C
// together are mutually exclusive.
func (p *pass) arrhenius(obj *schema.Object) (arrheniusParams, bool) {
	ok := true
	if obj.Has(keyEa) && obj.Has(keyC) {
		p.errs.Addf(mechErrors.MutuallyExclusiveOption, schema.LocationOf(obj.Get(keyEa)),
			"Keys 'Ea' and 'C' are mutually exclusive")
		ok = false
	}
	params := arrheniusParams{
		A: obj.Float(keyA, 1),
		B: obj.Float(keyB, 0),
		C: obj.Float(keyC, 0),
		D: obj.Float(keyD, 300),
		E: obj.Float(keyE, 0),
	}
	if obj.Has(keyEa) {
		params.C = -obj.Float(keyEa, 0) / Boltzmann
	}
	return params, ok
}

// troeParams holds the falloff parameters shared by TROE and
// TERNARY_CHEMICAL_ACTIVATION.
type troeParams struct {
	K0A, K0B, K0C, KinfA, KinfB, KinfC, Fc, N float64
}

func (p *pass) troe(obj *schema.Object) troeParams {
	return troeParams{
		K0A:   obj.Float(keyK0A, 1),
		K0B:   obj.Float(keyK0B, 0),
		K0C:   obj.Float(keyK0C, 0),
		KinfA: obj.Float(keyKinfA, 1),
		KinfB: obj.Float(keyKinfB, 0),
		KinfC: obj.Float(keyKinfC, 0),
		Fc:    obj.Float(keyFc, 0.6),
		N:     obj.Float(keyN, 1),
	}
}
