package parser

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/resolver"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// pass carries the state of a single parse: the generation being parsed,
// the mechanism under construction and the shared error list. Entities are
// parsed bottom-up, so reactions and models always see the complete species
// and phase collections.
type pass struct {
	gen    Generation
	mech   *types.Mechanism
	errs   *mechErrors.ErrorList
	logger *slog.Logger

	// baseDir is the directory legacy camp-files are resolved against.
	baseDir string
}

func newPass(gen Generation, logger *slog.Logger) *pass {
	return &pass{
		gen:    gen,
		mech:   &types.Mechanism{},
		errs:   mechErrors.NewErrorList(),
		logger: logger,
	}
}

// validate checks node against keys and merges any errors. It reports
// whether the node may be parsed further.
func (p *pass) validate(node *yaml.Node, keys schema.Keys) bool {
	errs := schema.Validate(node, keys)
	if errs.HasErrors() {
		p.errs.Merge(errs)
		return false
	}
	return true
}

// object wraps a validated node for typed extraction.
func (p *pass) object(node *yaml.Node) *schema.Object {
	return schema.NewObject(node, p.errs)
}

// resolvePhase looks up the phase named under key. Unknown phases are
// reported and yield nil.
func (p *pass) resolvePhase(obj *schema.Object, key string) *types.Phase {
	n := obj.Get(key)
	if n == nil {
		return nil
	}
	name, ok := schema.AsString(n)
	if !ok {
		return nil
	}
	phase, err := resolver.ResolvePhaseReference(p.mech.Phases, name, schema.LocationOf(n))
	if err != nil {
		p.errs.Add(err)
		return nil
	}
	return phase
}

// requireSpecies reports every reference to an undeclared species and
// returns the references that resolved.
func (p *pass) requireSpecies(refs []resolver.Reference) []resolver.Reference {
	unknown := resolver.UnknownReferences(p.mech.Species, refs)
	for _, ref := range unknown {
		p.errs.AddErrorWithSuggestion(mechErrors.ReactionRequiresUnknownSpecies,
			fmt.Sprintf("Reaction requires unknown species '%s'", ref.Name), ref.Location,
			mechErrors.SuggestKey(ref.Name, resolver.Names(p.mech.Species)))
	}
	if len(unknown) == 0 {
		return refs
	}
	known := make([]resolver.Reference, 0, len(refs)-len(unknown))
	for _, ref := range refs {
		if resolver.ExistsByName(p.mech.Species, ref.Name) {
			known = append(known, ref)
		}
	}
	return known
}

// requireInPhase reports references to species the phase does not carry.
// A nil phase has already been reported and is skipped.
func (p *pass) requireInPhase(phase *types.Phase, refs []resolver.Reference) {
	if phase == nil {
		return
	}
	for _, ref := range refs {
		if !phase.HasSpecies(ref.Name) {
			p.errs.Addf(mechErrors.RequestedSpeciesNotRegisteredInPhase, ref.Location,
				"Species '%s' is not registered in phase '%s'", ref.Name, phase.Name)
		}
	}
}

// checkReaction runs the reference checks shared by every single-phase
// reaction: species must exist and, once the phase resolves, belong to it.
func (p *pass) checkReaction(obj *schema.Object, phaseKey string, refs ...[]resolver.Reference) {
	var all []resolver.Reference
	for _, r := range refs {
		all = append(all, r...)
	}
	known := p.requireSpecies(all)
	phase := p.resolvePhase(obj, phaseKey)
	p.requireInPhase(phase, known)
}

// limitComponents reports a component list longer than max.
func (p *pass) limitComponents(obj *schema.Object, rt ReactionType, key string, n, max int) {
	if n <= max {
		return
	}
	p.errs.Addf(mechErrors.TooManyReactionComponents, schema.LocationOf(obj.Get(key)),
		"%s reaction allows at most %d entry in '%s', found %d", rt, max, key, n)
}
