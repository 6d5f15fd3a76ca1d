package parser

import (
	"gopkg.in/yaml.v3"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/resolver"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// components parses the reaction component list stored under key. The
// returned references locate each component for later resolution. ok is
// false when any element failed validation or coercion; a malformed list
// itself is recorded on obj.
func (p *pass) components(obj *schema.Object, key string) ([]types.ReactionComponent, []resolver.Reference, bool) {
	ok := true
	items := obj.Sequence(key)

	comps := make([]types.ReactionComponent, 0, len(items))
	refs := make([]resolver.Reference, 0, len(items))
	for _, item := range items {
		c, valid := p.component(item)
		if !valid {
			ok = false
			continue
		}
		comps = append(comps, c)
		refs = append(refs, resolver.Reference{Name: c.Name, Location: schema.LocationOf(item)})
	}
	return comps, refs, ok
}

func (p *pass) component(item *yaml.Node) (types.ReactionComponent, bool) {
	if !p.validate(item, componentKeys) {
		return types.ReactionComponent{}, false
	}
	obj := p.object(item)
	c := types.ReactionComponent{
		Name:        obj.String(keyName),
		Coefficient: obj.Float(keyCoefficient, types.DefaultCoefficient),
		Extensions:  schema.Extensions(item),
	}
	return c, !obj.Failed()
}

// first returns the first component, or the zero value.
func first(comps []types.ReactionComponent) types.ReactionComponent {
	if len(comps) == 0 {
		return types.ReactionComponent{}
	}
	return comps[0]
}
