package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// parseModels parses the v2 model declarations. Each model type may be
// declared once; later declarations are reported and ignored.
func (p *pass) parseModels(items []*yaml.Node) {
	for _, item := range items {
		node := schema.Resolve(item)
		if !schema.IsMap(node) {
			p.validate(node, schema.Keys{})
			continue
		}

		typeNode := schema.Lookup(node, keyType)
		if typeNode == nil {
			p.errs.AddErrorWithSuggestion(mechErrors.RequiredKeyNotFound,
				"Required key 'type' is missing", schema.LocationOf(node),
				mechErrors.SuggestMissingKey(keyType, string(GasModel)))
			continue
		}
		tag, ok := schema.AsString(typeNode)
		if !ok {
			p.errs.Addf(mechErrors.InvalidType, schema.LocationOf(typeNode),
				"Key 'type' must be a string")
			continue
		}
		mt := ModelType(tag)
		keys, known := modelKeys[mt]
		if !known {
			p.errs.AddErrorWithSuggestion(mechErrors.ObjectTypeNotFound,
				fmt.Sprintf("Unknown model type '%s'", tag), schema.LocationOf(typeNode),
				mechErrors.SuggestType(tag, tagNames([]ModelType{GasModel, ModalModel})))
			continue
		}
		if !p.validate(node, keys) {
			continue
		}

		obj := p.object(node)
		switch mt {
		case GasModel:
			p.parseGasModel(obj)
		case ModalModel:
			p.parseModalModel(obj)
		}
	}
}

func (p *pass) repeatedModel(obj *schema.Object, mt ModelType) {
	p.errs.Addf(mechErrors.MutuallyExclusiveOption, schema.LocationOf(obj.Node()),
		"Model type '%s' is declared more than once", mt)
}

func (p *pass) parseGasModel(obj *schema.Object) {
	m := &types.GasModel{
		Name:       obj.String(keyName),
		Type:       string(GasModel),
		Phase:      obj.String(keyPhase),
		Extensions: schema.Extensions(obj.Node()),
	}
	if obj.Failed() {
		return
	}
	if p.mech.Models.Gas != nil {
		p.repeatedModel(obj, GasModel)
		return
	}
	p.resolvePhase(obj, keyPhase)
	p.mech.Models.Gas = m
}

func (p *pass) parseModalModel(obj *schema.Object) {
	m := &types.ModalModel{
		Name:       obj.String(keyName),
		Type:       string(ModalModel),
		Extensions: schema.Extensions(obj.Node()),
	}
	ok := true
	for _, n := range obj.Sequence(keyModes) {
		mode, valid := p.parseMode(n)
		if !valid {
			ok = false
			continue
		}
		m.Modes = append(m.Modes, mode)
	}
	if obj.Failed() || !ok {
		return
	}
	if p.mech.Models.Modal != nil {
		p.repeatedModel(obj, ModalModel)
		return
	}
	p.mech.Models.Modal = m
}

// parseMode parses one log-normal mode and resolves its phase.
func (p *pass) parseMode(n *yaml.Node) (types.Mode, bool) {
	if !p.validate(n, modeKeys) {
		return types.Mode{}, false
	}
	obj := p.object(n)
	mode := types.Mode{
		Name:                       obj.String(keyName),
		Phase:                      obj.String(keyPhase),
		GeometricMeanDiameter:      obj.Float(keyGeometricMeanDiameter, 0),
		GeometricStandardDeviation: obj.Float(keyGeometricStandardDeviation, 0),
		Extensions:                 schema.Extensions(n),
	}
	if obj.Failed() {
		return types.Mode{}, false
	}
	p.resolvePhase(obj, keyPhase)
	return mode, true
}
