package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	mechErrors "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/errors"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/resolver"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/types"
)

// Physical constants used by the legacy unit conversions.
const (
	Avogadro = 6.02214076e23 // mol-1

	// MolesM3ToMoleculesCm3 converts a concentration in mol m-3 to
	// molecules cm-3.
	MolesM3ToMoleculesCm3 = 1.0e-6 * Avogadro
)

// LegacyGasPhase is the implicit phase holding every legacy species.
const LegacyGasPhase = "gas"

const (
	keyCampData         = "camp-data"
	keyCampFiles        = "camp-files"
	keyValue            = "value"
	keyMusicaName       = "MUSICA name"
	keyQty              = "qty"
	keyYield            = "yield"
	keyGasPhaseReactant = "gas-phase reactant"

	legacyChemSpec          = "CHEM_SPEC"
	legacyRelativeTolerance = "RELATIVE_TOLERANCE"
	legacyMechanism         = "MECHANISM"
	legacyThirdBody         = "THIRD_BODY"
)

var (
	legacyTopKeys = schema.Keys{
		Optional: []string{keyCampData, keyCampFiles},
	}

	legacySpeciesKeys = schema.Keys{
		Required: []string{keyName, keyType},
		Optional: []string{keyTracerType, keyAbsoluteTolerance, keyDiffusionCoefficient, keyMolecularWeight},
	}

	legacyToleranceKeys = schema.Keys{
		Required: []string{keyValue, keyType},
	}

	legacyMechanismKeys = schema.Keys{
		Required: []string{keyName, keyType, keyReactions},
	}

	legacyReactantKeys = schema.Keys{Optional: []string{keyQty}}
	legacyProductKeys  = schema.Keys{Optional: []string{keyYield}}
)

// legacyEntry is one camp-data object and the file it was read from.
type legacyEntry struct {
	node *yaml.Node
	file string
}

// parseLegacy parses a CAMP document. Species and tolerances are read
// first so that reactions always resolve against the complete species set.
func (p *pass) parseLegacy(root *yaml.Node) {
	errs := schema.Validate(root, legacyTopKeys)
	p.errs.Merge(errs)
	if errs.HasKind(mechErrors.InvalidType) || errs.HasKind(mechErrors.EmptyObject) {
		p.mech = nil
		return
	}

	hasData, hasFiles := schema.Has(root, keyCampData), schema.Has(root, keyCampFiles)
	switch {
	case hasData && hasFiles:
		p.errs.Addf(mechErrors.MutuallyExclusiveOption, schema.LocationOf(schema.Lookup(root, keyCampFiles)),
			"Keys '%s' and '%s' are mutually exclusive", keyCampData, keyCampFiles)
		p.mech = nil
		return
	case !hasData && !hasFiles:
		p.errs.AddErrorWithSuggestion(mechErrors.RequiredKeyNotFound,
			fmt.Sprintf("Required key '%s' is missing", keyCampData), schema.LocationOf(root),
			mechErrors.SuggestMissingKey(keyVersion, "1.0.0"))
		p.mech = nil
		return
	}

	obj := p.object(root)
	var entries []legacyEntry
	if hasData {
		for _, n := range obj.Sequence(keyCampData) {
			entries = append(entries, legacyEntry{node: n})
		}
	} else {
		entries = p.loadCampFiles(obj)
	}

	var mechanisms []legacyEntry
	for _, e := range entries {
		p.inFile(e.file, func() {
			if p.parseLegacyObject(e.node) {
				mechanisms = append(mechanisms, e)
			}
		})
	}
	p.errs.Add(resolver.CheckDuplicates(p.mech.Species,
		mechErrors.DuplicateSpeciesDetected, "species", schema.LocationOf(root)))

	gas := types.Phase{Name: LegacyGasPhase}
	for _, s := range p.mech.Species {
		if !gas.HasSpecies(s.Name) {
			gas.Species = append(gas.Species, types.PhaseSpecies{Name: s.Name})
		}
	}
	p.mech.Phases = []types.Phase{gas}

	for _, e := range mechanisms {
		p.inFile(e.file, func() { p.parseLegacyMechanism(e.node) })
	}
}

// parseLegacyObject parses species and tolerance objects and reports
// whether the object is a MECHANISM left for the second stage.
func (p *pass) parseLegacyObject(n *yaml.Node) bool {
	node := schema.Resolve(n)
	if !schema.IsMap(node) {
		p.validate(node, schema.Keys{})
		return false
	}
	typeNode := schema.Lookup(node, keyType)
	if typeNode == nil {
		p.errs.Addf(mechErrors.ObjectTypeNotFound, schema.LocationOf(node),
			"Object has no '%s' key", keyType)
		return false
	}
	tag, _ := schema.AsString(typeNode)
	switch tag {
	case legacyChemSpec:
		p.parseLegacySpecies(node)
	case legacyRelativeTolerance:
		if p.validate(node, legacyToleranceKeys) {
			obj := p.object(node)
			if v := obj.Float(keyValue, 0); !obj.Failed() {
				p.mech.RelativeTolerance = &v
			}
		}
	case legacyMechanism:
		return true
	default:
		p.errs.Addf(mechErrors.UnknownType, schema.LocationOf(typeNode),
			"Unsupported object type '%s'", tag)
	}
	return false
}

func (p *pass) parseLegacySpecies(node *yaml.Node) {
	if !p.validate(node, legacySpeciesKeys) {
		return
	}
	obj := p.object(node)
	s := types.Species{
		Name:                 obj.String(keyName),
		AbsoluteTolerance:    obj.FloatPtr(keyAbsoluteTolerance),
		DiffusionCoefficient: obj.FloatPtr(keyDiffusionCoefficient),
		MolecularWeight:      obj.FloatPtr(keyMolecularWeight),
		TracerType:           obj.StringPtr(keyTracerType),
		Extensions:           schema.Extensions(node),
	}
	if obj.Failed() {
		return
	}
	if s.TracerType != nil && *s.TracerType == legacyThirdBody {
		thirdBody := true
		s.IsThirdBody = &thirdBody
	}
	p.mech.Species = append(p.mech.Species, s)
}

func (p *pass) parseLegacyMechanism(node *yaml.Node) {
	if !p.validate(node, legacyMechanismKeys) {
		return
	}
	obj := p.object(node)
	if name := obj.String(keyName); p.mech.Name == "" {
		p.mech.Name = name
	}
	for _, r := range obj.Sequence(keyReactions) {
		p.parseLegacyReaction(r)
	}
}

// loadCampFiles reads the camp-data entries of every listed file. Paths
// are relative to the directory of the document being parsed.
func (p *pass) loadCampFiles(obj *schema.Object) []legacyEntry {
	list := obj.Get(keyCampFiles)
	if p.baseDir == "" {
		p.errs.Addf(mechErrors.InvalidFilePath, schema.LocationOf(list),
			"Key '%s' can only be resolved for documents read from a file", keyCampFiles)
		return nil
	}

	var entries []legacyEntry
	for _, item := range obj.Sequence(keyCampFiles) {
		name, ok := schema.AsString(item)
		if !ok || name == "" {
			p.errs.Addf(mechErrors.InvalidFilePath, schema.LocationOf(item),
				"Key '%s' must list file paths", keyCampFiles)
			continue
		}
		path := filepath.Join(p.baseDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			kind := mechErrors.InvalidFilePath
			if errors.Is(err, fs.ErrNotExist) {
				kind = mechErrors.FileNotFound
			}
			p.errs.Addf(kind, schema.LocationOf(item), "Cannot read CAMP file '%s': %v", name, err)
			continue
		}

		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			p.errs.Add(syntaxError(err, path))
			continue
		}
		root := schema.Resolve(&doc)
		Rewrite(root)
		p.logger.Debug("loaded CAMP file", "path", path)

		p.inFile(path, func() {
			if root == nil || !schema.Has(root, keyCampData) {
				p.errs.Addf(mechErrors.RequiredKeyNotFound, schema.LocationOf(root),
					"Required key '%s' is missing", keyCampData)
				return
			}
			for _, n := range p.object(root).Sequence(keyCampData) {
				entries = append(entries, legacyEntry{node: n, file: path})
			}
		})
	}
	return entries
}

// inFile runs fn with a fresh error list attributed to file afterwards.
func (p *pass) inFile(file string, fn func()) {
	if file == "" {
		fn()
		return
	}
	outer := p.errs
	p.errs = mechErrors.NewErrorList()
	fn()
	p.errs.AttributeTo(file)
	outer.Merge(p.errs)
	p.errs = outer
}
