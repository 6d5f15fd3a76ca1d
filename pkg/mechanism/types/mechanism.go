package types

// ExtensionPrefix marks keys that are never validated and are instead
// preserved in the owning entity's Extensions map.
const ExtensionPrefix = "__"

// Extensions maps "__"-prefixed keys to their textual values.
type Extensions map[string]string

// Version is the schema generation a document was parsed under.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`
}

// Mechanism is the complete parsed description of one configuration document.
type Mechanism struct {
	Name    string  `json:"name,omitempty" yaml:"name,omitempty"`
	Version Version `json:"version" yaml:"version"`

	// RelativeTolerance is only set by legacy documents.
	RelativeTolerance *float64 `json:"relative_tolerance,omitempty" yaml:"relative_tolerance,omitempty"`

	Species   []Species `json:"species" yaml:"species"`
	Phases    []Phase   `json:"phases" yaml:"phases"`
	Models    Models    `json:"models" yaml:"models"`
	Reactions Reactions `json:"reactions" yaml:"reactions"`
}

// FindSpecies returns the first species declared with name, or nil.
func (m *Mechanism) FindSpecies(name string) *Species {
	for i := range m.Species {
		if m.Species[i].Name == name {
			return &m.Species[i]
		}
	}
	return nil
}

// FindPhase returns the first phase declared with name, or nil.
func (m *Mechanism) FindPhase(name string) *Phase {
	for i := range m.Phases {
		if m.Phases[i].Name == name {
			return &m.Phases[i]
		}
	}
	return nil
}

// Species is a named chemical entity. Identity is the name.
type Species struct {
	Name string `json:"name" yaml:"name"`

	AbsoluteTolerance          *float64 `json:"absolute_tolerance,omitempty" yaml:"absolute_tolerance,omitempty"`
	DiffusionCoefficient       *float64 `json:"diffusion_coefficient,omitempty" yaml:"diffusion_coefficient,omitempty"`
	MolecularWeight            *float64 `json:"molecular_weight,omitempty" yaml:"molecular_weight,omitempty"`
	HenrysLawConstant298       *float64 `json:"henrys_law_constant_298,omitempty" yaml:"henrys_law_constant_298,omitempty"`
	HenrysLawExponentialFactor *float64 `json:"henrys_law_exponential_factor,omitempty" yaml:"henrys_law_exponential_factor,omitempty"`
	NStar                      *float64 `json:"n_star,omitempty" yaml:"n_star,omitempty"`
	Density                    *float64 `json:"density,omitempty" yaml:"density,omitempty"`
	TracerType                 *string  `json:"tracer_type,omitempty" yaml:"tracer_type,omitempty"`
	ConstantConcentration      *float64 `json:"constant_concentration,omitempty" yaml:"constant_concentration,omitempty"`
	ConstantMixingRatio        *float64 `json:"constant_mixing_ratio,omitempty" yaml:"constant_mixing_ratio,omitempty"`
	IsThirdBody                *bool    `json:"is_third_body,omitempty" yaml:"is_third_body,omitempty"`

	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// GetName returns the species name.
func (s Species) GetName() string { return s.Name }

// ThirdBody reports whether the species is flagged as a third body.
func (s Species) ThirdBody() bool {
	return s.IsThirdBody != nil && *s.IsThirdBody
}

// PhaseSpecies is a species membership entry of a phase.
type PhaseSpecies struct {
	Name                 string     `json:"name" yaml:"name"`
	DiffusionCoefficient *float64   `json:"diffusion_coefficient,omitempty" yaml:"diffusion_coefficient,omitempty"`
	Extensions           Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// GetName returns the referenced species name.
func (ps PhaseSpecies) GetName() string { return ps.Name }

// Phase is a named collection of species.
type Phase struct {
	Name       string         `json:"name" yaml:"name"`
	Species    []PhaseSpecies `json:"species" yaml:"species"`
	Extensions Extensions     `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// GetName returns the phase name.
func (p Phase) GetName() string { return p.Name }

// HasSpecies reports whether name is registered in the phase.
func (p Phase) HasSpecies(name string) bool {
	for _, s := range p.Species {
		if s.Name == name {
			return true
		}
	}
	return false
}

// DefaultCoefficient is the stoichiometric coefficient used when a
// reaction component does not declare one.
const DefaultCoefficient = 1.0

// ReactionComponent references a species taking part in a reaction.
type ReactionComponent struct {
	Name        string     `json:"name" yaml:"name"`
	Coefficient float64    `json:"coefficient" yaml:"coefficient"`
	Extensions  Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// GetName returns the referenced species name.
func (rc ReactionComponent) GetName() string { return rc.Name }
