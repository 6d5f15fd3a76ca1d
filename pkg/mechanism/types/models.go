package types

// GasModel declares the gas-phase model and the phase it operates on.
type GasModel struct {
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
	Type       string     `json:"type" yaml:"type"`
	Phase      string     `json:"phase" yaml:"phase"`
	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// Mode is one log-normal mode of a modal aerosol model.
type Mode struct {
	Name                       string     `json:"name,omitempty" yaml:"name,omitempty"`
	GeometricMeanDiameter      float64    `json:"geometric_mean_diameter" yaml:"geometric_mean_diameter"`
	GeometricStandardDeviation float64    `json:"geometric_standard_deviation" yaml:"geometric_standard_deviation"`
	Phase                      string     `json:"phase" yaml:"phase"`
	Extensions                 Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// ModalModel declares a modal aerosol representation.
type ModalModel struct {
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
	Type       string     `json:"type" yaml:"type"`
	Modes      []Mode     `json:"modes" yaml:"modes"`
	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// Models aggregates the model declarations of a mechanism. A nil field
// means the model was not declared.
type Models struct {
	Gas   *GasModel   `json:"gas,omitempty" yaml:"gas,omitempty"`
	Modal *ModalModel `json:"modal,omitempty" yaml:"modal,omitempty"`
}

// Count returns the number of declared models.
func (m Models) Count() int {
	n := 0
	if m.Gas != nil {
		n++
	}
	if m.Modal != nil {
		n++
	}
	return n
}
