package types

// Arrhenius is a gas-phase reaction with rate k = A exp(C/T) (T/D)^B (1 + E P).
type Arrhenius struct {
	Name      string              `json:"name,omitempty" yaml:"name,omitempty"`
	GasPhase  string              `json:"gas_phase" yaml:"gas_phase"`
	Reactants []ReactionComponent `json:"reactants" yaml:"reactants"`
	Products  []ReactionComponent `json:"products" yaml:"products"`

	A float64 `json:"A" yaml:"A"`
	B float64 `json:"B" yaml:"B"`
	C float64 `json:"C" yaml:"C"`
	D float64 `json:"D" yaml:"D"`
	E float64 `json:"E" yaml:"E"`

	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// CondensedPhaseArrhenius is an Arrhenius reaction taking place in a condensed phase.
type CondensedPhaseArrhenius struct {
	Name           string              `json:"name,omitempty" yaml:"name,omitempty"`
	CondensedPhase string              `json:"condensed_phase" yaml:"condensed_phase"`
	Reactants      []ReactionComponent `json:"reactants" yaml:"reactants"`
	Products       []ReactionComponent `json:"products" yaml:"products"`

	A float64 `json:"A" yaml:"A"`
	B float64 `json:"B" yaml:"B"`
	C float64 `json:"C" yaml:"C"`
	D float64 `json:"D" yaml:"D"`
	E float64 `json:"E" yaml:"E"`

	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// Troe is a pressure-dependent falloff reaction.
type Troe struct {
	Name      string              `json:"name,omitempty" yaml:"name,omitempty"`
	GasPhase  string              `json:"gas_phase" yaml:"gas_phase"`
	Reactants []ReactionComponent `json:"reactants" yaml:"reactants"`
	Products  []ReactionComponent `json:"products" yaml:"products"`

	K0A   float64 `json:"k0_A" yaml:"k0_A"`
	K0B   float64 `json:"k0_B" yaml:"k0_B"`
	K0C   float64 `json:"k0_C" yaml:"k0_C"`
	KinfA float64 `json:"kinf_A" yaml:"kinf_A"`
	KinfB float64 `json:"kinf_B" yaml:"kinf_B"`
	KinfC float64 `json:"kinf_C" yaml:"kinf_C"`
	Fc    float64 `json:"Fc" yaml:"Fc"`
	N     float64 `json:"N" yaml:"N"`

	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// TernaryChemicalActivation shares the Troe parameterization.
type TernaryChemicalActivation Troe

// Branched is the Wennberg NO + RO2 branched reaction.
type Branched struct {
	Name            string              `json:"name,omitempty" yaml:"name,omitempty"`
	GasPhase        string              `json:"gas_phase" yaml:"gas_phase"`
	Reactants       []ReactionComponent `json:"reactants" yaml:"reactants"`
	NitrateProducts []ReactionComponent `json:"nitrate_products" yaml:"nitrate_products"`
	AlkoxyProducts  []ReactionComponent `json:"alkoxy_products" yaml:"alkoxy_products"`

	X  float64 `json:"X" yaml:"X"`
	Y  float64 `json:"Y" yaml:"Y"`
	A0 float64 `json:"a0" yaml:"a0"`
	N  int     `json:"n" yaml:"n"`

	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// Tunneling is the Wennberg quantum tunneling reaction.
type Tunneling struct {
	Name      string              `json:"name,omitempty" yaml:"name,omitempty"`
	GasPhase  string              `json:"gas_phase" yaml:"gas_phase"`
	Reactants []ReactionComponent `json:"reactants" yaml:"reactants"`
	Products  []ReactionComponent `json:"products" yaml:"products"`

	A float64 `json:"A" yaml:"A"`
	B float64 `json:"B" yaml:"B"`
	C float64 `json:"C" yaml:"C"`

	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// Photolysis is a gas-phase photolytic reaction with one reactant.
type Photolysis struct {
	Name          string              `json:"name,omitempty" yaml:"name,omitempty"`
	GasPhase      string              `json:"gas_phase" yaml:"gas_phase"`
	Reactants     []ReactionComponent `json:"reactants" yaml:"reactants"`
	Products      []ReactionComponent `json:"products" yaml:"products"`
	ScalingFactor float64             `json:"scaling_factor" yaml:"scaling_factor"`
	Extensions    Extensions          `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// CondensedPhasePhotolysis is a photolytic reaction in a condensed phase.
type CondensedPhasePhotolysis struct {
	Name           string              `json:"name,omitempty" yaml:"name,omitempty"`
	CondensedPhase string              `json:"condensed_phase" yaml:"condensed_phase"`
	Reactants      []ReactionComponent `json:"reactants" yaml:"reactants"`
	Products       []ReactionComponent `json:"products" yaml:"products"`
	ScalingFactor  float64             `json:"scaling_factor" yaml:"scaling_factor"`
	Extensions     Extensions          `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// Emission injects products into the gas phase.
type Emission struct {
	Name          string              `json:"name,omitempty" yaml:"name,omitempty"`
	GasPhase      string              `json:"gas_phase" yaml:"gas_phase"`
	Products      []ReactionComponent `json:"products" yaml:"products"`
	ScalingFactor float64             `json:"scaling_factor" yaml:"scaling_factor"`
	Extensions    Extensions          `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// FirstOrderLoss removes a single reactant from the gas phase.
type FirstOrderLoss struct {
	Name          string              `json:"name,omitempty" yaml:"name,omitempty"`
	GasPhase      string              `json:"gas_phase" yaml:"gas_phase"`
	Reactants     []ReactionComponent `json:"reactants" yaml:"reactants"`
	ScalingFactor float64             `json:"scaling_factor" yaml:"scaling_factor"`
	Extensions    Extensions          `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// UserDefined is a reaction whose rate is supplied by the host model.
type UserDefined struct {
	Name          string              `json:"name,omitempty" yaml:"name,omitempty"`
	GasPhase      string              `json:"gas_phase" yaml:"gas_phase"`
	Reactants     []ReactionComponent `json:"reactants" yaml:"reactants"`
	Products      []ReactionComponent `json:"products" yaml:"products"`
	ScalingFactor float64             `json:"scaling_factor" yaml:"scaling_factor"`
	Extensions    Extensions          `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// TaylorSeries is an Arrhenius rate multiplied by a polynomial in temperature.
type TaylorSeries struct {
	Name      string              `json:"name,omitempty" yaml:"name,omitempty"`
	GasPhase  string              `json:"gas_phase" yaml:"gas_phase"`
	Reactants []ReactionComponent `json:"reactants" yaml:"reactants"`
	Products  []ReactionComponent `json:"products" yaml:"products"`

	A                  float64   `json:"A" yaml:"A"`
	B                  float64   `json:"B" yaml:"B"`
	C                  float64   `json:"C" yaml:"C"`
	D                  float64   `json:"D" yaml:"D"`
	E                  float64   `json:"E" yaml:"E"`
	TaylorCoefficients []float64 `json:"taylor_coefficients,omitempty" yaml:"taylor_coefficients,omitempty"`

	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// Surface is a gas-phase species reacting on a condensed-phase surface.
type Surface struct {
	Name                string              `json:"name,omitempty" yaml:"name,omitempty"`
	GasPhase            string              `json:"gas_phase" yaml:"gas_phase"`
	GasPhaseSpecies     ReactionComponent   `json:"gas_phase_species" yaml:"gas_phase_species"`
	GasPhaseProducts    []ReactionComponent `json:"gas_phase_products" yaml:"gas_phase_products"`
	CondensedPhase      string              `json:"condensed_phase" yaml:"condensed_phase"`
	ReactionProbability float64             `json:"reaction_probability" yaml:"reaction_probability"`
	Extensions          Extensions          `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// SimpolParameterCount is the length of the SIMPOL.1 B coefficient vector.
const SimpolParameterCount = 4

// SimpolPhaseTransfer moves one species between a gas and a condensed phase.
type SimpolPhaseTransfer struct {
	Name                  string                        `json:"name,omitempty" yaml:"name,omitempty"`
	GasPhase              string                        `json:"gas_phase" yaml:"gas_phase"`
	GasPhaseSpecies       ReactionComponent             `json:"gas_phase_species" yaml:"gas_phase_species"`
	CondensedPhase        string                        `json:"condensed_phase" yaml:"condensed_phase"`
	CondensedPhaseSpecies ReactionComponent             `json:"condensed_phase_species" yaml:"condensed_phase_species"`
	B                     [SimpolParameterCount]float64 `json:"B" yaml:"B"`
	Extensions            Extensions                    `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// AqueousEquilibrium is a reversible reaction in an aqueous condensed phase.
type AqueousEquilibrium struct {
	Name                string              `json:"name,omitempty" yaml:"name,omitempty"`
	CondensedPhase      string              `json:"condensed_phase" yaml:"condensed_phase"`
	CondensedPhaseWater string              `json:"condensed_phase_water" yaml:"condensed_phase_water"`
	Reactants           []ReactionComponent `json:"reactants" yaml:"reactants"`
	Products            []ReactionComponent `json:"products" yaml:"products"`
	A                   float64             `json:"A" yaml:"A"`
	C                   float64             `json:"C" yaml:"C"`
	KReverse            float64             `json:"k_reverse" yaml:"k_reverse"`
	Extensions          Extensions          `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// WetDeposition removes a condensed phase by precipitation.
type WetDeposition struct {
	Name           string     `json:"name,omitempty" yaml:"name,omitempty"`
	CondensedPhase string     `json:"condensed_phase" yaml:"condensed_phase"`
	ScalingFactor  float64    `json:"scaling_factor" yaml:"scaling_factor"`
	Extensions     Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// HenrysLawGas is the gas side of a Henry's law phase transfer.
type HenrysLawGas struct {
	Name       string         `json:"name" yaml:"name"`
	Species    []PhaseSpecies `json:"species" yaml:"species"`
	Extensions Extensions     `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// HenrysLawParticle is the particle side of a Henry's law phase transfer.
type HenrysLawParticle struct {
	Phase      string              `json:"phase" yaml:"phase"`
	Solutes    []ReactionComponent `json:"solutes" yaml:"solutes"`
	Solvent    ReactionComponent   `json:"solvent" yaml:"solvent"`
	Extensions Extensions          `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// HenrysLaw is a Henry's law phase transfer between gas and particle.
type HenrysLaw struct {
	Name       string            `json:"name,omitempty" yaml:"name,omitempty"`
	Gas        HenrysLawGas      `json:"gas" yaml:"gas"`
	Particle   HenrysLawParticle `json:"particle" yaml:"particle"`
	Extensions Extensions        `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// Reactions holds one collection per reaction variant, each in document order.
type Reactions struct {
	Arrhenius                 []Arrhenius                 `json:"arrhenius,omitempty" yaml:"arrhenius,omitempty"`
	AqueousEquilibrium        []AqueousEquilibrium        `json:"aqueous_equilibrium,omitempty" yaml:"aqueous_equilibrium,omitempty"`
	Branched                  []Branched                  `json:"branched,omitempty" yaml:"branched,omitempty"`
	CondensedPhaseArrhenius   []CondensedPhaseArrhenius   `json:"condensed_phase_arrhenius,omitempty" yaml:"condensed_phase_arrhenius,omitempty"`
	CondensedPhasePhotolysis  []CondensedPhasePhotolysis  `json:"condensed_phase_photolysis,omitempty" yaml:"condensed_phase_photolysis,omitempty"`
	Emission                  []Emission                  `json:"emission,omitempty" yaml:"emission,omitempty"`
	FirstOrderLoss            []FirstOrderLoss            `json:"first_order_loss,omitempty" yaml:"first_order_loss,omitempty"`
	HenrysLaw                 []HenrysLaw                 `json:"henrys_law,omitempty" yaml:"henrys_law,omitempty"`
	Photolysis                []Photolysis                `json:"photolysis,omitempty" yaml:"photolysis,omitempty"`
	SimpolPhaseTransfer       []SimpolPhaseTransfer       `json:"simpol_phase_transfer,omitempty" yaml:"simpol_phase_transfer,omitempty"`
	Surface                   []Surface                   `json:"surface,omitempty" yaml:"surface,omitempty"`
	TaylorSeries              []TaylorSeries              `json:"taylor_series,omitempty" yaml:"taylor_series,omitempty"`
	TernaryChemicalActivation []TernaryChemicalActivation `json:"ternary_chemical_activation,omitempty" yaml:"ternary_chemical_activation,omitempty"`
	Troe                      []Troe                      `json:"troe,omitempty" yaml:"troe,omitempty"`
	Tunneling                 []Tunneling                 `json:"tunneling,omitempty" yaml:"tunneling,omitempty"`
	UserDefined               []UserDefined               `json:"user_defined,omitempty" yaml:"user_defined,omitempty"`
	WetDeposition             []WetDeposition             `json:"wet_deposition,omitempty" yaml:"wet_deposition,omitempty"`
}

// Counts returns the number of reactions per variant, keyed by a stable
// snake_case variant name. Variants without reactions are omitted.
func (r *Reactions) Counts() map[string]int {
	counts := map[string]int{
		"arrhenius":                   len(r.Arrhenius),
		"aqueous_equilibrium":         len(r.AqueousEquilibrium),
		"branched":                    len(r.Branched),
		"condensed_phase_arrhenius":   len(r.CondensedPhaseArrhenius),
		"condensed_phase_photolysis":  len(r.CondensedPhasePhotolysis),
		"emission":                    len(r.Emission),
		"first_order_loss":            len(r.FirstOrderLoss),
		"henrys_law":                  len(r.HenrysLaw),
		"photolysis":                  len(r.Photolysis),
		"simpol_phase_transfer":       len(r.SimpolPhaseTransfer),
		"surface":                     len(r.Surface),
		"taylor_series":               len(r.TaylorSeries),
		"ternary_chemical_activation": len(r.TernaryChemicalActivation),
		"troe":                        len(r.Troe),
		"tunneling":                   len(r.Tunneling),
		"user_defined":                len(r.UserDefined),
		"wet_deposition":              len(r.WetDeposition),
	}
	for k, v := range counts {
		if v == 0 {
			delete(counts, k)
		}
	}
	return counts
}

// Count returns the total number of reactions across all variants.
func (r *Reactions) Count() int {
	total := 0
	for _, n := range r.Counts() {
		total += n
	}
	return total
}
