package parser

// ReactionType is the tag selecting a reaction variant.
type ReactionType string

// Reaction type tags.
const (
	Arrhenius                 ReactionType = "ARRHENIUS"
	CondensedPhaseArrhenius   ReactionType = "CONDENSED_PHASE_ARRHENIUS"
	Troe                      ReactionType = "TROE"
	TernaryChemicalActivation ReactionType = "TERNARY_CHEMICAL_ACTIVATION"
	Branched                  ReactionType = "BRANCHED_NO_RO2"
	Tunneling                 ReactionType = "TUNNELING"
	Photolysis                ReactionType = "PHOTOLYSIS"
	CondensedPhasePhotolysis  ReactionType = "CONDENSED_PHASE_PHOTOLYSIS"
	Emission                  ReactionType = "EMISSION"
	FirstOrderLoss            ReactionType = "FIRST_ORDER_LOSS"
	UserDefined               ReactionType = "USER_DEFINED"
	TaylorSeries              ReactionType = "TAYLOR_SERIES"
	Surface                   ReactionType = "SURFACE"
	SimpolPhaseTransfer       ReactionType = "SIMPOL_PHASE_TRANSFER"
	AqueousEquilibrium        ReactionType = "AQUEOUS_EQUILIBRIUM"
	WetDeposition             ReactionType = "WET_DEPOSITION"
	HenrysLaw                 ReactionType = "HL_PHASE_TRANSFER"
)

// ReactionTypes returns every known reaction tag in declaration order.
func ReactionTypes() []ReactionType {
	return []ReactionType{
		Arrhenius, CondensedPhaseArrhenius, Troe, TernaryChemicalActivation,
		Branched, Tunneling, Photolysis, CondensedPhasePhotolysis, Emission,
		FirstOrderLoss, UserDefined, TaylorSeries, Surface, SimpolPhaseTransfer,
		AqueousEquilibrium, WetDeposition, HenrysLaw,
	}
}

// ModelType is the tag selecting a model variant.
type ModelType string

// Model type tags.
const (
	GasModel   ModelType = "GAS_PHASE"
	ModalModel ModelType = "MODAL"
)

// Generation identifies the schema generation a document was parsed under.
type Generation string

// Known generations. V0 is the legacy camp-data layout.
const (
	V0 Generation = "v0"
	V1 Generation = "v1"
	V2 Generation = "v2"
)

// Major returns the major version number of the generation.
func (g Generation) Major() int {
	switch g {
	case V1:
		return 1
	case V2:
		return 2
	default:
		return 0
	}
}

// String returns the generation label.
func (g Generation) String() string { return string(g) }

func tagNames[T ~string](tags []T) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}
