package parser

import "github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/schema"

// Document keys.
const (
	keyVersion   = "version"
	keyName      = "name"
	keyType      = "type"
	keySpecies   = "species"
	keyPhases    = "phases"
	keyModels    = "models"
	keyReactions = "reactions"

	keyAbsoluteTolerance     = "absolute tolerance"
	keyDiffusionCoefficient  = "diffusion coefficient [m2 s-1]"
	keyMolecularWeight       = "molecular weight [kg mol-1]"
	keyHLC298                = "HLC(298K) [mol m-3 Pa-1]"
	keyHLCExponentialFactor  = "HLC exponential factor [K]"
	keyNStar                 = "N star"
	keyDensity               = "density [kg m-3]"
	keyTracerType            = "tracer type"
	keyConstantConcentration = "constant concentration [mol m-3]"
	keyConstantMixingRatio   = "constant mixing ratio [mol mol-1]"
	keyIsThirdBody           = "is third body"

	keyCoefficient = "coefficient"

	keyGasPhase              = "gas phase"
	keyCondensedPhase        = "condensed phase"
	keyReactants             = "reactants"
	keyProducts              = "products"
	keyScalingFactor         = "scaling factor"
	keyGasPhaseSpecies       = "gas-phase species"
	keyGasPhaseProducts      = "gas-phase products"
	keyCondensedPhaseSpecies = "condensed-phase species"
	keyCondensedPhaseWater   = "condensed-phase water"
	keyReactionProbability   = "reaction probability"
	keyNitrateProducts       = "nitrate products"
	keyAlkoxyProducts        = "alkoxy products"
	keyTaylorCoefficients    = "taylor coefficients"
	keyKReverse              = "k_reverse"
	keyGas                   = "gas"
	keyParticle              = "particle"
	keyPhase                 = "phase"
	keySolutes               = "solutes"
	keySolvent               = "solvent"

	keyA      = "A"
	keyB      = "B"
	keyC      = "C"
	keyD      = "D"
	keyE      = "E"
	keyEa     = "Ea"
	keyK0A    = "k0_A"
	keyK0B    = "k0_B"
	keyK0C    = "k0_C"
	keyKinfA  = "kinf_A"
	keyKinfB  = "kinf_B"
	keyKinfC  = "kinf_C"
	keyFc     = "Fc"
	keyN      = "N"
	keyX      = "X"
	keyY      = "Y"
	keyA0     = "a0"
	keyLowerN = "n"

	keyModes                      = "modes"
	keyGeometricMeanDiameter      = "geometric mean diameter [m]"
	keyGeometricStandardDeviation = "geometric standard deviation"
)

// Entity key tables shared by the versioned generations.
var (
	speciesKeys = schema.Keys{
		Required: []string{keyName},
		Optional: []string{
			keyAbsoluteTolerance,
			keyDiffusionCoefficient,
			keyMolecularWeight,
			keyHLC298,
			keyHLCExponentialFactor,
			keyNStar,
			keyDensity,
			keyTracerType,
			keyConstantConcentration,
			keyConstantMixingRatio,
			keyIsThirdBody,
		},
	}

	phaseKeys = schema.Keys{
		Required: []string{keyName, keySpecies},
	}

	phaseSpeciesKeys = schema.Keys{
		Required: []string{keyName},
		Optional: []string{keyDiffusionCoefficient},
	}

	componentKeys = schema.Keys{
		Required: []string{keyName},
		Optional: []string{keyCoefficient},
	}

	gasModelKeys = schema.Keys{
		Required: []string{keyType, keyPhase},
		Optional: []string{keyName},
	}

	modalModelKeys = schema.Keys{
		Required: []string{keyType, keyModes},
		Optional: []string{keyName},
	}

	modeKeys = schema.Keys{
		Required: []string{keyPhase, keyGeometricMeanDiameter, keyGeometricStandardDeviation},
		Optional: []string{keyName},
	}

	henrysLawGasKeys = schema.Keys{
		Required: []string{keyName, keySpecies},
	}

	henrysLawParticleKeys = schema.Keys{
		Required: []string{keyPhase, keySolutes, keySolvent},
	}
)

// reactionKeys is the key table of every reaction type tag.
var reactionKeys = map[ReactionType]schema.Keys{
	Arrhenius: {
		Required: []string{keyType, keyGasPhase, keyReactants, keyProducts},
		Optional: []string{keyName, keyA, keyB, keyC, keyD, keyE, keyEa},
	},
	CondensedPhaseArrhenius: {
		Required: []string{keyType, keyCondensedPhase, keyReactants, keyProducts},
		Optional: []string{keyName, keyA, keyB, keyC, keyD, keyE, keyEa},
	},
	Troe: {
		Required: []string{keyType, keyGasPhase, keyReactants, keyProducts},
		Optional: []string{keyName, keyK0A, keyK0B, keyK0C, keyKinfA, keyKinfB, keyKinfC, keyFc, keyN},
	},
	TernaryChemicalActivation: {
		Required: []string{keyType, keyGasPhase, keyReactants, keyProducts},
		Optional: []string{keyName, keyK0A, keyK0B, keyK0C, keyKinfA, keyKinfB, keyKinfC, keyFc, keyN},
	},
	Branched: {
		Required: []string{keyType, keyGasPhase, keyReactants, keyNitrateProducts, keyAlkoxyProducts, keyX, keyY, keyA0, keyLowerN},
		Optional: []string{keyName},
	},
	Tunneling: {
		Required: []string{keyType, keyGasPhase, keyReactants, keyProducts},
		Optional: []string{keyName, keyA, keyB, keyC},
	},
	Photolysis: {
		Required: []string{keyType, keyGasPhase, keyReactants, keyProducts},
		Optional: []string{keyName, keyScalingFactor},
	},
	CondensedPhasePhotolysis: {
		Required: []string{keyType, keyCondensedPhase, keyReactants, keyProducts},
		Optional: []string{keyName, keyScalingFactor},
	},
	Emission: {
		Required: []string{keyType, keyGasPhase, keyProducts},
		Optional: []string{keyName, keyScalingFactor},
	},
	FirstOrderLoss: {
		Required: []string{keyType, keyGasPhase, keyReactants},
		Optional: []string{keyName, keyScalingFactor},
	},
	UserDefined: {
		Required: []string{keyType, keyGasPhase, keyReactants, keyProducts},
		Optional: []string{keyName, keyScalingFactor},
	},
	TaylorSeries: {
		Required: []string{keyType, keyGasPhase, keyReactants, keyProducts},
		Optional: []string{keyName, keyA, keyB, keyC, keyD, keyE, keyEa, keyTaylorCoefficients},
	},
	Surface: {
		Required: []string{keyType, keyGasPhase, keyGasPhaseSpecies, keyGasPhaseProducts, keyCondensedPhase},
		Optional: []string{keyName, keyReactionProbability},
	},
	SimpolPhaseTransfer: {
		Required: []string{keyType, keyGasPhase, keyGasPhaseSpecies, keyCondensedPhase, keyCondensedPhaseSpecies, keyB},
		Optional: []string{keyName},
	},
	AqueousEquilibrium: {
		Required: []string{keyType, keyCondensedPhase, keyCondensedPhaseWater, keyReactants, keyProducts, keyKReverse},
		Optional: []string{keyName, keyA, keyC},
	},
	WetDeposition: {
		Required: []string{keyType, keyCondensedPhase},
		Optional: []string{keyName, keyScalingFactor},
	},
	HenrysLaw: {
		Required: []string{keyType, keyGas, keyParticle},
		Optional: []string{keyName},
	},
}

// modelKeys is the key table of every model type tag.
var modelKeys = map[ModelType]schema.Keys{
	GasModel:   gasModelKeys,
	ModalModel: modalModelKeys,
}
