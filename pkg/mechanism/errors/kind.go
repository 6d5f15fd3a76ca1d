package errors

// Kind categorizes a parse or validation defect. The string value is the
// kind's name and is stable across releases.
type Kind string

const (
	InvalidKey                           Kind = "InvalidKey"
	UnknownKey                           Kind = "UnknownKey"
	InvalidFilePath                      Kind = "InvalidFilePath"
	ObjectTypeNotFound                   Kind = "ObjectTypeNotFound"
	RequiredKeyNotFound                  Kind = "RequiredKeyNotFound"
	MutuallyExclusiveOption              Kind = "MutuallyExclusiveOption"
	DuplicateSpeciesDetected             Kind = "DuplicateSpeciesDetected"
	DuplicatePhasesDetected              Kind = "DuplicatePhasesDetected"
	DuplicateSpeciesInPhaseDetected      Kind = "DuplicateSpeciesInPhaseDetected"
	PhaseRequiresUnknownSpecies          Kind = "PhaseRequiresUnknownSpecies"
	ReactionRequiresUnknownSpecies       Kind = "ReactionRequiresUnknownSpecies"
	UnknownSpecies                       Kind = "UnknownSpecies"
	UnknownPhase                         Kind = "UnknownPhase"
	RequestedSpeciesNotRegisteredInPhase Kind = "RequestedSpeciesNotRegisteredInPhase"
	TooManyReactionComponents            Kind = "TooManyReactionComponents"
	InvalidIonPair                       Kind = "InvalidIonPair"
	InvalidVersion                       Kind = "InvalidVersion"
	MissingVersionField                  Kind = "MissingVersionField"
	InvalidParameterNumber               Kind = "InvalidParameterNumber"
	InvalidType                          Kind = "InvalidType"
	UnknownType                          Kind = "UnknownType"
	FileNotFound                         Kind = "FileNotFound"
	EmptyObject                          Kind = "EmptyObject"
	UnexpectedError                      Kind = "UnexpectedError"
)

// allKinds lists every kind in declaration order.
var allKinds = []Kind{
	InvalidKey,
	UnknownKey,
	InvalidFilePath,
	ObjectTypeNotFound,
	RequiredKeyNotFound,
	MutuallyExclusiveOption,
	DuplicateSpeciesDetected,
	DuplicatePhasesDetected,
	DuplicateSpeciesInPhaseDetected,
	PhaseRequiresUnknownSpecies,
	ReactionRequiresUnknownSpecies,
	UnknownSpecies,
	UnknownPhase,
	RequestedSpeciesNotRegisteredInPhase,
	TooManyReactionComponents,
	InvalidIonPair,
	InvalidVersion,
	MissingVersionField,
	InvalidParameterNumber,
	InvalidType,
	UnknownType,
	FileNotFound,
	EmptyObject,
	UnexpectedError,
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// String returns the kind's name.
func (k Kind) String() string {
	return string(k)
}

// IsKnown reports whether k is one of the declared kinds.
func (k Kind) IsKnown() bool {
	for _, known := range allKinds {
		if k == known {
			return true
		}
	}
	return false
}
