package errors

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestionDistance is the largest edit distance still worth suggesting.
const maxSuggestionDistance = 4

// SuggestKey suggests a valid key when an unknown key is found.
// It returns an empty string when nothing is close enough.
func SuggestKey(unknown string, validKeys []string) string {
	if best, ok := closest(unknown, validKeys); ok {
		return fmt.Sprintf("Did you mean '%s'?", best)
	}
	return ""
}

// SuggestType suggests a valid type tag when an unrecognized one is found.
// Unlike SuggestKey it always lists the valid tags when nothing is close.
func SuggestType(unknown string, validTypes []string) string {
	if len(validTypes) == 0 {
		return ""
	}
	if best, ok := closest(strings.ToUpper(unknown), validTypes); ok {
		return fmt.Sprintf("Did you mean '%s'?", best)
	}
	return fmt.Sprintf("Valid types: %s", strings.Join(validTypes, ", "))
}

// SuggestMissingKey suggests adding a required key.
func SuggestMissingKey(key string, exampleValue string) string {
	if exampleValue != "" {
		return fmt.Sprintf("Add '%s: %s'", key, exampleValue)
	}
	return fmt.Sprintf("Add the '%s' key", key)
}

func closest(unknown string, candidates []string) (string, bool) {
	best := ""
	minDistance := maxSuggestionDistance + 1
	for _, candidate := range candidates {
		dist := fuzzy.LevenshteinDistance(unknown, candidate)
		if dist < minDistance {
			minDistance = dist
			best = candidate
		}
	}
	return best, best != ""
}
