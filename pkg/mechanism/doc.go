// Package mechanism parses chemical mechanism configuration documents.
//
// A document declares species, the phases they live in, optional models
// and a catalogue of reactions. Parsing validates every node against the
// key tables of its schema generation, resolves references between
// entities and reports all defects together:
//
//	res := mechanism.Parse("config.yaml")
//	for _, err := range res.Errors.Errors {
//	    fmt.Println(err.Short())
//	}
//	if res.Successful() {
//	    fmt.Println(res.Mechanism.Reactions.Count(), "reactions")
//	}
//
// Subpackages:
//   - types: the parsed mechanism model
//   - errors: error kinds, error lists and suggestions
//   - schema: key-table validation and typed value extraction
//   - resolver: name lookup and duplicate detection
//   - parser: version routing and the per-generation parsers
package mechanism
