// Package parser turns mechanism configuration documents into
// types.Mechanism values, collecting every defect in one pass.
//
// # Basic Usage
//
// Parse a file:
//
//	p := parser.NewParser()
//	res := p.Parse("mechanisms/chapman.yaml")
//	if !res.Successful() {
//	    fmt.Println(res.Errors)
//	}
//	fmt.Println("Species:", len(res.Mechanism.Species))
//
// Parse from memory:
//
//	res := parser.NewParser().ParseBytes([]byte(`
//	version: 1.0.0
//	species:
//	  - name: O3
//	phases:
//	  - name: gas
//	    species: [O3]
//	reactions:
//	  - type: PHOTOLYSIS
//	    gas phase: gas
//	    reactants: [{name: O3}]
//	    products: []
//	`), "memory://chapman")
//
// # Generations
//
// The top-level version field selects the schema generation. Major 1 and 2
// select v1 and v2; a document without a version is parsed as a legacy
// CAMP document (camp-data or camp-files). Before routing, every
// "species name" key is renamed to "name" where that does not clash.
//
// # Processing Order
//
// Species are parsed first, then phases, then models, then reactions, so
// every reference is checked against complete collections. An entity whose
// keys fail validation, or whose values fail coercion, is skipped. An entity
// that only references unknown names is still collected; the result then
// carries the reference errors and is not successful.
//
// Keys beginning with "__" are never validated and are kept verbatim in the
// owning entity's Extensions map.
package parser
