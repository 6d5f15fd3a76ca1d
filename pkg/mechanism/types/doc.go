// Package types defines the in-memory description of a chemical mechanism
// produced by the mechanism configuration parser.
//
// # Core Types
//
// Mechanism: root aggregate holding species, phases, models and reactions
//
// Species: a named chemical entity with optional physical properties
//
// Phase: a named collection of species that interact together
//
// ReactionComponent: a (species name, stoichiometric coefficient) pair
//
// Reactions: one ordered collection per reaction variant
//
// Models: the gas-phase and modal aerosol model declarations
//
// Every entity carries an Extensions map holding the "__"-prefixed keys found
// on its source node. Values are the scalar text verbatim, or the YAML
// serialization of compound values.
//
// All entities are built once during a parse and are not mutated afterwards.
// The caller that receives a parse result owns the mechanism.
package types
