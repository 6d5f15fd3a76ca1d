// Package schema validates the key set of document nodes and reads typed
// values out of them.
//
// Every entity kind has a Keys table listing its required and optional keys.
// Validate reports all violations of a node in one call. Keys beginning with
// "__" are never validated; Extensions harvests them into the entity's
// extension map so that tooling metadata survives a parse unchanged.
//
// Object wraps an already validated map node and coerces its values. A value
// of the wrong shape is reported as InvalidType instead of aborting the parse.
package schema
