// Package gen is the translation core: it turns a parsed relational
// schema (compiler/load) into an object/graph schema and serializes it
// as schema text.
//
// # Pipeline
//
//	load.Schema (parsed source declarations)
//	        ↓
//	   schemaIndex (name-keyed models, fields, resolved attributes)
//	        ↓
//	   Graph (enums + classified object types)
//	        ↓
//	   SDL text (deterministic rendering)
//
// # Key Types
//
//   - Graph: translated target schema; enums and object types in
//     declaration order
//   - ObjectType: one object type with its properties, stored links and
//     computed backlinks
//   - Pointer: a property or stored link (multiplicity, optionality,
//     exclusivity, default expression)
//   - Backlink: a computed reverse-navigation pointer
//   - Config: translation configuration (module name, scalar overrides)
//
// # Error Handling
//
// Classification failures use structured error types, all fatal for the
// whole run:
//
//   - MissingTargetError: relation points at an undeclared model
//   - AmbiguousBacklinkError: more than one inverse-relation candidate
//   - CompositeKeyError: relation keyed by more than one id field
//   - UnknownScalarError: primitive type missing from the scalar table
//   - FunctionTypeError: call expression used as a field type
//
// Example:
//
//	g, err := gen.NewGraph(cfg, schema)
//	if err != nil {
//	    if gen.IsAmbiguousBacklinkError(err) {
//	        // Relation pairing could not be resolved.
//	    }
//	    return err
//	}
//	sdl := g.SDL()
//
// Rendering happens only after the full graph is built, so a failure
// produces zero partial output.
//
// # Code Organization
//
//   - classify.go: field classification and relation pairing
//   - config.go: Config and functional options
//   - default.go: default-expression translation
//   - errors.go: structured error types
//   - funcs.go: naming helpers
//   - graph.go: schema normalization and graph construction
//   - lint.go: non-fatal schema hints
//   - type.go: target model types
//   - writer.go: SDL rendering
package gen
