// Package esdlgen translates declarative relational-model schemas
// (models with typed fields, relations, enums and attributes) into an
// object/graph schema description: object types with properties, stored
// links and computed backlinks, plus enum scalar types.
//
// The package is a thin facade over compiler/load (parsing) and
// compiler/gen (translation and rendering). Translation is a pure
// function of its input: no files are read or written here.
package esdlgen

import (
	"github.com/syssam/esdlgen/compiler/gen"
	"github.com/syssam/esdlgen/compiler/load"
)

// Translate classifies the parsed source schema into a target schema
// graph. It fails fast: a single defect anywhere in the schema aborts
// the whole translation with no partial result.
func Translate(schema *load.Schema, opts ...gen.Option) (*gen.Graph, error) {
	c, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return gen.NewGraph(c, schema)
}

// Render serializes a translated graph as target schema text. It is
// total and never fails on a graph produced by Translate.
func Render(g *gen.Graph) string {
	return g.SDL()
}

// Compile parses schema text and returns the rendered target schema.
func Compile(src []byte, opts ...gen.Option) (string, error) {
	schema, err := load.Parse(src)
	if err != nil {
		return "", err
	}
	g, err := Translate(schema, opts...)
	if err != nil {
		return "", err
	}
	return Render(g), nil
}
