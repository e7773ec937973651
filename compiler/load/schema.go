// Package load holds the source schema AST: the parsed form of a
// declarative relational-model schema (models, enums, fields and their
// attributes). The translation core in compiler/gen consumes this tree
// and never reads schema text itself.
package load

import "fmt"

// Schema is a parsed source schema: the ordered enum and model
// declarations of one schema file. It is read-only to the translator.
type Schema struct {
	Enums  []*Enum  `json:"enums,omitempty"`
	Models []*Model `json:"models,omitempty"`
}

// Enum represents an enum declaration. Value order is load-bearing and
// preserved all the way to the rendered output.
type Enum struct {
	Name   string   `json:"name,omitempty"`
	Values []string `json:"values,omitempty"`
	Line   int      `json:"-"`
}

// Model represents a model declaration.
type Model struct {
	Name   string       `json:"name,omitempty"`
	Fields []*Field     `json:"fields,omitempty"`
	Attrs  []*Attribute `json:"attrs,omitempty"` // block-level (@@) attributes
	Line   int          `json:"-"`
}

// Field represents a single field declaration inside a model.
type Field struct {
	Name     string       `json:"name,omitempty"`
	Type     *TypeExpr    `json:"type,omitempty"`
	List     bool         `json:"list,omitempty"`
	Optional bool         `json:"optional,omitempty"`
	Attrs    []*Attribute `json:"attrs,omitempty"`
	Line     int          `json:"-"`
}

// TypeExpr is the declared type of a field. It is a tagged variant:
// either a plain named type (Call=false), or a call expression such as
// Unsupported("polygon") (Call=true), decided once at parse time so the
// classifier never probes the shape again.
type TypeExpr struct {
	Name string   `json:"name,omitempty"`
	Call bool     `json:"call,omitempty"`
	Args []string `json:"args,omitempty"`
}

// Attribute is a single @attribute on a field (or @@attribute on a
// model), with its argument list in declaration order.
type Attribute struct {
	Name string `json:"name,omitempty"`
	Args []*Arg `json:"args,omitempty"`
}

// Arg is one attribute argument. Name is empty for positional arguments.
type Arg struct {
	Name  string `json:"name,omitempty"`
	Value *Value `json:"value,omitempty"`
}

// ValueKind discriminates the attribute value variants.
type ValueKind int

// Value kinds.
const (
	ValueIdent  ValueKind = iota // bare identifier: USER, true
	ValueString                  // quoted string literal
	ValueNumber                  // numeric literal
	ValueList                    // [a, b, ...]
	ValueCall                    // function call: now(), uuid()
)

// String returns the kind name. Used in diagnostics.
func (k ValueKind) String() string {
	switch k {
	case ValueIdent:
		return "ident"
	case ValueString:
		return "string"
	case ValueNumber:
		return "number"
	case ValueList:
		return "list"
	case ValueCall:
		return "call"
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// Value is an attribute argument value.
type Value struct {
	Kind ValueKind `json:"kind"`
	Str  string    `json:"str,omitempty"`  // ident, string and number text
	Name string    `json:"name,omitempty"` // call name
	List []*Value  `json:"list,omitempty"` // list elements and call arguments
}

// Attr returns the field attribute with the given name, or nil.
func (f *Field) Attr(name string) *Attribute {
	for _, at := range f.Attrs {
		if at.Name == name {
			return at
		}
	}
	return nil
}

// Arg returns the named argument, or the i-th positional argument when
// no argument carries the name. Returns nil if neither exists.
func (at *Attribute) Arg(name string, i int) *Arg {
	if name != "" {
		for _, a := range at.Args {
			if a.Name == name {
				return a
			}
		}
	}
	n := 0
	for _, a := range at.Args {
		if a.Name == "" {
			if n == i {
				return a
			}
			n++
		}
	}
	return nil
}

// Idents returns the identifier texts of a list value. A single ident
// value is treated as a one-element list.
func (v *Value) Idents() []string {
	switch v.Kind {
	case ValueIdent:
		return []string{v.Str}
	case ValueList:
		ids := make([]string, 0, len(v.List))
		for _, e := range v.List {
			if e.Kind == ValueIdent {
				ids = append(ids, e.Str)
			}
		}
		return ids
	}
	return nil
}
