package gen

import (
	"fmt"

	"github.com/syssam/esdlgen/compiler/load"
)

// Issue is a non-fatal schema hint. Hints never affect translation
// output and never abort a run.
type Issue struct {
	Model   string `json:"model"`
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Hint codes reported by Lint.
const (
	CodeListNotPlural          = "list_not_plural"
	CodeOptionalList           = "optional_list"
	CodeDefaultDropped         = "default_dropped"
	CodeDefaultUnknownFunction = "default_unknown_function"
	CodeRelationUnknownField   = "relation_unknown_field"
	CodeRelationNameUnpaired   = "relation_name_unpaired"
)

// Lint reports basic source schema hints: singular-named list fields,
// optionality that the multiplicity policy discards, default values the
// translator silently drops, and relation payloads naming undeclared
// fields.
func Lint(schema *load.Schema) []Issue {
	var issues []Issue
	enums := make(map[string]bool, len(schema.Enums))
	for _, e := range schema.Enums {
		enums[e.Name] = true
	}
	idx := newIndex(schema)
	for _, m := range schema.Models {
		mi := idx.model(m.Name)
		for _, f := range mi.fields {
			issues = append(issues, lintField(m.Name, f, enums)...)
			issues = append(issues, lintRelation(mi, f, idx)...)
		}
	}
	return issues
}

// lintRelation checks a relation attribute's payload against the
// declared schema: the underlying id fields must exist on the owning
// model, the referenced fields on the target model, and a relation name
// must have a counterpart field on the target.
func lintRelation(m *modelInfo, f *fieldInfo, idx *schemaIndex) []Issue {
	rel := f.relation
	if rel == nil {
		return nil
	}
	var issues []Issue
	for _, n := range rel.fields {
		if m.byName[n] == nil {
			issues = append(issues, Issue{
				Model:   m.def.Name,
				Field:   f.def.Name,
				Code:    CodeRelationUnknownField,
				Message: fmt.Sprintf("relation names id field %q, which is not declared on %s", n, m.def.Name),
			})
		}
	}
	target := idx.model(f.def.Type.Name)
	if target == nil {
		// A missing target is fatal in translation; nothing to check.
		return issues
	}
	for _, n := range rel.references {
		if target.byName[n] == nil {
			issues = append(issues, Issue{
				Model:   m.def.Name,
				Field:   f.def.Name,
				Code:    CodeRelationUnknownField,
				Message: fmt.Sprintf("relation references field %q, which is not declared on %s", n, target.def.Name),
			})
		}
	}
	if rel.name == "" {
		return issues
	}
	for _, tf := range target.fields {
		if tf != f && tf.relation != nil && tf.relation.name == rel.name {
			return issues
		}
	}
	return append(issues, Issue{
		Model:   m.def.Name,
		Field:   f.def.Name,
		Code:    CodeRelationNameUnpaired,
		Message: fmt.Sprintf("relation name %q has no counterpart on %s", rel.name, target.def.Name),
	})
}

func lintField(model string, f *fieldInfo, enums map[string]bool) []Issue {
	var issues []Issue
	if f.def.List {
		if p := plural(f.def.Name); p != f.def.Name && singular(f.def.Name) == f.def.Name {
			issues = append(issues, Issue{
				Model:   model,
				Field:   f.def.Name,
				Code:    CodeListNotPlural,
				Message: fmt.Sprintf("list field %q has a singular name; consider %q", f.def.Name, p),
			})
		}
		if f.def.Optional {
			issues = append(issues, Issue{
				Model:   model,
				Field:   f.def.Name,
				Code:    CodeOptionalList,
				Message: "optional modifier on a list field is discarded; a list is always permitted to be empty",
			})
		}
	}
	if v := f.defaultValue; v != nil {
		switch v.Kind {
		case load.ValueCall:
			if _, ok := defaultFuncs[v.Name]; !ok {
				issues = append(issues, Issue{
					Model:   model,
					Field:   f.def.Name,
					Code:    CodeDefaultUnknownFunction,
					Message: fmt.Sprintf("default function %s() is not recognized; the default will be omitted", v.Name),
				})
			}
		case load.ValueIdent, load.ValueString:
			typ := f.def.Type.Name
			if !enums[typ] && typ != "String" && typ != "Boolean" {
				issues = append(issues, Issue{
					Model:   model,
					Field:   f.def.Name,
					Code:    CodeDefaultDropped,
					Message: fmt.Sprintf("default value %q is not representable for type %s; the default will be omitted", v.Str, typ),
				})
			}
		default:
			issues = append(issues, Issue{
				Model:   model,
				Field:   f.def.Name,
				Code:    CodeDefaultDropped,
				Message: fmt.Sprintf("%s default values are not representable; the default will be omitted", v.Kind),
			})
		}
	}
	return issues
}
