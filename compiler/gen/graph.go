package gen

import (
	"github.com/syssam/esdlgen/compiler/load"
)

// Recognized attribute names. Attributes outside this closed set are
// ignored by the translator.
const (
	attrRelation = "relation"
	attrDefault  = "default"
	attrUnique   = "unique"
)

type (
	// schemaIndex is the normalized, name-keyed view of the source
	// schema. It is built once, before classification, and makes
	// "does model X have a field of type Y" an O(1) question.
	schemaIndex struct {
		models map[string]*modelInfo
	}

	// modelInfo indexes one model's fields by name.
	modelInfo struct {
		def    *load.Model
		fields []*fieldInfo
		byName map[string]*fieldInfo
	}

	// fieldInfo carries a source field with its attribute bag resolved
	// into the closed set of recognized attributes.
	fieldInfo struct {
		def          *load.Field
		relation     *relationAttr
		defaultValue *load.Value
		unique       bool
	}

	// relationAttr is the typed payload of a relation attribute.
	relationAttr struct {
		name       string
		fields     []string // underlying id fields on the owning model
		references []string // referenced fields on the target model
	}
)

// newIndex builds the normalized index of the source schema. Pure
// reindexing: no errors, no side effects.
func newIndex(s *load.Schema) *schemaIndex {
	idx := &schemaIndex{models: make(map[string]*modelInfo, len(s.Models))}
	for _, m := range s.Models {
		mi := &modelInfo{
			def:    m,
			fields: make([]*fieldInfo, 0, len(m.Fields)),
			byName: make(map[string]*fieldInfo, len(m.Fields)),
		}
		for _, f := range m.Fields {
			fi := &fieldInfo{def: f, unique: f.Attr(attrUnique) != nil}
			if at := f.Attr(attrRelation); at != nil {
				fi.relation = newRelationAttr(at)
			}
			if at := f.Attr(attrDefault); at != nil {
				if a := at.Arg("", 0); a != nil {
					fi.defaultValue = a.Value
				}
			}
			mi.fields = append(mi.fields, fi)
			mi.byName[f.Name] = fi
		}
		idx.models[m.Name] = mi
	}
	return idx
}

func newRelationAttr(at *load.Attribute) *relationAttr {
	rel := &relationAttr{}
	if a := at.Arg("name", 0); a != nil && (a.Value.Kind == load.ValueString || a.Value.Kind == load.ValueIdent) {
		rel.name = a.Value.Str
	}
	if a := at.Arg("fields", -1); a != nil {
		rel.fields = a.Value.Idents()
	}
	if a := at.Arg("references", -1); a != nil {
		rel.references = a.Value.Idents()
	}
	return rel
}

// owning reports whether the relation attribute carries the explicit
// id-field payload, marking its field as the stored side of a relation.
func (r *relationAttr) owning() bool {
	return r != nil && len(r.fields) > 0
}

func (idx *schemaIndex) model(name string) *modelInfo {
	return idx.models[name]
}

// NewGraph translates the source schema into a target schema graph.
// The graph is built once, in one pass, from the immutable source AST;
// any classification failure aborts the whole translation with no
// partial result. A nil config translates with defaults.
func NewGraph(c *Config, schema *load.Schema) (*Graph, error) {
	cfg := Config{Module: DefaultModule}
	if c != nil {
		cfg = *c
		if cfg.Module == "" {
			cfg.Module = DefaultModule
		}
	}
	g := &Graph{
		Config: &cfg,
		enums:  make(map[string]*Enum, len(schema.Enums)),
		nodes:  make(map[string]*ObjectType, len(schema.Models)),
	}
	for _, e := range schema.Enums {
		te := &Enum{Name: e.Name, Values: append([]string(nil), e.Values...)}
		g.Enums = append(g.Enums, te)
		g.enums[te.Name] = te
	}
	idx := newIndex(schema)
	for _, m := range schema.Models {
		node, err := g.classify(idx, idx.model(m.Name))
		if err != nil {
			return nil, err
		}
		g.Nodes = append(g.Nodes, node)
		g.nodes[node.Name] = node
	}
	return g, nil
}
