package gen

import "fmt"

// classify builds the object type for one model, deciding for every
// field whether it is a plain property, a stored link or a computed
// backlink. Fields are processed in declaration order.
func (g *Graph) classify(idx *schemaIndex, m *modelInfo) (*ObjectType, error) {
	node := &ObjectType{
		Name:     m.def.Name,
		linkIDs:  make(map[string]struct{}),
		pointers: make(map[string]*Pointer, len(m.fields)),
	}
	for _, f := range m.fields {
		if err := g.classifyField(idx, m, node, f); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (g *Graph) classifyField(idx *schemaIndex, m *modelInfo, node *ObjectType, f *fieldInfo) error {
	ft := f.def.Type
	if ft.Call {
		return NewFunctionTypeError(m.def.Name, f.def.Name, ft.Name)
	}
	if target := idx.model(ft.Name); target != nil {
		return g.classifyRelation(m, node, f, target)
	}
	if g.Enum(ft.Name) != nil {
		node.addPointer(g.pointer(Property, f, ft.Name))
		return nil
	}
	if f.relation != nil {
		// Declared as a relation, but the named type is no model.
		return NewMissingTargetError(m.def.Name, f.def.Name, ft.Name)
	}
	t, ok := g.scalar(ft.Name)
	if !ok {
		return NewUnknownScalarError(m.def.Name, f.def.Name, ft.Name)
	}
	node.addPointer(g.pointer(Property, f, t))
	return nil
}

// classifyRelation resolves the pairing of a model-typed field: it is
// either the owning side (a stored link, possibly suppressing its
// underlying id property) or a computed backlink through the single
// inverse candidate on the target model.
func (g *Graph) classifyRelation(m *modelInfo, node *ObjectType, f *fieldInfo, target *modelInfo) error {
	if !f.relation.owning() {
		switch cands := inverseCandidates(target, m.def.Name); len(cands) {
		case 0:
			// No stored side on the target; this field owns the link.
		case 1:
			node.Backlinks = append(node.Backlinks, &Backlink{
				Name:  f.def.Name,
				Expr:  fmt.Sprintf(".<%s[is %s]", cands[0].def.Name, target.def.Name),
				Multi: f.def.List,
			})
			return nil
		default:
			names := make([]string, len(cands))
			for i, c := range cands {
				names[i] = c.def.Name
			}
			return NewAmbiguousBacklinkError(m.def.Name, f.def.Name, target.def.Name, names)
		}
	}
	if f.relation.owning() {
		if len(f.relation.fields) > 1 {
			return NewCompositeKeyError(m.def.Name, f.def.Name, f.relation.fields)
		}
		// The stored link implies its id property; suppress it from
		// the rendered output.
		node.suppress(f.relation.fields[0])
	}
	node.addPointer(g.pointer(Link, f, target.def.Name))
	return nil
}

// inverseCandidates returns the fields on target that hold the stored
// side of a relation back to owner: relation-marked with an explicit
// id-field payload and typed with the owner model's name.
func inverseCandidates(target *modelInfo, owner string) []*fieldInfo {
	var cands []*fieldInfo
	for _, f := range target.fields {
		if f.relation.owning() && !f.def.Type.Call && f.def.Type.Name == owner {
			cands = append(cands, f)
		}
	}
	return cands
}

// pointer builds a stored pointer from a classified field, applying the
// multiplicity/optionality policy: a list pointer is never required,
// regardless of the field's own declared optionality.
func (g *Graph) pointer(kind PointerKind, f *fieldInfo, target string) *Pointer {
	p := &Pointer{
		Kind:      kind,
		Name:      f.def.Name,
		Type:      target,
		Multi:     f.def.List,
		Exclusive: f.unique,
	}
	if !p.Multi {
		p.Required = !f.def.Optional
	}
	p.Default = g.defaultExpr(f)
	return p
}
