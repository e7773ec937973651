package gen

// The following types model the translated target schema. The whole
// graph is built once from the source AST and never mutated after
// translation completes.
type (
	// Graph holds the translated target schema: enum scalar types and
	// object types, both in source declaration order.
	Graph struct {
		*Config
		// Enums holds the enum scalar types.
		Enums []*Enum
		// Nodes holds the object types.
		Nodes []*ObjectType
		enums map[string]*Enum
		nodes map[string]*ObjectType
	}

	// Enum is an enum scalar type. Value order follows the source
	// declaration.
	Enum struct {
		Name   string
		Values []string
	}

	// ObjectType is one object type of the target schema. A field name
	// appears in exactly one of Props, Links or Backlinks.
	ObjectType struct {
		// Name holds the object type name.
		Name string
		// Props holds the scalar-valued pointers, declaration order.
		Props []*Pointer
		// Links holds the stored reference pointers, declaration order.
		Links []*Pointer
		// Backlinks holds the computed reverse-navigation pointers.
		Backlinks []*Backlink
		// linkIDs are property names suppressed from rendering because
		// a stored link already implies them.
		linkIDs  map[string]struct{}
		pointers map[string]*Pointer
	}

	// Pointer is a property or a stored link on an object type.
	Pointer struct {
		// Kind discriminates property from link.
		Kind PointerKind
		// Name holds the pointer name.
		Name string
		// Type is the target scalar, enum or object type name.
		Type string
		// Multi indicates a to-many pointer. Multi forces Required
		// false; the target language cannot express a required list.
		Multi bool
		// Required indicates the pointer must always be present.
		Required bool
		// Exclusive indicates a uniqueness constraint on the value.
		Exclusive bool
		// Default is the target-language default expression, or empty.
		Default string
	}

	// Backlink is a computed reverse-navigation pointer derived from a
	// stored link declared on another object type. Backlinks are never
	// rendered as stored pointers.
	Backlink struct {
		// Name holds the pointer name.
		Name string
		// Expr is the reverse-navigation expression.
		Expr string
		// Multi mirrors the forward field's declared list-ness.
		Multi bool
	}
)

// PointerKind discriminates the two stored pointer kinds.
type PointerKind int

// Pointer kinds.
const (
	Property PointerKind = iota
	Link
)

// String returns the target-language keyword for the kind.
func (k PointerKind) String() string {
	if k == Link {
		return "link"
	}
	return "property"
}

// Enum returns the enum scalar type with the given name, or nil.
func (g *Graph) Enum(name string) *Enum {
	return g.enums[name]
}

// Node returns the object type with the given name, or nil.
func (g *Graph) Node(name string) *ObjectType {
	return g.nodes[name]
}

// Pointer returns the stored pointer with the given name, or nil.
func (t *ObjectType) Pointer(name string) *Pointer {
	return t.pointers[name]
}

// Suppressed reports whether the named property is omitted from the
// rendered output because a stored link implies it.
func (t *ObjectType) Suppressed(name string) bool {
	_, ok := t.linkIDs[name]
	return ok
}

// Stored returns the pointers to render: properties then links, both in
// declaration order, minus the suppressed implied-id properties.
func (t *ObjectType) Stored() []*Pointer {
	ps := make([]*Pointer, 0, len(t.Props)+len(t.Links))
	for _, p := range t.Props {
		if !t.Suppressed(p.Name) {
			ps = append(ps, p)
		}
	}
	return append(ps, t.Links...)
}

func (t *ObjectType) addPointer(p *Pointer) {
	if p.Kind == Link {
		t.Links = append(t.Links, p)
	} else {
		t.Props = append(t.Props, p)
	}
	t.pointers[p.Name] = p
}

func (t *ObjectType) suppress(name string) {
	t.linkIDs[name] = struct{}{}
}
