package gen

import (
	"bytes"
	"fmt"
	"strings"
)

// SDL renders the graph as target schema text. Rendering is
// deterministic and total: it performs no semantic checks and assumes
// the graph is internally consistent (the classifier's job).
func (g *Graph) SDL() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "module %s {\n", g.Module)
	for _, e := range g.Enums {
		fmt.Fprintf(&b, "  scalar type %s extending enum<%s>;\n", e.Name, strings.Join(e.Values, ", "))
	}
	for i, t := range g.Nodes {
		if i > 0 || len(g.Enums) > 0 {
			b.WriteByte('\n')
		}
		g.writeType(&b, t)
	}
	b.WriteString("}\n")
	return b.String()
}

// Render renders the graph as target schema text.
func Render(g *Graph) string {
	return g.SDL()
}

func (g *Graph) writeType(b *bytes.Buffer, t *ObjectType) {
	fmt.Fprintf(b, "  type %s {\n", t.Name)
	for _, p := range t.Stored() {
		b.WriteString("    ")
		b.WriteString(p.decl())
		b.WriteByte('\n')
	}
	for _, bl := range t.Backlinks {
		b.WriteString("    ")
		if bl.Multi {
			b.WriteString("multi ")
		}
		fmt.Fprintf(b, "link %s := %s;\n", bl.Name, bl.Expr)
	}
	b.WriteString("  }\n")
}

// decl returns the pointer's declaration line, without indentation.
// Exclusivity and default, when present, render as an inline sub-block.
func (p *Pointer) decl() string {
	var b strings.Builder
	if p.Required {
		b.WriteString("required ")
	}
	if p.Multi {
		b.WriteString("multi ")
	}
	fmt.Fprintf(&b, "%s %s -> %s", p.Kind, p.Name, p.Type)
	var quals []string
	if p.Exclusive {
		quals = append(quals, "constraint exclusive;")
	}
	if p.Default != "" {
		quals = append(quals, fmt.Sprintf("default := %s;", p.Default))
	}
	if len(quals) > 0 {
		fmt.Fprintf(&b, " { %s };", strings.Join(quals, " "))
	} else {
		b.WriteByte(';')
	}
	return b.String()
}
