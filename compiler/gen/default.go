package gen

import (
	"strconv"

	"github.com/syssam/esdlgen/compiler/load"
)

// Default functions recognized by the translator, mapped to their
// target-language expressions.
var defaultFuncs = map[string]string{
	"now":  "datetime_current()",
	"uuid": "uuid_generate_v4()",
}

// defaultExpr translates a field's declared default value into a
// target-language default expression. An empty result means no default
// is emitted; unrepresentable defaults are dropped, not rejected.
func (g *Graph) defaultExpr(f *fieldInfo) string {
	v := f.defaultValue
	if v == nil {
		return ""
	}
	switch v.Kind {
	case load.ValueCall:
		return defaultFuncs[v.Name]
	case load.ValueIdent, load.ValueString:
		typ := f.def.Type.Name
		switch {
		case g.Enum(typ) != nil:
			return typ + "." + v.Str
		case typ == "String":
			return strconv.Quote(v.Str)
		case typ == "Boolean":
			return v.Str
		}
	}
	return ""
}
