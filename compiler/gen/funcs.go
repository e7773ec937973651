package gen

import "github.com/go-openapi/inflect"

var rules = ruleset()

// ruleset returns the naming ruleset used by diagnostics.
func ruleset() *inflect.Ruleset {
	r := inflect.NewDefaultRuleset()
	for _, w := range []string{"ID", "SQL", "URL", "UUID", "JSON", "API"} {
		r.AddAcronym(w)
	}
	return r
}

func plural(s string) string { return rules.Pluralize(s) }

func singular(s string) string { return rules.Singularize(s) }
