package gen

import "fmt"

// scalarTypes is the fixed mapping from source primitive types to
// target scalar names.
var scalarTypes = map[string]string{
	"String":   "str",
	"Boolean":  "bool",
	"Int":      "int64",
	"BigInt":   "bigint",
	"Float":    "float64",
	"Decimal":  "decimal",
	"DateTime": "datetime",
	"Json":     "json",
	"Bytes":    "bytes",
}

// DefaultModule is the module name used when none is configured.
const DefaultModule = "default"

// Config configures a translation run.
type Config struct {
	// Module is the target module name. Defaults to DefaultModule.
	Module string
	// ScalarTypes adds to or overrides the builtin primitive mapping
	// table. The builtin table itself is fixed.
	ScalarTypes map[string]string
}

// Option configures translation.
type Option func(*Config) error

// WithModule sets the target module name.
func WithModule(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return fmt.Errorf("esdlgen: module name cannot be empty")
		}
		c.Module = name
		return nil
	}
}

// WithScalarType maps the source primitive type name to the given
// target scalar name, overriding the builtin table entry if one exists.
func WithScalarType(name, target string) Option {
	return func(c *Config) error {
		if name == "" || target == "" {
			return fmt.Errorf("esdlgen: scalar mapping cannot be empty (%q -> %q)", name, target)
		}
		if c.ScalarTypes == nil {
			c.ScalarTypes = make(map[string]string)
		}
		c.ScalarTypes[name] = target
		return nil
	}
}

// NewConfig builds a Config from the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{Module: DefaultModule}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// scalar resolves a source primitive type name to its target scalar
// name, consulting the configured overrides before the builtin table.
func (c *Config) scalar(name string) (string, bool) {
	if t, ok := c.ScalarTypes[name]; ok {
		return t, true
	}
	t, ok := scalarTypes[name]
	return t, ok
}
