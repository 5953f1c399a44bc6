// Package options holds the manufacturer configuration and its YAML form.
//
//	max_depth: 1
//	collection_size: 2
//	string_length: 8
//	overrides:
//	  - type: store.Order
//	    fields:
//	      Notes: size=4,len=3
//	      TotalCents:
//	        num: 1000
//	      Secret: "-"
//
// Field overrides take the fixture tag syntax, either as a single string or
// as a mapping of attributes. They are merged over the struct tags.
package options

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"fixture-generator/internal/mapping"
	"fixture-generator/node"
	"fixture-generator/primitive"
)

// DefaultCollectionSize is the number of elements of generated containers.
const DefaultCollectionSize = 1

var ErrInvalidConfig = errors.New("invalid config")

// Config tunes a manufacturer.
type Config struct {
	MaxDepth       int            `yaml:"max_depth"`
	CollectionSize int            `yaml:"collection_size"`
	StringLength   int            `yaml:"string_length"`
	Overrides      []TypeOverride `yaml:"overrides,omitempty"`
}

// TypeOverride overrides the metadata of the fields of one record type.
type TypeOverride struct {
	// Type is "alias.Name", the alias being the last element of the import
	// path, e.g. "store.Order".
	Type   string               `yaml:"type"`
	Fields map[string]FieldSpec `yaml:"fields"`
}

// FieldSpec is the metadata of one field in tag syntax.
type FieldSpec struct {
	Body string
}

// fieldAttrs is the mapping form of a FieldSpec.
type fieldAttrs struct {
	Exclude  bool    `yaml:"exclude"`
	Num      *string `yaml:"num"`
	Min      string  `yaml:"min"`
	Max      string  `yaml:"max"`
	Str      *string `yaml:"str"`
	Len      *int    `yaml:"len"`
	Size     *int    `yaml:"size"`
	Strategy string  `yaml:"strategy"`
	Elem     string  `yaml:"elem"`
	Key      string  `yaml:"key"`
	Value    string  `yaml:"value"`
	Comment  string  `yaml:"comment"`
}

// UnmarshalYAML accepts either a tag body or a mapping of attributes.
func (f *FieldSpec) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Decode(&f.Body)

	case yaml.MappingNode:
		var attrs fieldAttrs
		if err := n.Decode(&attrs); err != nil {
			return err
		}

		f.Body = mapping.Format(mapping.FieldOverride(attrs))
		return nil

	default:
		return fmt.Errorf("line %d: field override must be a string or a mapping", n.Line)
	}
}

// MarshalYAML writes the tag body.
func (f FieldSpec) MarshalYAML() (any, error) {
	return f.Body, nil
}

// Override parses the tag body.
func (f FieldSpec) Override() (mapping.FieldOverride, error) {
	return mapping.Parse(f.Body)
}

// Default returns the configuration used when none is given.
func Default() Config {
	return Config{
		MaxDepth:       node.DefaultMaxDepth,
		CollectionSize: DefaultCollectionSize,
		StringLength:   primitive.DefaultStringLength,
	}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse parses and validates YAML data. Settings missing from data keep
// their default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports every problem of cfg at once.
func Validate(cfg Config) error {
	var errs []error

	if cfg.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max_depth must not be negative, got %d", cfg.MaxDepth))
	}
	if cfg.CollectionSize < 0 {
		errs = append(errs, fmt.Errorf("collection_size must not be negative, got %d", cfg.CollectionSize))
	}
	if cfg.StringLength < 0 {
		errs = append(errs, fmt.Errorf("string_length must not be negative, got %d", cfg.StringLength))
	}

	seen := make(map[string]bool)
	for i, o := range cfg.Overrides {
		alias, name, ok := strings.Cut(o.Type, ".")
		if !ok || alias == "" || name == "" || strings.Contains(name, ".") {
			errs = append(errs, fmt.Errorf("overrides[%d]: type %q is not of the form alias.Name", i, o.Type))
			continue
		}
		if seen[o.Type] {
			errs = append(errs, fmt.Errorf("overrides[%d]: type %s is overridden twice", i, o.Type))
		}
		seen[o.Type] = true

		for _, field := range slices.Sorted(maps.Keys(o.Fields)) {
			if _, err := o.Fields[field].Override(); err != nil {
				errs = append(errs, fmt.Errorf("overrides[%d]: %s.%s: %w", i, o.Type, field, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// FieldOverrides returns the parsed overrides by type and field name.
// It assumes cfg is valid; unparsable entries are skipped.
func (cfg Config) FieldOverrides() map[string]map[string]mapping.FieldOverride {
	res := make(map[string]map[string]mapping.FieldOverride, len(cfg.Overrides))
	for _, o := range cfg.Overrides {
		fields := res[o.Type]
		if fields == nil {
			fields = make(map[string]mapping.FieldOverride, len(o.Fields))
			res[o.Type] = fields
		}

		for name, spec := range o.Fields {
			if ov, err := spec.Override(); err == nil {
				fields[name] = ov
			}
		}
	}

	return res
}
