package layout

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Definition is a named layout with optional digraph rules.
type Definition struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Keys        string            `yaml:"keys"`
	Magic       map[string]string `yaml:"magic"`
}

// Builtin returns the embedded layout catalogue.
func Builtin() ([]Definition, error) {
	data, err := builtinFS.ReadFile("builtin/layouts.yaml")
	if err != nil {
		return nil, fmt.Errorf("layout.Builtin: %w", err)
	}
	var defs []Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("layout.Builtin: parse: %w", err)
	}
	for _, d := range defs {
		if len(d.Keys) != Size {
			return nil, fmt.Errorf("layout.Builtin: %q: %w", d.Name, ErrLayoutLength)
		}
	}
	return defs, nil
}

// Catalog merges built-in layouts with user layouts. User entries replace
// built-ins of the same name.
func Catalog(user map[string]string) (map[string]Definition, error) {
	defs, err := Builtin()
	if err != nil {
		return nil, err
	}
	out := make(map[string]Definition, len(defs)+len(user))
	for _, d := range defs {
		out[d.Name] = d
	}
	for name, keys := range user {
		out[name] = Definition{Name: name, Keys: keys}
	}
	return out, nil
}

// Names returns the catalogue names sorted.
func Names(catalog map[string]Definition) []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve finds a layout by name, falling back to treating the argument as
// a literal 32-character layout.
func Resolve(catalog map[string]Definition, nameOrKeys string) (Definition, error) {
	if d, ok := catalog[nameOrKeys]; ok {
		return d, nil
	}
	if len(nameOrKeys) == Size {
		return Definition{Name: "custom", Keys: nameOrKeys}, nil
	}
	return Definition{}, fmt.Errorf("unknown layout %q (available: %v)", nameOrKeys, Names(catalog))
}

// MagicRules converts string-keyed digraph rules to bytes.
func MagicRules(raw map[string]string) (map[byte]byte, error) {
	rules := make(map[byte]byte, len(raw))
	for k, v := range raw {
		if len(k) != 1 || len(v) != 1 {
			return nil, fmt.Errorf("magic rule %q -> %q must map one character to one character", k, v)
		}
		rules[k[0]] = v[0]
	}
	return rules, nil
}
