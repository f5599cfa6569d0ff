// Package environment names the background settings a scene can be composed
// under. Built-in environments are always available; extra ones can be
// dropped in as YAML files (assets/environments/*.yaml).
package environment

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is one environment entry. Background is a hex color like
// "#rrggbb"; Skybox is an optional panorama/cubemap image path.
type Definition struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Skybox     string `yaml:"skybox,omitempty"`
}

// Default is the environment used when a document names none or an unknown
// one.
const Default = "studio"

// builtin environments; file definitions with the same name override these.
var builtin = map[string]Definition{
	"studio": {Name: "studio", Background: "#3a3a40"},
	"sunset": {Name: "sunset", Background: "#7a4a3a"},
	"night":  {Name: "night", Background: "#0c0f1e"},
}

// Table holds the known environments for one editor session.
type Table struct {
	defs map[string]Definition
}

// NewTable returns a table with only the built-in environments.
func NewTable() *Table {
	t := &Table{defs: make(map[string]Definition, len(builtin))}
	for name, d := range builtin {
		t.defs[name] = d
	}
	return t
}

// LoadDir merges every *.yaml definition under dir on fsys into the table.
// A file that fails to decode is skipped with its error returned alongside
// the rest; decodable files are always applied.
func (t *Table) LoadDir(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("environments %q: %w", dir, err)
	}
	var firstErr error
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		name := path.Join(dir, e.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("environment %q: %w", name, err)
			}
			continue
		}
		var d Definition
		if err := yaml.Unmarshal(data, &d); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("environment %q: %w", name, err)
			}
			continue
		}
		if d.Name == "" {
			d.Name = strings.TrimSuffix(e.Name(), ".yaml")
		}
		t.defs[d.Name] = d
	}
	return firstErr
}

// Resolve returns the definition for name, falling back to the default
// environment for unknown names. Total, like the lighting resolvers.
func (t *Table) Resolve(name string) Definition {
	if d, ok := t.defs[name]; ok {
		return d
	}
	return t.defs[Default]
}

// Names returns every known environment name, sorted.
func (t *Table) Names() []string {
	out := make([]string, 0, len(t.defs))
	for name := range t.defs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ParseColor converts "#rrggbb" (or "rrggbb") to RGB channels in [0,1].
func ParseColor(s string) ([3]float32, error) {
	hexStr := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hexStr) != 6 {
		return [3]float32{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	var out [3]float32
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hexStr[i*2:i*2+2], 16, 8)
		if err != nil {
			return [3]float32{}, fmt.Errorf("color %q: %w", s, err)
		}
		out[i] = float32(v) / 255
	}
	return out, nil
}
