package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/arborlab/arbor/pkg/btschema"
)

// LoadFile reads a node-definition file and registers every definition in it.
//
// Definition files are JSON or YAML, holding either an array of definitions
// or a map keyed by definition name (in which case the key wins over any
// inline name). A bad entry is reported and skipped; the rest of the file
// still loads.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read definition file: %w", err)
	}
	if err := r.LoadBytes(data); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadDir loads every .json, .yaml and .yml file in dir (non-recursive).
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list definition dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".json", ".yaml", ".yml":
			if err := r.LoadFile(filepath.Join(dir, e.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadBytes parses definition content. YAML is a superset of JSON, so a
// single decode path handles both formats.
func (r *Registry) LoadBytes(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse definitions: %w", err)
	}

	var entries []rawEntry
	switch v := doc.(type) {
	case []any:
		for _, item := range v {
			entries = append(entries, rawEntry{value: item})
		}
	case map[string]any:
		for name, item := range v {
			entries = append(entries, rawEntry{name: name, value: item})
		}
	case nil:
		return nil
	default:
		return fmt.Errorf("definitions must be an array or a name-keyed map, got %T", doc)
	}

	var errs []error
	for _, e := range entries {
		def, err := parseEntry(e)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.Register(def)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d definition(s) rejected: %v", len(errs), errs)
	}
	return nil
}

type rawEntry struct {
	name  string
	value any
}

func parseEntry(e rawEntry) (*btschema.NodeDef, error) {
	var spec btschema.DefSpec
	if err := mapstructure.Decode(e.value, &spec); err != nil {
		return nil, fmt.Errorf("definition %q: %w", e.name, err)
	}
	if e.name != "" {
		spec.Name = e.name
	}
	return spec.Parse()
}
