package menu

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileDefinition is the YAML shape of a menu definition file. Handlers
// cannot be expressed in a file; callers bind them by key after loading.
type fileDefinition struct {
	Items []fileItem `yaml:"items"`
}

type fileItem struct {
	Key      string `yaml:"key"`
	Label    string `yaml:"label"`
	Title    string `yaml:"title"`
	Disabled bool   `yaml:"disabled"`
}

// LoadDefinition reads a menu definition from a YAML file. Each item
// becomes an Options entry; items marked disabled become label-only rows.
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu definition: %w", err)
	}

	var file fileDefinition
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse menu definition: %w", err)
	}

	def := make(Definition, 0, len(file.Items))
	for _, fi := range file.Items {
		if fi.Key == "" {
			return nil, fmt.Errorf("menu definition %s: item without key", path)
		}
		enabled := !fi.Disabled
		def = append(def, Entry{
			Key: fi.Key,
			Spec: Options{
				Label:   fi.Label,
				Title:   fi.Title,
				Enabled: &enabled,
			},
		})
	}
	return def, nil
}

// BindHandler attaches a select handler to the entry with the given key,
// returning false if the key is not present. Used to wire behavior onto
// definitions loaded from files.
func (d Definition) BindHandler(key string, fn SelectFunc) bool {
	for i, entry := range d {
		if entry.Key != key {
			continue
		}
		switch spec := entry.Spec.(type) {
		case Options:
			spec.OnSelect = fn
			d[i].Spec = spec
		default:
			d[i].Spec = Do(fn)
		}
		return true
	}
	return false
}
