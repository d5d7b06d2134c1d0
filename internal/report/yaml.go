package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/synthlab/synthgridgo/internal/config"
)

// yamlReport is the document shape of the yaml format. Bindings nest
// scope, then component, then parameter; the default scope is the empty
// string key.
type yamlReport struct {
	Model    string                               `yaml:"model"`
	Root     string                               `yaml:"root"`
	Files    []string                             `yaml:"files"`
	Bindings map[string]map[string]map[string]any `yaml:"bindings"`
}

func writeYAML(w io.Writer, cfg *config.Model, conv config.Converter) error {
	doc := yamlReport{
		Model:    cfg.Name,
		Root:     cfg.Root.Marker(),
		Files:    cfg.Files,
		Bindings: make(map[string]map[string]map[string]any),
	}

	for _, key := range cfg.Bindings.Keys() {
		b, ok := cfg.Bindings.Get(key)
		if !ok {
			continue
		}
		native, err := conv.ToNative(b.Value)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", key, err)
		}

		scope := doc.Bindings[key.Scope]
		if scope == nil {
			scope = make(map[string]map[string]any)
			doc.Bindings[key.Scope] = scope
		}
		component := scope[key.Component]
		if component == nil {
			component = make(map[string]any)
			scope[key.Component] = component
		}
		component[key.Param] = native
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
