package loader

import (
	"sigs.k8s.io/yaml"

	"github.com/geange/automaton/v2"
)

// MarshalYAML Encodes a definition as YAML, using the JSON field names of
// automaton.Definition.
func MarshalYAML(def *automaton.Definition) ([]byte, error) {
	return yaml.Marshal(def)
}

// MarshalJSON Encodes a definition as JSON with the same field names.
func MarshalJSON(def *automaton.Definition) ([]byte, error) {
	b, err := yaml.Marshal(def)
	if err != nil {
		return nil, err
	}
	return yaml.YAMLToJSON(b)
}

// UnmarshalYAML Decodes a YAML or JSON definition and validates it.
func UnmarshalYAML(b []byte) (*automaton.Definition, error) {
	def := &automaton.Definition{}
	if err := yaml.UnmarshalStrict(b, def); err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}
