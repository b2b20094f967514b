package artifact

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlArtifactFile is the top-level YAML structure for artifact files.
type yamlArtifactFile struct {
	Artifacts []Artifact `yaml:"artifacts"`
}

// LoadFromFile reads an artifact YAML file and builds a Registry.
//
// Precondition: path must point to a valid YAML artifact file.
// Postcondition: Returns a Registry or a non-nil error.
func LoadFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading artifact file %s: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses artifact YAML and builds a Registry.
//
// Postcondition: Returns a Registry or a non-nil error.
func LoadFromBytes(data []byte) (*Registry, error) {
	var file yamlArtifactFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing artifact YAML: %w", err)
	}
	return NewRegistry(file.Artifacts)
}
