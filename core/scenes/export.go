package scenes

import (
	"os"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes a scene to a YAML file.
func WriteYAML(scene *Scene, path string) error {
	data, err := yaml.Marshal(scene)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadYAML reads a scene from a YAML file.
func ReadYAML(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, err
	}

	return &scene, nil
}
