package composition

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// EncodeJSON serializes a composition for the external renderer.
func EncodeJSON(c *Composition) ([]byte, error) {
	data, err := sonic.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding composition: %w", err)
	}
	return data, nil
}

// WriteJSON writes a composition as a JSON scene file.
func WriteJSON(c *Composition, path string) error {
	data, err := EncodeJSON(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WriteYAML writes a composition as a YAML scene file.
func WriteYAML(c *Composition, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding composition: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ReadJSON loads a previously written JSON scene file.
func ReadJSON(path string) (*Composition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Composition
	if err := sonic.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing composition: %w", err)
	}
	return &c, nil
}
