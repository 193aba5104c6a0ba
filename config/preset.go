package config // Shared panel preset handling

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a saved panel setup. Classroom sessions reuse the same prompt,
// panel size, and seed across tools, so the screening and report tools both
// accept a preset file instead of repeating flags.
type Preset struct {
	Prompt string `yaml:"prompt"`
	Count  int    `yaml:"count"`
	Length int    `yaml:"length"`
	Seed   uint32 `yaml:"seed"`
	Lab    bool   `yaml:"lab"`
}

// DefaultPreset mirrors the tool flag defaults.
func DefaultPreset() Preset {
	return Preset{
		Prompt: "",
		Count:  5,
		Length: 30,
		Seed:   1,
		Lab:    false,
	}
}

// LoadPreset reads a YAML preset file. Missing keys keep their defaults.
func LoadPreset(path string) (Preset, error) {
	p := DefaultPreset()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read preset: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse preset: %w", err)
	}
	if p.Count < 0 {
		p.Count = 0
	}
	if p.Length < 0 {
		p.Length = 0
	}
	return p, nil
}
