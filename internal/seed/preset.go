package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset describes a named seeding profile.
type Preset struct {
	Name    string `yaml:"name"`
	Users   int    `yaml:"users"`
	Groups  int    `yaml:"groups"`
	Prayers int    `yaml:"prayers"`
	Clean   bool   `yaml:"clean"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets reads seeding presets from a YAML file.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse preset file: %w", err)
	}
	return file.Presets, nil
}

// ApplyPreset runs the named preset from the given YAML file.
func (s *Seeder) ApplyPreset(path, name string) error {
	presets, err := LoadPresets(path)
	if err != nil {
		return err
	}

	for _, preset := range presets {
		if preset.Name != name {
			continue
		}
		if preset.Clean {
			if err := s.ClearAll(); err != nil {
				return err
			}
		}
		return s.SeedCommunity(Options{
			NumUsers:   preset.Users,
			NumGroups:  preset.Groups,
			NumPrayers: preset.Prayers,
		})
	}

	return fmt.Errorf("preset %q not found in %s", name, path)
}
