// Package manifest loads the YAML build manifest describing one
// plugin's identity and which host formats to emit it for.
package manifest

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Manifest is the top-level shape of a plugin's build manifest file.
type Manifest struct {
	Name     string   `yaml:"name"`
	Vendor   string   `yaml:"vendor"`
	URL      string   `yaml:"url"`
	PluginID string   `yaml:"plugin_id"`
	Version  string   `yaml:"version"`
	Category string   `yaml:"category"`
	Formats  []string `yaml:"formats"`
}

// Load parses a manifest from r and validates the required fields are
// present.
func Load(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if m.PluginID == "" {
		return nil, fmt.Errorf("manifest: plugin_id is required")
	}
	if m.Name == "" {
		return nil, fmt.Errorf("manifest: name is required")
	}
	if len(m.Formats) == 0 {
		m.Formats = []string{"clap", "vst3"}
	}
	for _, f := range m.Formats {
		if f != "clap" && f != "vst3" {
			return nil, fmt.Errorf("manifest: unknown format %q", f)
		}
	}
	return &m, nil
}
