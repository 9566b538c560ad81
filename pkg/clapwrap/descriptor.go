package clapwrap

import "github.com/zplugin/zplugin/pkg/plugin"

// Descriptor mirrors the fields a clap_plugin_descriptor_t exposes to a
// host scanning for plugins: id, name, vendor, version, and free-form
// feature tags used for host-side categorization and search.
type Descriptor struct {
	ID       string
	Name     string
	Vendor   string
	Version  string
	Features []string
}

// DescriptorFrom builds a Descriptor from an Info, tagging it with a
// feature list derived from Category — CLAP hosts group plugins by
// feature string rather than a single enum category the way VST3 does.
func DescriptorFrom(info plugin.Info) Descriptor {
	features := []string{"audio-effect"}
	switch info.Category {
	case "Instrument":
		features = []string{"instrument"}
	case "Fx":
		features = []string{"audio-effect"}
	}
	return Descriptor{
		ID:       info.ID,
		Name:     info.Name,
		Vendor:   info.Vendor,
		Version:  info.Version,
		Features: features,
	}
}
