// Package clapwrap holds the logic a CLAP host-facing wrapper needs: value
// formatting/parsing for the host's text-entry UI, and translation between
// CLAP's event model and the framework's unified event.Event. It models
// CLAP's C ABI contracts in pure Go — no cgo, no flat C function-pointer
// structs — since those types are defined outside this module's scope;
// a cgo bridge layer would consume this package's types at its boundary.
package clapwrap

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/zplugin/zplugin/pkg/param"
)

// Format renders a parameter's current plain value as host-facing text,
// per its declared Kind: "%.2f <unit>" (or "%.2f" with no unit) for
// Continuous, the integer plain
// value for Integer, "On"/"Off" for Boolean, and the selected label for
// Choice.
func Format(d param.Declaration, plain float64) string {
	switch d.Kind {
	case param.Boolean:
		if plain >= 0.5 {
			return "On"
		}
		return "Off"
	case param.Choice:
		norm := d.Normalize(plain)
		return d.ChoiceLabel(norm)
	case param.Integer:
		return fmt.Sprintf("%d", int(math.Round(plain)))
	default:
		if d.Unit != "" {
			return fmt.Sprintf("%.2f %s", plain, d.Unit)
		}
		return fmt.Sprintf("%.2f", plain)
	}
}

// Parse converts host-entered text back to a plain value for d. Choice
// parameters match against their labels case-insensitively; Boolean
// parameters accept "on"/"off"/"true"/"false"/"1"/"0"; everything else
// is parsed as a float after stripping d's unit suffix, if present.
func Parse(d param.Declaration, text string) (float64, error) {
	text = strings.TrimSpace(text)
	switch d.Kind {
	case param.Boolean:
		switch strings.ToLower(text) {
		case "on", "true", "1":
			return 1, nil
		case "off", "false", "0":
			return 0, nil
		}
		return 0, fmt.Errorf("clapwrap: %q is not a boolean value", text)
	case param.Choice:
		count := len(d.Labels)
		for i, label := range d.Labels {
			if strings.EqualFold(label, text) {
				if count <= 1 {
					return d.Unnormalize(0), nil
				}
				return d.Unnormalize(float64(i) / float64(count-1)), nil
			}
		}
		return 0, fmt.Errorf("clapwrap: %q is not one of %v", text, d.Labels)
	default:
		if d.Unit != "" {
			text = strings.TrimSuffix(strings.TrimSpace(text), d.Unit)
			text = strings.TrimSpace(text)
		}
		return strconv.ParseFloat(text, 64)
	}
}
