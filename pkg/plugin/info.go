// Package plugin defines the contract an author implements once — Info,
// Author, and ProcessContext — and the generic Instance that wraps an
// author's type for compile-time monomorphized dispatch. The Author
// contract is host-neutral: both pkg/clapwrap and pkg/vst3wrap drive the
// same Instance.
package plugin

// Info carries the metadata a wrapper needs to describe a plugin to a
// host: its stable identifier, display name, version, vendor, and
// category. ID is the value hashed (in pkg/vst3wrap) into a class ID and
// used verbatim as CLAP's plugin ID; it must never change across
// releases once a host has persisted state keyed by it.
type Info struct {
	ID       string
	Name     string
	Version  string
	Vendor   string
	Category string
}
