// Package vst3wrap holds the logic a VST3 host-facing wrapper needs:
// deriving a stable 16-byte class ID from a plugin's string identifier,
// a shared, cache-line-padded atomic reference count modeling VST3's
// COM-style lifetime, thin non-owning views standing in for the
// interface vtables a real COM object would expose, and translation
// between VST3's event model and the framework's unified event.Event.
//
// ClassID derives a plugin's 16-byte class ID from a SHA-256 digest of
// its string identifier, truncated to 16 bytes: deterministic,
// collision-resistant in practice, and requires no per-plugin
// registration table.
package vst3wrap

import "crypto/sha256"

// ClassID derives a stable 16-byte VST3 class ID from a plugin's string
// identifier. The same id always yields the same ClassID; two distinct
// ids yield different ClassIDs with overwhelming probability.
func ClassID(pluginID string) [16]byte {
	digest := sha256.Sum256([]byte(pluginID))
	var id [16]byte
	copy(id[:], digest[:16])
	return id
}
