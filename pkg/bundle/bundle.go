// Package bundle produces the macOS bundle descriptor data a packaging
// step needs to write a .vst3 or .clap bundle's Info.plist and PkgInfo —
// pure functions returning data, never touching the filesystem. Actually
// writing the bundle directory tree is an external packaging concern
// outside this module.
package bundle

import "github.com/zplugin/zplugin/pkg/plugin"

// InfoPlist returns the CFBundle* key/value pairs a plugin's Info.plist
// must declare, keyed exactly as Apple's plist format expects so a
// caller can hand this map straight to a plist encoder.
func InfoPlist(info plugin.Info) map[string]string {
	return map[string]string{
		"CFBundleExecutable":      info.Name,
		"CFBundleIdentifier":      "com.zplugin." + info.ID,
		"CFBundleName":            info.Name,
		"CFBundlePackageType":     "BNDL",
		"CFBundleSignature":       "????",
		"CFBundleVersion":         info.Version,
		"CFBundleShortVersionString": info.Version,
		"NSHighResolutionCapable": "true",
	}
}

// PkgInfoBytes returns the fixed 8-byte PkgInfo file content every
// classic Mac OS bundle carries: 4-byte type code followed by 4-byte
// creator code. VST3 and CLAP bundles both use the generic "BNDL????"
// pair since neither format registers a creator code with Apple.
func PkgInfoBytes() []byte {
	return []byte("BNDL????")
}
