package param

import (
	"fmt"
	"sort"
)

// Registry is the ordered, validated set of a plugin's parameter
// declarations, plus a sorted {hash -> index} table for O(log N) lookup
// by stable id hash — the CLAP and VST3 wrappers both need to resolve an
// incoming automation event's numeric id back to a declaration index at
// block rate, so a linear scan is not acceptable (see design notes: the
// sorted table is the contract, a linear-scan fallback is not).
type Registry struct {
	decls []Declaration
	table []hashEntry
}

type hashEntry struct {
	hash  uint32
	index int
}

// NewRegistry validates decls (unique string ids, unique FNV-1a/32 hashes,
// in-range defaults, strictly positive log-range endpoints) and builds the
// sorted lookup table. A validation failure is a programmer error — an
// author's parameter set is fixed at compile time — so it is reported as
// an error rather than panicking, letting tooling (e.g. the zplugin-tool
// CLI) surface it before a build.
func NewRegistry(decls []Declaration) (*Registry, error) {
	ids := make(map[string]int, len(decls))
	table := make([]hashEntry, len(decls))

	for i, d := range decls {
		if d.Kind == Choice && len(d.Labels) == 0 {
			return nil, fmt.Errorf("param %q: choice parameter needs at least one label", d.ID)
		}
		if (d.Kind == Continuous || d.Kind == Integer) && d.Range.Max < d.Range.Min {
			return nil, fmt.Errorf("param %q: range max %v is below min %v", d.ID, d.Range.Max, d.Range.Min)
		}
		if d.Kind == Continuous && d.Range.Log && d.Range.Min <= 0 {
			return nil, fmt.Errorf("param %q: logarithmic range requires min > 0", d.ID)
		}
		if prev, exists := ids[d.ID]; exists {
			return nil, fmt.Errorf("param %q: duplicate string id (also used by index %d)", d.ID, prev)
		}
		ids[d.ID] = i

		if (d.Kind == Continuous || d.Kind == Integer) && (d.DefaultPlain < d.Range.Min || d.DefaultPlain > d.Range.Max) {
			return nil, fmt.Errorf("param %q: default %v is outside range [%v, %v]", d.ID, d.DefaultPlain, d.Range.Min, d.Range.Max)
		}
		if d.Kind == Choice && (d.DefaultIndex < 0 || d.DefaultIndex >= len(d.Labels)) {
			return nil, fmt.Errorf("param %q: default index %d is outside [0, %d)", d.ID, d.DefaultIndex, len(d.Labels))
		}

		norm := d.DefaultNormalized()
		if norm < 0 || norm > 1 {
			return nil, fmt.Errorf("param %q: default value normalizes outside [0,1]", d.ID)
		}

		table[i] = hashEntry{hash: d.IDHash(), index: i}
	}

	sort.Slice(table, func(i, j int) bool { return table[i].hash < table[j].hash })
	for i := 1; i < len(table); i++ {
		if table[i].hash == table[i-1].hash {
			a, b := decls[table[i].index], decls[table[i-1].index]
			return nil, fmt.Errorf("param %q and %q: FNV-1a/32 hash collision (0x%08x)", a.ID, b.ID, table[i].hash)
		}
	}

	return &Registry{decls: decls, table: table}, nil
}

// Count returns the number of declared parameters.
func (r *Registry) Count() int { return len(r.decls) }

// Declarations returns every declaration, in declaration order.
func (r *Registry) Declarations() []Declaration { return r.decls }

// ByIndex returns the declaration at position i.
func (r *Registry) ByIndex(i int) Declaration { return r.decls[i] }

// IndexForHash resolves a stable-id hash to a declaration index with an
// O(log N) binary search over the sorted hash table.
func (r *Registry) IndexForHash(hash uint32) (int, bool) {
	lo, hi := 0, len(r.table)
	for lo < hi {
		mid := (lo + hi) / 2
		if r.table[mid].hash < hash {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(r.table) && r.table[lo].hash == hash {
		return r.table[lo].index, true
	}
	return 0, false
}

// IndexForID resolves a parameter's stable string id to its declaration
// index by hashing it and going through IndexForHash.
func (r *Registry) IndexForID(id string) (int, bool) {
	d := Declaration{ID: id}
	return r.IndexForHash(d.IDHash())
}
