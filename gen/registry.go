package gen

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// NameRegistry tracks canonical names claimed during one generation pass.
// Only the first glyph to claim a name is kept; later claimants are
// counted and remembered, but produce no entry. The registry preserves
// insertion order, so the names it hands back follow the font's own
// enumeration order.
//
// A registry lives for exactly one pass. Not safe for concurrent use.
type NameRegistry struct {
	counts  *linkedhashmap.Map // canonical name -> occurrence count
	dropped []string
}

// NewNameRegistry creates an empty registry.
func NewNameRegistry() *NameRegistry {
	return &NameRegistry{counts: linkedhashmap.New()}
}

// Claim registers a canonical name and reports whether this was the first
// claim. Every claim increments the name's occurrence count, first or not.
func (reg *NameRegistry) Claim(name string) bool {
	if n, ok := reg.counts.Get(name); ok {
		reg.counts.Put(name, n.(int)+1)
		reg.dropped = append(reg.dropped, name)
		tracer().Debugf("name %q already claimed, glyph dropped", name)
		return false
	}
	reg.counts.Put(name, 1)
	return true
}

// Occurrences returns how often a name has been claimed, including the
// claims which were dropped.
func (reg *NameRegistry) Occurrences(name string) int {
	if n, ok := reg.counts.Get(name); ok {
		return n.(int)
	}
	return 0
}

// Len returns the number of distinct names claimed so far.
func (reg *NameRegistry) Len() int {
	return reg.counts.Size()
}

// Names returns the distinct claimed names in claim order.
func (reg *NameRegistry) Names() []string {
	keys := reg.counts.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Dropped returns the names of dropped duplicate claims, in the order the
// drops happened. Purely diagnostic; duplicate claims are not errors.
func (reg *NameRegistry) Dropped() []string {
	return reg.dropped
}
