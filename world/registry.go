// Package world implements the registry store (C3), the shared/partial
// instance model (C4), and the chunk pipeline (C7).
package world

import "sync"

// RegistryEntry is one named entry within a registry (a dimension type, a
// biome, a painting variant, ...). Value is left as opaque NBT-derived data
// since registry entry schemas are external, code-generated data per
// spec.md §1 ("the code-generated tables of block-state/item/entity-metadata
// shapes... the core consumes these as opaque registries").
type RegistryEntry struct {
	Name  string
	Value []byte
}

// Registry is one named, insertion-ordered table (e.g. "minecraft:dimension_type").
type Registry struct {
	Name    string
	Entries []RegistryEntry
}

// RegistryStore holds every registry snapshot pushed during Configuration.
// Reads are shared; writes occur only during configuration transitions
// (spec §4.3), so a single RWMutex covering the whole map is sufficient —
// there is no per-registry contention worth splitting out.
type RegistryStore struct {
	mu         sync.RWMutex
	registries map[string]Registry
}

func NewRegistryStore() *RegistryStore {
	return &RegistryStore{registries: make(map[string]Registry)}
}

// Install replaces (or adds) a named registry snapshot. Installation during
// configuration atomically swaps the snapshot (DESIGN.md: "registries as
// value types... installation... atomically swaps the snapshot").
func (r *RegistryStore) Install(reg Registry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registries[reg.Name] = reg
}

// Get returns the named registry and whether it was found.
func (r *RegistryStore) Get(name string) (Registry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.registries[name]
	return reg, ok
}

// Lookup finds a registry entry by registry name + entry name. Returns
// ErrRegistryMiss-style ok=false rather than an error; callers that need
// the §7 "registry miss" error taxonomy wrap this with their own
// fmt.Errorf("%w: ...", session.ErrRegistryMiss).
func (r *RegistryStore) Lookup(registryName, entryName string) (RegistryEntry, bool) {
	reg, ok := r.Get(registryName)
	if !ok {
		return RegistryEntry{}, false
	}
	for _, e := range reg.Entries {
		if e.Name == entryName {
			return e, true
		}
	}
	return RegistryEntry{}, false
}

// Merge installs every registry from other into r, with later inserts
// winning on name collision — the merge semantics §4.4 specifies for a new
// client's login registries joining an already-shared instance.
func (r *RegistryStore) Merge(other *RegistryStore) {
	other.mu.RLock()
	regs := make([]Registry, 0, len(other.registries))
	for _, reg := range other.registries {
		regs = append(regs, reg)
	}
	other.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range regs {
		r.registries[reg.Name] = reg
	}
}
