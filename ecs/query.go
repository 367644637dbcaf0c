package ecs

// Query2 returns every entity present in both a and b, together with their
// values from each set. Implements the "structural queries (e.g. all
// entities with Position and LoadedBy)" contract from spec §4.5. Iterates
// the smaller set for efficiency; result order is insertion-agnostic.
func Query2[A, B any](a *ComponentSet[A], b *ComponentSet[B]) []struct {
	Entity Entity
	A      A
	B      B
} {
	type row = struct {
		Entity Entity
		A      A
		B      B
	}

	a.mu.RLock()
	b.mu.RLock()
	defer a.mu.RUnlock()
	defer b.mu.RUnlock()

	var out []row
	if len(a.data) <= len(b.data) {
		for e, av := range a.data {
			if bv, ok := b.data[e]; ok {
				out = append(out, row{Entity: e, A: av, B: bv})
			}
		}
	} else {
		for e, bv := range b.data {
			if av, ok := a.data[e]; ok {
				out = append(out, row{Entity: e, A: av, B: bv})
			}
		}
	}
	return out
}

// Query3 is Query2 extended to a three-way component intersection.
func Query3[A, B, C any](a *ComponentSet[A], b *ComponentSet[B], c *ComponentSet[C]) []struct {
	Entity Entity
	A      A
	B      B
	C      C
} {
	type row = struct {
		Entity Entity
		A      A
		B      B
		C      C
	}

	a.mu.RLock()
	b.mu.RLock()
	c.mu.RLock()
	defer a.mu.RUnlock()
	defer b.mu.RUnlock()
	defer c.mu.RUnlock()

	var out []row
	for e, av := range a.data {
		bv, ok := b.data[e]
		if !ok {
			continue
		}
		cv, ok := c.data[e]
		if !ok {
			continue
		}
		out = append(out, row{Entity: e, A: av, B: bv, C: cv})
	}
	return out
}
