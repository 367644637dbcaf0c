package ecs

import "sync"

// relativeUpdateKey identifies one (entity, packet-kind) application within
// a single frame — the unit spec §4.5/§9/P6 require to be idempotent so
// that swarm deliveries (the same update observed through multiple
// connections sharing an instance) don't double-apply.
type relativeUpdateKey struct {
	Entity Entity
	Kind   string
}

// RelativeUpdateGuard deduplicates relative-entity updates within a frame.
// Call Begin(entity, kind) before running the update's callback; if it
// returns false, the update was already applied this frame and the caller
// must skip running the callback again (though it may still emit whatever
// event the packet implies, per the spec's end-to-end scenario 3: both
// clients still get their own KnockbackEvent).
type RelativeUpdateGuard struct {
	mu     sync.Mutex
	seen   map[relativeUpdateKey]struct{}
}

func NewRelativeUpdateGuard() *RelativeUpdateGuard {
	return &RelativeUpdateGuard{seen: make(map[relativeUpdateKey]struct{})}
}

// Begin returns true the first time (e, kind) is seen since the last
// EndFrame, false on every subsequent call this frame.
func (g *RelativeUpdateGuard) Begin(e Entity, kind string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := relativeUpdateKey{Entity: e, Kind: kind}
	if _, ok := g.seen[key]; ok {
		return false
	}
	g.seen[key] = struct{}{}
	return true
}

// EndFrame clears the dedupe set; called once per inbound frame (not once
// per tick — §4.5 scopes idempotence to "within a frame").
func (g *RelativeUpdateGuard) EndFrame() {
	g.mu.Lock()
	defer g.mu.Unlock()
	clear(g.seen)
}
