package world

// PartialInstance is a per-client view: a square window over the shared
// Instance's chunk storage, clipped to the client's configured view
// distance, plus the owner entity id so self-predicted updates aren't
// double-applied (spec §3).
type PartialInstance struct {
	Instance *Instance

	// OwnerEntityID is the MinecraftEntityId of the client that owns this
	// view — compared against incoming packet entity ids so the client's
	// own predicted movement isn't re-applied from the server's echo.
	OwnerEntityID int32

	centerX, centerZ int32
	viewDistance     int32
	tracked          map[int64]struct{}
}

// NewPartialInstance creates a window with the given initial view
// distance, centered at the origin until SetChunkCacheCenter arrives.
func NewPartialInstance(inst *Instance, ownerEntityID int32, viewDistance int32) *PartialInstance {
	return &PartialInstance{
		Instance:      inst,
		OwnerEntityID: ownerEntityID,
		viewDistance:  viewDistance,
		tracked:       make(map[int64]struct{}),
	}
}

// SetChunkCacheCenter updates the window's center. Per P7, after this call
// the window must contain exactly the chunks in
// [x-r, x+r] x [z-r, z+r] that have been delivered — chunks outside the
// new window are untracked (but remain committed in the shared Instance;
// §4.7's edge policy).
func (p *PartialInstance) SetChunkCacheCenter(x, z int32) {
	p.centerX, p.centerZ = x, z
	p.pruneOutOfWindow()
}

// SetChunkCacheRadius updates the radius, reallocating the tracked set
// (spec §4.4: "SetChunkCacheRadius updates the radius (reallocation)").
func (p *PartialInstance) SetChunkCacheRadius(r int32) {
	p.viewDistance = r
	p.pruneOutOfWindow()
}

// Track records that a delivered chunk at (x, z) falls within the current
// window. A position outside the window is ignored, so a chunk delivered
// there stays untracked while the caller still commits it to the shared
// Instance (§4.7 edge policy).
func (p *PartialInstance) Track(x, z int32) {
	if !p.InWindow(x, z) {
		return
	}
	p.tracked[chunkKey(x, z)] = struct{}{}
}

// Untrack removes (x, z) from the window, used by ForgetLevelChunk — which
// clips the partial view only; the shared instance may retain the chunk if
// another client still holds it (§4.7).
func (p *PartialInstance) Untrack(x, z int32) {
	delete(p.tracked, chunkKey(x, z))
}

// InWindow reports whether (x, z) falls within the current center/radius
// square.
func (p *PartialInstance) InWindow(x, z int32) bool {
	return x >= p.centerX-p.viewDistance && x <= p.centerX+p.viewDistance &&
		z >= p.centerZ-p.viewDistance && z <= p.centerZ+p.viewDistance
}

// IsTracked reports whether (x, z) is currently in the tracked window —
// the basis for testing P7.
func (p *PartialInstance) IsTracked(x, z int32) bool {
	_, ok := p.tracked[chunkKey(x, z)]
	return ok
}

// TrackedCount returns the number of chunks currently tracked in the
// window.
func (p *PartialInstance) TrackedCount() int {
	return len(p.tracked)
}

func (p *PartialInstance) pruneOutOfWindow() {
	for key := range p.tracked {
		x := int32(key >> 32)
		z := int32(uint32(key))
		if !p.InWindow(x, z) {
			delete(p.tracked, key)
		}
	}
}
