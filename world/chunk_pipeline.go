package world

import (
	ns "github.com/go-mclib/sessioncore/net_structures"
)

// BatchStats reports throughput for one chunk batch (BatchStart ->
// LevelChunkWithLight* -> BatchFinished), so higher layers can measure
// throughput and adapt requested view distance (spec §4.7).
type BatchStats struct {
	ChunksReceived int
}

// ChunkPipeline drives one client's chunk receive -> stage -> commit flow
// against a shared Instance and that client's PartialInstance. Grounded on
// go-mclib-client's WorldStore.HandlePacket dispatch shape, generalized to
// the batch start/finished bookkeeping spec §4.7 adds on top.
type ChunkPipeline struct {
	Instance *Instance
	Partial  *PartialInstance

	inBatch    bool
	batchStats BatchStats
}

func NewChunkPipeline(inst *Instance, partial *PartialInstance) *ChunkPipeline {
	return &ChunkPipeline{Instance: inst, Partial: partial}
}

// BeginBatch marks the start of a chunk batch, per the BatchStart packet.
func (p *ChunkPipeline) BeginBatch() {
	p.inBatch = true
	p.batchStats = BatchStats{}
}

// ReceiveChunk decodes and commits one LevelChunkWithLight chunk. The
// chunk is always committed to the shared Instance; it is only added to
// the PartialInstance's tracked window if it falls inside the current
// view (§4.7 edge policy: "a chunk arriving for a position outside the
// current partial window is committed to the shared instance but not
// tracked in the partial view").
func (p *ChunkPipeline) ReceiveChunk(x, z int32, data ns.ChunkData, light ns.LightData) {
	chunk := newChunk(x, z, data, light)
	p.Instance.CommitChunk(chunk)
	p.Partial.Track(x, z)

	if p.inBatch {
		p.batchStats.ChunksReceived++
	}
}

// ForgetChunk handles ForgetLevelChunk: drops from the partial view only
// (§4.7) — the shared instance may retain the chunk for another client.
func (p *ChunkPipeline) ForgetChunk(x, z int32) {
	p.Partial.Untrack(x, z)
}

// EndBatch marks BatchFinished and returns the stats accumulated since
// BeginBatch, so the caller can reply with C2SChunkBatchReceived and
// optionally adapt view distance.
func (p *ChunkPipeline) EndBatch() BatchStats {
	stats := p.batchStats
	p.inBatch = false
	p.batchStats = BatchStats{}
	return stats
}

// DiscardOpenBatch abandons an in-progress batch without committing
// anything further — used on mid-batch disconnect, per spec §8's boundary
// behavior "Disconnect mid-chunk-batch: the open batch is discarded; no
// partial chunks committed." Chunks already committed via ReceiveChunk
// before the disconnect remain committed; only the batch bookkeeping is
// reset.
func (p *ChunkPipeline) DiscardOpenBatch() {
	p.inBatch = false
	p.batchStats = BatchStats{}
}

// HandleLightUpdate accepts and discards a LightUpdate packet's payload
// without allocating beyond what decoding the packet itself required — the
// chunk pipeline has no consumer for light data yet (DESIGN.md Open
// Question decision #4).
func (p *ChunkPipeline) HandleLightUpdate(_ ns.LightData) {
	// intentionally a no-op
}

// ApplyBlockUpdate applies a single-block edit (BlockUpdate) directly to
// the committed chunk, if loaded.
func (p *ChunkPipeline) ApplyBlockUpdate(pos ns.Position, stateID int32) {
	chunkX, chunkZ := int32(pos.X)>>4, int32(pos.Z)>>4
	chunk, ok := p.Instance.Chunk(chunkX, chunkZ)
	if !ok {
		return
	}
	chunk.SetBlockState(pos.X&0xF, int32(pos.Y), pos.Z&0xF, stateID)
}

// ApplySectionBlocksUpdate applies every packed block entry from a
// SectionBlocksUpdate to the committed chunk, if loaded. entries are
// VarLong-packed as (state_id << 12) | (local_x << 8) | (local_z << 4) |
// local_y, matching the vanilla wire format.
func (p *ChunkPipeline) ApplySectionBlocksUpdate(sectionX, sectionY, sectionZ int32, entries []int64) {
	chunk, ok := p.Instance.Chunk(sectionX, sectionZ)
	if !ok {
		return
	}
	for _, packed := range entries {
		stateID := int32(packed >> 12)
		localX := int32(packed >> 8 & 0xF)
		localZ := int32(packed >> 4 & 0xF)
		localY := int32(packed & 0xF)
		y := sectionY*16 + localY
		chunk.SetBlockState(localX, y, localZ, stateID)
	}
}
