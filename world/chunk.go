package world

import (
	ns "github.com/go-mclib/sessioncore/net_structures"
)

// chunkKey packs chunk coordinates into the map key used by Instance's
// sparse chunk_storage, mirroring the go-mclib-client WorldStore's
// int64-keyed map[int64]*ChunkColumn convention.
func chunkKey(x, z int32) int64 {
	return int64(x)<<32 | int64(uint32(z))
}

// Chunk is one loaded chunk column. Sections/biomes/light are kept as the
// raw wire payload (ns.ChunkData/ns.LightData already decode the
// self-delimiting envelope — heightmaps array, block-entity list, light
// bitmasks and arrays — but section palette/block-state interpretation is
// external, code-generated data per spec.md §1, so Sections is left
// opaque here rather than re-decoded into per-block state ids).
type Chunk struct {
	X, Z int32

	Data  ns.ChunkData
	Light ns.LightData

	// blockOverrides holds single-block edits applied by BlockUpdate /
	// SectionBlocksUpdate after the initial chunk commit. Keyed by packed
	// local (x<<24 | z<<20 | y&0xFFFFF) position within the column; values are raw
	// block-state ids. Kept separate from Data.Sections (opaque) so the
	// override layer can be consulted without re-parsing section data.
	blockOverrides map[int32]int32
}

func newChunk(x, z int32, data ns.ChunkData, light ns.LightData) *Chunk {
	return &Chunk{X: x, Z: z, Data: data, Light: light, blockOverrides: make(map[int32]int32)}
}

func packLocal(x, y, z int32) int32 {
	return (x&0xF)<<24 | (y & 0xFFFFF) | (z&0xF)<<20
}

// SetBlockState records a single-block override at the given world y and
// chunk-local x/z (0..15).
func (c *Chunk) SetBlockState(localX, y, localZ, stateID int32) {
	c.blockOverrides[packLocal(localX, y, localZ)] = stateID
}

// BlockState returns a previously applied override, if any. Callers that
// need the original chunk-section state must consult the external
// block-state table against Data.Sections themselves — this method only
// reports edits applied after the initial commit.
func (c *Chunk) BlockState(localX, y, localZ int32) (int32, bool) {
	v, ok := c.blockOverrides[packLocal(localX, y, localZ)]
	return v, ok
}
