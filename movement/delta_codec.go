// Package movement implements the tick-driven movement/physics
// reconciliation pipeline (C9): the delta position codec, rotation byte
// decode, and the system that diffs client-predicted state against
// authoritative server teleports.
package movement

import "math"

// deltaDivisor is the fixed-point scale MoveEntityPos/MoveEntityPosRot/
// MoveEntityRot use to pack a position delta into a signed 16-bit field
// (spec glossary: "Delta codec ... resets on absolute teleport").
const deltaDivisor = 4096.0

// maxDeltaBlocks is the largest single-axis delta the 16-bit encoding can
// represent: 32767 / 4096 ≈ 7.999..., i.e. "8 blocks" per spec §8's
// round-trip law. Anything larger must arrive as an absolute TeleportEntity
// instead.
const maxDeltaBlocks = 8.0

// EncodeDelta computes the signed fixed-point delta from base to pos on
// one axis. ok is false if the delta exceeds what a 16-bit field can carry
// (|delta| > 8 blocks, or exactly +8 blocks, which would need 32768) — per
// spec §8, the server is expected to have sent an absolute TeleportEntity in
// that case instead, so encoding is only attempted when the caller already
// knows it's in range.
func EncodeDelta(base, pos float64) (delta int16, ok bool) {
	d := pos - base
	scaled := d * deltaDivisor
	if math.Abs(d) > maxDeltaBlocks || scaled > math.MaxInt16 || scaled < math.MinInt16 {
		return 0, false
	}
	return int16(scaled), true
}

// DecodeDelta reconstructs an absolute coordinate from a stored base and a
// signed fixed-point delta (MoveEntityPos/MoveEntityPosRot/MoveEntityRot's
// wire representation).
func DecodeDelta(base float64, delta int16) float64 {
	return base + float64(delta)/deltaDivisor
}

// DeltaCodec tracks one entity's stored base position, the point every
// subsequent relative move packet is decoded against until the next
// absolute reset.
type DeltaCodec struct {
	BaseX, BaseY, BaseZ float64
}

// Reset sets the codec's base to an absolute position — called on
// TeleportEntity / EntityPositionSync / any authoritative absolute update
// (spec §8: "treating the absolute packet as base-reset").
func (c *DeltaCodec) Reset(x, y, z float64) {
	c.BaseX, c.BaseY, c.BaseZ = x, y, z
}

// ApplyDelta decodes a MoveEntityPos-style relative update against the
// current base and advances the base to the resulting position (so the
// next relative update is relative to this one, not the original base).
func (c *DeltaCodec) ApplyDelta(dx, dy, dz int16) (x, y, z float64) {
	x = DecodeDelta(c.BaseX, dx)
	y = DecodeDelta(c.BaseY, dy)
	z = DecodeDelta(c.BaseZ, dz)
	c.BaseX, c.BaseY, c.BaseZ = x, y, z
	return x, y, z
}
