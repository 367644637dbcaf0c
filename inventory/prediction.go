package inventory

import "sort"

// PredictedBlock is one speculative client-side block placement, buffered
// until the server's BlockChangedAck catches up to its sequence number.
type PredictedBlock struct {
	Sequence int32
	X, Y, Z  int32
	StateID  int32

	// PriorStateID is what the block held before the prediction, restored
	// on revert.
	PriorStateID int32
}

// BlockStatePredictionHandler buffers speculative block-state changes keyed
// by ascending sequence numbers (spec §4.10/§9): BlockChangedAck(seq)
// releases everything <= seq, and a stale entry can be force-reverted by a
// timeout sweep independent of any ack.
type BlockStatePredictionHandler struct {
	nextSequence int32
	pending      []PredictedBlock
	lastReleased int32
}

// NewBlockStatePredictionHandler creates an empty handler. Sequence numbers
// are monotonically increasing per client (spec §4.10), starting at 0.
func NewBlockStatePredictionHandler() *BlockStatePredictionHandler {
	return &BlockStatePredictionHandler{lastReleased: -1}
}

// Predict records one speculative placement and returns the sequence
// number to stamp onto the outbound PlayerAction/UseItemOn packet.
func (h *BlockStatePredictionHandler) Predict(x, y, z, stateID, priorStateID int32) int32 {
	seq := h.nextSequence
	h.nextSequence++
	h.pending = append(h.pending, PredictedBlock{
		Sequence:     seq,
		X:            x,
		Y:            y,
		Z:            z,
		StateID:      stateID,
		PriorStateID: priorStateID,
	})
	return seq
}

// Ack releases every prediction at or below seq (BlockChangedAck). A seq at
// or below the last released sequence is a no-op per spec §8's boundary
// behavior. Returns the released entries in ascending sequence order, for
// the caller to apply against the authoritative instance snapshot.
func (h *BlockStatePredictionHandler) Ack(seq int32) []PredictedBlock {
	if seq <= h.lastReleased {
		return nil
	}
	sort.Slice(h.pending, func(i, j int) bool { return h.pending[i].Sequence < h.pending[j].Sequence })

	var released []PredictedBlock
	remaining := h.pending[:0]
	for _, p := range h.pending {
		if p.Sequence <= seq {
			released = append(released, p)
		} else {
			remaining = append(remaining, p)
		}
	}
	h.pending = remaining
	h.lastReleased = seq
	return released
}

// Revert force-releases every still-pending prediction as reverted (used
// by a periodic timeout sweep for predictions that never got acknowledged
// — spec §9's "periodic timeouts force-revert stale predictions"). The
// caller is responsible for writing PriorStateID back into the world for
// each returned entry.
func (h *BlockStatePredictionHandler) Revert() []PredictedBlock {
	reverted := h.pending
	h.pending = nil
	return reverted
}

// Pending reports how many predictions are still awaiting acknowledgement.
func (h *BlockStatePredictionHandler) Pending() int {
	return len(h.pending)
}
