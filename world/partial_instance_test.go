package world

import "testing"

// TestPartialInstanceTrackRespectsWindow covers the §4.7 edge policy: a
// chunk outside the current view window is never added to the tracked set.
func TestPartialInstanceTrackRespectsWindow(t *testing.T) {
	p := NewPartialInstance(nil, 1, 2)
	p.SetChunkCacheCenter(0, 0)

	p.Track(1, 1)
	if !p.IsTracked(1, 1) {
		t.Error("(1,1) is within radius 2 of center (0,0) and should be tracked")
	}

	p.Track(5, 5)
	if p.IsTracked(5, 5) {
		t.Error("(5,5) is outside radius 2 of center (0,0) and must not be tracked")
	}
}

// TestPartialInstanceSetChunkCacheCenterPrunesOutOfWindow covers P7: moving
// the center must drop chunks that fall outside the new window.
func TestPartialInstanceSetChunkCacheCenterPrunesOutOfWindow(t *testing.T) {
	p := NewPartialInstance(nil, 1, 2)
	p.SetChunkCacheCenter(0, 0)
	p.Track(2, 0)
	p.Track(-2, 0)

	p.SetChunkCacheCenter(10, 10)

	if p.TrackedCount() != 0 {
		t.Fatalf("TrackedCount() = %d, want 0 after recentering far away", p.TrackedCount())
	}
}

// TestPartialInstanceSetChunkCacheRadiusPrunes covers the "reallocation"
// rule for a radius shrink.
func TestPartialInstanceSetChunkCacheRadiusPrunes(t *testing.T) {
	p := NewPartialInstance(nil, 1, 5)
	p.SetChunkCacheCenter(0, 0)
	p.Track(4, 0)

	p.SetChunkCacheRadius(1)

	if p.IsTracked(4, 0) {
		t.Error("shrinking the radius should prune a chunk now outside the window")
	}
}

func TestPartialInstanceUntrack(t *testing.T) {
	p := NewPartialInstance(nil, 1, 5)
	p.SetChunkCacheCenter(0, 0)
	p.Track(1, 1)

	p.Untrack(1, 1)
	if p.IsTracked(1, 1) {
		t.Error("Untrack should remove the chunk from the tracked set")
	}
}
