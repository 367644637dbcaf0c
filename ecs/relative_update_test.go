package ecs

import "testing"

// TestRelativeUpdateGuardDedupesWithinFrame covers the idempotence
// contract (§4.5/§9/P6): the same (entity, kind) pair only returns true
// once per frame, and distinct kinds or entities don't interfere.
func TestRelativeUpdateGuardDedupesWithinFrame(t *testing.T) {
	g := NewRelativeUpdateGuard()
	e1 := Entity{Index: 1}
	e2 := Entity{Index: 2}

	if !g.Begin(e1, "move") {
		t.Fatal("first Begin(e1, move) should return true")
	}
	if g.Begin(e1, "move") {
		t.Error("second Begin(e1, move) within the same frame should return false")
	}
	if !g.Begin(e1, "rotate") {
		t.Error("a different kind for the same entity should not be deduped")
	}
	if !g.Begin(e2, "move") {
		t.Error("the same kind for a different entity should not be deduped")
	}
}

// TestRelativeUpdateGuardEndFrameClears covers EndFrame resetting the
// dedupe set for the next frame.
func TestRelativeUpdateGuardEndFrameClears(t *testing.T) {
	g := NewRelativeUpdateGuard()
	e := Entity{Index: 1}

	g.Begin(e, "move")
	g.EndFrame()

	if !g.Begin(e, "move") {
		t.Error("Begin should return true again after EndFrame")
	}
}
