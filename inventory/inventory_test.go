package inventory

import "testing"

func TestRegistrySpecialContainerIDs(t *testing.T) {
	r := NewRegistry()

	// -2 force-write always lands in the player's own inventory.
	r.Route(ContainerIDForceWrite, 5, Slot{Present: true, Raw: []byte{1}})
	if !r.Inventory().Slots[5].Present {
		t.Fatal("force-write did not land in player inventory")
	}

	// -1 addresses the carried item on whichever menu is targeted.
	r.Route(ContainerIDCarriedItem, -1, Slot{Present: true, Raw: []byte{2}})
	if !r.Inventory().CarriedItem.Present {
		t.Fatal("carried-item route did not update CarriedItem")
	}

	// 0 always reaches the player inventory even while another menu is open.
	r.Open(3, 5, 27)
	r.Route(ContainerIDInventory, 0, Slot{Present: true, Raw: []byte{3}})
	if !r.Inventory().Slots[0].Present {
		t.Fatal("container id 0 did not route to player inventory while another menu was open")
	}
}

func TestRegistryCloseNeverDropsInventory(t *testing.T) {
	r := NewRegistry()
	r.Close(ContainerIDInventory)
	if r.Inventory() == nil {
		t.Fatal("Close must never remove the player's own inventory")
	}
}

func TestPredictionAckReleasesInOrderUpToSeq(t *testing.T) {
	h := NewBlockStatePredictionHandler()
	h.Predict(0, 64, 0, 1, 0)
	h.Predict(1, 64, 0, 2, 0)
	h.Predict(2, 64, 0, 3, 0)

	released := h.Ack(1)
	if len(released) != 2 {
		t.Fatalf("Ack(1) released %d entries, want 2", len(released))
	}
	if h.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", h.Pending())
	}
}

func TestPredictionAckBelowLastReleasedIsNoop(t *testing.T) {
	h := NewBlockStatePredictionHandler()
	h.Predict(0, 64, 0, 1, 0)
	h.Ack(0)

	if released := h.Ack(0); released != nil {
		t.Fatalf("re-ack of an already released sequence must be a no-op, got %v", released)
	}
}

func TestPredictionRevertDrainsPending(t *testing.T) {
	h := NewBlockStatePredictionHandler()
	h.Predict(0, 64, 0, 1, 0)
	h.Predict(1, 64, 0, 2, 0)

	reverted := h.Revert()
	if len(reverted) != 2 {
		t.Fatalf("Revert() returned %d entries, want 2", len(reverted))
	}
	if h.Pending() != 0 {
		t.Fatal("Revert() must drain pending")
	}
}
