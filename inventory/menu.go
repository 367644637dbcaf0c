// Package inventory implements the menu model and block-state prediction
// handler (C10): slot arithmetic, carried/cursor item tracking, and the
// sequence-numbered prediction buffer for block placements.
package inventory

// Special container ids (spec §4.8/§4.10): 0 addresses the player's own
// 46-slot inventory regardless of which menu is open, -1 is the carried
// (cursor) item, -2 is a forced write to any slot bypassing the normal
// click protocol.
const (
	ContainerIDInventory    int32 = 0
	ContainerIDCarriedItem  int32 = -1
	ContainerIDForceWrite   int32 = -2
)

// Slot is one opaque item stack. Raw holds the verbatim Slot wire payload
// (count + item id + component patch), since item-component schemas are
// external data per spec.md §1 — this package only tracks presence and
// slot arithmetic, never interprets item contents.
type Slot struct {
	Present bool
	Raw     []byte
}

// Menu is one open container: the player's own 46-slot inventory, or
// whatever menu OpenScreen most recently announced.
type Menu struct {
	ContainerID int32
	Kind        int32
	StateID     int32

	Slots       []Slot
	CarriedItem Slot

	// Properties holds ContainerSetData's opaque [Property]int16 array —
	// deferred per DESIGN.md Open Question decision #2 (progress bars not
	// semantically interpreted).
	Properties map[int16]int16
}

// NewMenu creates a menu with n addressable slots (46 for the player's own
// inventory; OpenScreen's declared slot count for everything else).
func NewMenu(containerID, kind int32, slotCount int) *Menu {
	return &Menu{
		ContainerID: containerID,
		Kind:        kind,
		Slots:       make([]Slot, slotCount),
		Properties:  make(map[int16]int16),
	}
}

// SetSlot writes one slot by index, honoring the special container-id
// cases from §4.8/§4.10: slot -1 on any container addresses CarriedItem
// instead of Slots.
func (m *Menu) SetSlot(slot int16, s Slot) {
	if slot == -1 {
		m.CarriedItem = s
		return
	}
	if int(slot) < 0 || int(slot) >= len(m.Slots) {
		return
	}
	m.Slots[slot] = s
}

// SetContents replaces every slot at once (ContainerSetContent) plus the
// carried item, and bumps StateID.
func (m *Menu) SetContents(stateID int32, slots []Slot, carried Slot) {
	m.StateID = stateID
	m.Slots = slots
	m.CarriedItem = carried
}

// SetProperty records one ContainerSetData entry.
func (m *Menu) SetProperty(property, value int16) {
	m.Properties[property] = value
}

// SelectedHotbarSlot clamps a requested hotbar index to the valid 0..=8
// range (spec §4.10).
func SelectedHotbarSlot(requested int) int {
	if requested < 0 {
		return 0
	}
	if requested > 8 {
		return 8
	}
	return requested
}
