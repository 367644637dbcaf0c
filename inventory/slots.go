package inventory

// Registry tracks every open menu by container id, plus the player's own
// inventory which always exists at ContainerIDInventory.
type Registry struct {
	menus map[int32]*Menu
}

// NewRegistry creates a registry pre-populated with the 46-slot player
// inventory (9 hotbar + 27 main + 4 armor + 1 offhand, per vanilla layout;
// this package does not distinguish the regions, it only tracks slots).
func NewRegistry() *Registry {
	r := &Registry{menus: make(map[int32]*Menu)}
	r.menus[ContainerIDInventory] = NewMenu(ContainerIDInventory, -1, 46)
	return r
}

// Open installs a freshly-opened non-inventory menu (OpenScreen).
func (r *Registry) Open(containerID, kind int32, slotCount int) *Menu {
	m := NewMenu(containerID, kind, slotCount)
	r.menus[containerID] = m
	return m
}

// Close removes a menu other than the player's own inventory
// (ClientboundContainerClose / a client-initiated close).
func (r *Registry) Close(containerID int32) {
	if containerID == ContainerIDInventory {
		return
	}
	delete(r.menus, containerID)
}

// Menu looks up a container by id. The player's own inventory is always
// reachable at ContainerIDInventory regardless of what else is open.
func (r *Registry) Menu(containerID int32) (*Menu, bool) {
	m, ok := r.menus[containerID]
	return m, ok
}

// Inventory is a convenience accessor for the player's own inventory menu.
func (r *Registry) Inventory() *Menu {
	return r.menus[ContainerIDInventory]
}

// ForceWriteSlot implements the -2 container-id special case (§4.10): a
// write that bypasses whatever menu is presently open and always lands in
// the player's own inventory.
func (r *Registry) ForceWriteSlot(slot int16, s Slot) {
	r.Inventory().SetSlot(slot, s)
}

// Route dispatches a SetSlot/SetContent update's declared container id to
// the right menu, honoring all three special cases from §4.8/§4.10.
func (r *Registry) Route(containerID int32, slot int16, s Slot) {
	switch containerID {
	case ContainerIDForceWrite:
		r.ForceWriteSlot(slot, s)
	case ContainerIDCarriedItem:
		if m := r.Inventory(); m != nil {
			m.CarriedItem = s
		}
	default:
		if m, ok := r.menus[containerID]; ok {
			m.SetSlot(slot, s)
		}
	}
}
