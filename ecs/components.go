package ecs

// Component types named in spec §3. Each is a plain data struct; presence
// in the owning Bundle's corresponding ComponentSet is the only thing that
// marks an entity as "having" it. Marker components (LocalEntity, Dead,
// InConfigState) carry no fields — their presence alone is the signal.

// Position is the entity's absolute world-space location.
type Position struct {
	X, Y, Z float64
}

// LookDirection is the entity's yaw/pitch in degrees.
type LookDirection struct {
	Yaw, Pitch float32
}

// Physics holds the delta-codec base position, on-ground flag, and the old
// position recorded the last time an authoritative server update landed —
// the movement reconciliation system (C9) diffs against OldPosition.
type Physics struct {
	Base        Position
	OldPosition Position
	OnGround    bool
	HeadYaw     float32
}

// LocalEntity marks the entity that belongs to this connection — there is
// exactly one per client's Bundle.
type LocalEntity struct{}

// Dead marks an entity that has received PlayerCombatKill (local) or whose
// death the server otherwise signaled.
type Dead struct{}

// EntityKind is the registry-resolved species/type used to select the
// metadata decoder (C6) and default component bundle.
type EntityKind struct {
	Kind string
	UUID [16]byte
}

// LoadedBy is the set of client entities (by Entity handle, not strong
// reference — see DESIGN.md "shared instance + back-reference to clients")
// that currently track this world entity. Empty + no LocalEntity marker
// makes an entity eligible for despawn (invariant I2).
type LoadedBy struct {
	Clients map[Entity]struct{}
}

func NewLoadedBy() LoadedBy {
	return LoadedBy{Clients: make(map[Entity]struct{})}
}

// EntityIdIndex is a per-client mapping from the server-assigned
// MinecraftEntityId to the local Entity handle representing it.
type EntityIdIndex struct {
	ByID map[int32]Entity
}

func NewEntityIdIndex() EntityIdIndex {
	return EntityIdIndex{ByID: make(map[int32]Entity)}
}

// InventorySlot is one item stack, opaque beyond its presence flag, since the
// item-component schema is external data per spec §1.
type InventorySlot struct {
	Present    bool
	Raw        []byte // verbatim Slot wire payload; reparsed by inventory package
}

// Inventory is the 46-slot player inventory plus the currently selected
// hotbar slot (clamped 0..=8, per spec §4.10).
type Inventory struct {
	Slots       [46]InventorySlot
	CarriedItem InventorySlot
	SelectedHotbarSlot int
}

// PlayerAbilities mirrors the vanilla player-abilities flags
// (invulnerable/flying/allow-flying/instabuild). No clientbound abilities
// packet is defined in protocol/packets; C2SPlayerAbilitiesPacket carries
// the flying toggle back to the server.
type PlayerAbilities struct {
	Invulnerable bool
	Flying       bool
	AllowFlying  bool
	CreativeMode bool
	FlySpeed     float32
	WalkSpeed    float32
}

// Hunger mirrors the food bar fields carried by SetHealth.
type Hunger struct {
	Food           int32
	FoodSaturation float32
}

// Health mirrors the health field carried by SetHealth, plus experience
// carried by SetExperience (kept together since both are simple vitals
// updated by adjacent handlers).
type Health struct {
	Health              float32
	ExperienceBar       float32
	ExperienceLevel     int32
	TotalExperience     int32
}

// ActiveEffect is one entry of ActiveEffects, mirroring UpdateMobEffect.
type ActiveEffect struct {
	EffectID  int32
	Amplifier int32
	Duration  int32
	Ambient   bool
	ShowParticles bool
	ShowIcon  bool
}

// ActiveEffects is the set of currently applied potion-style effects,
// keyed by effect id.
type ActiveEffects struct {
	ByEffectID map[int32]ActiveEffect
}

func NewActiveEffects() ActiveEffects {
	return ActiveEffects{ByEffectID: make(map[int32]ActiveEffect)}
}

// TabListEntry is one row of the process-wide TabList resource, mirroring
// PlayerInfoUpdate.
type TabListEntry struct {
	UUID        [16]byte
	Name        string
	GameMode    int32
	Latency     int32
	DisplayName string
}

// TabList is the process-wide UUID -> display-info map described in the
// glossary; mirrored from PlayerInfoUpdate/PlayerInfoRemove.
type TabList struct {
	ByUUID map[[16]byte]TabListEntry
}

func NewTabList() TabList {
	return TabList{ByUUID: make(map[[16]byte]TabListEntry)}
}

// AttributeModifierValue is one modifier within an AttributeValue, mirroring
// UpdateAttributes' own Modifiers array.
type AttributeModifierValue struct {
	ID        string
	Amount    float64
	Operation int8
}

// AttributeValue is one entry of Attributes, mirroring UpdateAttributes.
// Modifiers are kept structured (rather than pre-summed) since callers care
// about individual modifier lifetimes, e.g. a speed potion expiring.
type AttributeValue struct {
	Base      float64
	Modifiers []AttributeModifierValue
}

// Attributes is the per-entity attribute table fed by UpdateAttributes,
// keyed by attribute id.
type Attributes struct {
	ByID map[int32]AttributeValue
}

func NewAttributes() Attributes {
	return Attributes{ByID: make(map[int32]AttributeValue)}
}

// WorldTime mirrors UpdateTime: the world age and time-of-day last reported
// for the dimension this client is currently in.
type WorldTime struct {
	Age        int64
	TimeOfDay  int64
	DayCycling bool
}

// InstanceName is the resource-identifier name of the dimension the entity
// currently belongs to (invariant I3: a Position belongs to at most one
// InstanceName at a time).
type InstanceName struct {
	Name string
}

// GameProfile is attached to a player entity once its UUID resolves
// against the TabList (AddEntity handler, §4.8).
type GameProfile struct {
	UUID     [16]byte
	Username string
}

// LocalGameMode is the local entity's current game mode, mutated by Login,
// Respawn, and the ChangeGameMode game_event subtype.
type LocalGameMode struct {
	Current int32
}

// TicksConnected counts ticks since Login/Respawn; reset to 0 on both.
type TicksConnected struct {
	Ticks uint64
}

// Vehicle names the entity this entity currently rides, set by
// SetPassengers's inverse relationship and cleared when no longer listed.
type Vehicle struct {
	Mount Entity
}

// Passengers is the set of entities currently riding this entity, mirrored
// directly from SetPassengers (see DESIGN.md Open Question decision #1).
type Passengers struct {
	Riders []Entity
}

// InConfigState marks a client entity that has been moved back into the
// Configuration phase by StartConfiguration; removed again once Play is
// re-entered.
type InConfigState struct{}

// QueuedServerBlockUpdate is one buffered BlockUpdate/SectionBlocksUpdate
// entry (spec §4.7/§4.8). The play dispatcher does not fill this queue:
// its BlockUpdate/SectionBlocksUpdate handlers write straight into the
// committed chunk via world.ChunkPipeline, and no system drains it.
type QueuedServerBlockUpdate struct {
	ChunkX, ChunkZ int32
	LocalX, LocalY, LocalZ int32
	StateID int32
}

// QueuedServerBlockUpdates holds a client entity's QueuedServerBlockUpdate
// entries.
type QueuedServerBlockUpdates struct {
	Pending []QueuedServerBlockUpdate
}

// MetadataState holds the decoded entity-metadata taxonomy fields (C6) for
// one entity, keyed by the field name each taxonomy node's ApplyFunc
// assigns (e.g. "OnFire", "Pose", "FoxSitting"). A flat per-kind map avoids
// needing one Go struct per entity kind for a 150+-leaf taxonomy; callers
// that need a typed view (e.g. Health from AbstractLiving) read it back by
// name.
type MetadataState struct {
	Bools   map[string]bool
	Ints    map[string]int32
	Floats  map[string]float32
	Strings map[string]string
}

func NewMetadataState() MetadataState {
	return MetadataState{
		Bools:   make(map[string]bool),
		Ints:    make(map[string]int32),
		Floats:  make(map[string]float32),
		Strings: make(map[string]string),
	}
}
