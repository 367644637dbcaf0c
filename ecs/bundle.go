package ecs

// Bundle aggregates every component kind's ComponentSet alongside the
// entity Store, giving handlers and systems one value to pass around
// instead of threading a dozen ComponentSet arguments individually.
type Bundle struct {
	Store *Store

	Position      *ComponentSet[Position]
	LookDirection *ComponentSet[LookDirection]
	Physics       *ComponentSet[Physics]
	LocalEntity   *ComponentSet[LocalEntity]
	Dead          *ComponentSet[Dead]
	EntityKind    *ComponentSet[EntityKind]
	LoadedBy      *ComponentSet[LoadedBy]
	EntityIdIndex *ComponentSet[EntityIdIndex]
	Inventory     *ComponentSet[Inventory]
	Abilities     *ComponentSet[PlayerAbilities]
	Hunger        *ComponentSet[Hunger]
	Health        *ComponentSet[Health]
	Effects       *ComponentSet[ActiveEffects]
	TabList       *ComponentSet[TabList]
	InstanceName  *ComponentSet[InstanceName]
	GameProfile   *ComponentSet[GameProfile]
	LocalGameMode *ComponentSet[LocalGameMode]
	TicksConnected *ComponentSet[TicksConnected]
	Vehicle       *ComponentSet[Vehicle]
	Passengers    *ComponentSet[Passengers]
	InConfigState *ComponentSet[InConfigState]
	BlockUpdates  *ComponentSet[QueuedServerBlockUpdates]
	Metadata      *ComponentSet[MetadataState]
	Attributes    *ComponentSet[Attributes]
	WorldTime     *ComponentSet[WorldTime]

	Guard *RelativeUpdateGuard
}

// NewBundle allocates a Store and every ComponentSet named above.
func NewBundle() *Bundle {
	return &Bundle{
		Store: NewStore(),

		Position:      NewComponentSet[Position](),
		LookDirection: NewComponentSet[LookDirection](),
		Physics:       NewComponentSet[Physics](),
		LocalEntity:   NewComponentSet[LocalEntity](),
		Dead:          NewComponentSet[Dead](),
		EntityKind:    NewComponentSet[EntityKind](),
		LoadedBy:      NewComponentSet[LoadedBy](),
		EntityIdIndex: NewComponentSet[EntityIdIndex](),
		Inventory:     NewComponentSet[Inventory](),
		Abilities:     NewComponentSet[PlayerAbilities](),
		Hunger:        NewComponentSet[Hunger](),
		Health:        NewComponentSet[Health](),
		Effects:       NewComponentSet[ActiveEffects](),
		TabList:       NewComponentSet[TabList](),
		InstanceName:  NewComponentSet[InstanceName](),
		GameProfile:   NewComponentSet[GameProfile](),
		LocalGameMode: NewComponentSet[LocalGameMode](),
		TicksConnected: NewComponentSet[TicksConnected](),
		Vehicle:       NewComponentSet[Vehicle](),
		Passengers:    NewComponentSet[Passengers](),
		InConfigState: NewComponentSet[InConfigState](),
		BlockUpdates:  NewComponentSet[QueuedServerBlockUpdates](),
		Metadata:      NewComponentSet[MetadataState](),
		Attributes:    NewComponentSet[Attributes](),
		WorldTime:     NewComponentSet[WorldTime](),

		Guard: NewRelativeUpdateGuard(),
	}
}

// Despawn removes e's Store slot and every component it might carry. Safe
// to call even if e carries only some of the listed components.
func (b *Bundle) Despawn(e Entity) {
	b.Store.Despawn(e)
	b.Position.Remove(e)
	b.LookDirection.Remove(e)
	b.Physics.Remove(e)
	b.LocalEntity.Remove(e)
	b.Dead.Remove(e)
	b.EntityKind.Remove(e)
	b.LoadedBy.Remove(e)
	b.EntityIdIndex.Remove(e)
	b.Inventory.Remove(e)
	b.Abilities.Remove(e)
	b.Hunger.Remove(e)
	b.Health.Remove(e)
	b.Effects.Remove(e)
	b.TabList.Remove(e)
	b.InstanceName.Remove(e)
	b.GameProfile.Remove(e)
	b.LocalGameMode.Remove(e)
	b.TicksConnected.Remove(e)
	b.Vehicle.Remove(e)
	b.Passengers.Remove(e)
	b.InConfigState.Remove(e)
	b.BlockUpdates.Remove(e)
	b.Metadata.Remove(e)
	b.Attributes.Remove(e)
	b.WorldTime.Remove(e)
}

// DespawnOrphans implements the despawn tick system (P2/I2): any entity
// with an empty LoadedBy set and no LocalEntity marker is removed.
func (b *Bundle) DespawnOrphans() {
	for _, row := range b.LoadedBy.All() {
		if b.LocalEntity.Has(row.Entity) {
			continue
		}
		if len(row.Value.Clients) == 0 {
			b.Despawn(row.Entity)
		}
	}
}
