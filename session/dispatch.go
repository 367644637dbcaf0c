package session

import (
	"fmt"

	"github.com/go-mclib/sessioncore/ecs"
	"github.com/go-mclib/sessioncore/entitymeta"
	"github.com/go-mclib/sessioncore/inventory"
	"github.com/go-mclib/sessioncore/movement"
	ns "github.com/go-mclib/sessioncore/net_structures"
	jp "github.com/go-mclib/sessioncore/protocol"
	ps "github.com/go-mclib/sessioncore/protocol/packets"
	"github.com/go-mclib/sessioncore/world"
)

// Dispatcher is C8: the play-packet handler table. One Dispatcher exists
// per connection; it owns that connection's slice of the shared world
// (Bundle, PartialInstance) and routes every decoded clientbound play
// packet to the handler that updates ECS/world state, emits events, and
// (for the handlers that need to reply) enqueues the matching serverbound
// packet via Outbox.
type Dispatcher struct {
	Bundle      *ecs.Bundle
	Local       ecs.Entity
	Instances   *world.Container
	Partial     *world.PartialInstance
	Pipeline    *world.ChunkPipeline
	Events      *EventBus
	Inventory   *inventory.Registry
	Prediction  *inventory.BlockStatePredictionHandler
	State       *StateMachine
	Out         Outbox

	// KindResolver maps AddEntity's numeric EntityKind (an index into the
	// static, unsynced "minecraft:entity_type" registry baked into the
	// client/server data generators rather than sent over the wire) to the
	// taxonomy Kind string entitymeta.Decode expects. Left nil by default —
	// the client facade installs this once it loads the entity-type table.
	KindResolver func(typeID int32) (kind string, ok bool)

	deltaCodecs map[ecs.Entity]*movement.DeltaCodec

	// localID is the local entity's server-assigned MinecraftEntityId, set
	// by Login/Respawn. Needed by handlers (Explode) whose packet carries no
	// entity id of its own because it implicitly targets the receiving
	// player.
	localID int32

	handlers map[int64]func(ns.ByteArray) error
}

// NewDispatcher wires a Dispatcher for one freshly-established connection.
// The Bundle and Partial instance must already exist (constructed by the
// client facade's Login handling, before Play packets start arriving).
func NewDispatcher(bundle *ecs.Bundle, local ecs.Entity, instances *world.Container, partial *world.PartialInstance, pipeline *world.ChunkPipeline, events *EventBus, inv *inventory.Registry, pred *inventory.BlockStatePredictionHandler, sm *StateMachine, out Outbox) *Dispatcher {
	d := &Dispatcher{
		Bundle:      bundle,
		Local:       local,
		Instances:   instances,
		Partial:     partial,
		Pipeline:    pipeline,
		Events:      events,
		Inventory:   inv,
		Prediction:  pred,
		State:       sm,
		Out:         out,
		deltaCodecs: make(map[ecs.Entity]*movement.DeltaCodec),
	}
	d.handlers = map[int64]func(ns.ByteArray) error{
		packetKey(ps.S2CLoginPlayPacket):           d.handleLogin,
		packetKey(ps.S2CRespawnPacket):              d.handleRespawn,
		packetKey(ps.S2CStartConfigurationPacket):   d.handleStartConfiguration,
		packetKey(ps.S2CPlayerPositionPacket):       d.handlePlayerPosition,
		packetKey(ps.S2CPlayerInfoUpdatePacket):     d.handlePlayerInfoUpdate,
		packetKey(ps.S2CAddEntityPacket):            d.handleAddEntity,
		packetKey(ps.S2CSetEntityDataPacket):        d.handleSetEntityData,
		packetKey(ps.S2CMoveEntityPosPacket):        d.handleMoveEntityPos,
		packetKey(ps.S2CMoveEntityPosRotPacket):     d.handleMoveEntityPosRot,
		packetKey(ps.S2CMoveEntityRotPacket):        d.handleMoveEntityRot,
		packetKey(ps.S2CEntityPositionSyncPacket):   d.handleEntityPositionSync,
		packetKey(ps.S2CTeleportEntityPacket):       d.handleTeleportEntity,
		packetKey(ps.S2CKeepAlivePlayPacket):        d.handleKeepAlive,
		packetKey(ps.S2CRemoveEntitiesPacket):       d.handleRemoveEntities,
		packetKey(ps.S2CBlockUpdatePacket):          d.handleBlockUpdate,
		packetKey(ps.S2CSectionBlocksUpdatePacket):  d.handleSectionBlocksUpdate,
		packetKey(ps.S2CBlockChangedAckPacket):      d.handleBlockChangedAck,
		packetKey(ps.S2CChunkBatchStartPacket):      d.handleChunkBatchStart,
		packetKey(ps.S2CChunkBatchFinishedPacket):   d.handleChunkBatchFinished,
		packetKey(ps.S2CLevelChunkWithLightPacket):  d.handleLevelChunkWithLight,
		packetKey(ps.S2CForgetLevelChunkPacket):     d.handleForgetLevelChunk,
		packetKey(ps.S2CLightUpdatePacket):          d.handleLightUpdate,
		packetKey(ps.S2CSetChunkCacheCenterPacket):  d.handleSetChunkCacheCenter,
		packetKey(ps.S2CContainerSetContentPacket):  d.handleContainerSetContent,
		packetKey(ps.S2CContainerSetSlotPacket):     d.handleContainerSetSlot,
		packetKey(ps.S2COpenScreenPacket):           d.handleOpenScreen,
		packetKey(ps.S2CContainerClosePacket):       d.handleContainerClose,
		packetKey(ps.S2CPlayerCombatKillPacket):     d.handlePlayerCombatKill,
		packetKey(ps.S2CSystemChatMessagePacket):    d.handleSystemChatMessage,
		packetKey(ps.S2CPlayerChatPacket):           d.handlePlayerChat,
		packetKey(ps.S2CPlayerInfoRemovePacket):     d.handlePlayerInfoRemove,
		packetKey(ps.S2CSetEntityMotionPacket):      d.handleSetEntityMotion,
		packetKey(ps.S2CExplodePacket):              d.handleExplode,
		packetKey(ps.S2CUpdateAttributesPacket):     d.handleUpdateAttributes,
		packetKey(ps.S2CUpdateMobEffectPacket):      d.handleUpdateMobEffect,
		packetKey(ps.S2CRemoveMobEffectPacket):      d.handleRemoveMobEffect,
		packetKey(ps.S2CCooldownPacket):             d.handleCooldown,
		packetKey(ps.S2CAwardStatsPacket):           d.handleAwardStats,
		packetKey(ps.S2CSetHealthPacket):            d.handleSetHealth,
		packetKey(ps.S2CSetExperiencePacket):        d.handleSetExperience,
		packetKey(ps.S2CGameEventPacket):            d.handleGameEvent,
		packetKey(ps.S2CSetEntityLinkPacket):        d.handleSetEntityLink,
		packetKey(ps.S2CSetPassengersPacket):        d.handleSetPassengers,
		packetKey(ps.S2CSetCameraPacket):            d.handleSetCamera,
		packetKey(ps.S2CSetBorderCenterPacket):         d.handleSetBorderCenter,
		packetKey(ps.S2CSetBorderLerpSizePacket):       d.handleSetBorderLerpSize,
		packetKey(ps.S2CSetBorderSizePacket):           d.handleSetBorderSize,
		packetKey(ps.S2CSetBorderWarningDelayPacket):   d.handleSetBorderWarningDelay,
		packetKey(ps.S2CSetBorderWarningDistancePacket): d.handleSetBorderWarningDistance,
		packetKey(ps.S2CContainerSetDataPacket):     d.handleContainerSetData,
		packetKey(ps.S2CPingPlayPacket):             d.handlePingPlay,
		packetKey(ps.S2CDisconnectPlayPacket):       d.handleDisconnectPlay,
		packetKey(ps.S2CUpdateTimePacket):           d.handleUpdateTime,
	}
	return d
}

// textComponentPlainText pulls the "text" field out of a decoded JSON text
// component, good enough for the menu-title/death-message events this
// dispatcher surfaces — full text-component rendering (extra/translate/
// click events) is out of scope for this representative slice.
func textComponentPlainText(c ns.JSONTextComponent) string {
	if s, ok := c["text"].(string); ok {
		return s
	}
	return ""
}

func packetKey(meta jp.PacketMeta) int64 {
	return int64(meta.State())<<32 | int64(meta.ID())
}

// Dispatch decodes and routes one WirePacket as a play-state packet. It does
// not check the StateMachine's current phase.
// Packets with no registered handler are accepted and silently dropped —
// the C8 "generic path" named in the wire-surface notes: an id the
// dispatcher doesn't special-case is not an error.
func (d *Dispatcher) Dispatch(pkt *jp.WirePacket) error {
	key := int64(jp.StatePlay)<<32 | int64(pkt.PacketID)
	h, ok := d.handlers[key]
	if !ok {
		return nil
	}
	if err := h(pkt.Data); err != nil {
		return fmt.Errorf("%w: packet 0x%02X: %v", ErrDecode, pkt.PacketID, err)
	}
	return nil
}

func decode[T any](raw ns.ByteArray) (T, error) {
	var v T
	err := jp.BytesToPacketData(raw, &v)
	return v, err
}

func (d *Dispatcher) handleLogin(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CLoginPlayPacketData](raw)
	if err != nil {
		return err
	}
	d.localID = int32(pkt.EntityID)
	d.indexEntity(int32(pkt.EntityID), d.Local)
	d.Bundle.LocalGameMode.Insert(d.Local, ecs.LocalGameMode{Current: int32(pkt.GameMode)})
	d.Bundle.InstanceName.Insert(d.Local, ecs.InstanceName{Name: string(pkt.DimensionName)})
	d.Bundle.TicksConnected.Insert(d.Local, ecs.TicksConnected{})
	d.Events.EmitInstanceLoaded(InstanceLoadedEvent{InstanceName: string(pkt.DimensionName)})
	d.State.Transition(PhasePlay)
	return nil
}

func (d *Dispatcher) handleRespawn(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CRespawnPacketData](raw)
	if err != nil {
		return err
	}
	d.Bundle.Dead.Remove(d.Local)
	d.Bundle.TicksConnected.Insert(d.Local, ecs.TicksConnected{})
	d.Bundle.InstanceName.Insert(d.Local, ecs.InstanceName{Name: string(pkt.DimensionName)})
	d.Bundle.LocalGameMode.Insert(d.Local, ecs.LocalGameMode{Current: int32(pkt.GameMode)})
	d.Events.EmitInstanceLoaded(InstanceLoadedEvent{InstanceName: string(pkt.DimensionName)})
	return nil
}

func (d *Dispatcher) handleStartConfiguration(raw ns.ByteArray) error {
	d.State.Transition(PhaseConfiguration)
	d.Bundle.InConfigState.Insert(d.Local, ecs.InConfigState{})

	// Remove play-only bundles: every non-local entity this client was
	// tracking drops out of its view; LoadedBy would otherwise pin them
	// alive indefinitely across the Configuration round-trip.
	for _, row := range d.Bundle.LoadedBy.All() {
		if row.Entity == d.Local {
			continue
		}
		if _, tracked := row.Value.Clients[d.Local]; !tracked {
			continue
		}
		delete(row.Value.Clients, d.Local)
		d.Bundle.LoadedBy.Insert(row.Entity, row.Value)
	}
	d.Bundle.DespawnOrphans()

	d.Bundle.EntityIdIndex.Remove(d.Local)
	d.Bundle.BlockUpdates.Remove(d.Local)
	d.Bundle.Inventory.Remove(d.Local)
	d.Bundle.Health.Remove(d.Local)
	d.Bundle.Hunger.Remove(d.Local)
	d.Bundle.Effects.Remove(d.Local)
	d.Bundle.Attributes.Remove(d.Local)
	d.Bundle.TabList.Remove(d.Local)
	d.Bundle.WorldTime.Remove(d.Local)

	// Reset the InstanceHolder: release this client's reference to the
	// dimension it was playing in and drop the partial view, so the next
	// Login re-acquires fresh membership.
	if d.Partial.Instance != nil {
		d.Instances.Release(d.Partial.Instance.Name)
		d.Partial.Instance = nil
	}

	return d.Out.Send(ps.C2SConfigurationAcknowledgedPacket, ps.C2SConfigurationAcknowledgedPacketData{})
}

func (d *Dispatcher) handlePlayerPosition(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CPlayerPositionPacketData](raw)
	if err != nil {
		return err
	}
	pos, _ := d.Bundle.Position.Get(d.Local)
	look, _ := d.Bundle.LookDirection.Get(d.Local)
	phys, _ := d.Bundle.Physics.Get(d.Local)

	accept, move := movement.ApplyPlayerPosition(&pos, &look, &phys, pkt)

	d.Bundle.Position.Insert(d.Local, pos)
	d.Bundle.LookDirection.Insert(d.Local, look)
	d.Bundle.Physics.Insert(d.Local, phys)

	if err := d.Out.Send(ps.C2SAcceptTeleportationPacket, accept); err != nil {
		return err
	}
	return d.Out.Send(ps.C2SMovePlayerPosRotPacket, move)
}

func (d *Dispatcher) handlePlayerInfoUpdate(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CPlayerInfoUpdatePacketData](raw)
	if err != nil {
		return err
	}
	entries, err := parsePlayerInfoEntries(pkt.Actions, pkt.Entries)
	if err != nil {
		return fmt.Errorf("%w: player info entries: %v", ErrDecode, err)
	}

	if !d.Bundle.TabList.Has(d.Local) {
		d.Bundle.TabList.Insert(d.Local, ecs.NewTabList())
	}
	d.Bundle.TabList.Mutate(d.Local, func(tl *ecs.TabList) {
		for _, e := range entries {
			if e.HasAddPlayer {
				tl.ByUUID[e.UUID] = ecs.TabListEntry{UUID: e.UUID, Name: e.Name}
				continue
			}
			entry, ok := tl.ByUUID[e.UUID]
			if !ok {
				// unknown UUID: skipped; nothing is logged (§4.8).
				continue
			}
			if e.HasGameMode {
				entry.GameMode = e.GameMode
			}
			if e.HasLatency {
				entry.Latency = e.Latency
			}
			if e.HasDisplayName {
				entry.DisplayName = e.DisplayName
			}
			tl.ByUUID[e.UUID] = entry
		}
	})
	return nil
}

func (d *Dispatcher) handlePlayerInfoRemove(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CPlayerInfoRemovePacketData](raw)
	if err != nil {
		return err
	}
	if !d.Bundle.TabList.Has(d.Local) {
		return nil
	}
	d.Bundle.TabList.Mutate(d.Local, func(tl *ecs.TabList) {
		for _, u := range pkt.UUIDs {
			delete(tl.ByUUID, [16]byte(u))
		}
	})
	return nil
}

func (d *Dispatcher) entityByID(id int32) (ecs.Entity, bool) {
	idx, ok := d.Bundle.EntityIdIndex.Get(d.Local)
	if !ok {
		return ecs.Entity{}, false
	}
	e, ok := idx.ByID[id]
	return e, ok
}

func (d *Dispatcher) indexEntity(id int32, e ecs.Entity) {
	if !d.Bundle.EntityIdIndex.Has(d.Local) {
		d.Bundle.EntityIdIndex.Insert(d.Local, ecs.NewEntityIdIndex())
	}
	d.Bundle.EntityIdIndex.Mutate(d.Local, func(idx *ecs.EntityIdIndex) {
		idx.ByID[id] = e
	})
}

func (d *Dispatcher) handleAddEntity(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CAddEntityPacketData](raw)
	if err != nil {
		return err
	}

	// If the id already exists in this instance's entity_by_id table (I4),
	// another client beat us here — this client just starts tracking the
	// entity that already exists rather than spawning a duplicate.
	if d.Partial.Instance != nil {
		if e, ok := d.Partial.Instance.EntityByID(int32(pkt.EntityID)); ok {
			d.indexEntity(int32(pkt.EntityID), e)
			lb, ok := d.Bundle.LoadedBy.Get(e)
			if !ok {
				lb = ecs.NewLoadedBy()
			}
			lb.Clients[d.Local] = struct{}{}
			d.Bundle.LoadedBy.Insert(e, lb)
			return nil
		}
	}

	e := d.Bundle.Store.Spawn()
	d.indexEntity(int32(pkt.EntityID), e)
	if d.Partial.Instance != nil {
		d.Partial.Instance.IndexEntity(int32(pkt.EntityID), e)
	}

	d.Bundle.Position.Insert(e, ecs.Position{X: float64(pkt.X), Y: float64(pkt.Y), Z: float64(pkt.Z)})
	d.Bundle.LookDirection.Insert(e, ecs.LookDirection{
		Yaw:   movement.DecodeRotation(int8(pkt.Yaw)),
		Pitch: movement.DecodeRotation(int8(pkt.Pitch)),
	})
	d.Bundle.Physics.Insert(e, ecs.Physics{
		Base:    ecs.Position{X: float64(pkt.X), Y: float64(pkt.Y), Z: float64(pkt.Z)},
		HeadYaw: movement.DecodeRotation(int8(pkt.HeadYaw)),
	})
	d.Bundle.LoadedBy.Insert(e, ecs.NewLoadedBy())
	d.Bundle.Metadata.Insert(e, ecs.NewMetadataState())

	if d.KindResolver != nil {
		if kind, ok := d.KindResolver(int32(pkt.EntityKind)); ok {
			d.Bundle.EntityKind.Insert(e, ecs.EntityKind{Kind: kind, UUID: pkt.EntityUUID})

			if entitymeta.Registered(entitymeta.Kind(kind)) {
				state, _ := d.Bundle.Metadata.Get(e)
				entitymeta.Decode(entitymeta.Kind(kind), nil, ecs.MetadataSetter{State: &state})
				d.Bundle.Metadata.Insert(e, state)
			}

			if tl, ok := d.Bundle.TabList.Get(d.Local); ok {
				if entry, ok := tl.ByUUID[[16]byte(pkt.EntityUUID)]; ok {
					d.Bundle.GameProfile.Insert(e, ecs.GameProfile{UUID: entry.UUID, Username: entry.Name})
				}
			}
		}
	}

	codec := &movement.DeltaCodec{}
	codec.Reset(float64(pkt.X), float64(pkt.Y), float64(pkt.Z))
	d.deltaCodecs[e] = codec

	lb, _ := d.Bundle.LoadedBy.Get(e)
	lb.Clients[d.Local] = struct{}{}
	d.Bundle.LoadedBy.Insert(e, lb)

	return nil
}

func (d *Dispatcher) handleSetEntityData(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSetEntityDataPacketData](raw)
	if err != nil {
		return err
	}
	e, ok := d.entityByID(int32(pkt.EntityID))
	if !ok {
		return fmt.Errorf("%w: entity id %d", ErrUnknownEntity, pkt.EntityID)
	}
	kind, ok := d.Bundle.EntityKind.Get(e)
	if !ok {
		return fmt.Errorf("%w: entity id %d has no EntityKind", ErrComponentAbsent, pkt.EntityID)
	}
	if !entitymeta.Registered(entitymeta.Kind(kind.Kind)) {
		return fmt.Errorf("%w: entity kind %q", ErrComponentAbsent, kind.Kind)
	}

	items, decodeErr := entitymeta.ReadItems(pkt.Metadata.Data)
	// decodeErr (wrapped below as ErrMetadataType) means ReadItems hit an
	// unrecognized value type and aborted the rest of the batch — whatever
	// items were already parsed before that point are still applied, per
	// §4.6.

	if !d.Bundle.Guard.Begin(e, "SetEntityData") {
		return nil
	}
	state, _ := d.Bundle.Metadata.Get(e)
	entitymeta.Decode(entitymeta.Kind(kind.Kind), items, ecs.MetadataSetter{State: &state})
	d.Bundle.Metadata.Insert(e, state)

	if decodeErr != nil {
		return fmt.Errorf("%w: %v", ErrMetadataType, decodeErr)
	}
	return nil
}

func (d *Dispatcher) handleMoveEntityPos(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CMoveEntityPosPacketData](raw)
	if err != nil {
		return err
	}
	e, ok := d.entityByID(int32(pkt.EntityID))
	if !ok {
		return nil
	}
	codec := d.deltaCodecs[e]
	if codec == nil {
		return nil
	}
	x, y, z := codec.ApplyDelta(int16(pkt.DeltaX), int16(pkt.DeltaY), int16(pkt.DeltaZ))
	pos := ecs.Position{X: x, Y: y, Z: z}
	phys, _ := d.Bundle.Physics.Get(e)
	phys.OnGround = bool(pkt.OnGround)
	phys.Base = pos
	d.Bundle.Physics.Insert(e, phys)
	if cur, ok := d.Bundle.Position.Get(e); !ok || cur != pos {
		d.Bundle.Position.Insert(e, pos)
	}
	return nil
}

func (d *Dispatcher) handleMoveEntityPosRot(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CMoveEntityPosRotPacketData](raw)
	if err != nil {
		return err
	}
	e, ok := d.entityByID(int32(pkt.EntityID))
	if !ok {
		return nil
	}
	codec := d.deltaCodecs[e]
	if codec == nil {
		return nil
	}
	x, y, z := codec.ApplyDelta(int16(pkt.DeltaX), int16(pkt.DeltaY), int16(pkt.DeltaZ))
	phys, _ := d.Bundle.Physics.Get(e)
	phys.OnGround = bool(pkt.OnGround)
	phys.Base = ecs.Position{X: x, Y: y, Z: z}
	d.Bundle.Physics.Insert(e, phys)
	d.Bundle.Position.Insert(e, ecs.Position{X: x, Y: y, Z: z})
	d.Bundle.LookDirection.Insert(e, ecs.LookDirection{
		Yaw:   movement.DecodeRotation(int8(pkt.Yaw)),
		Pitch: movement.DecodeRotation(int8(pkt.Pitch)),
	})
	return nil
}

func (d *Dispatcher) handleMoveEntityRot(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CMoveEntityRotPacketData](raw)
	if err != nil {
		return err
	}
	e, ok := d.entityByID(int32(pkt.EntityID))
	if !ok {
		return nil
	}
	phys, _ := d.Bundle.Physics.Get(e)
	phys.OnGround = bool(pkt.OnGround)
	d.Bundle.Physics.Insert(e, phys)
	d.Bundle.LookDirection.Insert(e, ecs.LookDirection{
		Yaw:   movement.DecodeRotation(int8(pkt.Yaw)),
		Pitch: movement.DecodeRotation(int8(pkt.Pitch)),
	})
	return nil
}

func (d *Dispatcher) handleEntityPositionSync(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CEntityPositionSyncPacketData](raw)
	if err != nil {
		return err
	}
	e, ok := d.entityByID(int32(pkt.EntityID))
	if !ok {
		return nil
	}
	if codec := d.deltaCodecs[e]; codec != nil {
		codec.Reset(float64(pkt.X), float64(pkt.Y), float64(pkt.Z))
	}
	// Local entity's own physics belongs to client prediction (§4.8); only
	// the delta codec base is refreshed above.
	if e == d.Local {
		return nil
	}
	d.Bundle.Position.Insert(e, ecs.Position{X: float64(pkt.X), Y: float64(pkt.Y), Z: float64(pkt.Z)})
	d.Bundle.LookDirection.Insert(e, ecs.LookDirection{Yaw: float32(pkt.Yaw), Pitch: float32(pkt.Pitch)})
	phys, _ := d.Bundle.Physics.Get(e)
	phys.OnGround = bool(pkt.OnGround)
	phys.Base = ecs.Position{X: float64(pkt.X), Y: float64(pkt.Y), Z: float64(pkt.Z)}
	d.Bundle.Physics.Insert(e, phys)
	return nil
}

func (d *Dispatcher) handleTeleportEntity(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CTeleportEntityPacketData](raw)
	if err != nil {
		return err
	}
	e, ok := d.entityByID(int32(pkt.EntityID))
	if !ok {
		return nil
	}
	if codec := d.deltaCodecs[e]; codec != nil {
		codec.Reset(float64(pkt.X), float64(pkt.Y), float64(pkt.Z))
	}
	d.Bundle.Position.Insert(e, ecs.Position{X: float64(pkt.X), Y: float64(pkt.Y), Z: float64(pkt.Z)})
	d.Bundle.LookDirection.Insert(e, ecs.LookDirection{Yaw: float32(pkt.Yaw), Pitch: float32(pkt.Pitch)})
	phys, _ := d.Bundle.Physics.Get(e)
	phys.OnGround = bool(pkt.OnGround)
	phys.Base = ecs.Position{X: float64(pkt.X), Y: float64(pkt.Y), Z: float64(pkt.Z)}
	d.Bundle.Physics.Insert(e, phys)
	return nil
}

func (d *Dispatcher) handleKeepAlive(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CKeepAlivePlayPacketData](raw)
	if err != nil {
		return err
	}
	d.Events.EmitKeepAlive(KeepAliveEvent{ID: int64(pkt.KeepAliveID)})
	return d.Out.Send(ps.C2SKeepAlivePlayPacket, ps.C2SKeepAlivePlayPacketData{KeepAliveID: pkt.KeepAliveID})
}

func (d *Dispatcher) handleRemoveEntities(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CRemoveEntitiesPacketData](raw)
	if err != nil {
		return err
	}
	for _, id := range pkt.EntityIDs {
		e, ok := d.entityByID(int32(id))
		if !ok {
			continue
		}
		lb, ok := d.Bundle.LoadedBy.Get(e)
		if !ok {
			continue
		}
		delete(lb.Clients, d.Local)
		d.Bundle.LoadedBy.Insert(e, lb)
	}
	// The despawn tick system reaps orphaned entities afterward (P2/I2);
	// this handler only updates LoadedBy.
	return nil
}

func (d *Dispatcher) handleBlockUpdate(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CBlockUpdatePacketData](raw)
	if err != nil {
		return err
	}
	d.Pipeline.ApplyBlockUpdate(pkt.Location, int32(pkt.BlockID))
	return nil
}

func (d *Dispatcher) handleSectionBlocksUpdate(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSectionBlocksUpdatePacketData](raw)
	if err != nil {
		return err
	}
	packed := int64(pkt.ChunkSectionPos)
	sectionX := int32(packed >> 42)
	sectionY := int32(packed << 44 >> 44)
	sectionZ := int32(packed << 22 >> 42)
	entries := make([]int64, len(pkt.Blocks))
	for i, v := range pkt.Blocks {
		entries[i] = int64(v)
	}
	d.Pipeline.ApplySectionBlocksUpdate(sectionX, sectionY, sectionZ, entries)
	return nil
}

func (d *Dispatcher) handleBlockChangedAck(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CBlockChangedAckPacketData](raw)
	if err != nil {
		return err
	}
	d.Prediction.Ack(int32(pkt.Sequence))
	return nil
}

func (d *Dispatcher) handleChunkBatchStart(raw ns.ByteArray) error {
	d.Pipeline.BeginBatch()
	return nil
}

func (d *Dispatcher) handleChunkBatchFinished(raw ns.ByteArray) error {
	if _, err := decode[ps.S2CChunkBatchFinishedPacketData](raw); err != nil {
		return err
	}
	stats := d.Pipeline.EndBatch()
	// A flat 10 chunks/tick matches vanilla's own default acknowledgement
	// before any throughput adaptation kicks in; §4.7 leaves the actual
	// adaptive-rate policy to a higher layer than the chunk pipeline.
	chunksPerTick := float32(10)
	if stats.ChunksReceived == 0 {
		chunksPerTick = 1
	}
	return d.Out.Send(ps.C2SChunkBatchReceivedPacket, ps.C2SChunkBatchReceivedPacketData{ChunksPerTick: chunksPerTick})
}

func (d *Dispatcher) handleLevelChunkWithLight(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CLevelChunkWithLightPacketData](raw)
	if err != nil {
		return err
	}
	d.Pipeline.ReceiveChunk(int32(pkt.ChunkX), int32(pkt.ChunkZ), pkt.ChunkData, pkt.LightData)
	return nil
}

func (d *Dispatcher) handleForgetLevelChunk(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CForgetLevelChunkPacketData](raw)
	if err != nil {
		return err
	}
	d.Pipeline.ForgetChunk(int32(pkt.ChunkX), int32(pkt.ChunkZ))
	return nil
}

func (d *Dispatcher) handleLightUpdate(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CLightUpdatePacketData](raw)
	if err != nil {
		return err
	}
	d.Pipeline.HandleLightUpdate(pkt.LightData)
	return nil
}

func (d *Dispatcher) handleSetChunkCacheCenter(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSetChunkCacheCenterPacketData](raw)
	if err != nil {
		return err
	}
	d.Partial.SetChunkCacheCenter(int32(pkt.ChunkX), int32(pkt.ChunkZ))
	return nil
}

func (d *Dispatcher) handleContainerSetContent(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CContainerSetContentPacketData](raw)
	if err != nil {
		return err
	}
	m, ok := d.Inventory.Menu(int32(pkt.ContainerID))
	if !ok {
		return nil
	}
	// Slots' per-entry shape depends on the Slot item-component schema
	// (external data), so the raw blob is kept opaque here rather than
	// decoded entry-by-entry — callers that need typed contents track
	// SetSlot updates instead.
	m.StateID = int32(pkt.StateID)
	return nil
}

func (d *Dispatcher) handleContainerSetSlot(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CContainerSetSlotPacketData](raw)
	if err != nil {
		return err
	}
	slotData := inventory.Slot{Present: true, Raw: []byte(pkt.SlotData.Data)}
	d.Inventory.Route(int32(pkt.ContainerID), int16(pkt.Slot), slotData)
	if m, ok := d.Inventory.Menu(int32(pkt.ContainerID)); ok {
		m.StateID = int32(pkt.StateID)
	}
	return nil
}

func (d *Dispatcher) handleOpenScreen(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2COpenScreenPacketData](raw)
	if err != nil {
		return err
	}
	title := textComponentPlainText(pkt.Title)
	d.Inventory.Open(int32(pkt.ContainerID), int32(pkt.ContainerKind), 0)
	d.Events.EmitMenuOpened(MenuOpenedEvent{ContainerID: int32(pkt.ContainerID), Kind: int32(pkt.ContainerKind), Title: title})
	return nil
}

func (d *Dispatcher) handleContainerClose(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CContainerClosePacketData](raw)
	if err != nil {
		return err
	}
	d.Inventory.Close(int32(pkt.ContainerID))
	d.Events.EmitContainerClosed(ClientsideCloseContainerEvent{ContainerID: int32(pkt.ContainerID)})
	return nil
}

func (d *Dispatcher) handlePlayerCombatKill(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CPlayerCombatKillPacketData](raw)
	if err != nil {
		return err
	}
	e, ok := d.entityByID(int32(pkt.PlayerID))
	if !ok || e != d.Local {
		return nil
	}
	if d.Bundle.Dead.Has(e) {
		return nil
	}
	d.Bundle.Dead.Insert(e, ecs.Dead{})
	d.Events.EmitDeath(DeathEvent{EntityID: int32(pkt.PlayerID)})
	return nil
}

func (d *Dispatcher) handleSystemChatMessage(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSystemChatMessagePacketData](raw)
	if err != nil {
		return err
	}
	d.Events.EmitChatReceived(ChatReceivedEvent{
		Sender:  "",
		Content: textComponentPlainText(pkt.Content),
		Overlay: bool(pkt.Overlay),
	})
	return nil
}

func (d *Dispatcher) handlePlayerChat(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CPlayerChatPacketData](raw)
	if err != nil {
		return err
	}
	d.Events.EmitChatReceived(ChatReceivedEvent{
		Sender:  pkt.Sender.String(),
		Content: string(pkt.Message),
	})
	return nil
}

// SetEntityMotion's velocity fields are vanilla Shorts in units of 1/8000
// block per tick, unlike Explode's already block-scaled floats below.
const entityMotionVelocityUnit = 1.0 / 8000.0

func (d *Dispatcher) handleSetEntityMotion(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSetEntityMotionPacketData](raw)
	if err != nil {
		return err
	}
	d.Events.EmitKnockback(KnockbackEvent{
		EntityID: int32(pkt.EntityID),
		DeltaX:   float64(pkt.VelocityX) * entityMotionVelocityUnit,
		DeltaY:   float64(pkt.VelocityY) * entityMotionVelocityUnit,
		DeltaZ:   float64(pkt.VelocityZ) * entityMotionVelocityUnit,
	})
	return nil
}

func (d *Dispatcher) handleExplode(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CExplodePacketData](raw)
	if err != nil {
		return err
	}
	// Explode targets the receiving player implicitly; it carries no entity
	// id of its own.
	d.Events.EmitKnockback(KnockbackEvent{
		EntityID: d.localID,
		DeltaX:   float64(pkt.PlayerVelocityX),
		DeltaY:   float64(pkt.PlayerVelocityY),
		DeltaZ:   float64(pkt.PlayerVelocityZ),
	})
	return nil
}

func (d *Dispatcher) handleUpdateAttributes(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CUpdateAttributesPacketData](raw)
	if err != nil {
		return err
	}
	e, ok := d.entityByID(int32(pkt.EntityID))
	if !ok {
		return nil
	}
	if !d.Bundle.Attributes.Has(e) {
		d.Bundle.Attributes.Insert(e, ecs.NewAttributes())
	}
	d.Bundle.Attributes.Mutate(e, func(attrs *ecs.Attributes) {
		for _, a := range pkt.Attributes {
			mods := make([]ecs.AttributeModifierValue, len(a.Modifiers))
			for i, m := range a.Modifiers {
				mods[i] = ecs.AttributeModifierValue{
					ID:        string(m.ID),
					Amount:    float64(m.Amount),
					Operation: int8(m.Operation),
				}
			}
			attrs.ByID[int32(a.ID)] = ecs.AttributeValue{Base: float64(a.Value), Modifiers: mods}
		}
	})
	return nil
}

// UpdateMobEffect's Flags bit layout, per vanilla protocol.
const (
	mobEffectFlagAmbient       = 1 << 0
	mobEffectFlagShowParticles = 1 << 1
	mobEffectFlagShowIcon      = 1 << 2
)

func (d *Dispatcher) handleUpdateMobEffect(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CUpdateMobEffectPacketData](raw)
	if err != nil {
		return err
	}
	e, ok := d.entityByID(int32(pkt.EntityID))
	if !ok {
		return nil
	}
	if !d.Bundle.Effects.Has(e) {
		d.Bundle.Effects.Insert(e, ecs.NewActiveEffects())
	}
	flags := byte(pkt.Flags)
	d.Bundle.Effects.Mutate(e, func(eff *ecs.ActiveEffects) {
		eff.ByEffectID[int32(pkt.EffectID)] = ecs.ActiveEffect{
			EffectID:      int32(pkt.EffectID),
			Amplifier:     int32(pkt.Amplifier),
			Duration:      int32(pkt.Duration),
			Ambient:       flags&mobEffectFlagAmbient != 0,
			ShowParticles: flags&mobEffectFlagShowParticles != 0,
			ShowIcon:      flags&mobEffectFlagShowIcon != 0,
		}
	})
	return nil
}

func (d *Dispatcher) handleRemoveMobEffect(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CRemoveMobEffectPacketData](raw)
	if err != nil {
		return err
	}
	e, ok := d.entityByID(int32(pkt.EntityID))
	if !ok || !d.Bundle.Effects.Has(e) {
		return nil
	}
	d.Bundle.Effects.Mutate(e, func(eff *ecs.ActiveEffects) {
		delete(eff.ByEffectID, int32(pkt.EffectID))
	})
	return nil
}

func (d *Dispatcher) handleCooldown(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CCooldownPacketData](raw)
	if err != nil {
		return err
	}
	d.Events.EmitCooldown(CooldownEvent{Group: string(pkt.CooldownGroup), Ticks: int32(pkt.CooldownTicks)})
	return nil
}

func (d *Dispatcher) handleAwardStats(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CAwardStatsPacketData](raw)
	if err != nil {
		return err
	}
	stats := make([]StatValue, len(pkt.Stats))
	for i, s := range pkt.Stats {
		stats[i] = StatValue{CategoryID: int32(s.CategoryID), StatID: int32(s.StatID), Value: int32(s.Value)}
	}
	d.Events.EmitStatsAwarded(StatsAwardedEvent{Stats: stats})
	return nil
}

func (d *Dispatcher) handleSetHealth(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSetHealthPacketData](raw)
	if err != nil {
		return err
	}
	health, _ := d.Bundle.Health.Get(d.Local)
	health.Health = float32(pkt.Health)
	d.Bundle.Health.Insert(d.Local, health)
	d.Bundle.Hunger.Insert(d.Local, ecs.Hunger{Food: int32(pkt.Food), FoodSaturation: float32(pkt.FoodSaturation)})
	return nil
}

func (d *Dispatcher) handleSetExperience(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSetExperiencePacketData](raw)
	if err != nil {
		return err
	}
	health, _ := d.Bundle.Health.Get(d.Local)
	health.ExperienceBar = float32(pkt.ExperienceBar)
	health.ExperienceLevel = int32(pkt.Level)
	health.TotalExperience = int32(pkt.TotalExperience)
	d.Bundle.Health.Insert(d.Local, health)
	return nil
}

// gameEventChangeGameMode is GameEvent's ChangeGameMode sub-case id, per
// vanilla protocol; every other sub-case passes through as a GameEvent.
const gameEventChangeGameMode = 3

func (d *Dispatcher) handleGameEvent(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CGameEventPacketData](raw)
	if err != nil {
		return err
	}
	if uint8(pkt.Event) == gameEventChangeGameMode {
		d.Bundle.LocalGameMode.Insert(d.Local, ecs.LocalGameMode{Current: int32(pkt.Value)})
		return nil
	}
	d.Events.EmitGameEvent(GameEvent{Kind: uint8(pkt.Event), Value: float32(pkt.Value)})
	return nil
}

func (d *Dispatcher) handleSetEntityLink(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSetEntityLinkPacketData](raw)
	if err != nil {
		return err
	}
	d.Events.EmitEntityLink(EntityLinkEvent{SourceID: int32(pkt.SourceID), TargetID: int32(pkt.TargetID)})
	return nil
}

// containsEntity reports whether list holds e, used by handleSetPassengers
// to tell which previous riders were dropped from a new Passengers list.
func containsEntity(list []ecs.Entity, e ecs.Entity) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}
	return false
}

func (d *Dispatcher) handleSetPassengers(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSetPassengersPacketData](raw)
	if err != nil {
		return err
	}
	vehicle, ok := d.entityByID(int32(pkt.EntityID))
	if !ok {
		return nil
	}

	riders := make([]ecs.Entity, 0, len(pkt.Passengers))
	for _, id := range pkt.Passengers {
		if r, ok := d.entityByID(int32(id)); ok {
			riders = append(riders, r)
		}
	}

	if prev, ok := d.Bundle.Passengers.Get(vehicle); ok {
		for _, r := range prev.Riders {
			if !containsEntity(riders, r) {
				d.Bundle.Vehicle.Remove(r)
			}
		}
	}
	d.Bundle.Passengers.Insert(vehicle, ecs.Passengers{Riders: riders})
	for _, r := range riders {
		d.Bundle.Vehicle.Insert(r, ecs.Vehicle{Mount: vehicle})
	}

	d.Events.EmitPassengersChanged(PassengersChangedEvent{EntityID: int32(pkt.EntityID)})
	return nil
}

func (d *Dispatcher) handleSetCamera(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSetCameraPacketData](raw)
	if err != nil {
		return err
	}
	d.Events.EmitCameraSet(CameraSetEvent{EntityID: int32(pkt.CameraID)})
	return nil
}

func (d *Dispatcher) handleSetBorderCenter(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSetBorderCenterPacketData](raw)
	if err != nil {
		return err
	}
	d.Events.EmitBorderChanged(BorderChangedEvent{Kind: BorderCenter, CenterX: float64(pkt.X), CenterZ: float64(pkt.Z)})
	return nil
}

func (d *Dispatcher) handleSetBorderLerpSize(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSetBorderLerpSizePacketData](raw)
	if err != nil {
		return err
	}
	d.Events.EmitBorderChanged(BorderChangedEvent{
		Kind:        BorderLerpSize,
		OldDiameter: float64(pkt.OldSize),
		NewDiameter: float64(pkt.NewSize),
		SpeedMillis: int64(pkt.Speed),
	})
	return nil
}

func (d *Dispatcher) handleSetBorderSize(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSetBorderSizePacketData](raw)
	if err != nil {
		return err
	}
	d.Events.EmitBorderChanged(BorderChangedEvent{Kind: BorderSize, NewDiameter: float64(pkt.Diameter)})
	return nil
}

func (d *Dispatcher) handleSetBorderWarningDelay(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSetBorderWarningDelayPacketData](raw)
	if err != nil {
		return err
	}
	d.Events.EmitBorderChanged(BorderChangedEvent{Kind: BorderWarningDelay, WarningTime: int32(pkt.WarningTime)})
	return nil
}

func (d *Dispatcher) handleSetBorderWarningDistance(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CSetBorderWarningDistancePacketData](raw)
	if err != nil {
		return err
	}
	d.Events.EmitBorderChanged(BorderChangedEvent{Kind: BorderWarningDistance, WarningBlocks: int32(pkt.WarningBlocks)})
	return nil
}

func (d *Dispatcher) handleContainerSetData(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CContainerSetDataPacketData](raw)
	if err != nil {
		return err
	}
	m, ok := d.Inventory.Menu(int32(pkt.ContainerID))
	if !ok {
		return nil
	}
	m.SetProperty(int16(pkt.Property), int16(pkt.Value))
	return nil
}

func (d *Dispatcher) handlePingPlay(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CPingPlayPacketData](raw)
	if err != nil {
		return err
	}
	return d.Out.Send(ps.C2SPongPlayPacket, ps.C2SPongPlayPacketData{ID: pkt.ID})
}

func (d *Dispatcher) handleDisconnectPlay(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CDisconnectPlayPacketData](raw)
	if err != nil {
		return err
	}
	d.Events.EmitDisconnect(DisconnectEvent{
		Reason: DisconnectRemote,
		Err:    fmt.Errorf("disconnected: %s", textComponentPlainText(pkt.Reason)),
	})
	return nil
}

func (d *Dispatcher) handleUpdateTime(raw ns.ByteArray) error {
	pkt, err := decode[ps.S2CUpdateTimePacketData](raw)
	if err != nil {
		return err
	}
	d.Bundle.WorldTime.Insert(d.Local, ecs.WorldTime{
		Age:        int64(pkt.WorldAge),
		TimeOfDay:  int64(pkt.TimeOfDay),
		DayCycling: bool(pkt.TimeOfDayIncreasing),
	})
	return nil
}
