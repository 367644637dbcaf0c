package packets

import (
	jp "github.com/go-mclib/sessioncore/protocol"
	ns "github.com/go-mclib/sessioncore/net_structures"
)

// Clientbound (S2C) play-state packets.
//
// IDs below target the 1.21.1 Java Edition protocol. This is not the full
// ~140-entry clientbound play table — it covers the "Noteworthy handlers"
// the dispatcher (C8) special-cases plus the handful of bookkeeping packets
// that feed the ECS and world store directly. Anything not listed here
// still decodes through the generic path (recognized id, raw ByteArray
// payload, no typed struct) so the dispatcher never has to reject an
// unmapped packet.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets

// S2CLoginPlayPacket represents "Login (play)".
//
// Resolves the player's dimension, establishes the Instance, and installs
// the local entity's bundle (Login handler).
var S2CLoginPlayPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x2B)

type S2CLoginPlayPacketData struct {
	EntityID            ns.Int
	IsHardcore          ns.Boolean
	DimensionNames      ns.PrefixedArray[ns.Identifier]
	MaxPlayers          ns.VarInt
	ViewDistance        ns.VarInt
	SimulationDistance  ns.VarInt
	ReducedDebugInfo    ns.Boolean
	EnableRespawnScreen ns.Boolean
	DoLimitedCrafting   ns.Boolean
	DimensionType       ns.VarInt
	DimensionName       ns.Identifier
	HashedSeed          ns.Long
	GameMode            ns.UnsignedByte
	PreviousGameMode    ns.Byte
	IsDebug             ns.Boolean
	IsFlat              ns.Boolean
	HasDeathLocation    ns.Boolean
	DeathDimensionName  ns.Identifier `mc:"if:HasDeathLocation,value:true"`
	DeathLocation       ns.Position   `mc:"if:HasDeathLocation,value:true"`
	PortalCooldown      ns.VarInt
	SeaLevel            ns.VarInt
	EnforcesSecureChat  ns.Boolean
}

// S2CRespawnPacket represents "Respawn".
//
// Like Login but reuses the local entity (Respawn handler): clears Dead,
// resets TicksConnected, and updates InstanceName and LocalGameMode. The
// handler installs no fresh component bundle and acquires no Instance for
// the new dimension; there is no HasClientLoaded marker in this module.
var S2CRespawnPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x47)

type S2CRespawnPacketData struct {
	DimensionType      ns.VarInt
	DimensionName      ns.Identifier
	HashedSeed         ns.Long
	GameMode           ns.UnsignedByte
	PreviousGameMode   ns.Byte
	IsDebug            ns.Boolean
	IsFlat             ns.Boolean
	HasDeathLocation   ns.Boolean
	DeathDimensionName ns.Identifier `mc:"if:HasDeathLocation,value:true"`
	DeathLocation      ns.Position   `mc:"if:HasDeathLocation,value:true"`
	PortalCooldown     ns.VarInt
	SeaLevel           ns.VarInt
	DataKept           ns.UnsignedByte
}

// S2CStartConfigurationPacket represents "Start Configuration".
//
// Flips the connection phase back to Configuration (StartConfiguration
// handler); the client must answer with ConfigurationAcknowledged.
var S2CStartConfigurationPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x70)

type S2CStartConfigurationPacketData struct{}

// S2CPlayerPositionPacket represents "Player Position" (formerly
// "Synchronize Player Position").
//
// The Relative bitmask decides which of X/Y/Z/Yaw/Pitch are deltas vs.
// absolutes; the movement system replies with AcceptTeleportation and
// MovePlayerPosRot.
var S2CPlayerPositionPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x41)

type S2CPlayerPositionPacketData struct {
	TeleportID ns.VarInt
	X          ns.Double
	Y          ns.Double
	Z          ns.Double
	VelocityX  ns.Double
	VelocityY  ns.Double
	VelocityZ  ns.Double
	Yaw        ns.Float
	Pitch      ns.Float
	Relative   ns.Int
}

// S2CPlayerInfoUpdatePacket represents "Player Info Update".
//
// Mirrors entries into the process-wide TabList resource; the Actions
// bitset decides which fields of each entry are present. The per-entry
// payload is intentionally left as a raw ByteArray here: its shape depends
// on Actions, which the reflection codec cannot branch on without a
// concrete field to test, so the TabList system parses entries by hand
// against the Actions bitset (grounded on how azalea-client's tab_list
// plugin walks this packet).
var S2CPlayerInfoUpdatePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x3F)

type S2CPlayerInfoUpdatePacketData struct {
	Actions ns.FixedBitSet `mc:"length:8"`
	// Entries holds the VarInt player count plus every per-player entry
	// verbatim; shape depends on Actions, so the TabList system reparses it
	// directly rather than the reflection codec modeling each action.
	Entries ns.ByteArray
}

// S2CPlayerInfoRemovePacket represents "Player Info Remove".
var S2CPlayerInfoRemovePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x3E)

type S2CPlayerInfoRemovePacketData struct {
	UUIDs ns.PrefixedArray[ns.UUID]
}

// S2CAddEntityPacket represents "Spawn Entity" (formerly "Add Entity").
//
// Spawns/merges the entity, indexes it per-client and globally, and applies
// default metadata for EntityKind (AddEntity handler).
var S2CAddEntityPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x01)

type S2CAddEntityPacketData struct {
	EntityID   ns.VarInt
	EntityUUID ns.UUID
	EntityKind ns.VarInt
	X          ns.Double
	Y          ns.Double
	Z          ns.Double
	Pitch      ns.Angle
	Yaw        ns.Angle
	HeadYaw    ns.Angle
	Data       ns.VarInt
	VelocityX  ns.Short
	VelocityY  ns.Short
	VelocityZ  ns.Short
}

// S2CSetEntityDataPacket represents "Set Entity Metadata" (formerly "Entity
// Metadata").
//
// Decoded entry-by-entry under an idempotent relative-entity update;
// unknown entity id or missing EntityKind is logged and dropped.
var S2CSetEntityDataPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x5C)

type S2CSetEntityDataPacketData struct {
	EntityID ns.VarInt
	Metadata ns.EntityMetadata
}

// S2CSetEntityMotionPacket represents "Set Entity Velocity" (formerly
// "Entity Velocity").
var S2CSetEntityMotionPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x5B)

type S2CSetEntityMotionPacketData struct {
	EntityID  ns.VarInt
	VelocityX ns.Short
	VelocityY ns.Short
	VelocityZ ns.Short
}

// S2CExplodePacket represents "Explode".
var S2CExplodePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x1E)

type S2CExplodePacketData struct {
	X                 ns.Double
	Y                 ns.Double
	Z                 ns.Double
	PlayerVelocityX   ns.Float
	PlayerVelocityY   ns.Float
	PlayerVelocityZ   ns.Float
	ExplosionParticle ns.VarInt
	ExplosionSound    ns.IDor[ns.SoundEvent]
}

// S2CMoveEntityPosPacket represents "Update Entity Position" (formerly
// "Entity Position", short-form relative move).
//
// Decoded via the entity's per-entity delta codec (divisor 4096) onto
// Physics.base, with on-ground and position updated only if changed.
var S2CMoveEntityPosPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x30)

type S2CMoveEntityPosPacketData struct {
	EntityID ns.VarInt
	DeltaX   ns.Short
	DeltaY   ns.Short
	DeltaZ   ns.Short
	OnGround ns.Boolean
}

// S2CMoveEntityPosRotPacket represents "Update Entity Position and
// Rotation".
var S2CMoveEntityPosRotPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x31)

type S2CMoveEntityPosRotPacketData struct {
	EntityID ns.VarInt
	DeltaX   ns.Short
	DeltaY   ns.Short
	DeltaZ   ns.Short
	Yaw      ns.Angle
	Pitch    ns.Angle
	OnGround ns.Boolean
}

// S2CMoveEntityRotPacket represents "Update Entity Rotation".
var S2CMoveEntityRotPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x32)

type S2CMoveEntityRotPacketData struct {
	EntityID ns.VarInt
	Yaw      ns.Angle
	Pitch    ns.Angle
	OnGround ns.Boolean
}

// S2CEntityPositionSyncPacket represents "Entity Position Sync" (absolute
// position + velocity + rotation for an entity; resets the per-entity delta
// codec base).
//
// For the local entity, only the delta codec is updated here — physics for
// the local entity belongs to client prediction.
var S2CEntityPositionSyncPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x40)

type S2CEntityPositionSyncPacketData struct {
	EntityID  ns.VarInt
	X         ns.Double
	Y         ns.Double
	Z         ns.Double
	VelocityX ns.Double
	VelocityY ns.Double
	VelocityZ ns.Double
	Yaw       ns.Float
	Pitch     ns.Float
	OnGround  ns.Boolean
}

// S2CTeleportEntityPacket represents "Teleport Entity".
//
// Absolute position; always treated as a base-reset of the entity's delta
// codec rather than a relative move.
var S2CTeleportEntityPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x1F)

type S2CTeleportEntityPacketData struct {
	EntityID  ns.VarInt
	X         ns.Double
	Y         ns.Double
	Z         ns.Double
	VelocityX ns.Double
	VelocityY ns.Double
	VelocityZ ns.Double
	Yaw       ns.Float
	Pitch     ns.Float
	OnGround  ns.Boolean
}

// S2CKeepAlivePlayPacket represents "Clientbound Keep Alive (play)".
//
// The client must echo the same id back via C2SKeepAlivePlayPacket within
// 15s or the server will disconnect it.
var S2CKeepAlivePlayPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x26)

type S2CKeepAlivePlayPacketData struct {
	KeepAliveID ns.Long
}

// S2CPingPlayPacket represents "Ping (play)".
var S2CPingPlayPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x33)

type S2CPingPlayPacketData struct {
	ID ns.Int
}

// S2CRemoveEntitiesPacket represents "Remove Entities".
//
// Removes from the per-client id index and LoadedBy only; the despawn tick
// system reaps entities whose LoadedBy becomes empty.
var S2CRemoveEntitiesPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x46)

type S2CRemoveEntitiesPacketData struct {
	EntityIDs ns.PrefixedArray[ns.VarInt]
}

// S2CBlockUpdatePacket represents "Block Update".
//
// Applied straight to the committed chunk's override layer
// (world.ChunkPipeline.ApplyBlockUpdate); it is not queued, so it does not
// wait for the movement/prediction tick.
var S2CBlockUpdatePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x09)

type S2CBlockUpdatePacketData struct {
	Location ns.Position
	BlockID  ns.VarInt
}

// S2CSectionBlocksUpdatePacket represents "Section Blocks Update" (formerly
// "Multi Block Change").
var S2CSectionBlocksUpdatePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x0A)

type S2CSectionBlocksUpdatePacketData struct {
	ChunkSectionPos ns.Long
	Blocks          ns.PrefixedArray[ns.VarLong]
}

// S2CBlockChangedAckPacket represents "Block Changed Ack" (formerly "Ack
// Player Digging").
//
// BlockStatePredictionHandler releases all speculative changes with
// sequence <= Sequence against the current instance snapshot.
var S2CBlockChangedAckPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x05)

type S2CBlockChangedAckPacketData struct {
	Sequence ns.VarInt
}

// S2CContainerSetContentPacket represents "Set Container Content".
//
// Container id 0 is the player inventory; the StateID must be echoed back
// on the next serverbound click for the server to accept it.
var S2CContainerSetContentPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x13)

type S2CContainerSetContentPacketData struct {
	ContainerID ns.VarInt
	StateID     ns.VarInt
	// Slots holds the VarInt slot count, every Slot entry, and the trailing
	// carried item verbatim. Slot's own item-component schema is external
	// data (see the Slot type), so we cannot offset past one Slot without
	// decoding it — the inventory package walks this blob itself.
	Slots ns.ByteArray
}

// S2CContainerSetSlotPacket represents "Set Container Slot".
//
// Container id -1/slot -1 means the cursor/carried item; -2 forces a write
// into the player's own inventory regardless of open menu.
var S2CContainerSetSlotPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x14)

type S2CContainerSetSlotPacketData struct {
	ContainerID ns.VarInt
	StateID     ns.VarInt
	Slot        ns.Short
	SlotData    ns.Slot
}

// S2CContainerSetDataPacket represents "Set Container Property" (progress
// bars: furnace burn time, brewing stand fuel, enchanting table levels).
//
// Accepted and stored as an opaque (Property, Value) pair on the open menu
// rather than decoded further.
var S2CContainerSetDataPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x12)

type S2CContainerSetDataPacketData struct {
	ContainerID ns.VarInt
	Property    ns.Short
	Value       ns.Short
}

// S2CContainerClosePacket represents "Close Container" (clientbound: server
// force-closes an open menu).
var S2CContainerClosePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x11)

type S2CContainerClosePacketData struct {
	ContainerID ns.VarInt
}

// S2COpenScreenPacket represents "Open Screen".
//
// Triggers MenuOpenedEvent, creating the inventory menu.
var S2COpenScreenPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x35)

type S2COpenScreenPacketData struct {
	ContainerID   ns.VarInt
	ContainerKind ns.VarInt
	Title         ns.JSONTextComponent
}

// S2CPlayerCombatKillPacket represents "Combat Death" (formerly "Player
// Combat Kill").
//
// If PlayerID matches the local entity and Dead is absent, inserts Dead and
// emits DeathEvent.
var S2CPlayerCombatKillPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x3B)

type S2CPlayerCombatKillPacketData struct {
	PlayerID ns.VarInt
	Message  ns.JSONTextComponent
}

// S2CUpdateAttributesPacket represents "Update Attributes".
//
// Feeds the attribute table on the targeted entity. Modifiers are kept
// structured since callers (e.g. movement speed) need to sum them, unlike
// the progress-bar-style Set Container Property packet above.
var S2CUpdateAttributesPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x95)

type S2CUpdateAttributesPacketData struct {
	EntityID   ns.VarInt
	Attributes ns.PrefixedArray[AttributeEntry]
}

// AttributeEntry is one entry of S2CUpdateAttributesPacketData.Attributes.
type AttributeEntry struct {
	ID        ns.VarInt
	Value     ns.Double
	Modifiers ns.PrefixedArray[AttributeModifier]
}

// AttributeModifier is one modifier within an AttributeEntry.
type AttributeModifier struct {
	ID        ns.Identifier
	Amount    ns.Double
	Operation ns.Byte
}

// S2CUpdateMobEffectPacket represents "Update Mob Effect" (potion effect
// applied/refreshed).
//
// Feeds ActiveEffects on the targeted entity.
var S2CUpdateMobEffectPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x76)

type S2CUpdateMobEffectPacketData struct {
	EntityID      ns.VarInt
	EffectID      ns.VarInt
	Amplifier     ns.VarInt
	Duration      ns.VarInt
	Flags         ns.Byte
	HasFactorData ns.Boolean
	FactorCodec   ns.NBT `mc:"if:HasFactorData,value:true"`
}

// S2CRemoveMobEffectPacket represents "Remove Entity Effect".
var S2CRemoveMobEffectPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x42)

type S2CRemoveMobEffectPacketData struct {
	EntityID ns.VarInt
	EffectID ns.VarInt
}

// S2CCooldownPacket represents "Set Cooldown" (item-use cooldown, e.g.
// ender pearl, shield).
//
// Surfaced as an event rather than persisted component state, since
// cooldown expiry is wall-clock driven and outside the ECS tick.
var S2CCooldownPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x19)

type S2CCooldownPacketData struct {
	CooldownGroup ns.Identifier
	CooldownTicks ns.VarInt
}

// S2CAwardStatsPacket represents "Award Statistics".
//
// Decoded into a flat (category, stat) -> value list rather than a typed
// struct since the set of statistics is server-data-driven.
var S2CAwardStatsPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x08)

type S2CAwardStatsPacketData struct {
	Stats ns.PrefixedArray[StatEntry]
}

// StatEntry is one entry of S2CAwardStatsPacketData.Stats.
type StatEntry struct {
	CategoryID ns.VarInt
	StatID     ns.VarInt
	Value      ns.VarInt
}

// S2CSetHealthPacket represents "Set Health".
//
// Updates the Health component and the local Hunger (food/saturation)
// fields together, matching how the vanilla client treats them as one
// synchronized triple.
var S2CSetHealthPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x60)

type S2CSetHealthPacketData struct {
	Health         ns.Float
	Food           ns.VarInt
	FoodSaturation ns.Float
}

// S2CSetExperiencePacket represents "Set Experience".
var S2CSetExperiencePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x61)

type S2CSetExperiencePacketData struct {
	ExperienceBar   ns.Float
	Level           ns.VarInt
	TotalExperience ns.VarInt
}

// S2CSystemChatMessagePacket represents "System Chat Message".
var S2CSystemChatMessagePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x62)

type S2CSystemChatMessagePacketData struct {
	Content ns.JSONTextComponent
	Overlay ns.Boolean
}

// S2CGameEventPacket represents "Game Event".
//
// Every Event sub-case (change game mode, rain level, thunder level,
// respawn-screen enable, arrow hit the player, demo event, the "player
// didn't move vehicle" keepalive) is decoded into one GameEvent{Kind,
// Value} event rather than one Go type per sub-case, since all sub-cases
// share this (Event byte, Value float) wire shape.
var S2CGameEventPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x22)

type S2CGameEventPacketData struct {
	Event ns.UnsignedByte
	Value ns.Float
}

// S2CSetEntityLinkPacket represents "Set Entity Link" (leashing).
var S2CSetEntityLinkPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x5D)

type S2CSetEntityLinkPacketData struct {
	SourceID ns.Int
	TargetID ns.Int
}

// S2CSetPassengersPacket represents "Set Passengers" (mounting/riding).
var S2CSetPassengersPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x6F)

type S2CSetPassengersPacketData struct {
	EntityID   ns.VarInt
	Passengers ns.PrefixedArray[ns.VarInt]
}

// S2CSetCameraPacket represents "Set Camera" (forced spectator viewpoint).
var S2CSetCameraPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x58)

type S2CSetCameraPacketData struct {
	CameraID ns.VarInt
}

// S2CSetBorderCenterPacket represents "Set Border Center".
//
// Surfaced only as a BorderChangedEvent; no world-border state is stored
// on the Instance or in the ECS.
var S2CSetBorderCenterPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x4A)

type S2CSetBorderCenterPacketData struct {
	X ns.Double
	Z ns.Double
}

// S2CSetBorderLerpSizePacket represents "Set Border Lerp Size".
var S2CSetBorderLerpSizePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x4B)

type S2CSetBorderLerpSizePacketData struct {
	OldSize ns.Double
	NewSize ns.Double
	Speed   ns.VarLong
}

// S2CSetBorderSizePacket represents "Set Border Size".
var S2CSetBorderSizePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x4C)

type S2CSetBorderSizePacketData struct {
	Diameter ns.Double
}

// S2CSetBorderWarningDelayPacket represents "Set Border Warning Delay".
var S2CSetBorderWarningDelayPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x4D)

type S2CSetBorderWarningDelayPacketData struct {
	WarningTime ns.VarInt
}

// S2CSetBorderWarningDistancePacket represents "Set Border Warning
// Distance".
var S2CSetBorderWarningDistancePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x4E)

type S2CSetBorderWarningDistancePacketData struct {
	WarningBlocks ns.VarInt
}

// S2CChunkBatchStartPacket represents "Chunk Batch Start" — precedes a run
// of LevelChunkWithLight packets; handed to ChunkPipeline.BeginBatch.
var S2CChunkBatchStartPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x0C)

// S2CChunkBatchFinishedPacket represents "Chunk Batch Finished", reporting
// how many chunks the server just sent so the client can reply with
// ChunkBatchReceived and the server can adapt its send rate.
var S2CChunkBatchFinishedPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x0D)

type S2CChunkBatchFinishedPacketData struct {
	BatchSize ns.VarInt
}

// S2CSetChunkCacheCenterPacket represents "Set Center Chunk", moving the
// client's view window without itself carrying any chunk data.
var S2CSetChunkCacheCenterPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x57)

type S2CSetChunkCacheCenterPacketData struct {
	ChunkX ns.VarInt
	ChunkZ ns.VarInt
}

// S2CLevelChunkWithLightPacket represents "Chunk Data and Update Light".
//
// ChunkData + per-section LightData, handed to the chunk pipeline.
var S2CLevelChunkWithLightPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x27)

type S2CLevelChunkWithLightPacketData struct {
	ChunkX    ns.Int
	ChunkZ    ns.Int
	ChunkData ns.ChunkData
	LightData ns.LightData
}

// S2CForgetLevelChunkPacket represents "Unload Chunk".
var S2CForgetLevelChunkPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x21)

type S2CForgetLevelChunkPacketData struct {
	ChunkZ ns.Int
	ChunkX ns.Int
}

// S2CLightUpdatePacket represents "Update Light" (light data for a chunk
// already loaded via LevelChunkWithLight, e.g. after a block update).
//
// Read (packet id recognized) and ignored beyond the unavoidable frame
// buffer — see world/chunk_pipeline.go's HandleLightUpdate.
var S2CLightUpdatePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x28)

type S2CLightUpdatePacketData struct {
	ChunkX    ns.VarInt
	ChunkZ    ns.VarInt
	LightData ns.LightData
}

// S2CDisconnectPlayPacket represents "Disconnect (play)".
var S2CDisconnectPlayPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x1D)

type S2CDisconnectPlayPacketData struct {
	Reason ns.JSONTextComponent
}

// S2CPlayerChatPacket represents "Player Chat Message".
var S2CPlayerChatPacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x39)

type S2CPlayerChatPacketData struct {
	Sender  ns.UUID
	Index   ns.VarInt
	Message ns.String
}

// S2CUpdateTimePacket represents "Update Time".
var S2CUpdateTimePacket = jp.NewPacket(jp.StatePlay, jp.S2C, 0x6B)

type S2CUpdateTimePacketData struct {
	WorldAge            ns.Long
	TimeOfDay           ns.Long
	TimeOfDayIncreasing ns.Boolean
}
