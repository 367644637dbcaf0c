package packets

import (
	jp "github.com/go-mclib/sessioncore/protocol"
	ns "github.com/go-mclib/sessioncore/net_structures"
)

// Serverbound (C2S) play-state packets.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets

// C2SAcceptTeleportationPacket represents "Confirm Teleportation" (formerly
// "Teleport Confirm").
//
// Sent in response to S2CPlayerPositionPacket (the PlayerPosition handler
// enqueues this immediately, ahead of MovePlayerPosRot).
var C2SAcceptTeleportationPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x00)

type C2SAcceptTeleportationPacketData struct {
	TeleportID ns.VarInt
}

// C2SMovePlayerPosPacket represents "Move Player Position".
//
// Emitted by the movement tick system when the diff against old_position
// warrants a positional update with no rotation change.
var C2SMovePlayerPosPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x1D)

type C2SMovePlayerPosPacketData struct {
	X        ns.Double
	Y        ns.Double
	Z        ns.Double
	OnGround ns.Boolean
}

// C2SMovePlayerPosRotPacket represents "Move Player Position and Rotation".
var C2SMovePlayerPosRotPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x1E)

type C2SMovePlayerPosRotPacketData struct {
	X        ns.Double
	Y        ns.Double
	Z        ns.Double
	Yaw      ns.Float
	Pitch    ns.Float
	OnGround ns.Boolean
}

// C2SMovePlayerRotPacket represents "Move Player Rotation".
var C2SMovePlayerRotPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x1F)

type C2SMovePlayerRotPacketData struct {
	Yaw      ns.Float
	Pitch    ns.Float
	OnGround ns.Boolean
}

// C2SMovePlayerStatusOnlyPacket represents "Move Player Status Only"
// (on-ground state change with no position/rotation delta).
var C2SMovePlayerStatusOnlyPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x20)

type C2SMovePlayerStatusOnlyPacketData struct {
	OnGround ns.Boolean
}

// C2SPlayerInputPacket represents "Player Input" (WASD/jump/sneak flags
// for the current tick, used by server-authoritative movement).
var C2SPlayerInputPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x2C)

type C2SPlayerInputPacketData struct {
	Flags ns.UnsignedByte
}

// C2SPlayerActionPacket represents "Player Action" (start/stop digging,
// drop item, etc).
var C2SPlayerActionPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x26)

type C2SPlayerActionPacketData struct {
	Status   ns.VarInt
	Location ns.Position
	Face     ns.Byte
	Sequence ns.VarInt
}

// C2SPlayerCommandPacket represents "Player Command" (sneak/sprint/mount
// jump toggles, leave bed).
var C2SPlayerCommandPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x27)

type C2SPlayerCommandPacketData struct {
	EntityID  ns.VarInt
	ActionID  ns.VarInt
	JumpBoost ns.VarInt
}

// C2SUseItemOnPacket represents "Use Item On" (right-click a block: place,
// open, interact).
//
// The movement/inventory pipeline assigns Sequence from the same
// block-state prediction sequence counter consumed by
// S2CBlockChangedAckPacket.
var C2SUseItemOnPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x3C)

type C2SUseItemOnPacketData struct {
	Hand        ns.VarInt
	Location    ns.Position
	Face        ns.VarInt
	CursorX     ns.Float
	CursorY     ns.Float
	CursorZ     ns.Float
	InsideBlock ns.Boolean
	WorldBorderHit ns.Boolean
	Sequence    ns.VarInt
}

// C2SUseItemPacket represents "Use Item" (right-click with no block
// target: eat, throw, charge bow).
var C2SUseItemPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x3D)

type C2SUseItemPacketData struct {
	Hand     ns.VarInt
	Sequence ns.VarInt
	Yaw      ns.Float
	Pitch    ns.Float
}

// C2SSwingArmPacket represents "Swing Arm".
var C2SSwingArmPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x38)

type C2SSwingArmPacketData struct {
	Hand ns.VarInt
}

// C2SInteractPacket represents "Interact" (entity attack/interact).
var C2SInteractPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x17)

type C2SInteractPacketData struct {
	EntityID 	ns.VarInt
	Kind     	ns.VarInt
	Sneaking 	ns.Boolean
}

// C2SSetCarriedItemPacket represents "Set Held Item" (hotbar slot select).
var C2SSetCarriedItemPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x33)

type C2SSetCarriedItemPacketData struct {
	Slot ns.Short
}

// C2SSetCreativeModeSlotPacket represents "Set Creative Mode Slot".
var C2SSetCreativeModeSlotPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x36)

type C2SSetCreativeModeSlotPacketData struct {
	Slot     ns.Short
	SlotData ns.Slot
}

// C2SContainerClickPacket represents "Container Click".
//
// §4.10: ClickedSlot addressing (container id 0 inventory, -1 carried
// item, -2 force write) and StateID echo against the inventory prediction
// handler. ChangedSlots/CarriedItem are left as a raw ByteArray tail since
// Slot's item-component schema is external data (see Slot type docs).
var C2SContainerClickPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x10)

type C2SContainerClickPacketData struct {
	ContainerID ns.VarInt
	StateID     ns.VarInt
	Slot        ns.Short
	Button      ns.Byte
	Mode        ns.VarInt
	Changes     ns.ByteArray
}

// C2SContainerClosePacket represents "Close Container" (serverbound: player
// closed their own open menu).
var C2SContainerClosePacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x12)

type C2SContainerClosePacketData struct {
	ContainerID ns.VarInt
}

// C2SChatCommandPacket represents "Chat Command" (unsigned).
//
// Note: the signing chain used by vanilla servers with chat-report enabled
// is handled at a higher layer; this library only exposes the raw command
// text.
var C2SChatCommandPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x04)

type C2SChatCommandPacketData struct {
	Command ns.String
}

// C2SChatMessagePacket represents "Chat Message" (unsigned).
//
// Note: for this library, we expose raw content only; the signing chain is
// handled at a higher layer.
var C2SChatMessagePacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x07)

type C2SChatMessagePacketData struct {
	Message ns.String
}

// C2SClientCommandPacket represents "Client Command" (perform respawn,
// request stats).
var C2SClientCommandPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x0A)

type C2SClientCommandPacketData struct {
	ActionID ns.VarInt
}

// C2SClientTickEndPacket represents "Client Tick End", sent once per client
// tick so the server can pace server-authoritative movement replay.
var C2SClientTickEndPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x0B)

type C2SClientTickEndPacketData struct{}

// C2SConfigurationAcknowledgedPacket represents "Configuration
// Acknowledged".
//
// Sent in response to S2CStartConfigurationPacket; the dispatcher then
// rejects further play packets until Play is re-entered.
var C2SConfigurationAcknowledgedPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x0C)

type C2SConfigurationAcknowledgedPacketData struct{}

// C2SKeepAlivePlayPacket represents "Serverbound Keep Alive (play)".
//
// > The server will frequently send out a keep-alive, each containing a
// random ID. The client must respond with the same payload. If the client
// does not respond within 15 seconds, the server kicks the client.
var C2SKeepAlivePlayPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x1C)

type C2SKeepAlivePlayPacketData struct {
	KeepAliveID ns.Long
}

// C2SPongPlayPacket represents "Pong (play)" (response to S2CPingPlayPacket).
var C2SPongPlayPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x2B)

type C2SPongPlayPacketData struct {
	ID ns.Int
}

// C2SChunkBatchReceivedPacket represents "Chunk Batch Received", reporting
// the client's desired chunks-per-tick throughput back to the server after
// a batch of LevelChunkWithLight packets.
var C2SChunkBatchReceivedPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x08)

type C2SChunkBatchReceivedPacketData struct {
	ChunksPerTick ns.Float
}

// C2SPlayerAbilitiesPacket represents "Player Abilities" (flying toggle
// from the client side).
var C2SPlayerAbilitiesPacket = jp.NewPacket(jp.StatePlay, jp.C2S, 0x25)

type C2SPlayerAbilitiesPacketData struct {
	Flags ns.Byte
}
