package packets

import (
	jp "github.com/go-mclib/sessioncore/protocol"
	ns "github.com/go-mclib/sessioncore/net_structures"
)

// S2CRegistryDataPacket represents "Registry Data" — one full snapshot of a
// named registry (dimension types, biomes, etc.), installed into the C3
// registry store as soon as it arrives.
//
// Entry.Data's inner shape is registry-specific NBT, so it's kept as an
// opaque tag rather than one Go struct per registry kind (spec.md §1: the
// code-generated registry schemas are external data the core treats
// opaquely).
var S2CRegistryDataPacket = jp.NewPacket(jp.StateConfiguration, jp.S2C, 0x07)

type S2CRegistryDataPacketData struct {
	RegistryID ns.Identifier
	Entries    ns.PrefixedArray[RegistryDataEntry]
}

// RegistryDataEntry is one entry of S2CRegistryDataPacketData.Entries.
type RegistryDataEntry struct {
	EntryID  ns.Identifier
	HasData  ns.Boolean
	Data     ns.NBT `mc:"if:HasData,value:true"`
}

// S2CSelectKnownPacksPacket represents "Clientbound Known Packs" — the
// server's list of data packs it assumes the client already has. The core
// never actually compares pack versions (registry entries are consumed as
// opaque NBT regardless), so the reply in client/configure.go always echoes back an
// empty list, which tells the server to send every entry in full.
var S2CSelectKnownPacksPacket = jp.NewPacket(jp.StateConfiguration, jp.S2C, 0x0E)

type S2CSelectKnownPacksPacketData struct {
	KnownPacks ns.PrefixedArray[KnownPack]
}

// S2CFinishConfigurationPacket represents "Finish Configuration".
// Has no data
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Finish_Configuration
var S2CFinishConfigurationPacket = jp.NewPacket(jp.StateConfiguration, jp.S2C, 0x03)

// S2CKeepAliveConfigurationPacket represents "Clientbound Keep Alive (configuration)"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Keep_Alive_(configuration)
var S2CKeepAliveConfigurationPacket = jp.NewPacket(jp.StateConfiguration, jp.S2C, 0x04)

type S2CKeepAliveConfigurationPacketData struct {
	ID ns.Long
}

// S2CPingConfigurationPacket represents "Ping (configuration)"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_(configuration)
var S2CPingConfigurationPacket = jp.NewPacket(jp.StateConfiguration, jp.S2C, 0x05)

type S2CPingConfigurationPacketData struct {
	ID ns.Int
}
