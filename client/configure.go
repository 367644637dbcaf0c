package client

import (
	ns "github.com/go-mclib/sessioncore/net_structures"
	jp "github.com/go-mclib/sessioncore/protocol"
	ps "github.com/go-mclib/sessioncore/protocol/packets"
	"github.com/go-mclib/sessioncore/world"
)

// configure drives the Configuration-state exchange: announce client
// settings, answer Known Packs / Keep Alive / Ping, install every Registry
// Data snapshot into the RegistryStore, and acknowledge Finish
// Configuration — which is what flips the connection into Play.
func (c *Client) configure() error {
	if err := c.sendLoginPacket(ps.C2SClientInformationPacket, ps.C2SClientInformationPacketData{
		Locale:              "en_US",
		ViewDistance:        ns.Byte(int8OrClamp(c.cfg.ViewDistance)),
		ChatMode:            ns.VarInt(ps.ChatModeEnabled),
		ChatColors:          true,
		DisplayedSkinParts:  0x7F,
		MainHand:            ns.VarInt(ps.MainHandRight),
		EnableTextFiltering: false,
		AllowServerListings: true,
		ParticleStatus:      ns.VarInt(ps.ParticleStatusAll),
	}); err != nil {
		return err
	}

	for {
		wire, err := c.tcp.ReadPacket()
		if err != nil {
			return err
		}
		switch wire.PacketID {
		case ps.S2CSelectKnownPacksPacket.ID():
			// The vanilla server omits any pack the client claims to already
			// know from the Registry Data it subsequently sends — this core
			// never caches packs between runs, so it always claims none,
			// guaranteeing every registry entry arrives in full.
			if err := c.sendLoginPacket(ps.C2SSelectKnownPacksPacket, ps.C2SSelectKnownPacksPacketData{}); err != nil {
				return err
			}

		case ps.S2CRegistryDataPacket.ID():
			data, err := jp.ReadPacket[ps.S2CRegistryDataPacketData](wire, ps.S2CRegistryDataPacket)
			if err != nil {
				return err
			}
			c.installRegistry(*data)

		case ps.S2CKeepAliveConfigurationPacket.ID():
			data, err := jp.ReadPacket[ps.S2CKeepAliveConfigurationPacketData](wire, ps.S2CKeepAliveConfigurationPacket)
			if err != nil {
				return err
			}
			if err := c.sendLoginPacket(ps.C2SKeepAliveConfigurationPacket, ps.C2SKeepAliveConfigurationPacketData{KeepAliveID: data.ID}); err != nil {
				return err
			}

		case ps.S2CPingConfigurationPacket.ID():
			data, err := jp.ReadPacket[ps.S2CPingConfigurationPacketData](wire, ps.S2CPingConfigurationPacket)
			if err != nil {
				return err
			}
			if err := c.sendLoginPacket(ps.C2SPongConfigurationPacket, ps.C2SPongConfigurationPacketData{ID: data.ID}); err != nil {
				return err
			}

		case ps.S2CFinishConfigurationPacket.ID():
			c.tcp.SetState(jp.StatePlay)
			return c.sendLoginPacket(ps.C2SFinishConfigurationPacket, struct{}{})

		default:
			// Cookie Request, Add/Remove Resource Pack, Update Tags, plugin
			// messages, and anything else configuration-state but not
			// special-cased here: accepted and dropped.
		}
	}
}

// installRegistry converts one Registry Data snapshot's NBT-tagged entries
// into opaque []byte values and installs them into the RegistryStore —
// entries with HasData false (the pack told the server it already knows
// that entry) keep a nil Value.
func (c *Client) installRegistry(pkt ps.S2CRegistryDataPacketData) {
	reg := world.Registry{Name: string(pkt.RegistryID)}
	for _, entry := range pkt.Entries {
		re := world.RegistryEntry{Name: string(entry.EntryID)}
		if bool(entry.HasData) {
			if b, err := entry.Data.ToBytes(); err == nil {
				re.Value = []byte(b)
			}
		}
		reg.Entries = append(reg.Entries, re)
	}
	c.registries.Install(reg)
}

func int8OrClamp(v int32) int8 {
	if v > 127 {
		return 127
	}
	if v < 0 {
		return 0
	}
	return int8(v)
}
