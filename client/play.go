package client

import (
	"context"
	"fmt"

	"github.com/go-mclib/sessioncore/ecs"
	"github.com/go-mclib/sessioncore/entitymeta"
	jp "github.com/go-mclib/sessioncore/protocol"
	ps "github.com/go-mclib/sessioncore/protocol/packets"
	"github.com/go-mclib/sessioncore/session"
	"github.com/go-mclib/sessioncore/world"
)

// overworldHeight/overworldMinY are the vanilla overworld's dimension_type
// values. Deriving the true per-dimension height/min_y would mean walking
// the "minecraft:dimension_type" registry's NBT by DimensionType index;
// this core treats registry entries as opaque bytes (spec.md §1), so the
// Instance is sized with these defaults for every dimension rather than
// parsing that one field out. A client that spends real time in the
// Nether/End would want Instance.Height/MinY taught that registry's shape
// instead — tracked as an open question in DESIGN.md.
const (
	overworldHeight = 384
	overworldMinY   = -64
)

// enterPlay reads the connection's first Play packet — always Login
// (play) — decodes it without a Dispatcher (none exists yet, since
// building one needs the Instance this very packet identifies), and uses
// it to construct the ECS bundle, the shared Instance/PartialInstance/
// ChunkPipeline, and finally the Dispatcher. The same WirePacket is then
// replayed through Dispatch so Login's own component-installing side
// effects (indexing the local entity, setting InstanceName, transitioning
// to Play) still happen exactly once, via the normal handler.
func (c *Client) enterPlay() error {
	wire, err := c.tcp.ReadPacket()
	if err != nil {
		return err
	}
	if wire.PacketID != ps.S2CLoginPlayPacket.ID() {
		return fmt.Errorf("expected Login (play) as the first play packet, got id 0x%02X", wire.PacketID)
	}
	login, err := jp.ReadPacket[ps.S2CLoginPlayPacketData](wire, ps.S2CLoginPlayPacket)
	if err != nil {
		return err
	}

	c.Bundle = ecs.NewBundle()
	c.Local = c.Bundle.Store.Spawn()
	c.Bundle.LocalEntity.Insert(c.Local, ecs.LocalEntity{})
	c.Bundle.Position.Insert(c.Local, ecs.Position{})
	c.Bundle.LookDirection.Insert(c.Local, ecs.LookDirection{})
	c.Bundle.Physics.Insert(c.Local, ecs.Physics{})

	c.Instance = c.Instances.GetOrInsert(string(login.DimensionName), overworldHeight, overworldMinY, c.registries)
	c.Partial = world.NewPartialInstance(c.Instance, int32(login.EntityID), c.cfg.ViewDistance)
	c.Pipeline = world.NewChunkPipeline(c.Instance, c.Partial)

	c.Dispatcher = session.NewDispatcher(c.Bundle, c.Local, c.Instances, c.Partial, c.Pipeline, c.Events, c.Inventory, c.Prediction, c.state, c)
	c.Dispatcher.KindResolver = c.resolveEntityKind

	return c.Dispatcher.Dispatch(wire)
}

// resolveEntityKind turns AddEntity's numeric type id into a taxonomy Kind
// string by indexing the synced "minecraft:entity_type" registry in entry
// order — the registry's insertion order is the network id order for
// every synced registry, so position i's entry name is exactly the kind
// AddEntity's EntityKind == i refers to. Entities outside the taxonomy's
// registered leaves (most of the 150+ real entity types — see DESIGN.md)
// resolve to a Kind the rest of the system simply never decodes metadata
// for.
func (c *Client) resolveEntityKind(typeID int32) (string, bool) {
	reg, ok := c.registries.Get("minecraft:entity_type")
	if !ok || typeID < 0 || int(typeID) >= len(reg.Entries) {
		return "", false
	}
	name := reg.Entries[typeID].Name
	if !entitymeta.Registered(entitymeta.Kind(name)) {
		return "", false
	}
	return name, true
}

// Run reads and dispatches Play packets until ctx is cancelled or the
// connection errors out. It does not itself start the TickScheduler —
// callers that want tick-driven systems (movement, despawn sweep, keep
// alive timeout) call Tick.Register beforehand and run Tick.Run(ctx) on
// their own goroutine, same as the dispatcher's Send calls are already
// safe to issue concurrently with Run via sendMu.
func (c *Client) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		wire, err := c.tcp.ReadPacket()
		if err != nil {
			return err
		}
		if err := c.Dispatcher.Dispatch(wire); err != nil {
			c.Logger.Printf("dispatch error: %v", err)
		}
	}
}
