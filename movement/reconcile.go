package movement

import (
	"github.com/go-mclib/sessioncore/ecs"
	ns "github.com/go-mclib/sessioncore/net_structures"
	ps "github.com/go-mclib/sessioncore/protocol/packets"
)

// relative bitmask bits for S2CPlayerPositionPacketData.Relative (spec
// §4.8's "PlayerPosition... applies the relative/absolute components per
// the relative bitmask").
const (
	relX = 0x01
	relY = 0x02
	relZ = 0x04
	relYRot = 0x08
	relXRot = 0x10
)

// ApplyPlayerPosition implements the PlayerPosition handler contract
// (§4.8): apply relative/absolute components to position/look/physics per
// the bitmask, set Physics.OldPosition := Position, and return the two
// packets the caller must enqueue in order (AcceptTeleportation first,
// then MovePlayerPosRot) — §8 scenario 2's exact expected sequence.
func ApplyPlayerPosition(pos *ecs.Position, look *ecs.LookDirection, phys *ecs.Physics, pkt ps.S2CPlayerPositionPacketData) (accept ps.C2SAcceptTeleportationPacketData, move ps.C2SMovePlayerPosRotPacketData) {
	flags := int32(pkt.Relative)

	if flags&relX != 0 {
		pos.X += float64(pkt.X)
	} else {
		pos.X = float64(pkt.X)
	}
	if flags&relY != 0 {
		pos.Y += float64(pkt.Y)
	} else {
		pos.Y = float64(pkt.Y)
	}
	if flags&relZ != 0 {
		pos.Z += float64(pkt.Z)
	} else {
		pos.Z = float64(pkt.Z)
	}
	if flags&relYRot != 0 {
		look.Yaw += float32(pkt.Yaw)
	} else {
		look.Yaw = float32(pkt.Yaw)
	}
	if flags&relXRot != 0 {
		look.Pitch += float32(pkt.Pitch)
	} else {
		look.Pitch = float32(pkt.Pitch)
	}

	phys.OldPosition = *pos
	phys.Base = *pos

	accept = ps.C2SAcceptTeleportationPacketData{TeleportID: pkt.TeleportID}
	move = ps.C2SMovePlayerPosRotPacketData{
		X: ns.Double(pos.X), Y: ns.Double(pos.Y), Z: ns.Double(pos.Z),
		Yaw: ns.Float(look.Yaw), Pitch: ns.Float(look.Pitch),
		OnGround: ns.Boolean(phys.OnGround),
	}
	return accept, move
}

// Diff decides which serverbound move packet (if any) the tick system
// should enqueue for a local entity whose predicted physics has advanced
// since the last sent update (spec §4.9). Returns ok=false if neither
// position nor rotation changed enough to warrant a packet.
func Diff(oldPos ecs.Position, oldLook ecs.LookDirection, pos ecs.Position, look ecs.LookDirection, onGround bool) (data any, ok bool) {
	const epsilon = 1e-4

	posChanged := absDiff(oldPos.X, pos.X) > epsilon || absDiff(oldPos.Y, pos.Y) > epsilon || absDiff(oldPos.Z, pos.Z) > epsilon
	rotChanged := oldLook.Yaw != look.Yaw || oldLook.Pitch != look.Pitch

	switch {
	case posChanged && rotChanged:
		return ps.C2SMovePlayerPosRotPacketData{
			X: ns.Double(pos.X), Y: ns.Double(pos.Y), Z: ns.Double(pos.Z),
			Yaw: ns.Float(look.Yaw), Pitch: ns.Float(look.Pitch), OnGround: ns.Boolean(onGround),
		}, true
	case posChanged:
		return ps.C2SMovePlayerPosPacketData{
			X: ns.Double(pos.X), Y: ns.Double(pos.Y), Z: ns.Double(pos.Z), OnGround: ns.Boolean(onGround),
		}, true
	case rotChanged:
		return ps.C2SMovePlayerRotPacketData{
			Yaw: ns.Float(look.Yaw), Pitch: ns.Float(look.Pitch), OnGround: ns.Boolean(onGround),
		}, true
	default:
		return nil, false
	}
}

func absDiff(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
