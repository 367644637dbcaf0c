package entitymeta

// Kind identifiers for the representative taxonomy slice named in
// DESIGN.md/SPEC_FULL.md §C. Not every entity kind the registry can name —
// just enough of the tree to exercise multi-level inheritance: shared
// entity/living/insentient/creature/animal ranges, two animal leaves plus
// one non-animal insentient leaf, a monster leaf, and two direct
// AbstractEntity children that skip the living branch entirely.
const (
	KindAbstractEntity     Kind = "minecraft:~entity"
	KindAbstractLiving     Kind = "minecraft:~living_entity"
	KindAbstractInsentient Kind = "minecraft:~mob"
	KindAbstractCreature   Kind = "minecraft:~pathfinder_mob"
	KindAbstractAnimal     Kind = "minecraft:~animal"
	KindAbstractMonster    Kind = "minecraft:~monster"

	KindFox       Kind = "minecraft:fox"
	KindPig       Kind = "minecraft:pig"
	KindAllay     Kind = "minecraft:allay"
	KindCreeper   Kind = "minecraft:creeper"
	KindItemFrame Kind = "minecraft:item_frame"
	KindPlayer    Kind = "minecraft:player"
)

// AbstractEntity is the taxonomy root: every entity has these indices
// (spec §3's shared fields, fanned out to named bool components at index 0).
func init() {
	register(KindAbstractEntity, "", func(items []Item, set Setter) error {
		for _, it := range items {
			switch it.Index {
			case 0:
				if it.Type != ValueByte {
					continue
				}
				b := it.Byte
				set.SetBool("OnFire", BoolBit(b, 0x01))
				set.SetBool("Crouching", BoolBit(b, 0x02))
				set.SetBool("Sprinting", BoolBit(b, 0x08))
				set.SetBool("Swimming", BoolBit(b, 0x10))
				set.SetBool("Invisible", BoolBit(b, 0x20))
				set.SetBool("Glowing", BoolBit(b, 0x40))
				set.SetBool("FallFlying", BoolBit(b, 0x80))
			case 1:
				if it.Type != ValueVarInt {
					continue
				}
				set.SetInt("AirSupply", it.VarInt)
			case 3:
				if it.Type != ValueBoolean {
					continue
				}
				set.SetBool("CustomNameVisible", it.Bool)
			case 4:
				if it.Type != ValueBoolean {
					continue
				}
				set.SetBool("Silent", it.Bool)
			case 5:
				if it.Type != ValueBoolean {
					continue
				}
				set.SetBool("NoGravity", it.Bool)
			case 6:
				if it.Type != ValueVarInt {
					continue
				}
				set.SetInt("Pose", it.VarInt)
			case 7:
				if it.Type != ValueVarInt {
					continue
				}
				set.SetInt("TicksFrozen", it.VarInt)
			}
			// Index 2 (CustomName, OptionalTextComponent) is intentionally
			// not decoded by this representative slice — ReadItems already
			// aborts the batch before producing an Item for it.
		}
		return nil
	})
}
