package entitymeta

// Fox's own range: variant at 14, the sit/faceplant/defend/interest
// bitfield at 18 (indices 15-17 are the two trusted-owner UUIDs, not
// decoded by this representative slice). Mask layout reproduces spec §8
// scenario 5 exactly: item (18, Byte 0b0010_1000) must yield
// Sleeping=true, FoxInterested=true, every other bit false.
func init() {
	register(KindFox, KindAbstractAnimal, func(items []Item, set Setter) error {
		for _, it := range items {
			switch it.Index {
			case 14:
				if it.Type != ValueVarInt {
					continue
				}
				set.SetInt("FoxVariant", it.VarInt)
			case 18:
				if it.Type != ValueByte {
					continue
				}
				b := it.Byte
				set.SetBool("FoxSitting", BoolBit(b, 0x01))
				set.SetBool("Faceplanted", BoolBit(b, 0x02))
				set.SetBool("Defending", BoolBit(b, 0x04))
				set.SetBool("FoxInterested", BoolBit(b, 0x08))
				set.SetBool("Pouncing", BoolBit(b, 0x10))
				set.SetBool("Sleeping", BoolBit(b, 0x20))
				set.SetBool("FoxCrouching", BoolBit(b, 0x40))
			}
		}
		return nil
	})
}

// Pig's own range: saddle flag and boost-ticks-remaining for a carrot-on-a-
// stick ride.
func init() {
	register(KindPig, KindAbstractAnimal, func(items []Item, set Setter) error {
		for _, it := range items {
			switch it.Index {
			case 14:
				if it.Type != ValueBoolean {
					continue
				}
				set.SetBool("Saddled", it.Bool)
			case 15:
				if it.Type != ValueVarInt {
					continue
				}
				set.SetInt("BoostTicks", it.VarInt)
			}
		}
		return nil
	})
}

// Allay's own range: dancing state and the duplication cooldown gate.
// Allay inherits straight from AbstractCreature in vanilla (it isn't
// breedable), so its parent here is AbstractCreature rather than
// AbstractAnimal.
func init() {
	register(KindAllay, KindAbstractCreature, func(items []Item, set Setter) error {
		for _, it := range items {
			switch it.Index {
			case 13:
				if it.Type != ValueBoolean {
					continue
				}
				set.SetBool("Dancing", it.Bool)
			case 14:
				if it.Type != ValueBoolean {
					continue
				}
				set.SetBool("CanDuplicate", it.Bool)
			}
		}
		return nil
	})
}
