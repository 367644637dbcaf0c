package entitymeta

// AbstractLiving's own range (indices 8-11): health and a couple of
// passive-combat bookkeeping fields common to everything alive.
func init() {
	register(KindAbstractLiving, KindAbstractEntity, func(items []Item, set Setter) error {
		for _, it := range items {
			switch it.Index {
			case 8:
				if it.Type != ValueFloat {
					continue
				}
				set.SetFloat("Health", it.Float)
			case 9:
				if it.Type != ValueBoolean {
					continue
				}
				set.SetBool("PotionAmbient", it.Bool)
			case 10:
				if it.Type != ValueVarInt {
					continue
				}
				set.SetInt("ArrowCount", it.VarInt)
			case 11:
				if it.Type != ValueVarInt {
					continue
				}
				set.SetInt("StingerCount", it.VarInt)
			}
		}
		return nil
	})
}

// AbstractInsentient's own range (index 12): AI/handedness/aggression
// bitfield common to every non-player mob.
func init() {
	register(KindAbstractInsentient, KindAbstractLiving, func(items []Item, set Setter) error {
		for _, it := range items {
			if it.Index != 12 {
				continue
			}
			if it.Type != ValueByte {
				continue
			}
			b := it.Byte
			set.SetBool("NoAI", BoolBit(b, 0x01))
			set.SetBool("LeftHanded", BoolBit(b, 0x02))
			set.SetBool("Aggressive", BoolBit(b, 0x04))
		}
		return nil
	})
}

// AbstractCreature declares no own indices — it exists purely as an
// organizational ancestor between AbstractInsentient and AbstractAnimal,
// matching spec §4.6's "parent_range delegated" nodes that contribute
// nothing of their own.
func init() {
	register(KindAbstractCreature, KindAbstractInsentient, func([]Item, Setter) error {
		return nil
	})
}

// AbstractAnimal's own range (index 13): the baby/adult flag shared by
// every breedable animal.
func init() {
	register(KindAbstractAnimal, KindAbstractCreature, func(items []Item, set Setter) error {
		for _, it := range items {
			if it.Index != 13 {
				continue
			}
			if it.Type != ValueBoolean {
				continue
			}
			set.SetBool("Baby", it.Bool)
		}
		return nil
	})
}

// AbstractMonster declares no own indices, mirroring AbstractCreature —
// Creeper inherits straight through it from AbstractInsentient.
func init() {
	register(KindAbstractMonster, KindAbstractInsentient, func([]Item, Setter) error {
		return nil
	})
}
