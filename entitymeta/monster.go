package entitymeta

// Creeper's own range: swell direction, powered flag, fuse-ignited flag —
// the three fields that drive its client-visible swell animation.
func init() {
	register(KindCreeper, KindAbstractMonster, func(items []Item, set Setter) error {
		for _, it := range items {
			switch it.Index {
			case 16:
				if it.Type != ValueVarInt {
					continue
				}
				set.SetInt("SwellDirection", it.VarInt)
			case 17:
				if it.Type != ValueBoolean {
					continue
				}
				set.SetBool("Powered", it.Bool)
			case 18:
				if it.Type != ValueBoolean {
					continue
				}
				set.SetBool("Ignited", it.Bool)
			}
		}
		return nil
	})
}
