package entitymeta

// ItemFrame and Player both hang directly off AbstractEntity, skipping the
// living branch entirely (spec §3's taxonomy tree, "AbstractEntity ->
// {ItemFrame, Player}").

// ItemFrame's own range: rotation only. Index 8 (the held item, wire type
// Slot) is intentionally not decoded by this representative slice — see
// entitymeta/metadata.go's ValueItemStack comment; a real item frame with
// a held item would abort the batch at that index per §4.6's type-mismatch
// contract, with rotation still applied first only if it were ordered
// ahead of the item (vanilla servers send item before rotation, so in
// practice this slice won't observe rotation from a live server — noted
// here rather than silently pretended otherwise).
func init() {
	register(KindItemFrame, KindAbstractEntity, func(items []Item, set Setter) error {
		for _, it := range items {
			if it.Index != 9 {
				continue
			}
			if it.Type != ValueVarInt {
				continue
			}
			set.SetInt("FrameRotation", it.VarInt)
		}
		return nil
	})
}

// Player's own range: a single additional-flags bitfield (cape/jacket/
// sleeve/trouser-leg/hat layer visibility, main-hand side) — the rest of
// the player-specific state (score, skin texture, absorption) lives
// outside metadata in this slice (SetHealth/SetExperience/PlayerInfoUpdate
// already cover it elsewhere in the dispatcher).
func init() {
	register(KindPlayer, KindAbstractEntity, func(items []Item, set Setter) error {
		for _, it := range items {
			if it.Index != 8 {
				continue
			}
			if it.Type != ValueByte {
				continue
			}
			b := it.Byte
			set.SetBool("CapeVisible", BoolBit(b, 0x01))
			set.SetBool("JacketVisible", BoolBit(b, 0x02))
			set.SetBool("LeftSleeveVisible", BoolBit(b, 0x04))
			set.SetBool("RightSleeveVisible", BoolBit(b, 0x08))
			set.SetBool("LeftPantsLegVisible", BoolBit(b, 0x10))
			set.SetBool("RightPantsLegVisible", BoolBit(b, 0x20))
			set.SetBool("HatVisible", BoolBit(b, 0x40))
			set.SetBool("MainHandLeft", BoolBit(b, 0x80))
		}
		return nil
	})
}
