package session

import (
	ns "github.com/go-mclib/sessioncore/net_structures"
)

// PlayerInfoUpdate action bits, in wire order (spec: the Actions FixedBitSet
// preceding Entries).
const (
	playerInfoActionAddPlayer = iota
	playerInfoActionInitializeChat
	playerInfoActionUpdateGameMode
	playerInfoActionUpdateListed
	playerInfoActionUpdateLatency
	playerInfoActionUpdateDisplayName
)

func actionSet(actions ns.FixedBitSet, bit int) bool {
	byteIdx := bit / 8
	if byteIdx >= len(actions.Data) {
		return false
	}
	return actions.Data[byteIdx]&(1<<uint(bit%8)) != 0
}

// playerInfoEntry is one hand-decoded row of PlayerInfoUpdate's Entries
// blob. Only the fields whose Has* flag is set were actually present in the
// wire payload for this entry.
type playerInfoEntry struct {
	UUID [16]byte

	HasAddPlayer bool
	Name         string

	HasGameMode bool
	GameMode    int32

	HasListed bool
	Listed    bool

	HasLatency bool
	Latency    int32

	HasDisplayName bool
	DisplayName    string
}

// parsePlayerInfoEntries hand-decodes Entries against the Actions bitset,
// grounded on how azalea-client's tab_list plugin walks this same packet:
// the reflection codec can't branch a field's shape on a sibling field, so
// the per-entry layout is parsed by hand instead.
func parsePlayerInfoEntries(actions ns.FixedBitSet, raw ns.ByteArray) ([]playerInfoEntry, error) {
	var count ns.VarInt
	n, err := count.FromBytes(raw)
	if err != nil {
		return nil, err
	}
	offset := n

	entries := make([]playerInfoEntry, 0, count)
	for i := int32(0); i < int32(count); i++ {
		var e playerInfoEntry

		var uuid ns.UUID
		n, err := uuid.FromBytes(raw[offset:])
		if err != nil {
			return entries, err
		}
		offset += n
		e.UUID = [16]byte(uuid)

		if actionSet(actions, playerInfoActionAddPlayer) {
			e.HasAddPlayer = true

			var name ns.String
			n, err = name.FromBytes(raw[offset:])
			if err != nil {
				return entries, err
			}
			offset += n
			e.Name = string(name)

			var numProps ns.VarInt
			n, err = numProps.FromBytes(raw[offset:])
			if err != nil {
				return entries, err
			}
			offset += n

			for p := int32(0); p < int32(numProps); p++ {
				var pname, pvalue ns.String
				n, err = pname.FromBytes(raw[offset:])
				if err != nil {
					return entries, err
				}
				offset += n
				n, err = pvalue.FromBytes(raw[offset:])
				if err != nil {
					return entries, err
				}
				offset += n

				var signed ns.Boolean
				n, err = signed.FromBytes(raw[offset:])
				if err != nil {
					return entries, err
				}
				offset += n
				if bool(signed) {
					var sig ns.String
					n, err = sig.FromBytes(raw[offset:])
					if err != nil {
						return entries, err
					}
					offset += n
				}
			}
		}

		if actionSet(actions, playerInfoActionInitializeChat) {
			var hasSig ns.Boolean
			n, err = hasSig.FromBytes(raw[offset:])
			if err != nil {
				return entries, err
			}
			offset += n
			if bool(hasSig) {
				var sessionID ns.UUID
				n, err = sessionID.FromBytes(raw[offset:])
				if err != nil {
					return entries, err
				}
				offset += n

				var expiresAt ns.Long
				n, err = expiresAt.FromBytes(raw[offset:])
				if err != nil {
					return entries, err
				}
				offset += n

				var keyLen ns.VarInt
				n, err = keyLen.FromBytes(raw[offset:])
				if err != nil {
					return entries, err
				}
				offset += n + int(keyLen)

				var sigLen ns.VarInt
				n, err = sigLen.FromBytes(raw[offset:])
				if err != nil {
					return entries, err
				}
				offset += n + int(sigLen)
			}
		}

		if actionSet(actions, playerInfoActionUpdateGameMode) {
			var gm ns.VarInt
			n, err = gm.FromBytes(raw[offset:])
			if err != nil {
				return entries, err
			}
			offset += n
			e.HasGameMode = true
			e.GameMode = int32(gm)
		}

		if actionSet(actions, playerInfoActionUpdateListed) {
			var listed ns.Boolean
			n, err = listed.FromBytes(raw[offset:])
			if err != nil {
				return entries, err
			}
			offset += n
			e.HasListed = true
			e.Listed = bool(listed)
		}

		if actionSet(actions, playerInfoActionUpdateLatency) {
			var latency ns.VarInt
			n, err = latency.FromBytes(raw[offset:])
			if err != nil {
				return entries, err
			}
			offset += n
			e.HasLatency = true
			e.Latency = int32(latency)
		}

		if actionSet(actions, playerInfoActionUpdateDisplayName) {
			var hasName ns.Boolean
			n, err = hasName.FromBytes(raw[offset:])
			if err != nil {
				return entries, err
			}
			offset += n
			if bool(hasName) {
				var comp ns.JSONTextComponent
				n, err = comp.FromBytes(raw[offset:])
				if err != nil {
					return entries, err
				}
				offset += n
				e.HasDisplayName = true
				e.DisplayName = textComponentPlainText(comp)
			}
		}

		entries = append(entries, e)
	}
	return entries, nil
}
