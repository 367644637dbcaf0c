// Package entitymeta implements the entity metadata decoder (C6): mapping
// per-kind numeric metadata indices to typed component insertions, with
// inheritance along the entity-kind taxonomy (spec §4.6, §9). Reimplemented
// per the design note in §9 as a flat lookup table from entity-kind to a
// decode function, rather than virtual dispatch over an inheritance chain.
package entitymeta

import (
	"fmt"

	ns "github.com/go-mclib/sessioncore/net_structures"
)

// ValueType is the wire type tag preceding each metadata value (spec §4.6:
// "(index: u8, typed_value) pairs"). Only the subset exercised by the
// representative taxonomy slice in DESIGN.md is implemented; any other tag
// decodes via decodeValue's default branch and produces ErrUnknownValueType.
type ValueType int32

const (
	ValueByte ValueType = iota
	ValueVarInt
	ValueVarLong
	ValueFloat
	ValueString
	ValueTextComponent
	ValueOptionalTextComponent
	ValueItemStack
	ValueBoolean
	ValueRotations
	ValueBlockPos
	ValueOptionalBlockPos
	ValuePose
	ValueParticle
)

// Item is one decoded (index, type, value) entry from a metadata packet.
type Item struct {
	Index uint8
	Type  ValueType

	Byte    int8
	VarInt  int32
	VarLong int64
	Float   float32
	Str     string
	Bool    bool
	Pos     ns.Position
	HasPos  bool
}

// ErrUnknownValueType is returned by ReadItems when a value type tag isn't
// one of the ones this decoder knows how to parse. Per spec §4.6 this
// aborts the remainder of the batch; items already decoded are returned
// alongside the error so the caller can still apply them.
var ErrUnknownValueType = fmt.Errorf("entitymeta: unknown value type")

// ReadItems walks a raw EntityMetadata payload (the S2CSetEntityDataPacket
// wire format: repeated (index byte, type VarInt, value) triples,
// terminated by index 0xff) into a slice of Item. On the first
// unrecognized value type, it stops and returns the items decoded so far
// alongside ErrUnknownValueType, matching the "type mismatch aborts the
// remainder of that metadata batch; already-applied inserts are retained"
// contract.
func ReadItems(raw ns.ByteArray) ([]Item, error) {
	var items []Item
	offset := 0

	for offset < len(raw) {
		index := raw[offset]
		offset++
		if index == 0xFF {
			return items, nil
		}
		if offset >= len(raw) {
			return items, fmt.Errorf("entitymeta: truncated metadata at index %d", index)
		}

		var typeID ns.VarInt
		n, err := typeID.FromBytes(raw[offset:])
		if err != nil {
			return items, fmt.Errorf("entitymeta: reading type tag: %w", err)
		}
		offset += n

		item := Item{Index: index, Type: ValueType(typeID)}
		consumed, err := decodeValue(&item, raw[offset:])
		if err != nil {
			return items, err
		}
		offset += consumed
		items = append(items, item)
	}

	return items, nil
}

func decodeValue(item *Item, data ns.ByteArray) (int, error) {
	switch item.Type {
	case ValueByte:
		if len(data) < 1 {
			return 0, fmt.Errorf("entitymeta: truncated byte value")
		}
		item.Byte = int8(data[0])
		return 1, nil

	case ValueBoolean:
		if len(data) < 1 {
			return 0, fmt.Errorf("entitymeta: truncated boolean value")
		}
		item.Bool = data[0] != 0
		return 1, nil

	case ValueVarInt, ValuePose:
		var v ns.VarInt
		n, err := v.FromBytes(data)
		if err != nil {
			return 0, fmt.Errorf("entitymeta: reading varint value: %w", err)
		}
		item.VarInt = int32(v)
		return n, nil

	case ValueVarLong:
		var v ns.VarLong
		n, err := v.FromBytes(data)
		if err != nil {
			return 0, fmt.Errorf("entitymeta: reading varlong value: %w", err)
		}
		item.VarLong = int64(v)
		return n, nil

	case ValueFloat:
		var v ns.Float
		n, err := v.FromBytes(data)
		if err != nil {
			return 0, fmt.Errorf("entitymeta: reading float value: %w", err)
		}
		item.Float = float32(v)
		return n, nil

	case ValueString, ValueTextComponent:
		var v ns.String
		n, err := v.FromBytes(data)
		if err != nil {
			return 0, fmt.Errorf("entitymeta: reading string value: %w", err)
		}
		item.Str = string(v)
		return n, nil

	case ValueOptionalBlockPos:
		if len(data) < 1 {
			return 0, fmt.Errorf("entitymeta: truncated optional block pos")
		}
		present := data[0] != 0
		if !present {
			return 1, nil
		}
		var pos ns.Position
		n, err := pos.FromBytes(data[1:])
		if err != nil {
			return 0, fmt.Errorf("entitymeta: reading block pos value: %w", err)
		}
		item.HasPos = true
		item.Pos = pos
		return 1 + n, nil

	case ValueBlockPos:
		var pos ns.Position
		n, err := pos.FromBytes(data)
		if err != nil {
			return 0, fmt.Errorf("entitymeta: reading block pos value: %w", err)
		}
		item.HasPos = true
		item.Pos = pos
		return n, nil

	default:
		// ValueItemStack / ValueRotations / ValueParticle /
		// ValueOptionalTextComponent and anything else: not decoded by
		// this representative slice. Abort the batch per §4.6.
		return 0, ErrUnknownValueType
	}
}

// BoolBit extracts bit mask from a Byte-typed bitfield item, fanning a
// single byte out into several named boolean components (spec §4.6).
func BoolBit(b int8, mask uint8) bool {
	return byte(b)&mask != 0
}
