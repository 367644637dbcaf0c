package entitymeta

import "fmt"

// Kind is the registry-resolved entity kind string (e.g. "minecraft:fox"),
// matching ecs.EntityKind.Kind.
type Kind string

// ApplyFunc is one taxonomy node's own decode function: it walks items
// whose Index falls in the node's local range, inserting the matching
// typed field via set, and ignores every other index. It does not call its
// parent's ApplyFunc itself: Decode walks the parent chain and runs each
// ancestor's ApplyFunc in turn — a flat lookup table instead of virtual
// dispatch.
type ApplyFunc func(items []Item, set Setter) error

// Setter is the narrow interface a kind's ApplyFunc uses to write
// decoded fields back into the caller's component store, without entitymeta
// importing ecs directly (keeping this package a leaf in the dependency
// graph — the caller in client/ supplies a Setter backed by ecs.Bundle).
type Setter interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetString(name string, v string)
}

// node is one taxonomy entry: its own ApplyFunc plus a pointer to its
// parent's node (nil for AbstractEntity, the taxonomy root).
type node struct {
	apply  ApplyFunc
	parent *node
}

var taxonomy = map[Kind]*node{}

// register adds kind to the taxonomy with the given own-range ApplyFunc and
// parent kind (empty string for the root).
func register(kind Kind, parent Kind, apply ApplyFunc) {
	n := &node{apply: apply}
	if parent != "" {
		p, ok := taxonomy[parent]
		if !ok {
			panic(fmt.Sprintf("entitymeta: parent kind %q registered before child %q", parent, kind))
		}
		n.parent = p
	}
	taxonomy[kind] = n
}

// Decode dispatches a metadata batch to kind's node, then walks up the
// parent chain applying each ancestor's own range too — a child's
// registered ApplyFunc is expected to only claim indices in its own local
// range and silently ignore (not error on) indices outside it, so calling
// every ancestor unconditionally reproduces "parent_range delegated,
// local_range own" without the node needing to know where its own range
// ends.
//
// Indices outside every declared range in the whole chain are ignored, per
// §4.6's forward-compat contract.
func Decode(kind Kind, items []Item, set Setter) error {
	n, ok := taxonomy[kind]
	if !ok {
		return fmt.Errorf("entitymeta: unknown entity kind %q", kind)
	}
	for cur := n; cur != nil; cur = cur.parent {
		if err := cur.apply(items, set); err != nil {
			return err
		}
	}
	return nil
}

// Registered reports whether kind has a taxonomy entry, for callers that
// want to check before calling Decode.
func Registered(kind Kind) bool {
	_, ok := taxonomy[kind]
	return ok
}
