package session

import "errors"

// Error taxonomy for the session layer. Handlers classify failures into one
// of these categories.
//
// Dispatch wraps every handler failure in ErrDecode and carries the
// handler's own error (unknown-entity, metadata-mismatch, absent-component,
// ...) as text only, so errors.Is matches ErrDecode, not the inner category.
// client.Run logs each dispatch error and keeps reading: no category,
// decode included, ends the connection or emits a DisconnectEvent; Run
// returns only when a packet read fails or its context is cancelled.
var (
	// ErrFraming covers EOF and oversize-frame conditions from C1.
	ErrFraming = errors.New("session: framing error")
	// ErrCompression covers malformed zlib framing.
	ErrCompression = errors.New("session: compression error")
	// ErrDecode covers unknown packet ids, short reads, and out-of-range
	// tagged-union discriminants.
	ErrDecode = errors.New("session: decode error")
	// ErrWrongPhase is returned when a packet is written or a handler runs
	// for a phase other than the one the connection is currently in.
	ErrWrongPhase = errors.New("session: wrong phase")
	// ErrRegistryMiss covers a dimension type, entity kind, or variant not
	// found in the registry store.
	ErrRegistryMiss = errors.New("session: registry miss")
	// ErrMetadataType covers a metadata value whose wire type didn't match
	// the expected typed conversion for its index.
	ErrMetadataType = errors.New("session: metadata type mismatch")
	// ErrUnknownEntity covers an update referencing an entity id the world
	// store has no record of (common for just-despawned entities).
	ErrUnknownEntity = errors.New("session: unknown entity id")
	// ErrComponentAbsent covers an update that required a component the
	// target entity does not carry.
	ErrComponentAbsent = errors.New("session: component absent")
	// ErrKeepAliveTimeout is the disconnect reason when no keep-alive
	// response arrives within the configured window.
	ErrKeepAliveTimeout = errors.New("session: keep-alive timeout")
)

// DisconnectReason classifies why a connection was torn down, carried on
// DisconnectEvent for consumers that want to distinguish causes without
// string-matching an error.
type DisconnectReason int

const (
	DisconnectUnknown DisconnectReason = iota
	DisconnectRemote
	DisconnectLocal
	DisconnectFraming
	DisconnectDecode
	DisconnectWrongPhase
	DisconnectKeepAliveTimeout
)

func (r DisconnectReason) String() string {
	switch r {
	case DisconnectRemote:
		return "remote"
	case DisconnectLocal:
		return "local"
	case DisconnectFraming:
		return "framing"
	case DisconnectDecode:
		return "decode"
	case DisconnectWrongPhase:
		return "wrong_phase"
	case DisconnectKeepAliveTimeout:
		return "keep_alive_timeout"
	default:
		return "unknown"
	}
}
