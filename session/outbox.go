package session

import jp "github.com/go-mclib/sessioncore/protocol"

// Outbox is the narrow interface dispatch.go needs to send a serverbound
// reply packet. The client package supplies the concrete implementation
// backed by a real connection; tests supply a recording fake.
type Outbox interface {
	Send(meta jp.PacketMeta, data any) error
}
