package protocol

import (
	"fmt"
)

// TCPClient is the C1 framed-transport facade: it owns a net.Conn (via
// BaseTCP), the current protocol state, and the compression threshold, and
// exposes ReadPacket/WritePacket in terms of WirePacket so callers never
// touch raw bytes.
//
// Per spec, changing the compression threshold or enabling encryption takes
// effect starting with the *next* frame read or written — SetCompressionThreshold
// only changes a field read at the top of ReadPacket/WritePacket, so a frame
// already in flight is unaffected.
type TCPClient struct {
	*BaseTCP
	state                State
	compressionThreshold int
}

// NewTCPClient creates a TCPClient with compression disabled and state
// Handshake, matching the initial state of every connection (spec §4.2).
func NewTCPClient() *TCPClient {
	return &TCPClient{
		BaseTCP:              NewBaseTCP(nil),
		state:                StateHandshake,
		compressionThreshold: -1,
	}
}

func (c *TCPClient) SetState(state State) { c.state = state }
func (c *TCPClient) GetState() State      { return c.state }

// SetCompressionThreshold sets the zlib compression threshold for frames
// read/written after this call returns. A negative value disables
// compression.
func (c *TCPClient) SetCompressionThreshold(threshold int) {
	c.compressionThreshold = threshold
}

// WritePacket serializes and sends a WirePacket, applying compression
// framing and then encryption (if enabled) to the resulting bytes.
func (c *TCPClient) WritePacket(packet *WirePacket) error {
	if c.conn == nil {
		return fmt.Errorf("connection is nil")
	}

	data, err := packet.ToBytes(c.compressionThreshold)
	if err != nil {
		return fmt.Errorf("failed to marshal packet: %w", err)
	}

	c.debugf("-> send: state=%v id=0x%02X len=%d (pre-encrypt) bytes=%s", c.state, int(packet.PacketID), len(data), hexSnippet(data, 256))

	if c.encryption.IsEnabled() {
		enc := c.encryption.Encrypt(data)
		c.debugf("-> send: encrypted len=%d bytes=%s", len(enc), hexSnippet(enc, 256))
		data = enc
	}

	n, err := c.conn.Write(data)
	if err != nil {
		return fmt.Errorf("failed to write packet: %w", err)
	}
	c.debugf("-> send: wrote=%d bytes", n)

	return nil
}

// encryptedReader adapts the TCPClient's decrypt-in-place scheme to an
// io.Reader so ReadWirePacketFrom can consume it uniformly.
type encryptedReader struct {
	c *TCPClient
}

func (r encryptedReader) Read(p []byte) (int, error) {
	n, err := r.c.conn.Read(p)
	if n > 0 && r.c.encryption.IsEnabled() {
		dec := r.c.encryption.Decrypt(p[:n])
		copy(p[:n], dec)
	}
	return n, err
}

// ReadPacket blocks for the next frame and returns it as a WirePacket,
// honoring the current compression threshold and encryption state.
func (c *TCPClient) ReadPacket() (*WirePacket, error) {
	if c.conn == nil {
		return nil, fmt.Errorf("connection is nil")
	}
	wire, err := ReadWirePacketFrom(encryptedReader{c}, c.compressionThreshold)
	if err != nil {
		return nil, err
	}
	c.debugf("<- recv: id=0x%02X len=%d", int(wire.PacketID), len(wire.Data))
	return wire, nil
}
