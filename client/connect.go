package client

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-mclib/sessioncore/crypto"
	ns "github.com/go-mclib/sessioncore/net_structures"
	jp "github.com/go-mclib/sessioncore/protocol"
	ps "github.com/go-mclib/sessioncore/protocol/packets"
	"github.com/go-mclib/sessioncore/session"
)

// Connect walks the full Handshake -> Login -> Configuration sequence and
// leaves the connection parked at the first Play packet (always Login
// (play) — enterPlay reads and consumes it to bootstrap the world/ECS
// before handing off to Run).
func (c *Client) Connect() error {
	if err := c.tcp.Connect(c.cfg.Address); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	if err := c.handshake(); err != nil {
		return fmt.Errorf("handshake: %w", err)
	}
	if err := c.login(); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := c.configure(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	return c.enterPlay()
}

// textComponentPlainText pulls the "text" field out of a decoded JSON text
// component, enough to surface a disconnect reason in an error message.
func textComponentPlainText(c ns.JSONTextComponent) string {
	if s, ok := c["text"].(string); ok {
		return s
	}
	return ""
}

func splitHostPort(address string) (string, uint16) {
	host, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return address, 25565
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return host, 25565
	}
	return host, uint16(port)
}

func (c *Client) handshake() error {
	host, port := splitHostPort(c.cfg.Address)
	wire, err := ps.C2SIntentionPacket.WithData(ps.C2SIntentionPacketData{
		ProtocolVersion: protocolVersion,
		ServerAddress:   ns.String(host),
		ServerPort:      ns.UnsignedShort(port),
		Intent:          ps.IntentLogin,
	})
	if err != nil {
		return err
	}
	c.tcp.SetState(jp.StateLogin)
	return c.tcp.WritePacket(wire)
}

// login drives the login-state exchange: Hello, optional Encryption
// Request/Response round trip for online mode, optional Set Compression,
// and finally Login Success -> Login Acknowledged.
func (c *Client) login() error {
	c.state.Transition(session.PhaseLogin)
	username := c.cfg.Username
	if c.cfg.Auth != nil {
		username = c.cfg.Auth.Username
	}
	playerUUID := ns.UUID{}
	if c.cfg.Auth != nil {
		if u, err := ns.NewUUID(c.cfg.Auth.UUID); err == nil {
			playerUUID = u
		}
	}
	if err := c.sendLoginPacket(ps.C2SHelloPacket, ps.C2SHelloPacketData{Name: ns.String(username), PlayerUUID: playerUUID}); err != nil {
		return err
	}

	for {
		wire, err := c.tcp.ReadPacket()
		if err != nil {
			return err
		}
		switch wire.PacketID {
		case ps.S2CDisconnectLoginPacket.ID():
			data, err := jp.ReadPacket[ps.S2CDisconnectLoginPacketData](wire, ps.S2CDisconnectLoginPacket)
			if err != nil {
				return err
			}
			return fmt.Errorf("server disconnected during login: %s", textComponentPlainText(data.Reason))

		case ps.S2CEncryptionRequestPacket.ID():
			if err := c.handleEncryptionRequest(wire); err != nil {
				return err
			}

		case ps.S2CSetCompressionPacket.ID():
			data, err := jp.ReadPacket[ps.S2CSetCompressionPacketData](wire, ps.S2CSetCompressionPacket)
			if err != nil {
				return err
			}
			c.tcp.SetCompressionThreshold(int(data.Threshold))

		case ps.S2CLoginPluginRequestPacket.ID():
			data, err := jp.ReadPacket[ps.S2CLoginPluginRequestPacketData](wire, ps.S2CLoginPluginRequestPacket)
			if err != nil {
				return err
			}
			// No plugin channel understood; answer with the "unhandled" form
			// (Data absent) rather than silently dropping the request.
			if err := c.sendLoginPacket(ps.C2SCustomQueryAnswerPacket, ps.C2SCustomQueryAnswerPacketData{MessageID: data.MessageID}); err != nil {
				return err
			}

		case ps.S2CLoginSuccessPacket.ID():
			if _, err := jp.ReadPacket[ps.S2CLoginSuccessPacketData](wire, ps.S2CLoginSuccessPacket); err != nil {
				return err
			}
			c.tcp.SetState(jp.StateConfiguration)
			c.state.Transition(session.PhaseConfiguration)
			return c.sendLoginPacket(ps.C2SLoginAcknowledgedPacket, struct{}{})

		default:
			// Cookie Request (login) and anything else unrecognized: accepted
			// and dropped, matching Dispatch's generic-path policy.
		}
	}
}

func (c *Client) sendLoginPacket(meta jp.PacketMeta, data any) error {
	wire, err := meta.WithData(data)
	if err != nil {
		return err
	}
	return c.tcp.WritePacket(wire)
}

// handleEncryptionRequest answers an online-mode server's Encryption
// Request: generate a shared secret, join the Mojang session server with
// the server-id hash (Config.Auth must be set or this fails), reply with
// the RSA-encrypted secret/verify token, then flip encryption on for every
// frame from this point forward.
func (c *Client) handleEncryptionRequest(wire *jp.WirePacket) error {
	if c.cfg.Auth == nil {
		return fmt.Errorf("server requires online-mode encryption but no Auth was configured")
	}
	data, err := jp.ReadPacket[ps.S2CEncryptionRequestPacketData](wire, ps.S2CEncryptionRequestPacket)
	if err != nil {
		return err
	}

	enc := c.tcp.GetEncryption()
	secret, err := enc.GenerateSharedSecret()
	if err != nil {
		return err
	}

	serverIDHash := minecraftServerIDHash(string(data.ServerID), secret, []byte(data.PublicKey))
	if err := joinMojangSession(c.cfg.Auth.AccessToken, c.cfg.Auth.UUID, serverIDHash); err != nil {
		return fmt.Errorf("join session server: %w", err)
	}

	encryptedSecret, err := enc.EncryptWithPublicKey([]byte(data.PublicKey), secret)
	if err != nil {
		return err
	}
	encryptedToken, err := enc.EncryptWithPublicKey([]byte(data.PublicKey), []byte(data.VerifyTok))
	if err != nil {
		return err
	}

	if err := c.sendLoginPacket(ps.C2SKeyPacket, ps.C2SKeyPacketData{
		SharedSecret: ns.PrefixedByteArray(encryptedSecret),
		VerifyToken:  ns.PrefixedByteArray(encryptedToken),
	}); err != nil {
		return err
	}
	return enc.EnableEncryption()
}

// minecraftServerIDHash reproduces the Minecraft-flavored SHA-1 digest used
// to authorize a session join: hash(ASCII(serverId) + sharedSecret +
// publicKey).
func minecraftServerIDHash(serverID string, sharedSecret, publicKey []byte) string {
	h := crypto.NewMinecraftSHA1()
	h.Write([]byte(serverID))
	h.Write(sharedSecret)
	h.Write(publicKey)
	return h.HexDigest()
}
