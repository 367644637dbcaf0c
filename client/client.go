// Package client is the facade that wires the C1 transport, the C2 login
// sequence, the C3/C4 world model, and the C8 dispatcher into one
// connection, matching the Module/From(c) shape go-mclib-client's own
// WorldStore/EntityStore fragments use (each owns a back-reference to the
// *Client that constructed it rather than the other way around).
package client

import (
	"log"
	"os"
	"sync"

	"github.com/go-mclib/sessioncore/auth"
	"github.com/go-mclib/sessioncore/ecs"
	"github.com/go-mclib/sessioncore/inventory"
	jp "github.com/go-mclib/sessioncore/protocol"
	"github.com/go-mclib/sessioncore/session"
	"github.com/go-mclib/sessioncore/world"
)

// protocolVersion is the protocol number sent in the handshake. It must
// match the server's negotiated version; go-mc v1.20.2's protocol package
// targets the same 1.21.1 wire shapes the packets package documents.
const protocolVersion = 767

// defaultViewDistance mirrors the vanilla client's own default render
// distance sent in Client Information.
const defaultViewDistance = 10

// Config configures a Client's connection.
type Config struct {
	// Address is "host" or "host:port"; SRV lookup fills in the port when
	// omitted (BaseTCP.Connect / resolveMinecraftAddress).
	Address string
	// Username is used directly in offline mode. In online mode (Auth set)
	// the authenticated profile's name is used instead.
	Username string
	// Auth, when non-nil, drives the online-mode encrypted handshake:
	// Login's access token and profile are used to answer Encryption
	// Request and to join the Mojang session server before Hello replies
	// are trusted by the remote server.
	Auth *auth.LoginData
	// ViewDistance is sent in Client Information during Configuration.
	ViewDistance int32
	Logger       *log.Logger
}

// Client owns one connection's transport, state machine, and world/ECS
// slice. Exported fields are stable once Connect returns; callers read
// Bundle/Local/Events for their own systems and call Send for anything the
// dispatcher itself doesn't already reply to automatically.
type Client struct {
	cfg    Config
	Logger *log.Logger

	tcp   *jp.TCPClient
	state *session.StateMachine

	sendMu sync.Mutex

	registries *world.RegistryStore
	Instances  *world.Container
	Instance   *world.Instance
	Partial    *world.PartialInstance
	Pipeline   *world.ChunkPipeline

	Bundle     *ecs.Bundle
	Local      ecs.Entity
	Events     *session.EventBus
	Inventory  *inventory.Registry
	Prediction *inventory.BlockStatePredictionHandler
	Dispatcher *session.Dispatcher
	Tick       *session.TickScheduler
}

// New constructs a Client ready for Connect. No network I/O happens here.
func New(cfg Config) *Client {
	if cfg.ViewDistance == 0 {
		cfg.ViewDistance = defaultViewDistance
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stdout, "[sessioncore] ", log.LstdFlags)
	}
	return &Client{
		cfg:        cfg,
		Logger:     logger,
		tcp:        jp.NewTCPClient(),
		state:      session.NewStateMachine(),
		registries: world.NewRegistryStore(),
		Instances:  world.NewContainer(),
		Events:     session.NewEventBus(),
		Inventory:  inventory.NewRegistry(),
		Prediction: inventory.NewBlockStatePredictionHandler(),
		Tick:       session.NewTickScheduler(),
	}
}

// Send implements session.Outbox: it serializes data under meta's packet
// id and writes it to the connection. Play-loop reads happen on the
// caller's own goroutine (Run), so writes triggered from a different
// goroutine (a tick System, or a caller issuing a command) are the only
// source of concurrent access TCPClient itself doesn't guard against —
// sendMu serializes them.
func (c *Client) Send(meta jp.PacketMeta, data any) error {
	wire, err := meta.WithData(data)
	if err != nil {
		return err
	}
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	return c.tcp.WritePacket(wire)
}

// Close tears down the underlying connection and stops the tick scheduler
// if it was started.
func (c *Client) Close() error {
	c.Tick.Stop()
	return c.tcp.Close()
}
