// Command sessiondemo connects one headless session to a real server,
// wiring the tick scheduler to a despawn sweep and logging the events a
// caller would otherwise subscribe to from code. It exists to exercise
// client.Client end to end, the way go-mclib-protocol's own auth/protocol
// packages are meant to be driven by a real binary rather than only by
// package tests.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/go-mclib/sessioncore/auth"
	"github.com/go-mclib/sessioncore/client"
	"github.com/go-mclib/sessioncore/session"
)

func main() {
	address := flag.String("address", "localhost:25565", "server address (host or host:port)")
	username := flag.String("username", "sessioncore_bot", "offline-mode username")
	online := flag.Bool("online", false, "authenticate via Microsoft OAuth for an online-mode server")
	viewDistance := flag.Int("view-distance", 10, "requested render distance in chunks")
	flag.Parse()

	logger := log.New(os.Stdout, "[sessiondemo] ", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := client.Config{
		Address:      *address,
		Username:     *username,
		ViewDistance: int32(*viewDistance),
		Logger:       logger,
	}

	if *online {
		loginData, err := authenticate(ctx)
		if err != nil {
			logger.Fatalf("authentication failed: %v", err)
		}
		cfg.Auth = &loginData
	}

	c := client.New(cfg)
	if err := c.Connect(); err != nil {
		logger.Fatalf("connect: %v", err)
	}
	defer c.Close()

	logger.Printf("connected to %s as %s", *address, *username)

	c.Events.OnInstanceLoaded(func(e session.InstanceLoadedEvent) {
		logger.Printf("entered instance %s", e.InstanceName)
	})
	c.Events.OnDeath(func(e session.DeathEvent) {
		logger.Printf("local entity %d died", e.EntityID)
	})
	c.Events.OnChatReceived(func(e session.ChatReceivedEvent) {
		logger.Printf("chat: <%s> %s", e.Sender, e.Content)
	})

	c.Tick.Register(func(_ context.Context, tick uint64) error {
		c.Bundle.DespawnOrphans()
		return nil
	})
	go c.Tick.Run(ctx)

	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Printf("session ended: %v", err)
	}
}

func authenticate(ctx context.Context) (auth.LoginData, error) {
	ac := auth.NewClient(auth.AuthClientConfig{})
	data, err := ac.Login(ctx)
	if err != nil {
		return auth.LoginData{}, fmt.Errorf("microsoft login: %w", err)
	}
	return data, nil
}
