package session

import "sync"

// Events carried across C5/C7/C8/C9/C10 to C11 subscribers. Field names are
// deliberately plain; consumers match on type via the typed On* registration
// methods on EventBus rather than a discriminated union, mirroring the
// go-mclib-client module pattern of typed callback-registration lists.

// InstanceLoadedEvent fires when Login or Respawn is handled. Before Login
// is dispatched the client has already acquired the shared instance; the
// Respawn handler records the new InstanceName but acquires no instance.
type InstanceLoadedEvent struct {
	InstanceName string
}

// KnockbackEvent carries a velocity delta translated from SetEntityMotion or
// Explode.
type KnockbackEvent struct {
	EntityID int32
	DeltaX   float64
	DeltaY   float64
	DeltaZ   float64
}

// KeepAliveEvent fires on every received keep-alive, before the serverbound
// echo is enqueued.
type KeepAliveEvent struct {
	ID int64
}

// DeathEvent fires when PlayerCombatKill names the local entity and it
// wasn't already marked Dead.
type DeathEvent struct {
	EntityID int32
}

// DisconnectEvent fires exactly once per connection teardown, local or
// remote.
type DisconnectEvent struct {
	Reason DisconnectReason
	Err    error
}

// MenuOpenedEvent fires on OpenScreen.
type MenuOpenedEvent struct {
	ContainerID int32
	Kind        int32
	Title       string
}

// ClientsideCloseContainerEvent fires on a clientbound ContainerClose.
type ClientsideCloseContainerEvent struct {
	ContainerID int32
}

// ChatReceivedEvent fires on PlayerChat/SystemChatMessage.
type ChatReceivedEvent struct {
	Sender  string
	Content string
	Overlay bool
}

// GameEvent carries every game_event subtype the ChangeGameMode handler
// doesn't special-case (rain, thunder, arrow hit, puffer, demo messages,
// etc). Preserved pass-through per the taxonomy decision in DESIGN.md.
type GameEvent struct {
	Kind  uint8
	Value float32
}

// CooldownEvent fires on Set Cooldown; not persisted as component state
// since cooldown expiry is wall-clock driven, outside the ECS tick.
type CooldownEvent struct {
	Group string
	Ticks int32
}

// StatValue is one entry of StatsAwardedEvent.Stats.
type StatValue struct {
	CategoryID int32
	StatID     int32
	Value      int32
}

// StatsAwardedEvent fires on Award Statistics.
type StatsAwardedEvent struct {
	Stats []StatValue
}

// EntityLinkEvent fires on Set Entity Link (leashing).
type EntityLinkEvent struct {
	SourceID int32
	TargetID int32
}

// PassengersChangedEvent fires on Set Passengers, after Vehicle/Passengers
// components have been updated.
type PassengersChangedEvent struct {
	EntityID int32
}

// CameraSetEvent fires on Set Camera.
type CameraSetEvent struct {
	EntityID int32
}

// BorderChangeKind discriminates which of the four Set Border * packets
// produced a BorderChangedEvent.
type BorderChangeKind uint8

const (
	BorderCenter BorderChangeKind = iota
	BorderLerpSize
	BorderSize
	BorderWarningDelay
	BorderWarningDistance
)

// BorderChangedEvent fires on any Set Border * packet. Only the fields
// relevant to Kind are populated; the event is the only record of
// world-border state, which is not stored anywhere else (see DESIGN.md).
type BorderChangedEvent struct {
	Kind BorderChangeKind

	CenterX, CenterZ         float64
	OldDiameter, NewDiameter float64
	SpeedMillis              int64
	WarningTime              int32
	WarningBlocks            int32
}

// EventBus is a minimal typed pub/sub hub: each event type gets its own
// subscriber slice, appended to under a single mutex and invoked
// synchronously in registration order. Handlers run on the tick
// scheduler's or the packet dispatcher's goroutine — never concurrently
// with each other — so subscribers may assume no reentrancy.
type EventBus struct {
	mu sync.Mutex

	onInstanceLoaded  []func(InstanceLoadedEvent)
	onKnockback       []func(KnockbackEvent)
	onKeepAlive       []func(KeepAliveEvent)
	onDeath           []func(DeathEvent)
	onDisconnect      []func(DisconnectEvent)
	onMenuOpened      []func(MenuOpenedEvent)
	onContainerClosed []func(ClientsideCloseContainerEvent)
	onChatReceived    []func(ChatReceivedEvent)
	onGameEvent       []func(GameEvent)
	onCooldown        []func(CooldownEvent)
	onStatsAwarded    []func(StatsAwardedEvent)
	onEntityLink      []func(EntityLinkEvent)
	onPassengersChanged []func(PassengersChangedEvent)
	onCameraSet       []func(CameraSetEvent)
	onBorderChanged   []func(BorderChangedEvent)
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

func (b *EventBus) OnInstanceLoaded(cb func(InstanceLoadedEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onInstanceLoaded = append(b.onInstanceLoaded, cb)
}

func (b *EventBus) OnKnockback(cb func(KnockbackEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onKnockback = append(b.onKnockback, cb)
}

func (b *EventBus) OnKeepAlive(cb func(KeepAliveEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onKeepAlive = append(b.onKeepAlive, cb)
}

func (b *EventBus) OnDeath(cb func(DeathEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onDeath = append(b.onDeath, cb)
}

func (b *EventBus) OnDisconnect(cb func(DisconnectEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onDisconnect = append(b.onDisconnect, cb)
}

func (b *EventBus) OnMenuOpened(cb func(MenuOpenedEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onMenuOpened = append(b.onMenuOpened, cb)
}

func (b *EventBus) OnContainerClosed(cb func(ClientsideCloseContainerEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onContainerClosed = append(b.onContainerClosed, cb)
}

func (b *EventBus) OnChatReceived(cb func(ChatReceivedEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onChatReceived = append(b.onChatReceived, cb)
}

func (b *EventBus) OnGameEvent(cb func(GameEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onGameEvent = append(b.onGameEvent, cb)
}

func (b *EventBus) OnCooldown(cb func(CooldownEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onCooldown = append(b.onCooldown, cb)
}

func (b *EventBus) OnStatsAwarded(cb func(StatsAwardedEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onStatsAwarded = append(b.onStatsAwarded, cb)
}

func (b *EventBus) OnEntityLink(cb func(EntityLinkEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onEntityLink = append(b.onEntityLink, cb)
}

func (b *EventBus) OnPassengersChanged(cb func(PassengersChangedEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onPassengersChanged = append(b.onPassengersChanged, cb)
}

func (b *EventBus) OnCameraSet(cb func(CameraSetEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onCameraSet = append(b.onCameraSet, cb)
}

func (b *EventBus) OnBorderChanged(cb func(BorderChangedEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onBorderChanged = append(b.onBorderChanged, cb)
}

func (b *EventBus) EmitInstanceLoaded(e InstanceLoadedEvent) {
	b.mu.Lock()
	cbs := append([]func(InstanceLoadedEvent){}, b.onInstanceLoaded...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}

func (b *EventBus) EmitKnockback(e KnockbackEvent) {
	b.mu.Lock()
	cbs := append([]func(KnockbackEvent){}, b.onKnockback...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}

func (b *EventBus) EmitKeepAlive(e KeepAliveEvent) {
	b.mu.Lock()
	cbs := append([]func(KeepAliveEvent){}, b.onKeepAlive...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}

func (b *EventBus) EmitDeath(e DeathEvent) {
	b.mu.Lock()
	cbs := append([]func(DeathEvent){}, b.onDeath...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}

func (b *EventBus) EmitDisconnect(e DisconnectEvent) {
	b.mu.Lock()
	cbs := append([]func(DisconnectEvent){}, b.onDisconnect...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}

func (b *EventBus) EmitMenuOpened(e MenuOpenedEvent) {
	b.mu.Lock()
	cbs := append([]func(MenuOpenedEvent){}, b.onMenuOpened...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}

func (b *EventBus) EmitContainerClosed(e ClientsideCloseContainerEvent) {
	b.mu.Lock()
	cbs := append([]func(ClientsideCloseContainerEvent){}, b.onContainerClosed...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}

func (b *EventBus) EmitChatReceived(e ChatReceivedEvent) {
	b.mu.Lock()
	cbs := append([]func(ChatReceivedEvent){}, b.onChatReceived...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}

func (b *EventBus) EmitGameEvent(e GameEvent) {
	b.mu.Lock()
	cbs := append([]func(GameEvent){}, b.onGameEvent...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}

func (b *EventBus) EmitCooldown(e CooldownEvent) {
	b.mu.Lock()
	cbs := append([]func(CooldownEvent){}, b.onCooldown...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}

func (b *EventBus) EmitStatsAwarded(e StatsAwardedEvent) {
	b.mu.Lock()
	cbs := append([]func(StatsAwardedEvent){}, b.onStatsAwarded...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}

func (b *EventBus) EmitEntityLink(e EntityLinkEvent) {
	b.mu.Lock()
	cbs := append([]func(EntityLinkEvent){}, b.onEntityLink...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}

func (b *EventBus) EmitPassengersChanged(e PassengersChangedEvent) {
	b.mu.Lock()
	cbs := append([]func(PassengersChangedEvent){}, b.onPassengersChanged...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}

func (b *EventBus) EmitCameraSet(e CameraSetEvent) {
	b.mu.Lock()
	cbs := append([]func(CameraSetEvent){}, b.onCameraSet...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}

func (b *EventBus) EmitBorderChanged(e BorderChangedEvent) {
	b.mu.Lock()
	cbs := append([]func(BorderChangedEvent){}, b.onBorderChanged...)
	b.mu.Unlock()
	for _, cb := range cbs {
		cb(e)
	}
}
