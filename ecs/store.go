// Package ecs implements the per-process entity/component store (C5):
// entities are opaque generational handles, components live in typed
// per-kind bags keyed by entity, and mutation is deferred through a
// command buffer so handlers never observe a store mid-mutation during a
// query (spec §4.5, §9 "ECS command buffer vs. direct mutation").
package ecs

import "sync"

// Entity is an opaque handle into a Store. Index is recycled on despawn;
// Generation is bumped each time an Index is reused so a stale Entity value
// captured before a despawn can never alias a newly spawned one that
// happens to land on the same Index (spec §3: "opaque handle, generational
// index recommended").
type Entity struct {
	Index      uint32
	Generation uint32
}

// Store tracks which Index slots are alive and their current Generation.
// It does not itself hold component data — components live in ComponentSet
// instances created alongside a Store and keyed by the same Entity values.
type Store struct {
	mu          sync.RWMutex
	generations []uint32
	alive       []bool
	free        []uint32
}

func NewStore() *Store {
	return &Store{}
}

// Spawn allocates a new Entity, reusing a freed Index when one is
// available.
func (s *Store) Spawn() Entity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		s.alive[idx] = true
		return Entity{Index: idx, Generation: s.generations[idx]}
	}

	idx := uint32(len(s.generations))
	s.generations = append(s.generations, 0)
	s.alive = append(s.alive, true)
	return Entity{Index: idx, Generation: 0}
}

// Despawn frees e's Index for reuse and bumps its generation so stale
// handles are detected by IsAlive. Despawning an already-dead or
// generation-stale handle is a no-op.
func (s *Store) Despawn(e Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isAliveLocked(e) {
		return
	}
	s.alive[e.Index] = false
	s.generations[e.Index]++
	s.free = append(s.free, e.Index)
}

func (s *Store) IsAlive(e Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAliveLocked(e)
}

func (s *Store) isAliveLocked(e Entity) bool {
	if int(e.Index) >= len(s.alive) {
		return false
	}
	return s.alive[e.Index] && s.generations[e.Index] == e.Generation
}

// Count returns the number of currently alive entities.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, a := range s.alive {
		if a {
			n++
		}
	}
	return n
}

// Command is a deferred store mutation. Handlers and tick systems enqueue
// Commands instead of mutating ComponentSets directly mid-query; Flush
// applies them all at a single well-defined boundary.
type Command func()

// CommandBuffer collects Commands for later, ordered application. One
// CommandBuffer is shared per packet handler invocation or per tick system
// run, per spec §4.5/§9.
type CommandBuffer struct {
	mu   sync.Mutex
	cmds []Command
}

func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{}
}

func (b *CommandBuffer) Enqueue(cmd Command) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cmds = append(b.cmds, cmd)
}

// Flush runs every enqueued Command in insertion order and clears the
// buffer. Commands run with no lock held by CommandBuffer itself — each
// ComponentSet protects its own map.
func (b *CommandBuffer) Flush() {
	b.mu.Lock()
	cmds := b.cmds
	b.cmds = nil
	b.mu.Unlock()

	for _, cmd := range cmds {
		cmd()
	}
}
