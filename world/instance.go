package world

import (
	"sync"

	"github.com/go-mclib/sessioncore/ecs"
)

// Instance is a dimension-scoped world shared by every client currently
// playing in that dimension (spec §3: "Instances are shared"). Mutation
// requires exclusive access; reads may proceed concurrently.
type Instance struct {
	Name     string
	Height   int32
	MinY     int32

	Registries *RegistryStore

	mu          sync.RWMutex
	chunks      map[int64]*Chunk
	entityByID  map[int32]ecs.Entity
	refCount    int
}

func newInstance(name string, height, minY int32, registries *RegistryStore) *Instance {
	return &Instance{
		Name:       name,
		Height:     height,
		MinY:       minY,
		Registries: registries,
		chunks:     make(map[int64]*Chunk),
		entityByID: make(map[int32]ecs.Entity),
	}
}

// CommitChunk installs a fully-decoded chunk, replacing any prior column at
// the same position. Exclusive of other chunk writers (single-writer
// discipline, spec §5).
func (i *Instance) CommitChunk(c *Chunk) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.chunks[chunkKey(c.X, c.Z)] = c
}

// Chunk returns the chunk at (x, z), if loaded.
func (i *Instance) Chunk(x, z int32) (*Chunk, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	c, ok := i.chunks[chunkKey(x, z)]
	return c, ok
}

// ForgetChunk drops the shared instance's copy of a chunk. Per spec §4.7
// this is distinct from a client's PartialInstance dropping its own
// tracked window: callers only invoke Instance.ForgetChunk once no
// PartialInstance anywhere still references the chunk (the demo client in
// cmd/sessiondemo never calls this directly — ForgetLevelChunk only clips
// the requesting client's PartialInstance window).
func (i *Instance) ForgetChunk(x, z int32) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.chunks, chunkKey(x, z))
}

// ChunkCount returns the number of chunks currently committed.
func (i *Instance) ChunkCount() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.chunks)
}

// IndexEntity records the MinecraftEntityId -> Entity mapping for this
// instance's global entity_by_id table (invariant I4: unique within an
// instance at any instant; reuse after despawn permitted).
func (i *Instance) IndexEntity(id int32, e ecs.Entity) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.entityByID[id] = e
}

// UnindexEntity removes id from entity_by_id, only if it currently maps to
// e (guards against a stale remove racing a reused id, per I4).
func (i *Instance) UnindexEntity(id int32, e ecs.Entity) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if cur, ok := i.entityByID[id]; ok && cur == e {
		delete(i.entityByID, id)
	}
}

// EntityByID looks up the Entity for a MinecraftEntityId within this
// instance.
func (i *Instance) EntityByID(id int32) (ecs.Entity, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	e, ok := i.entityByID[id]
	return e, ok
}

func (i *Instance) acquire() {
	i.mu.Lock()
	i.refCount++
	i.mu.Unlock()
}

// release decrements the reference count and reports whether the instance
// should now be reaped (refCount reached zero).
func (i *Instance) release() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.refCount--
	return i.refCount <= 0
}

// Container is the process-wide map from dimension name to shared Instance
// (spec §4.4). Multiple clients in the same dimension share one Instance;
// a newly joining client merges its login registries into the existing
// instance (later insert wins on name collision, via RegistryStore.Merge).
type Container struct {
	mu        sync.Mutex
	instances map[string]*Instance
}

func NewContainer() *Container {
	return &Container{instances: make(map[string]*Instance)}
}

// GetOrInsert returns the shared Instance for name, creating it with the
// given dimensions/registries if absent. If present, the existing
// instance's registries absorb registries via Merge and height/min_y are
// left as originally created (height/min-y are "fixed at creation" per
// spec §3).
func (c *Container) GetOrInsert(name string, height, minY int32, registries *RegistryStore) *Instance {
	c.mu.Lock()
	defer c.mu.Unlock()

	if inst, ok := c.instances[name]; ok {
		inst.Registries.Merge(registries)
		inst.acquire()
		return inst
	}

	inst := newInstance(name, height, minY, registries)
	inst.acquire()
	c.instances[name] = inst
	return inst
}

// Release drops one reference to name's instance, removing it from the
// container entirely once no InstanceHolder remains (spec §3's "destroyed
// when no InstanceHolder remains").
func (c *Container) Release(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, ok := c.instances[name]
	if !ok {
		return
	}
	if inst.release() {
		delete(c.instances, name)
	}
}
