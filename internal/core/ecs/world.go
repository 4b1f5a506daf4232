package ecs

// World owns entity handle allocation and the deferred destruction queue.
// Systems mark handles mid-tick; CleanupSystem flushes them at tick end so a
// render pass never observes a half-removed entity.
type World struct {
	pool         *EntityPool
	destroyQueue []EntityID
	onDestroy    func(EntityID)
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		destroyQueue: make([]EntityID, 0, 64),
	}
}

// OnDestroy registers the hook invoked once per handle when the destroy
// queue is flushed. The scene collaborator's Remove is wired here.
func (w *World) OnDestroy(fn func(EntityID)) { w.onDestroy = fn }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

// MarkForDestruction queues an entity for end-of-tick cleanup.
func (w *World) MarkForDestruction(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// Pending returns how many handles are queued for destruction.
func (w *World) Pending() int { return len(w.destroyQueue) }

// FlushDestroyQueue destroys all queued entities. A handle queued twice is
// only reported to the hook once.
func (w *World) FlushDestroyQueue() {
	for _, id := range w.destroyQueue {
		if !w.pool.Alive(id) {
			continue
		}
		if w.onDestroy != nil {
			w.onDestroy(id)
		}
		w.pool.Destroy(id)
	}
	w.destroyQueue = w.destroyQueue[:0]
}
