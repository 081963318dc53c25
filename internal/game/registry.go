package game

// Registry is the authoritative locationKey → Target mapping. It is pure
// bookkeeping: callers (the World) own locking and event emission.
//
// Insertion order is tracked in a FIFO queue so that capacity overflow
// evicts the oldest surviving key regardless of value or age. The destroyed
// set is kept separate from the live map; a key is never in both.
type Registry struct {
	capacity  int
	targets   map[string]*Target
	order     []string
	destroyed map[string]struct{}
}

func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = MaxActiveTargets
	}
	return &Registry{
		capacity:  capacity,
		targets:   make(map[string]*Target),
		destroyed: make(map[string]struct{}),
	}
}

func (r *Registry) Get(key string) *Target { return r.targets[key] }

func (r *Registry) Len() int { return len(r.targets) }

func (r *Registry) IsDestroyed(key string) bool {
	_, ok := r.destroyed[key]
	return ok
}

// ListLive returns the live targets in insertion order.
func (r *Registry) ListLive() []*Target {
	out := make([]*Target, 0, len(r.order))
	for _, key := range r.order {
		if t, ok := r.targets[key]; ok {
			out = append(out, t)
		}
	}
	return out
}

// DestroyedKeys returns the destroyed-set as a slice, order unspecified.
func (r *Registry) DestroyedKeys() []string {
	out := make([]string, 0, len(r.destroyed))
	for key := range r.destroyed {
		out = append(out, key)
	}
	return out
}

// Upsert stores the target under its location key, enforcing last-write-wins
// on re-pulse. It reports whether the key was revived from the destroyed set
// and which key, if any, was evicted to stay within capacity. Eviction is
// performed before the insert so the capacity bound holds after every call.
func (r *Registry) Upsert(t *Target) (revived bool, evicted string) {
	key := t.LocationKey
	if key == "" {
		return false, ""
	}

	if _, ok := r.destroyed[key]; ok {
		delete(r.destroyed, key)
		revived = true
	}

	if _, exists := r.targets[key]; !exists {
		if len(r.order) >= r.capacity {
			evicted = r.order[0]
			r.remove(evicted, false)
		}
		r.order = append(r.order, key)
	}
	r.targets[key] = t
	return revived, evicted
}

// MarkDestroyed moves a live key into the destroyed set. It is idempotent:
// a second call for the same key reports false and changes nothing.
func (r *Registry) MarkDestroyed(key string) bool {
	if key == "" {
		return false
	}
	if _, ok := r.destroyed[key]; ok {
		return false
	}
	r.destroyed[key] = struct{}{}
	r.remove(key, true)
	return true
}

// Remove drops a key from the live registry. Unless the removal is the
// destruction path, the destroyed flag is cleared too, so an evicted key does
// not linger as a ghost in the destroyed set.
func (r *Registry) Remove(key string, destroyedPath bool) {
	r.remove(key, destroyedPath)
}

func (r *Registry) remove(key string, keepDestroyed bool) {
	delete(r.targets, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if !keepDestroyed {
		delete(r.destroyed, key)
	}
}
