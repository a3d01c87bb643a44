package overlay

// SignalKind identifies an outside-interaction event.
type SignalKind int

const (
	SignalPointer SignalKind = iota // pointer press at X/Y
	SignalEscape                    // escape key
	SignalResize                    // viewport changed size
)

// Signal is one interaction event delivered to open overlays.
type Signal struct {
	Kind SignalKind
	X, Y int
}

// Observer receives signals while subscribed.
type Observer func(Signal)

// Bus fans host events out to the overlays that are currently open. It is
// owned by the event loop and is not safe for concurrent use.
type Bus struct {
	nextID    int
	order     []int
	observers map[int]Observer
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{observers: make(map[int]Observer)}
}

// Subscribe registers o until the returned Subscription is released.
func (b *Bus) Subscribe(o Observer) *Subscription {
	b.nextID++
	id := b.nextID
	b.observers[id] = o
	b.order = append(b.order, id)
	return &Subscription{bus: b, id: id}
}

// Publish delivers s to every observer registered at the time of the call.
// Observers may release their own or other subscriptions while handling it.
func (b *Bus) Publish(s Signal) {
	ids := make([]int, len(b.order))
	copy(ids, b.order)
	for _, id := range ids {
		if o, ok := b.observers[id]; ok {
			o(s)
		}
	}
}

// Len returns the number of live subscriptions.
func (b *Bus) Len() int {
	return len(b.observers)
}

func (b *Bus) remove(id int) {
	if _, ok := b.observers[id]; !ok {
		return
	}
	delete(b.observers, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Subscription is a live registration on a Bus.
type Subscription struct {
	bus      *Bus
	id       int
	released bool
}

// Release unregisters the observer. Releasing twice is a no-op.
func (s *Subscription) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	s.bus.remove(s.id)
}

// Released reports whether Release has been called.
func (s *Subscription) Released() bool {
	return s == nil || s.released
}
