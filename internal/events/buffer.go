package events

import "sync"

const defaultBufferCapacity = 10000

type node struct {
	event Event
	next  *node
}

// buffer is a FIFO queue of pending events. Once capacity is reached the
// oldest event is dropped to make room.
type buffer struct {
	lock     sync.Mutex
	first    *node
	last     *node
	size     int
	capacity int
	dropped  int
}

func newBuffer(capacity int) *buffer {
	if capacity <= 0 {
		capacity = defaultBufferCapacity
	}
	return &buffer{capacity: capacity}
}

// push appends e and reports whether an older event was dropped for it.
func (b *buffer) push(e Event) bool {
	b.lock.Lock()
	defer b.lock.Unlock()

	dropped := false
	if b.size == b.capacity {
		b.removeFirst()
		b.dropped++
		dropped = true
	}

	n := &node{event: e}
	if b.last == nil {
		b.first = n
	} else {
		b.last.next = n
	}
	b.last = n
	b.size++

	return dropped
}

func (b *buffer) pop() (Event, bool) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.first == nil {
		return Event{}, false
	}
	return b.removeFirst(), true
}

func (b *buffer) removeFirst() Event {
	n := b.first
	b.first = n.next
	if b.first == nil {
		b.last = nil
	}
	b.size--
	return n.event
}

func (b *buffer) count() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.size
}
