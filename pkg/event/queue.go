package event

// OutputQueue is a bounded, preallocated push-only buffer the audio actor
// writes to during Process and the wrapper drains afterward. It is sized
// once, by the wrapper, to the host's event-queue capacity; Push never
// allocates and never blocks, so overflow is handled by dropping silently
// rather than growing — exactly the "capacity" error kind in §7: the
// author is expected to stay within budget, and drops are non-fatal.
//
// OutputQueue is audio-actor-owned end to end (the wrapper only ever
// touches it between process calls) and carries no mutex, since §5
// forbids the audio actor from ever taking a lock or allocating; it
// never grows past its initial capacity.
type OutputQueue struct {
	buf []Event
	n   int
}

// NewOutputQueue preallocates a queue with the given capacity.
func NewOutputQueue(capacity int) *OutputQueue {
	return &OutputQueue{buf: make([]Event, capacity)}
}

// Push appends e to the queue. It returns false without modifying the
// queue if capacity is exhausted.
func (q *OutputQueue) Push(e Event) bool {
	if q.n >= len(q.buf) {
		return false
	}
	q.buf[q.n] = e
	q.n++
	return true
}

// Len returns the number of events currently queued.
func (q *OutputQueue) Len() int { return q.n }

// Cap returns the queue's fixed capacity.
func (q *OutputQueue) Cap() int { return len(q.buf) }

// Events returns the queued events in insertion order. The returned slice
// aliases the queue's backing array and is only valid until the next
// Reset.
func (q *OutputQueue) Events() []Event { return q.buf[:q.n] }

// Reset empties the queue for the next process call. Called by the
// wrapper on the audio actor after draining, between process calls.
func (q *OutputQueue) Reset() { q.n = 0 }
