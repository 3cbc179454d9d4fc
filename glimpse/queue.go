package glimpse

import "sync"

// eventQueue buffers the events reported by window callbacks until
// WaitEvent hands them out. Every event is attributed to the owning window.
type eventQueue struct {
	window WindowID

	mu             sync.Mutex
	events         []Event
	closeRequested bool
}

func (q *eventQueue) push(kind EventKind) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.events = append(q.events, Event{Kind: kind, Window: q.window})
}

func (q *eventQueue) pushResize(width, height int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.events = append(q.events, Event{
		Kind:   EventResized,
		Window: q.window,
		Width:  uint32(max(width, 0)),
		Height: uint32(max(height, 0)),
	})
}

// requestClose may be called from any goroutine.
func (q *eventQueue) requestClose() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closeRequested = true
}

// pop returns the next event. A pending close request wins over
// everything else that is queued.
func (q *eventQueue) pop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closeRequested {
		q.closeRequested = false
		return Event{Kind: EventCloseRequested, Window: q.window}, true
	}

	if len(q.events) == 0 {
		return Event{}, false
	}

	event := q.events[0]
	q.events = q.events[1:]
	return event, true
}
