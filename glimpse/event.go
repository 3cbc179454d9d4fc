package glimpse

//go:generate go tool stringer -type=EventKind -trimprefix=Event

type EventKind int

const (
	EventOther EventKind = iota
	EventCloseRequested
	EventResized
	EventRedrawRequested
)

type Event struct {
	Kind   EventKind
	Window WindowID

	// new size in pixels, only set for EventResized
	Width  uint32
	Height uint32
}
