package orion

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/oliverbestmann/lulu/glimpse"
	"github.com/oliverbestmann/lulu/pulse"
)

//go:generate go tool stringer -type=State -trimprefix=State

type State int

const (
	StateRunning State = iota
	StateTerminated
)

// EventSource delivers the events of a single window.
type EventSource interface {
	ID() glimpse.WindowID
	WaitEvent() glimpse.Event
}

// Session reacts to the events of one window and keeps the
// tracked extent of the graphics context up to date.
type Session struct {
	ID uuid.UUID

	// Redraw is called for every redraw request, if set.
	Redraw func(ctx *pulse.Context)

	source EventSource
	ctx    *pulse.Context
	state  State
	stats  Stats
}

func NewSession(source EventSource, ctx *pulse.Context) *Session {
	return &Session{
		ID:     uuid.New(),
		source: source,
		ctx:    ctx,
		state:  StateRunning,
		stats:  newStats(),
	}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Stats() Stats {
	return s.stats
}

// Run blocks and dispatches events until the window asks to be closed.
func (s *Session) Run() {
	for s.state == StateRunning {
		s.Handle(s.source.WaitEvent())
	}

	s.stats.stop()
}

// Handle applies a single event and returns the resulting state.
func (s *Session) Handle(event glimpse.Event) State {
	if s.state == StateTerminated {
		return s.state
	}

	if event.Window != s.source.ID() {
		s.stats.Foreign += 1
		return s.state
	}

	s.stats.count(event.Kind)

	switch event.Kind {
	case glimpse.EventCloseRequested:
		slog.Debug("Close requested", slog.String("session", s.ID.String()))
		s.state = StateTerminated

	case glimpse.EventResized:
		slog.Debug("Resize surface",
			slog.Int("width", int(event.Width)),
			slog.Int("height", int(event.Height)),
		)

		s.ctx.Extent = pulse.Extent{Width: event.Width, Height: event.Height}

	case glimpse.EventRedrawRequested:
		slog.Debug("Redraw requested")

		if s.Redraw != nil {
			s.Redraw(s.ctx)
		}
	}

	return s.state
}
