package orion

import (
	"log/slog"
	"time"

	"github.com/oliverbestmann/lulu/glimpse"
)

// Stats counts the events a session dispatched.
type Stats struct {
	Closes  uint64
	Resizes uint64
	Redraws uint64
	Other   uint64

	// events addressed to some other window
	Foreign uint64

	Started  time.Time
	Duration time.Duration
}

func newStats() Stats {
	return Stats{Started: time.Now()}
}

func (s *Stats) count(kind glimpse.EventKind) {
	switch kind {
	case glimpse.EventCloseRequested:
		s.Closes += 1
	case glimpse.EventResized:
		s.Resizes += 1
	case glimpse.EventRedrawRequested:
		s.Redraws += 1
	default:
		s.Other += 1
	}
}

func (s *Stats) stop() {
	s.Duration = time.Since(s.Started)
}

func (s Stats) Total() uint64 {
	return s.Closes + s.Resizes + s.Redraws + s.Other
}

func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("events", s.Total()),
		slog.Uint64("resizes", s.Resizes),
		slog.Uint64("redraws", s.Redraws),
		slog.Uint64("foreign", s.Foreign),
		slog.Duration("duration", s.Duration),
	)
}
