package app

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Metrics counts what happened during a session.
type Metrics struct {
	presses      atomic.Uint64
	keyPresses   atomic.Uint64
	mousePresses atomic.Uint64
	calcErrors   atomic.Uint64
	ignored      atomic.Uint64
	reloads      atomic.Uint64
	panics       atomic.Uint64
	frames       atomic.Uint64

	startTime time.Time
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Presses      uint64
	KeyPresses   uint64
	MousePresses uint64
	CalcErrors   uint64
	Ignored      uint64
	Reloads      uint64
	Panics       uint64
	Frames       uint64
	Uptime       time.Duration
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordPress counts a button press from the keyboard or the mouse.
func (m *Metrics) RecordPress(mouse bool) {
	m.presses.Add(1)
	if mouse {
		m.mousePresses.Add(1)
	} else {
		m.keyPresses.Add(1)
	}
}

// RecordCalcError counts a press that put the calculator into an error.
func (m *Metrics) RecordCalcError() { m.calcErrors.Add(1) }

// RecordIgnored counts a key that matched no button.
func (m *Metrics) RecordIgnored() { m.ignored.Add(1) }

// RecordReload counts a successful config reload.
func (m *Metrics) RecordReload() { m.reloads.Add(1) }

// RecordPanic counts a recovered panic.
func (m *Metrics) RecordPanic() { m.panics.Add(1) }

// RecordFrame counts a rendered frame.
func (m *Metrics) RecordFrame() { m.frames.Add(1) }

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Presses:      m.presses.Load(),
		KeyPresses:   m.keyPresses.Load(),
		MousePresses: m.mousePresses.Load(),
		CalcErrors:   m.calcErrors.Load(),
		Ignored:      m.ignored.Load(),
		Reloads:      m.reloads.Load(),
		Panics:       m.panics.Load(),
		Frames:       m.frames.Load(),
		Uptime:       time.Since(m.startTime),
	}
}

// Fields returns the snapshot as log fields.
func (s MetricsSnapshot) Fields() []zap.Field {
	return []zap.Field{
		zap.Uint64("presses", s.Presses),
		zap.Uint64("key_presses", s.KeyPresses),
		zap.Uint64("mouse_presses", s.MousePresses),
		zap.Uint64("calc_errors", s.CalcErrors),
		zap.Uint64("ignored", s.Ignored),
		zap.Uint64("reloads", s.Reloads),
		zap.Uint64("panics", s.Panics),
		zap.Uint64("frames", s.Frames),
		zap.Duration("uptime", s.Uptime),
	}
}
