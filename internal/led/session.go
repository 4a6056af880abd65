package led

import (
	"fmt"
	"log/slog"

	"github.com/smazurov/nucledctl/internal/logging"
)

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	path   string
	logger *slog.Logger
}

// WithDevicePath overrides the control file path. Intended for tests and for
// driver forks that register a different procfs name.
func WithDevicePath(path string) Option {
	return func(o *sessionOptions) { o.path = path }
}

// WithLogger overrides the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *sessionOptions) { o.logger = logger }
}

// Session holds one LED's state across a read-modify-commit cycle.
//
// Open reads the device once; setters validate eagerly and touch only the
// in-memory pending state; Commit writes the whole pending state as a single
// control line. The device never observes a partially-updated line.
type Session struct {
	handle *Handle
	logger *slog.Logger

	committed State
	pending   State
	dirty     bool
}

// Open reads and decodes the current state of the target LED.
// A failed open leaves no usable session.
func Open(t Target, opts ...Option) (*Session, error) {
	o := sessionOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.GetLogger("led")
	}

	h := NewHandle(t, o.path)
	raw, err := h.ReadRaw()
	if err != nil {
		return nil, err
	}
	state, err := parseStatus(t, raw)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("Opened led session",
		"target", t.String(),
		"brightness", state.Brightness,
		"color", string(state.Color),
		"effect", string(state.Effect))

	return &Session{
		handle:    h,
		logger:    o.logger,
		committed: state,
		pending:   state,
	}, nil
}

// Target returns the LED this session controls.
func (s *Session) Target() Target { return s.handle.Target() }

// Brightness returns the pending brightness.
func (s *Session) Brightness() int { return s.pending.Brightness }

// Color returns the pending color.
func (s *Session) Color() Color { return s.pending.Color }

// Effect returns the pending effect.
func (s *Session) Effect() Effect { return s.pending.Effect }

// State returns the full pending state.
func (s *Session) State() State { return s.pending }

// Modified reports whether the pending state differs from what was last
// read or committed.
func (s *Session) Modified() bool { return s.dirty }

// SetBrightness stages a brightness change. Values outside [0,100] are
// rejected, not clamped.
func (s *Session) SetBrightness(v int) error {
	if v < 0 || v > 100 {
		return newError(ErrCodeInvalidValue, fmt.Sprintf("brightness must be in [0,100], was %d", v), nil)
	}
	s.pending.Brightness = v
	s.dirty = true
	return nil
}

// SetColor stages a color change, validated against the target's supported
// set.
func (s *Session) SetColor(c Color) error {
	if !s.handle.Target().Supports(c) {
		return newError(ErrCodeInvalidValue, "unsupported color for "+s.handle.Target().String()+" led: "+string(c), nil)
	}
	s.pending.Color = c
	s.dirty = true
	return nil
}

// SetEffect stages an effect change.
func (s *Session) SetEffect(e Effect) error {
	if _, err := ParseEffect(string(e)); err != nil {
		return err
	}
	s.pending.Effect = e
	s.dirty = true
	return nil
}

// Commit writes the pending state to the device as one control line. Further
// edits after a commit are allowed and flushed by the next Commit.
func (s *Session) Commit() error {
	line := encodeState(s.handle.Target(), s.pending)
	s.logger.Debug("Committing led state", "line", line)
	if err := s.handle.WriteRaw(line); err != nil {
		return err
	}
	s.committed = s.pending
	s.dirty = false
	return nil
}

// Do opens a session on the target, runs fn, and commits exactly once on the
// way out, whether or not fn failed. Changes staged before an error are still
// flushed, matching the scoped-session semantics of the driver's other
// clients. The fn error wins over a commit error when both occur.
func Do(t Target, fn func(*Session) error, opts ...Option) error {
	s, err := Open(t, opts...)
	if err != nil {
		return err
	}

	fnErr := fn(s)
	if commitErr := s.Commit(); fnErr == nil {
		return commitErr
	}
	return fnErr
}
