package pixelkernel

import (
	"time"

	"github.com/rs/zerolog"
)

// Session keeps the image being edited between operations: the buffer as
// loaded, the current result and whether that result has been saved.
// A Session is not safe for concurrent use.
type Session struct {
	log      zerolog.Logger
	original *Buffer
	current  *Buffer
	saved    bool
}

// NewSession returns an empty session that logs through logger.
func NewSession(logger zerolog.Logger) *Session {
	return &Session{log: logger, saved: true}
}

// Load replaces both the original and current image with a copy of b.
func (s *Session) Load(b *Buffer) error {
	if b.empty() {
		return invalidArg("Session.Load", "empty buffer")
	}
	s.original = b.Clone()
	s.current = b.Clone()
	s.saved = true
	s.log.Debug().Int("width", b.w).Int("height", b.h).Msg("image loaded")
	return nil
}

func (s *Session) HasImage() bool { return s.current != nil }

// Current returns a copy of the current image, or nil before Load.
func (s *Session) Current() *Buffer {
	if s.current == nil {
		return nil
	}
	return s.current.Clone()
}

// Original returns a copy of the image as loaded, or nil before Load.
func (s *Session) Original() *Buffer {
	if s.original == nil {
		return nil
	}
	return s.original.Clone()
}

// Saved reports whether the current image has been written out since it last changed.
func (s *Session) Saved() bool { return s.saved }

func (s *Session) MarkSaved() { s.saved = true }

// Apply runs op on the current image. On success the result becomes the
// current image; on failure the session is unchanged.
func (s *Session) Apply(op Operation) (*Buffer, error) {
	if s.current == nil {
		return nil, precondition("Session.Apply", "no image loaded")
	}
	if op == nil {
		return nil, invalidArg("Session.Apply", "nil operation")
	}
	mode := DetectMode(s.current)
	if mode == Color && op.grayOnly() {
		s.log.Warn().Str("op", op.Name()).Msg("converting color image to grayscale")
	}

	start := time.Now()
	out, err := Apply(s.current, op)
	if err != nil {
		s.log.Debug().Err(err).Str("op", op.Name()).Msg("operation rejected")
		return nil, err
	}
	s.log.Debug().
		Str("op", op.Name()).
		Stringer("mode", mode).
		Int("width", out.w).
		Int("height", out.h).
		Dur("took", time.Since(start)).
		Msg("operation applied")

	s.current = out
	s.saved = false
	return out.Clone(), nil
}

// Revert discards every applied operation.
func (s *Session) Revert() error {
	if s.original == nil {
		return precondition("Session.Revert", "no image loaded")
	}
	s.current = s.original.Clone()
	s.saved = false
	return nil
}
