package session

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/flashforge/internal/clock"
	"github.com/ytget/flashforge/internal/model"
)

// DefaultAdvanceDelay is how long a marked response stays visible before the
// session moves on to the next card
const DefaultAdvanceDelay = 800 * time.Millisecond

// Session errors
var (
	ErrInvalidResponse = errors.New("invalid response")
	ErrNotRevealed     = errors.New("answer must be revealed before marking a response")
	ErrClosed          = errors.New("session is closed")
)

// Snapshot is an immutable view of the session at one instant
type Snapshot struct {
	ID             string
	Card           model.Card // Position is the current position
	Revealed       bool
	Marked         model.Response
	AdvancePending bool
}

// Session tracks which card is current, whether its answer is shown and the
// transient self-assessment. All transitions are serialized by mu; the
// auto-advance timer re-enters through the same lock and acts on the state it
// finds at fire time.
type Session struct {
	mu sync.Mutex

	id       uuid.UUID
	card     model.Card
	revealed bool
	marked   model.Response
	closed   bool

	advanceDelay time.Duration
	scheduler    clock.Scheduler
	pending      clock.Timer
	generation   uint64

	onUpdate func(Snapshot)
}

// Option configures a Session
type Option func(*Session)

// WithAdvanceDelay sets the delay between MarkResponse and the automatic advance
func WithAdvanceDelay(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.advanceDelay = d
		}
	}
}

// WithScheduler replaces the real timer source, mainly for tests
func WithScheduler(scheduler clock.Scheduler) Option {
	return func(s *Session) {
		if scheduler != nil {
			s.scheduler = scheduler
		}
	}
}

// New starts a session on the given card. The card's Position is the
// starting position.
func New(card model.Card, opts ...Option) (*Session, error) {
	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("invalid starting card: %w", err)
	}

	s := &Session{
		id:           uuid.New(),
		card:         card,
		advanceDelay: DefaultAdvanceDelay,
		scheduler:    clock.Real(),
	}
	for _, opt := range opts {
		opt(s)
	}

	log.Printf("session %s started at %s (advance delay %s)", s.id, card.CounterText(), s.advanceDelay)
	return s, nil
}

// ID returns the session identifier used in logs
func (s *Session) ID() string {
	return s.id.String()
}

// SetUpdateCallback sets the callback invoked after every transition,
// including the delayed auto-advance
func (s *Session) SetUpdateCallback(callback func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetAdvanceDelay changes the auto-advance delay for subsequent marks.
// Non-positive values are ignored.
func (s *Session) SetAdvanceDelay(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advanceDelay = d
}

// AdvanceDelay returns the current auto-advance delay
func (s *Session) AdvanceDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advanceDelay
}

// Snapshot returns the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Reveal toggles the answer between hidden and shown and clears any marked
// response
func (s *Session) Reveal() {
	s.transition(func() bool {
		s.cancelPendingLocked()
		s.revealed = !s.revealed
		s.marked = model.ResponseNone
		return true
	})
}

// Advance moves to the next card, wrapping from the last card to the first
func (s *Session) Advance() {
	s.transition(func() bool {
		s.cancelPendingLocked()
		s.advanceLocked()
		return true
	})
}

// Retreat moves to the previous card, wrapping from the first card to the last
func (s *Session) Retreat() {
	s.transition(func() bool {
		s.cancelPendingLocked()
		s.retreatLocked()
		return true
	})
}

// MarkResponse records the learner's self-assessment and schedules an
// automatic Advance after the advance delay. Marking again before the delay
// elapses restarts the delay, so the session advances exactly once.
func (s *Session) MarkResponse(r model.Response) error {
	if !r.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidResponse, r)
	}

	var err error
	open := s.transition(func() bool {
		if !s.revealed {
			err = ErrNotRevealed
			return false
		}
		s.cancelPendingLocked()
		s.marked = r

		generation := s.generation
		s.pending = s.scheduler.AfterFunc(s.advanceDelay, func() {
			s.autoAdvance(generation)
		})
		return true
	})
	if !open {
		return ErrClosed
	}
	if errors.Is(err, ErrNotRevealed) {
		log.Printf("session %s: ignoring %s response while answer is hidden", s.id, r)
	}
	return err
}

// Close cancels any pending auto-advance. Transitions after Close are no-ops.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.cancelPendingLocked()
	s.closed = true
	log.Printf("session %s closed at %s", s.id, s.card.CounterText())
}

// autoAdvance is the delayed half of MarkResponse. A timer whose generation
// is stale was cancelled after it had already fired and does nothing.
func (s *Session) autoAdvance(generation uint64) {
	s.transition(func() bool {
		if generation != s.generation {
			return false
		}
		s.pending = nil
		s.advanceLocked()
		return true
	})
}

// transition runs apply under the lock and notifies the update callback
// outside of it when apply reports a change. It returns false when the
// session is already closed.
func (s *Session) transition(apply func() bool) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	changed := apply()
	snap := s.snapshotLocked()
	callback := s.onUpdate
	s.mu.Unlock()

	if changed && callback != nil {
		callback(snap)
	}
	return true
}

func (s *Session) advanceLocked() {
	next := 1
	if s.card.Position < s.card.Total {
		next = s.card.Position + 1
	}
	s.moveLocked(next)
}

func (s *Session) retreatLocked() {
	prev := s.card.Total
	if s.card.Position > 1 {
		prev = s.card.Position - 1
	}
	s.moveLocked(prev)
}

func (s *Session) moveLocked(position int) {
	s.card = s.card.WithPosition(position)
	s.revealed = false
	s.marked = model.ResponseNone
}

// cancelPendingLocked stops the pending auto-advance and invalidates any
// callback that already fired but has not acquired the lock yet
func (s *Session) cancelPendingLocked() {
	s.generation++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:             s.id.String(),
		Card:           s.card,
		Revealed:       s.revealed,
		Marked:         s.marked,
		AdvancePending: s.pending != nil,
	}
}
