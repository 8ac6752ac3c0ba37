package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/flashforge/internal/clock"
	"github.com/ytget/flashforge/internal/model"
)

func testCard(position, total int) model.Card {
	return model.Card{
		Prompt:     "What does a buffered channel do when it is full?",
		Answer:     "Sends block until a receiver frees a slot.",
		Difficulty: model.DifficultyMedium,
		Position:   position,
		Total:      total,
	}
}

func newTestSession(t *testing.T, position, total int) (*Session, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake()
	s, err := New(testCard(position, total), WithScheduler(fake))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, fake
}

func TestNew_InitialState(t *testing.T) {
	s, _ := newTestSession(t, 15, 45)
	snap := s.Snapshot()

	assert.Equal(t, 15, snap.Card.Position)
	assert.Equal(t, 45, snap.Card.Total)
	assert.False(t, snap.Revealed)
	assert.Equal(t, model.ResponseNone, snap.Marked)
	assert.False(t, snap.AdvancePending)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, s.ID(), snap.ID)
}

func TestNew_RejectsInvalidCard(t *testing.T) {
	_, err := New(testCard(0, 3))
	assert.ErrorIs(t, err, model.ErrInvalidPosition)

	_, err = New(testCard(4, 3))
	assert.ErrorIs(t, err, model.ErrInvalidPosition)
}

func TestAdvance_CycleReturnsToStart(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for start := 1; start <= total; start++ {
			s, _ := newTestSession(t, start, total)
			for i := 0; i < total; i++ {
				s.Advance()
			}
			assert.Equal(t, start, s.Snapshot().Card.Position, "total=%d start=%d", total, start)
		}
	}
}

func TestRetreat_InvertsAdvance(t *testing.T) {
	for total := 1; total <= 8; total++ {
		for start := 1; start <= total; start++ {
			s, _ := newTestSession(t, start, total)
			before := s.Snapshot()

			s.Advance()
			s.Retreat()
			assert.Equal(t, before, s.Snapshot(), "advance then retreat, total=%d start=%d", total, start)

			s.Retreat()
			s.Advance()
			assert.Equal(t, before, s.Snapshot(), "retreat then advance, total=%d start=%d", total, start)
		}
	}
}

func TestAdvance_WrapsAfterLastCard(t *testing.T) {
	s, _ := newTestSession(t, 15, 45)

	for i := 0; i < 30; i++ {
		s.Advance()
	}
	assert.Equal(t, 45, s.Snapshot().Card.Position)

	s.Advance()
	assert.Equal(t, 1, s.Snapshot().Card.Position)
}

func TestRetreat_WrapsBeforeFirstCard(t *testing.T) {
	s, _ := newTestSession(t, 1, 3)

	s.Retreat()
	assert.Equal(t, 3, s.Snapshot().Card.Position)
}

func TestNavigation_ResetsRevealAndMark(t *testing.T) {
	moves := map[string]func(*Session){
		"advance": (*Session).Advance,
		"retreat": (*Session).Retreat,
	}

	for name, move := range moves {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestSession(t, 2, 5)
			s.Reveal()
			require.NoError(t, s.MarkResponse(model.ResponseCorrect))

			move(s)

			snap := s.Snapshot()
			assert.False(t, snap.Revealed)
			assert.Equal(t, model.ResponseNone, snap.Marked)
		})
	}
}

func TestReveal_TogglesAndClearsMark(t *testing.T) {
	s, _ := newTestSession(t, 1, 5)

	s.Reveal()
	assert.True(t, s.Snapshot().Revealed)

	require.NoError(t, s.MarkResponse(model.ResponseIncorrect))
	assert.Equal(t, model.ResponseIncorrect, s.Snapshot().Marked)

	s.Reveal()
	snap := s.Snapshot()
	assert.False(t, snap.Revealed, "second reveal hides the answer")
	assert.Equal(t, model.ResponseNone, snap.Marked)

	s.Reveal()
	assert.True(t, s.Snapshot().Revealed)
	assert.Equal(t, model.ResponseNone, s.Snapshot().Marked)
}

func TestMarkResponse_RejectedWhileHidden(t *testing.T) {
	s, fake := newTestSession(t, 4, 10)
	before := s.Snapshot()

	err := s.MarkResponse(model.ResponseCorrect)
	assert.ErrorIs(t, err, ErrNotRevealed)
	assert.Equal(t, before, s.Snapshot())
	assert.Zero(t, fake.Pending())

	fake.Advance(time.Second)
	assert.Equal(t, 4, s.Snapshot().Card.Position)
}

func TestMarkResponse_RejectsInvalidValue(t *testing.T) {
	s, fake := newTestSession(t, 4, 10)
	s.Reveal()

	err := s.MarkResponse(model.Response("maybe"))
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Equal(t, model.ResponseNone, s.Snapshot().Marked)
	assert.Zero(t, fake.Pending())
}

func TestMarkResponse_AutoAdvancesAfterDelay(t *testing.T) {
	s, fake := newTestSession(t, 15, 45)

	s.Reveal()
	require.NoError(t, s.MarkResponse(model.ResponseCorrect))

	snap := s.Snapshot()
	assert.Equal(t, model.ResponseCorrect, snap.Marked)
	assert.True(t, snap.Revealed)
	assert.True(t, snap.AdvancePending)

	fake.Advance(DefaultAdvanceDelay - time.Millisecond)
	assert.Equal(t, 15, s.Snapshot().Card.Position, "no advance before the delay")

	fake.Advance(time.Millisecond)
	snap = s.Snapshot()
	assert.Equal(t, 16, snap.Card.Position)
	assert.False(t, snap.Revealed)
	assert.Equal(t, model.ResponseNone, snap.Marked)
	assert.False(t, snap.AdvancePending)
}

func TestMarkResponse_CustomDelay(t *testing.T) {
	fake := clock.NewFake()
	s, err := New(testCard(1, 2), WithScheduler(fake), WithAdvanceDelay(2*time.Second))
	require.NoError(t, err)
	defer s.Close()

	s.Reveal()
	require.NoError(t, s.MarkResponse(model.ResponseNeedsReview))

	fake.Advance(time.Second)
	assert.Equal(t, 1, s.Snapshot().Card.Position)
	fake.Advance(time.Second)
	assert.Equal(t, 2, s.Snapshot().Card.Position)
}

func TestMarkResponse_RepeatedMarksAdvanceOnce(t *testing.T) {
	s, fake := newTestSession(t, 1, 10)
	s.Reveal()

	require.NoError(t, s.MarkResponse(model.ResponseIncorrect))
	fake.Advance(500 * time.Millisecond)
	require.NoError(t, s.MarkResponse(model.ResponseCorrect))
	assert.Equal(t, 1, fake.Pending(), "previous auto-advance is cancelled")

	fake.Advance(500 * time.Millisecond)
	assert.Equal(t, 1, s.Snapshot().Card.Position, "delay restarts on the second mark")
	assert.Equal(t, model.ResponseCorrect, s.Snapshot().Marked)

	fake.Advance(300 * time.Millisecond)
	assert.Equal(t, 2, s.Snapshot().Card.Position)

	fake.Advance(5 * time.Second)
	assert.Equal(t, 2, s.Snapshot().Card.Position, "exactly one advance")
}

func TestExplicitNavigation_CancelsPendingAdvance(t *testing.T) {
	s, fake := newTestSession(t, 5, 10)
	s.Reveal()
	require.NoError(t, s.MarkResponse(model.ResponseCorrect))

	s.Retreat()
	assert.Equal(t, 4, s.Snapshot().Card.Position)

	fake.Advance(time.Second)
	assert.Equal(t, 4, s.Snapshot().Card.Position, "stale auto-advance must not fire")
	assert.Zero(t, fake.Pending())
}

func TestReveal_CancelsPendingAdvance(t *testing.T) {
	s, fake := newTestSession(t, 5, 10)
	s.Reveal()
	require.NoError(t, s.MarkResponse(model.ResponseCorrect))

	s.Reveal()
	fake.Advance(time.Second)

	snap := s.Snapshot()
	assert.Equal(t, 5, snap.Card.Position)
	assert.False(t, snap.Revealed)
	assert.False(t, snap.AdvancePending)
}

func TestAutoAdvance_StaleGenerationIsIgnored(t *testing.T) {
	s, _ := newTestSession(t, 5, 10)
	s.Reveal()
	require.NoError(t, s.MarkResponse(model.ResponseCorrect))

	// A callback that fired before Retreat took the lock carries the old generation.
	s.mu.Lock()
	stale := s.generation
	s.mu.Unlock()
	s.Retreat()

	s.autoAdvance(stale)
	assert.Equal(t, 4, s.Snapshot().Card.Position)
}

func TestClose_CancelsPendingAndStopsTransitions(t *testing.T) {
	s, fake := newTestSession(t, 5, 10)
	s.Reveal()
	require.NoError(t, s.MarkResponse(model.ResponseCorrect))

	s.Close()
	assert.Zero(t, fake.Pending())

	fake.Advance(time.Second)
	s.Advance()
	s.Reveal()

	snap := s.Snapshot()
	assert.Equal(t, 5, snap.Card.Position)
	assert.True(t, snap.Revealed)
	assert.ErrorIs(t, s.MarkResponse(model.ResponseCorrect), ErrClosed)

	s.Close()
}

func TestUpdateCallback_ReceivesEveryTransition(t *testing.T) {
	s, fake := newTestSession(t, 1, 3)

	var snaps []Snapshot
	s.SetUpdateCallback(func(snap Snapshot) {
		// Reading back from inside the callback must not deadlock.
		assert.Equal(t, snap, s.Snapshot())
		snaps = append(snaps, snap)
	})

	s.Reveal()
	require.NoError(t, s.MarkResponse(model.ResponseCorrect))
	fake.Advance(DefaultAdvanceDelay)
	s.Retreat()

	require.Len(t, snaps, 4)
	assert.True(t, snaps[0].Revealed)
	assert.Equal(t, model.ResponseCorrect, snaps[1].Marked)
	assert.Equal(t, 2, snaps[2].Card.Position)
	assert.Equal(t, 1, snaps[3].Card.Position)
}

func TestUpdateCallback_NotCalledForRejectedMark(t *testing.T) {
	s, _ := newTestSession(t, 1, 3)
	calls := 0
	s.SetUpdateCallback(func(Snapshot) { calls++ })

	assert.Error(t, s.MarkResponse(model.ResponseCorrect))
	assert.Zero(t, calls)
}

func TestRealScheduler_ConcurrentMarks(t *testing.T) {
	s, err := New(testCard(1, 100), WithAdvanceDelay(20*time.Millisecond))
	require.NoError(t, err)
	defer s.Close()

	advanced := make(chan Snapshot, 10)
	s.SetUpdateCallback(func(snap Snapshot) {
		if !snap.Revealed && snap.Card.Position != 1 {
			advanced <- snap
		}
	})

	s.Reveal()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.MarkResponse(model.ResponseCorrect)
		}()
	}
	wg.Wait()

	select {
	case snap := <-advanced:
		assert.Equal(t, 2, snap.Card.Position)
	case <-time.After(time.Second):
		t.Fatal("auto-advance did not fire")
	}

	select {
	case snap := <-advanced:
		t.Fatalf("unexpected second advance to %d", snap.Card.Position)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSetAdvanceDelay(t *testing.T) {
	s, fake := newTestSession(t, 1, 5)

	s.SetAdvanceDelay(0)
	assert.Equal(t, DefaultAdvanceDelay, s.AdvanceDelay(), "non-positive delay is ignored")

	s.SetAdvanceDelay(300 * time.Millisecond)
	assert.Equal(t, 300*time.Millisecond, s.AdvanceDelay())

	s.Reveal()
	require.NoError(t, s.MarkResponse(model.ResponseCorrect))
	fake.Advance(300 * time.Millisecond)
	assert.Equal(t, 2, s.Snapshot().Card.Position)
}
