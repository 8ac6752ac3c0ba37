// Package viewmodel holds the state owned by the presentation root: the seed
// data, the ephemeral UI flags and the study session.
package viewmodel

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ytget/flashforge/internal/clock"
	"github.com/ytget/flashforge/internal/model"
	"github.com/ytget/flashforge/internal/session"
)

// Navigation rail items in display order
const (
	NavStudy = iota
	NavDecks
	NavCreate
	NavBrowse
	NavAnalytics
	NavGroups
	NavTutor
	NavItemCount
)

// Top bar actions in display order
const (
	ActionSearch = iota
	ActionNotifications
	ActionSettings
	ActionAccount
	ActionCount
)

// Revert windows for the ephemeral flags
const (
	DefaultAvatarMorph   = 800 * time.Millisecond
	DefaultWaveformPulse = 1500 * time.Millisecond
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotImplemented  = errors.New("not implemented yet")
)

// Flags are the ephemeral presentation flags
type Flags struct {
	NavRailCollapsed bool
	SelectedNav      int
	SelectedAction   int
	DarkTheme        bool
	AvatarMorphed    bool
	WaveformActive   bool
}

// revert tracks the timer that clears a momentary flag. generation guards
// against a timer that fired after a newer trigger replaced it.
type revert struct {
	timer      clock.Timer
	generation uint64
}

func (r *revert) cancel() {
	r.generation++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// ViewModel is the single state object behind the study screen
type ViewModel struct {
	mu sync.Mutex

	seed  model.Seed
	flags Flags
	study *session.Session

	scheduler     clock.Scheduler
	avatarMorph   time.Duration
	waveformPulse time.Duration
	avatarRevert  revert
	waveRevert    revert
	closed        bool

	onUpdate func()
}

type options struct {
	scheduler     clock.Scheduler
	advanceDelay  time.Duration
	avatarMorph   time.Duration
	waveformPulse time.Duration
	darkTheme     bool
}

// Option configures a ViewModel
type Option func(*options)

// WithScheduler replaces the real timer source for the session and the flags
func WithScheduler(scheduler clock.Scheduler) Option {
	return func(o *options) {
		if scheduler != nil {
			o.scheduler = scheduler
		}
	}
}

// WithAdvanceDelay sets the session auto-advance delay
func WithAdvanceDelay(d time.Duration) Option {
	return func(o *options) { o.advanceDelay = d }
}

// WithFlagDurations sets how long the avatar morph and the waveform pulse last
func WithFlagDurations(avatarMorph, waveformPulse time.Duration) Option {
	return func(o *options) {
		if avatarMorph > 0 {
			o.avatarMorph = avatarMorph
		}
		if waveformPulse > 0 {
			o.waveformPulse = waveformPulse
		}
	}
}

// WithDarkTheme sets the initial theme variant
func WithDarkTheme(dark bool) Option {
	return func(o *options) { o.darkTheme = dark }
}

// New creates a ViewModel over the seed and starts a study session on its card
func New(seed model.Seed, opts ...Option) (*ViewModel, error) {
	o := options{
		scheduler:     clock.Real(),
		advanceDelay:  session.DefaultAdvanceDelay,
		avatarMorph:   DefaultAvatarMorph,
		waveformPulse: DefaultWaveformPulse,
	}
	for _, opt := range opts {
		opt(&o)
	}

	study, err := session.New(seed.Card,
		session.WithScheduler(o.scheduler),
		session.WithAdvanceDelay(o.advanceDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start study session: %w", err)
	}

	vm := &ViewModel{
		seed: seed,
		flags: Flags{
			SelectedNav:    NavStudy,
			SelectedAction: ActionNotifications,
			DarkTheme:      o.darkTheme,
		},
		study:         study,
		scheduler:     o.scheduler,
		avatarMorph:   o.avatarMorph,
		waveformPulse: o.waveformPulse,
	}
	study.SetUpdateCallback(func(session.Snapshot) { vm.notify() })
	return vm, nil
}

// SetUpdateCallback sets the callback invoked after every flag change and
// every session transition. It may run on a timer goroutine.
func (vm *ViewModel) SetUpdateCallback(callback func()) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.onUpdate = callback
}

// Study returns the study session
func (vm *ViewModel) Study() *session.Session {
	return vm.study
}

// Seed returns the static data the screen was built from
func (vm *ViewModel) Seed() model.Seed {
	return vm.seed
}

// Flags returns a copy of the current flags
func (vm *ViewModel) Flags() Flags {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.flags
}

// SelectNav selects a navigation rail item
func (vm *ViewModel) SelectNav(index int) error {
	if index < 0 || index >= NavItemCount {
		return fmt.Errorf("nav item %d: %w", index, ErrIndexOutOfRange)
	}
	vm.update(func(f *Flags) { f.SelectedNav = index })
	return nil
}

// SelectAction selects a top bar action
func (vm *ViewModel) SelectAction(index int) error {
	if index < 0 || index >= ActionCount {
		return fmt.Errorf("action %d: %w", index, ErrIndexOutOfRange)
	}
	vm.update(func(f *Flags) { f.SelectedAction = index })
	return nil
}

// ToggleNavRail collapses or expands the navigation rail
func (vm *ViewModel) ToggleNavRail() {
	vm.update(func(f *Flags) { f.NavRailCollapsed = !f.NavRailCollapsed })
}

// ToggleTheme switches between the light and dark variants
func (vm *ViewModel) ToggleTheme() {
	vm.update(func(f *Flags) { f.DarkTheme = !f.DarkTheme })
}

// MorphAvatar enlarges the avatar until the morph window elapses.
// Triggering again restarts the window.
func (vm *ViewModel) MorphAvatar() {
	vm.pulse(&vm.avatarRevert, vm.avatarMorph, func(f *Flags, on bool) { f.AvatarMorphed = on })
}

// PulseWaveform animates the progress bar until the pulse window elapses.
// Triggering again restarts the window.
func (vm *ViewModel) PulseWaveform() {
	vm.pulse(&vm.waveRevert, vm.waveformPulse, func(f *Flags, on bool) { f.WaveformActive = on })
}

// CreateDeck is the "Create New Deck" quick action
func (vm *ViewModel) CreateDeck() error {
	log.Printf("quick action: create deck requested")
	return ErrNotImplemented
}

// OpenDecks is the "My Decks" quick action
func (vm *ViewModel) OpenDecks() error {
	log.Printf("quick action: open decks requested")
	return ErrNotImplemented
}

// GenerateWithAI is the "AI Generate" quick action
func (vm *ViewModel) GenerateWithAI() error {
	log.Printf("quick action: AI generation requested")
	return ErrNotImplemented
}

// Close stops the session and cancels pending flag reverts
func (vm *ViewModel) Close() {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return
	}
	vm.closed = true
	vm.avatarRevert.cancel()
	vm.waveRevert.cancel()
	vm.mu.Unlock()

	vm.study.Close()
}

func (vm *ViewModel) update(apply func(*Flags)) {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return
	}
	apply(&vm.flags)
	vm.mu.Unlock()
	vm.notify()
}

func (vm *ViewModel) pulse(r *revert, d time.Duration, set func(*Flags, bool)) {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return
	}
	r.cancel()
	set(&vm.flags, true)
	generation := r.generation
	r.timer = vm.scheduler.AfterFunc(d, func() {
		vm.expire(r, generation, set)
	})
	vm.mu.Unlock()
	vm.notify()
}

func (vm *ViewModel) expire(r *revert, generation uint64, set func(*Flags, bool)) {
	vm.mu.Lock()
	if vm.closed || generation != r.generation {
		vm.mu.Unlock()
		return
	}
	r.timer = nil
	set(&vm.flags, false)
	vm.mu.Unlock()
	vm.notify()
}

func (vm *ViewModel) notify() {
	vm.mu.Lock()
	callback := vm.onUpdate
	vm.mu.Unlock()
	if callback != nil {
		callback()
	}
}
