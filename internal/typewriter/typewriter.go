// Package typewriter reveals headline text one character at a time.
//
// A Scheduler is a bubbletea component: Sync arms it, each TickMsg it
// produced reveals one more rune, and ticks from a superseded run are
// dropped. Every reset bumps a generation counter, so at most one tick
// sequence is ever live for a scheduler.
package typewriter

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/headliner/internal/settings"
)

// DefaultInterval is the delay between revealed characters.
const DefaultInterval = 100 * time.Millisecond

// State is the lifecycle phase of a scheduler.
type State int

const (
	// Idle means the typewriter is not the active animation; the full text shows.
	Idle State = iota
	// Revealing means ticks are pending and the prefix is growing.
	Revealing
	// Settled means the whole text has been revealed and no tick is pending.
	Settled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Revealing:
		return "revealing"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg asks the scheduler with the matching ID to reveal one rune.
type TickMsg struct {
	ID   int
	Gen  int
	Time time.Time
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInterval overrides DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// Scheduler tracks the revealed prefix of the headline text.
type Scheduler struct {
	id       int
	gen      int
	interval time.Duration

	animation settings.AnimationType
	text      string
	runes     []rune
	shown     int
	state     State
}

// New returns an idle scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		id:       nextID(),
		interval: DefaultInterval,
		state:    Idle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID identifies the scheduler in the TickMsgs it emits.
func (s *Scheduler) ID() int {
	return s.id
}

// State returns the current phase.
func (s *Scheduler) State() State {
	return s.state
}

// Interval returns the per-character delay.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Displayed returns the text that should currently be visible.
func (s *Scheduler) Displayed() string {
	if s.state == Idle {
		return s.text
	}
	return string(s.runes[:s.shown])
}

// Sync reconciles the scheduler with the current animation and text. Entering
// typewriter mode, or changing the text while in it, restarts the reveal from
// an empty prefix. Leaving typewriter mode shows the full text and drops any
// pending tick. Calling Sync with unchanged inputs is a no-op.
func (s *Scheduler) Sync(animation settings.AnimationType, text string) tea.Cmd {
	typing := animation == settings.AnimationTypewriter
	wasTyping := s.animation == settings.AnimationTypewriter && s.state != Idle

	if typing && wasTyping && text == s.text {
		return nil
	}

	s.animation = animation
	s.text = text
	s.gen++

	if !typing {
		s.state = Idle
		s.runes = nil
		s.shown = 0
		return nil
	}

	s.runes = []rune(text)
	s.shown = 0
	if len(s.runes) == 0 {
		s.state = Settled
		return nil
	}
	s.state = Revealing
	return s.tick()
}

// Update handles a tick. Foreign or stale ticks are ignored. The tick that
// completes the text schedules nothing further.
func (s *Scheduler) Update(msg TickMsg) tea.Cmd {
	if msg.ID != s.id || msg.Gen != s.gen || s.state != Revealing {
		return nil
	}

	s.shown++
	if s.shown >= len(s.runes) {
		s.shown = len(s.runes)
		s.state = Settled
		return nil
	}
	return s.tick()
}

// Stop tears the scheduler down. Pending ticks become stale and the full
// text is shown.
func (s *Scheduler) Stop() {
	s.gen++
	s.state = Idle
	s.animation = ""
	s.runes = nil
	s.shown = 0
}

func (s *Scheduler) tick() tea.Cmd {
	id, gen := s.id, s.gen
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Gen: gen, Time: t}
	})
}
