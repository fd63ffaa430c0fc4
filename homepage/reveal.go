package homepage

import (
	"sync"
	"time"

	"github.com/grovetools/homeshell/logging"
	"github.com/sirupsen/logrus"
)

// HomepageLoadingTimeout bounds how long the homepage stays hidden
// while the suggestion panel prepares. When it elapses the coordinator
// reveals without suggestions so the user is never stuck on a blank
// screen.
const HomepageLoadingTimeout = 300 * time.Millisecond

// RevealState tracks the one-way reveal transition.
type RevealState int

const (
	// RevealPending means the homepage is hidden while the suggestion
	// panel prepares.
	RevealPending RevealState = iota

	// Revealed means the homepage is visible. The transition happens
	// exactly once per preparation.
	Revealed
)

// HomepageLoadedListener receives the homepage loaded event.
type HomepageLoadedListener interface {
	// HomepageLoaded is called exactly once, when the homepage is
	// revealed. Listeners registered after the reveal are never called.
	HomepageLoaded()
}

// Scheduler arms the one-shot reveal deadline. Production uses
// time.AfterFunc; tests and the TUI substitute their own.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, fn func())

// AfterFunc implements Scheduler.
func (s SchedulerFunc) AfterFunc(d time.Duration, fn func()) { s(d, fn) }

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// RevealCoordinator arbitrates homepage/suggestion visibility. It owns
// a single irreversible transition from pending to revealed so the
// suggestion panel never flickers in or out after the homepage shows.
//
// The deadline timer and the real completion signal race to call
// Reveal; the first caller wins and the loser is a guaranteed no-op.
type RevealCoordinator struct {
	mu         sync.Mutex
	state      RevealState
	suggestion View
	homepage   View
	listeners  []HomepageLoadedListener
	scheduler  Scheduler
	timeout    time.Duration
	log        *logrus.Entry
}

// RevealOption configures a RevealCoordinator.
type RevealOption func(*RevealCoordinator)

// WithScheduler replaces the deadline scheduler.
func WithScheduler(s Scheduler) RevealOption {
	return func(c *RevealCoordinator) { c.scheduler = s }
}

// WithTimeout replaces the loading deadline.
func WithTimeout(d time.Duration) RevealOption {
	return func(c *RevealCoordinator) { c.timeout = d }
}

// NewRevealCoordinator creates a coordinator with the default deadline
// and a time.AfterFunc scheduler.
func NewRevealCoordinator(opts ...RevealOption) *RevealCoordinator {
	c := &RevealCoordinator{
		scheduler: timerScheduler{},
		timeout:   HomepageLoadingTimeout,
		log:       logging.NewLogger("homepage"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current reveal state.
func (c *RevealCoordinator) State() RevealState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// BeginSuggestionPreparation hides the homepage while the suggestion
// panel loads and arms the one-shot reveal deadline. Nil views degrade
// to a no-op.
func (c *RevealCoordinator) BeginSuggestionPreparation(suggestion, homepage View) {
	if suggestion == nil || homepage == nil {
		return
	}

	c.mu.Lock()
	c.state = RevealPending
	c.suggestion = suggestion
	c.homepage = homepage
	c.mu.Unlock()

	homepage.SetVisible(false)
	c.scheduler.AfterFunc(c.timeout, func() {
		c.Reveal(false)
	})
}

// RegisterListener registers a homepage loaded listener. It returns
// false when the homepage is already revealed: no event will ever fire
// for a late joiner. Re-registering a listener is a no-op.
func (c *RevealCoordinator) RegisterListener(l HomepageLoadedListener) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Revealed {
		return false
	}
	for _, existing := range c.listeners {
		if existing == l {
			return true
		}
	}
	c.listeners = append(c.listeners, l)
	return true
}

// Reveal shows the homepage and shows or hides the suggestion panel
// with it. Only the first call per preparation has any effect; further
// calls are no-ops regardless of showSuggestion.
func (c *RevealCoordinator) Reveal(showSuggestion bool) {
	c.mu.Lock()
	if c.state == Revealed || c.homepage == nil {
		c.mu.Unlock()
		return
	}
	c.state = Revealed
	suggestion := c.suggestion
	homepage := c.homepage
	listeners := c.listeners
	c.listeners = nil
	c.mu.Unlock()

	c.log.Infof("revealing homepage, showSuggestion=%v", showSuggestion)

	suggestion.SetVisible(showSuggestion)
	// Listeners may call back into the coordinator, so notify outside
	// the lock, in registration order.
	for _, l := range listeners {
		l.HomepageLoaded()
	}
	homepage.SetVisible(true)
}
