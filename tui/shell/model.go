// Package shell is the terminal rendition of the settings homepage: a
// primary pane with the suggestion panel, contextual cards and the
// top-level menu, plus a secondary pane that deep-linked destinations
// open into.
package shell

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/homeshell/config"
	"github.com/grovetools/homeshell/embedding"
	"github.com/grovetools/homeshell/homepage"
	"github.com/grovetools/homeshell/intent"
	"github.com/grovetools/homeshell/logging"
	"github.com/grovetools/homeshell/tui/theme"
)

// MenuEntry is one row of the top-level settings menu.
type MenuEntry struct {
	Key    string
	Title  string
	Action string
}

// DefaultMenu is the built-in top-level menu. Each entry's action must
// be registered with the destination registry for Open to resolve.
var DefaultMenu = []MenuEntry{
	{Key: "network", Title: "Network & internet", Action: "homeshell.action.NETWORK"},
	{Key: "display", Title: "Display", Action: "homeshell.action.DISPLAY"},
	{Key: "sound", Title: "Sound", Action: "homeshell.action.SOUND"},
	{Key: "battery", Title: "Battery", Action: "homeshell.action.BATTERY"},
	{Key: "storage", Title: "Storage", Action: "homeshell.action.STORAGE"},
	{Key: "apps", Title: "Apps", Action: "homeshell.action.APPS"},
}

// mountedView is a realized surface: the latest descriptor plus the
// visibility handle the reveal coordinator flips.
type mountedView struct {
	descriptor homepage.ViewDescriptor
	mounted    bool
	visible    bool
}

func (v *mountedView) SetVisible(visible bool) { v.visible = visible }
func (v *mountedView) Visible() bool           { return v.visible }

// layout owns the mount table and the secondary pane. It is a stable
// pointer shared with the homepage host, which needs handles that
// survive bubbletea's value-copied Model.
type layout struct {
	views     map[homepage.ViewID]*mountedView
	secondary *intent.NavigationRequest
}

func newLayout() *layout {
	l := &layout{views: make(map[homepage.ViewID]*mountedView)}
	// The container surface exists before anything mounts into it.
	l.ref(homepage.ViewHomepageContainer).mounted = true
	return l
}

func (l *layout) ref(id homepage.ViewID) *mountedView {
	v, ok := l.views[id]
	if !ok {
		v = &mountedView{visible: true}
		l.views[id] = v
	}
	return v
}

// AddOrShowView implements homepage.ViewHost.
func (l *layout) AddOrShowView(id homepage.ViewID, view homepage.ViewDescriptor) {
	v := l.ref(id)
	v.descriptor = view
	v.mounted = true
	v.visible = true
}

// Ref implements homepage.ViewHost.
func (l *layout) Ref(id homepage.ViewID) homepage.View {
	return l.ref(id)
}

// Start implements homepage.Dispatcher: a dispatched destination opens
// in the secondary pane.
func (l *layout) Start(req *intent.NavigationRequest) error {
	l.secondary = req
	return nil
}

// tickScheduler defers the reveal deadline onto the bubbletea event
// loop so the timer callback never races the Update goroutine.
type tickScheduler struct {
	delay time.Duration
	fn    func()
	armed bool
}

func (s *tickScheduler) AfterFunc(d time.Duration, fn func()) {
	s.delay = d
	s.fn = fn
	s.armed = true
}

// takeCmd converts a pending deadline into a tea command, once.
func (s *tickScheduler) takeCmd() tea.Cmd {
	if !s.armed {
		return nil
	}
	s.armed = false
	return tea.Tick(s.delay, func(time.Time) tea.Msg {
		return revealTimeoutMsg{}
	})
}

func (s *tickScheduler) fire() {
	if s.fn != nil {
		s.fn()
	}
}

// Model is the bubbletea model for the settings shell.
type Model struct {
	cfg       *config.Config
	host      *homepage.Host
	layout    *layout
	scheduler *tickScheduler
	registry  *intent.Registry
	keys      KeyMap
	theme     *theme.Theme
	initial   *intent.NavigationRequest
	provider  homepage.SuggestionProvider
	menu      []MenuEntry

	cursor int
	width  int
	height int
	status string
	log    *logrus.Entry
}

// Option configures the shell model.
type Option func(*Model)

// WithInitialRequest sets the request the shell activates with, e.g. a
// deep link injected from the command line.
func WithInitialRequest(req *intent.NavigationRequest) Option {
	return func(m *Model) { m.initial = req }
}

// WithSuggestionProvider installs the suggestion panel factory.
func WithSuggestionProvider(p homepage.SuggestionProvider) Option {
	return func(m *Model) { m.provider = p }
}

// WithMenu replaces the built-in top-level menu.
func WithMenu(entries []MenuEntry) Option {
	return func(m *Model) { m.menu = entries }
}

// New creates the shell and its homepage host. Every menu action is
// registered as a resolvable destination so Open and inbound deep
// links share one resolution path.
func New(cfg *config.Config, opts ...Option) Model {
	m := Model{
		cfg:       cfg,
		layout:    newLayout(),
		scheduler: &tickScheduler{},
		registry:  intent.NewRegistry(),
		keys:      DefaultKeyMap(),
		theme:     theme.DefaultTheme,
		menu:      DefaultMenu,
		log:       logging.NewLogger("shell"),
	}
	for _, opt := range opts {
		opt(&m)
	}

	RegisterMenu(m.registry, m.menu)
	if m.provider == nil {
		m.provider = contextualSuggestions{}
	}
	if m.initial == nil {
		m.initial = intent.NewRequest("homeshell.action.MAIN")
	}

	m.host = homepage.NewHost(cfg, m.layout, m.registry, embedding.NewRulesController(), m.layout,
		homepage.WithSuggestionProvider(m.provider),
		homepage.WithRevealOptions(homepage.WithScheduler(m.scheduler)),
	)
	return m
}

// RegisterMenu registers every menu entry's action as a resolvable
// destination.
func RegisterMenu(registry *intent.Registry, entries []MenuEntry) {
	for _, entry := range entries {
		registry.Register(entry.Action, intent.ComponentName{
			Package: "homeshell",
			Class:   destinationClass(entry.Key),
		})
	}
}

// destinationClass derives a destination class from a menu key, e.g.
// "network" becomes "NetworkSettings".
func destinationClass(key string) string {
	if key == "" {
		return "Settings"
	}
	return strings.ToUpper(key[:1]) + key[1:] + "Settings"
}

// Registry exposes the destination registry so callers can register
// extra destinations before the shell activates.
func (m Model) Registry() *intent.Registry {
	return m.registry
}

// Init implements tea.Model: the shell activates with its initial
// request on start.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return activateMsg{req: m.initial}
	}
}
