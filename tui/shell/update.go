package shell

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/homeshell/config"
	"github.com/grovetools/homeshell/homepage"
	"github.com/grovetools/homeshell/intent"
)

// activateMsg delivers the shell's initial navigation request.
type activateMsg struct {
	req *intent.NavigationRequest
}

// newRequestMsg delivers a request that arrived while running, e.g. a
// menu open or an externally injected deep link.
type newRequestMsg struct {
	req *intent.NavigationRequest
}

// revealTimeoutMsg fires the staged reveal deadline on the event loop.
type revealTimeoutMsg struct{}

// configReloadedMsg delivers a fresh configuration from the watcher.
type configReloadedMsg struct {
	cfg *config.Config
}

// ConfigReloaded builds the message an external config watcher sends
// into the program when homeshell.yml changes on disk.
func ConfigReloaded(cfg *config.Config) tea.Msg {
	return configReloadedMsg{cfg: cfg}
}

// SuggestionsView describes the contextual suggestion panel.
type SuggestionsView struct {
	Items []string
}

// ViewID implements homepage.ViewDescriptor.
func (SuggestionsView) ViewID() homepage.ViewID { return homepage.ViewSuggestions }

// contextualSuggestions is the built-in suggestion source.
type contextualSuggestions struct{}

func (contextualSuggestions) ContextualSuggestionView() (homepage.ViewDescriptor, bool) {
	return SuggestionsView{Items: []string{
		"Finish setting up your device",
		"Review battery usage",
	}}, true
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case activateMsg:
		outcome, err := m.host.Activate(msg.req)
		return m.afterRoute(outcome, err)

	case newRequestMsg:
		outcome, err := m.host.OnNewRequest(msg.req)
		return m.afterRoute(outcome, err)

	case configReloadedMsg:
		m.cfg = msg.cfg
		outcome, err := m.host.OnConfigReload(msg.cfg)
		return m.afterRoute(outcome, err)

	case revealTimeoutMsg:
		m.scheduler.fire()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// afterRoute folds a route outcome into the model. A terminated route
// ends the shell, matching the host contract that the caller must end
// the current navigation context.
func (m Model) afterRoute(outcome homepage.RouteOutcome, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.status = m.theme.Error.Render(err.Error())
	}
	if outcome == homepage.RouteTerminated {
		return m, tea.Quit
	}
	// A staged reveal arms its deadline during routing; schedule it now.
	return m, m.scheduler.takeCmd()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.menu)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		return m, m.openSelected()

	case key.Matches(msg, m.keys.Back):
		m.layout.secondary = nil
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadConfig()
	}

	return m, nil
}

// openSelected routes the selected menu entry through the same
// deep-link path an external caller would use.
func (m Model) openSelected() tea.Cmd {
	if len(m.menu) == 0 {
		return nil
	}
	entry := m.menu[m.cursor]

	target := intent.NewRequest(entry.Action)
	target.PutExtra(intent.ExtraMenuKey, entry.Key)

	req := intent.NewRequest(intent.ActionDeepLink)
	req.PutExtra(intent.ExtraDeepLinkURI, target.EncodeURI())
	req.PutExtra(intent.ExtraHighlightMenuKey, entry.Key)

	return func() tea.Msg {
		return newRequestMsg{req: req}
	}
}

func (m Model) reloadConfig() tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.LoadDefault()
		if err != nil || cfg == nil {
			cfg = m.cfg
		}
		return configReloadedMsg{cfg: cfg}
	}
}
