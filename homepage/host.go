// Package homepage implements the host screen of the settings shell:
// it mounts the homepage sub-views, stages their reveal to avoid
// flicker, and routes inbound deep links to the secondary pane on
// dual-pane layouts.
package homepage

import (
	"github.com/grovetools/homeshell/config"
	"github.com/grovetools/homeshell/intent"
	"github.com/grovetools/homeshell/logging"
	"github.com/sirupsen/logrus"
)

// Host is the homepage host. It exclusively owns the current
// navigation request and the reveal state; collaborators receive
// explicit references instead of reaching for a process-wide lookup.
type Host struct {
	cfg         *config.Config
	views       ViewHost
	reveal      *RevealCoordinator
	router      *DeepLinkRouter
	suggestions SuggestionProvider
	current     *intent.NavigationRequest
	log         *logrus.Entry
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithSuggestionProvider installs the suggestion panel factory.
func WithSuggestionProvider(p SuggestionProvider) HostOption {
	return func(h *Host) { h.suggestions = p }
}

// WithRevealOptions forwards options to the reveal coordinator.
func WithRevealOptions(opts ...RevealOption) HostOption {
	return func(h *Host) {
		h.reveal = NewRevealCoordinator(opts...)
	}
}

// NewHost creates the homepage host and both of its components, the
// reveal coordinator and the deep-link router.
func NewHost(cfg *config.Config, views ViewHost, resolver Resolver, rules RuleRegistry, dispatcher Dispatcher, opts ...HostOption) *Host {
	h := &Host{
		cfg:    cfg,
		views:  views,
		reveal: NewRevealCoordinator(),
		router: NewDeepLinkRouter(resolver, rules, dispatcher),
		log:    logging.NewLogger("homepage"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Reveal returns the reveal coordinator, for suggestion code that
// finishes loading and for loaded-listener registration.
func (h *Host) Reveal() *RevealCoordinator {
	return h.reveal
}

// Activate bootstraps the homepage for an inbound request: mounts the
// sub-views, stages the reveal, then routes the deep link if the
// request carries one. A Terminated outcome means the caller must end
// the current navigation context.
func (h *Host) Activate(req *intent.NavigationRequest) (RouteOutcome, error) {
	h.current = req
	h.mountSubViews()
	return h.router.Route(h.current, h.cfg.Embedding.Enabled)
}

// OnNewRequest replaces the stored request wholesale when a new one
// arrives without re-activation (the shell was backgrounded), reloads
// the highlight menu key, and routes again.
func (h *Host) OnNewRequest(req *intent.NavigationRequest) (RouteOutcome, error) {
	h.current = req
	h.reloadHighlightMenuKey()
	return h.router.Route(h.current, h.cfg.Embedding.Enabled)
}

// OnConfigReload re-routes the stored request after a configuration
// reload. The router's consumption guard makes this a no-op unless the
// stored request still carries an unconsumed deep-link action.
func (h *Host) OnConfigReload(cfg *config.Config) (RouteOutcome, error) {
	h.cfg = cfg
	h.reloadHighlightMenuKey()
	return h.router.Route(h.current, h.cfg.Embedding.Enabled)
}

// HighlightMenuKey returns the menu key to highlight in the top-level
// list: the deep-link extra when present, otherwise the configured
// default.
func (h *Host) HighlightMenuKey() string {
	if h.current != nil && h.current.Action == intent.ActionDeepLink {
		if key := h.current.StringExtra(intent.ExtraHighlightMenuKey); key != "" {
			return key
		}
	}
	return h.cfg.MenuKeyOrDefault()
}

func (h *Host) mountSubViews() {
	if !h.cfg.LowRAM {
		// Only allow the cosmetic surfaces off low-RAM layouts.
		h.mountSuggestions()

		if h.cfg.Features.ContextualHome {
			h.views.AddOrShowView(ViewContextualCards, ContextualCardsView{})
		}
	}

	h.views.AddOrShowView(ViewTopLevel, TopLevelView{HighlightMenuKey: h.HighlightMenuKey()})
}

func (h *Host) mountSuggestions() {
	if !h.cfg.SuggestionsEnabled() || h.suggestions == nil {
		return
	}
	view, ok := h.suggestions.ContextualSuggestionView()
	if !ok {
		return
	}

	suggestion := h.views.Ref(ViewSuggestions)
	homepage := h.views.Ref(ViewHomepageContainer)

	// Hide the homepage and arm the deadline before the panel mounts,
	// so a slow panel can never flash an unstaged homepage.
	h.reveal.BeginSuggestionPreparation(suggestion, homepage)
	h.views.AddOrShowView(ViewSuggestions, view)
}

func (h *Host) reloadHighlightMenuKey() {
	h.views.AddOrShowView(ViewTopLevel, TopLevelView{HighlightMenuKey: h.HighlightMenuKey()})
}
