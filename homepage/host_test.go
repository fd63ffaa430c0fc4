package homepage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/homeshell/config"
	"github.com/grovetools/homeshell/embedding"
	"github.com/grovetools/homeshell/intent"
)

// fakeViewHost records mounted descriptors and hands out fake views.
type fakeViewHost struct {
	mounted map[ViewID]ViewDescriptor
	order   []ViewID
	views   map[ViewID]*fakeView
}

func newFakeViewHost(ids ...ViewID) *fakeViewHost {
	h := &fakeViewHost{
		mounted: make(map[ViewID]ViewDescriptor),
		views:   make(map[ViewID]*fakeView),
	}
	for _, id := range ids {
		h.views[id] = newFakeView()
	}
	return h
}

func (h *fakeViewHost) AddOrShowView(id ViewID, view ViewDescriptor) {
	h.mounted[id] = view
	h.order = append(h.order, id)
}

func (h *fakeViewHost) Ref(id ViewID) View {
	v, ok := h.views[id]
	if !ok {
		return nil
	}
	return v
}

// staticSuggestions always offers the same descriptor.
type staticSuggestions struct {
	view ViewDescriptor
	ok   bool
}

type suggestionPanel struct{}

func (suggestionPanel) ViewID() ViewID { return ViewSuggestions }

func (p staticSuggestions) ContextualSuggestionView() (ViewDescriptor, bool) {
	return p.view, p.ok
}

func testConfig() *config.Config {
	return &config.Config{
		Embedding: config.EmbeddingConfig{Enabled: true},
		Features:  config.FeaturesConfig{ContextualHome: true},
	}
}

func newHostFixture(t *testing.T, cfg *config.Config, opts ...HostOption) (*Host, *fakeViewHost, *manualScheduler, *recordingDispatcher) {
	t.Helper()
	views := newFakeViewHost(ViewHomepageContainer, ViewSuggestions)
	scheduler := &manualScheduler{}
	registry := intent.NewRegistry()
	registry.Register("homeshell.action.WIFI", wifiTarget)
	dispatcher := &recordingDispatcher{}

	opts = append([]HostOption{
		WithSuggestionProvider(staticSuggestions{view: suggestionPanel{}, ok: true}),
		WithRevealOptions(WithScheduler(scheduler)),
	}, opts...)

	host := NewHost(cfg, views, registry, embedding.NewRulesController(), dispatcher, opts...)
	return host, views, scheduler, dispatcher
}

func TestActivateMountsAllSurfaces(t *testing.T) {
	host, views, _, _ := newHostFixture(t, testConfig())

	outcome, err := host.Activate(intent.NewRequest("homeshell.action.MAIN"))

	require.NoError(t, err)
	assert.Equal(t, RouteNotApplicable, outcome)
	assert.Contains(t, views.mounted, ViewSuggestions)
	assert.Contains(t, views.mounted, ViewContextualCards)
	assert.Contains(t, views.mounted, ViewTopLevel)
}

func TestActivateStagesRevealBeforeSuggestionMount(t *testing.T) {
	host, views, scheduler, _ := newHostFixture(t, testConfig())

	_, err := host.Activate(intent.NewRequest("homeshell.action.MAIN"))
	require.NoError(t, err)

	assert.False(t, views.views[ViewHomepageContainer].Visible(),
		"homepage hides until the suggestion panel is ready")
	require.NotNil(t, scheduler.fn, "deadline armed during activation")

	scheduler.Fire()
	assert.True(t, views.views[ViewHomepageContainer].Visible())
	assert.Equal(t, Revealed, host.Reveal().State())
}

func TestActivateSkipsCosmeticSurfacesOnLowRAM(t *testing.T) {
	cfg := testConfig()
	cfg.LowRAM = true
	host, views, scheduler, _ := newHostFixture(t, cfg)

	_, err := host.Activate(intent.NewRequest("homeshell.action.MAIN"))
	require.NoError(t, err)

	assert.NotContains(t, views.mounted, ViewSuggestions)
	assert.NotContains(t, views.mounted, ViewContextualCards)
	assert.Contains(t, views.mounted, ViewTopLevel)
	assert.Nil(t, scheduler.fn, "no reveal staging without a suggestion panel")
	assert.True(t, views.views[ViewHomepageContainer].Visible())
}

func TestActivateSkipsSuggestionsWhenDisabled(t *testing.T) {
	cfg := testConfig()
	off := false
	cfg.Features.Suggestions = &off
	host, views, _, _ := newHostFixture(t, cfg)

	_, err := host.Activate(intent.NewRequest("homeshell.action.MAIN"))
	require.NoError(t, err)

	assert.NotContains(t, views.mounted, ViewSuggestions)
	assert.Contains(t, views.mounted, ViewContextualCards)
}

func TestActivateSkipsSuggestionsWhenProviderDeclines(t *testing.T) {
	host, views, scheduler, _ := newHostFixture(t, testConfig(),
		WithSuggestionProvider(staticSuggestions{ok: false}))

	_, err := host.Activate(intent.NewRequest("homeshell.action.MAIN"))
	require.NoError(t, err)

	assert.NotContains(t, views.mounted, ViewSuggestions)
	assert.Nil(t, scheduler.fn)
	assert.True(t, views.views[ViewHomepageContainer].Visible(),
		"a declined panel must not leave the homepage hidden")
}

func TestActivateRoutesDeepLink(t *testing.T) {
	host, _, _, dispatcher := newHostFixture(t, testConfig())

	req := deepLinkRequest(intent.NewRequest("homeshell.action.WIFI"))
	outcome, err := host.Activate(req)

	require.NoError(t, err)
	assert.Equal(t, RouteDispatched, outcome)
	require.Len(t, dispatcher.started, 1)
	assert.Equal(t, wifiTarget, dispatcher.started[0].Component)
}

func TestHighlightMenuKeyPrefersDeepLinkExtra(t *testing.T) {
	host, _, _, _ := newHostFixture(t, testConfig())

	req := intent.NewRequest(intent.ActionDeepLink)
	req.PutExtra(intent.ExtraHighlightMenuKey, "display")
	host.current = req

	assert.Equal(t, "display", host.HighlightMenuKey())
}

func TestHighlightMenuKeyFallsBackToConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Homepage.DefaultMenuKey = "battery"
	host, _, _, _ := newHostFixture(t, cfg)

	host.current = intent.NewRequest("homeshell.action.MAIN")
	assert.Equal(t, "battery", host.HighlightMenuKey())

	// Extra without the deep-link action does not count.
	req := intent.NewRequest("homeshell.action.MAIN")
	req.PutExtra(intent.ExtraHighlightMenuKey, "display")
	host.current = req
	assert.Equal(t, "battery", host.HighlightMenuKey())
}

func TestOnNewRequestReloadsHighlightAndRoutes(t *testing.T) {
	host, views, _, dispatcher := newHostFixture(t, testConfig())
	_, err := host.Activate(intent.NewRequest("homeshell.action.MAIN"))
	require.NoError(t, err)

	next := deepLinkRequest(intent.NewRequest("homeshell.action.WIFI"))
	next.PutExtra(intent.ExtraHighlightMenuKey, "network")

	outcome, err := host.OnNewRequest(next)

	require.NoError(t, err)
	assert.Equal(t, RouteDispatched, outcome)
	require.Len(t, dispatcher.started, 1)

	top, ok := views.mounted[ViewTopLevel].(TopLevelView)
	require.True(t, ok)
	assert.Equal(t, "network", top.HighlightMenuKey,
		"highlight reloads from the new request before the action is consumed")
}

func TestConfigReloadDoesNotRedispatchConsumedDeepLink(t *testing.T) {
	host, _, _, dispatcher := newHostFixture(t, testConfig())

	req := deepLinkRequest(intent.NewRequest("homeshell.action.WIFI"))
	first, err := host.Activate(req)
	require.NoError(t, err)
	require.Equal(t, RouteDispatched, first)

	second, err := host.OnConfigReload(testConfig())
	require.NoError(t, err)
	assert.Equal(t, RouteNotApplicable, second)
	assert.Len(t, dispatcher.started, 1)
}
