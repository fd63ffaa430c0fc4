package homepage

// ViewID names a mount point in the homepage layout container.
type ViewID string

const (
	// ViewHomepageContainer is the whole homepage surface whose
	// visibility the reveal coordinator stages.
	ViewHomepageContainer ViewID = "homepage_container"

	// ViewSuggestions is the suggestion panel mount point.
	ViewSuggestions ViewID = "suggestions"

	// ViewContextualCards is the contextual cards mount point.
	ViewContextualCards ViewID = "contextual_cards"

	// ViewTopLevel is the top-level settings list mount point.
	ViewTopLevel ViewID = "top_level"
)

// ViewDescriptor describes a sub-view to mount. Implementations are
// plain data; the view host decides how to realize them.
type ViewDescriptor interface {
	ViewID() ViewID
}

// ViewHost is the fragment-host collaborator. AddOrShowView is
// idempotent: it shows the view when already mounted and adds it
// otherwise, replacing the descriptor either way.
type ViewHost interface {
	AddOrShowView(id ViewID, view ViewDescriptor)

	// Ref returns the visibility handle for a mount point. May return
	// nil when the surface does not exist in the current layout.
	Ref(id ViewID) View
}

// View is a visibility handle on a mounted surface.
type View interface {
	SetVisible(visible bool)
	Visible() bool
}

// SuggestionProvider is the capability-typed factory for the suggestion
// panel. Feature code registers a provider instead of being looked up
// reflectively; a provider that has nothing to show returns ok=false.
type SuggestionProvider interface {
	ContextualSuggestionView() (view ViewDescriptor, ok bool)
}

// TopLevelView describes the top-level settings list.
type TopLevelView struct {
	// HighlightMenuKey selects the menu entry to highlight.
	HighlightMenuKey string
}

// ViewID implements ViewDescriptor.
func (TopLevelView) ViewID() ViewID { return ViewTopLevel }

// ContextualCardsView describes the contextual cards surface.
type ContextualCardsView struct{}

// ViewID implements ViewDescriptor.
func (ContextualCardsView) ViewID() ViewID { return ViewContextualCards }
