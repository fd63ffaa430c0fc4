// Package intent models inbound navigation requests and the textual
// intent-URI grammar used to carry a serialized target destination
// inside a deep-link request.
package intent

import (
	"fmt"
	"strings"
)

// Well-known action tags.
const (
	// ActionDeepLink marks a request that embeds a serialized target
	// destination for two-pane presentation.
	ActionDeepLink = "homeshell.action.EMBED_DEEP_LINK"
)

// Well-known extra keys.
const (
	// ExtraDeepLinkURI carries the encoded target intent URI.
	ExtraDeepLinkURI = "homeshell.extra.DEEP_LINK_INTENT_URI"

	// ExtraDeepLinkData carries the target's data URI separately from
	// the encoded intent URI. Set and read apart from ExtraDeepLinkURI
	// to prevent parse failures when the data URI's scheme is itself
	// complex.
	ExtraDeepLinkData = "homeshell.extra.DEEP_LINK_INTENT_DATA"

	// ExtraHighlightMenuKey selects the top-level menu entry to
	// highlight for a deep-link request.
	ExtraHighlightMenuKey = "homeshell.extra.DEEP_LINK_HIGHLIGHT_MENU_KEY"

	// ExtraMenuKey is the argument key the top-level list reads its
	// highlight from.
	ExtraMenuKey = "homeshell.extra.MENU_KEY"

	// ExtraFromExternalTile marks whether a request originated from an
	// external quick tile. The deep-link router always stamps "false".
	ExtraFromExternalTile = "homeshell.extra.FROM_EXTERNAL_TILE"
)

// Flags is a bitmask of launch flags on a navigation request.
type Flags uint32

const (
	// FlagNewTask asks the navigation host for a fresh task stack.
	FlagNewTask Flags = 1 << iota

	// FlagForwardResult forwards the pending activity result from the
	// current request to the launched destination.
	FlagForwardResult

	// FlagClearTop clears the pane stack above an existing instance of
	// the destination.
	FlagClearTop
)

// Has reports whether all bits in mask are set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// ComponentName identifies a concrete destination component.
type ComponentName struct {
	Package string
	Class   string
}

// IsZero reports whether the component is unset.
func (c ComponentName) IsZero() bool {
	return c.Package == "" && c.Class == ""
}

// String renders the component in pkg/Class form.
func (c ComponentName) String() string {
	return c.Package + "/" + c.Class
}

// ParseComponentName parses a pkg/Class string.
func ParseComponentName(s string) (ComponentName, error) {
	pkg, class, ok := strings.Cut(s, "/")
	if !ok || pkg == "" || class == "" {
		return ComponentName{}, fmt.Errorf("invalid component name %q", s)
	}
	return ComponentName{Package: pkg, Class: class}, nil
}

// NavigationRequest is an inbound navigation request. It is replaced
// wholesale when a new request arrives; the only in-place mutation is
// the router's one-shot action consumption.
type NavigationRequest struct {
	Action    string
	Component ComponentName
	Data      string
	Flags     Flags
	Extras    map[string]string
}

// NewRequest creates a request with the given action tag.
func NewRequest(action string) *NavigationRequest {
	return &NavigationRequest{
		Action: action,
		Extras: make(map[string]string),
	}
}

// StringExtra returns the extra for key, or "" when absent.
func (r *NavigationRequest) StringExtra(key string) string {
	if r.Extras == nil {
		return ""
	}
	return r.Extras[key]
}

// PutExtra sets an extra, allocating the map on first use.
func (r *NavigationRequest) PutExtra(key, value string) *NavigationRequest {
	if r.Extras == nil {
		r.Extras = make(map[string]string)
	}
	r.Extras[key] = value
	return r
}

// AddFlags sets the given flag bits.
func (r *NavigationRequest) AddFlags(mask Flags) {
	r.Flags |= mask
}

// ClearFlags clears the given flag bits.
func (r *NavigationRequest) ClearFlags(mask Flags) {
	r.Flags &^= mask
}
