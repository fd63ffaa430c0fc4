package intent

import (
	"sync"
)

// Registry is a capability-typed table of known destination components.
// It replaces a system-wide package lookup: destinations register the
// actions they serve, and resolution is an explicit table hit instead
// of a reflective search.
type Registry struct {
	mu       sync.RWMutex
	byAction map[string]ComponentName
	known    map[ComponentName]bool
}

// NewRegistry creates an empty destination registry.
func NewRegistry() *Registry {
	return &Registry{
		byAction: make(map[string]ComponentName),
		known:    make(map[ComponentName]bool),
	}
}

// Register associates an action tag with a destination component.
// Re-registering an action replaces the previous destination.
func (r *Registry) Register(action string, component ComponentName) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byAction[action] = component
	r.known[component] = true
}

// RegisterComponent makes a component resolvable when named explicitly,
// without binding it to an action.
func (r *Registry) RegisterComponent(component ComponentName) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.known[component] = true
}

// ResolveComponent resolves a request to a concrete destination. An
// explicitly named, known component wins; otherwise the action table is
// consulted.
func (r *Registry) ResolveComponent(req *NavigationRequest) (ComponentName, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !req.Component.IsZero() {
		if r.known[req.Component] {
			return req.Component, true
		}
		return ComponentName{}, false
	}

	component, ok := r.byAction[req.Action]
	return component, ok
}

// ParseURI implements the resolver collaborator's parse side by
// delegating to the package codec.
func (r *Registry) ParseURI(s string) (*NavigationRequest, error) {
	return ParseURI(s)
}
