// Package embedding holds the pane-pairing rules that tell the
// navigation host which components present side by side on dual-pane
// layouts, and how tightly their lifecycles couple.
package embedding

import (
	"sync"

	"github.com/grovetools/homeshell/intent"
)

// PaneRule pairs a primary and a secondary component for an action tag.
type PaneRule struct {
	Primary   intent.ComponentName
	Secondary intent.ComponentName
	Action    string

	// FinishPrimaryWithSecondary closes the primary pane when the
	// secondary finishes; FinishSecondaryWithPrimary is the reverse.
	// ClearTop clears the pane stack when re-navigating to the pair.
	FinishPrimaryWithSecondary bool
	FinishSecondaryWithPrimary bool
	ClearTop                   bool
}

type ruleKey struct {
	primary   intent.ComponentName
	secondary intent.ComponentName
	action    string
}

// RulesController owns the active pane rule set. At most one rule
// exists per (primary, secondary, action); re-registration replaces.
type RulesController struct {
	mu    sync.RWMutex
	rules map[ruleKey]PaneRule
	order []ruleKey
}

// NewRulesController creates an empty rule set.
func NewRulesController() *RulesController {
	return &RulesController{
		rules: make(map[ruleKey]PaneRule),
	}
}

// RegisterTwoPanePairRule upserts a pane rule.
func (c *RulesController) RegisterTwoPanePairRule(rule PaneRule) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := ruleKey{primary: rule.Primary, secondary: rule.Secondary, action: rule.Action}
	if _, exists := c.rules[key]; !exists {
		c.order = append(c.order, key)
	}
	c.rules[key] = rule
}

// RuleFor looks up the rule for an exact (primary, secondary, action).
func (c *RulesController) RuleFor(primary, secondary intent.ComponentName, action string) (PaneRule, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rule, ok := c.rules[ruleKey{primary: primary, secondary: secondary, action: action}]
	return rule, ok
}

// RulesForSecondary returns every rule whose secondary matches, in
// registration order. The navigation host consults this when deciding
// how to place a dispatched destination.
func (c *RulesController) RulesForSecondary(secondary intent.ComponentName) []PaneRule {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []PaneRule
	for _, key := range c.order {
		if key.secondary == secondary {
			out = append(out, c.rules[key])
		}
	}
	return out
}

// Rules returns a snapshot of all rules in registration order.
func (c *RulesController) Rules() []PaneRule {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]PaneRule, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.rules[key])
	}
	return out
}

// Len returns the number of active rules.
func (c *RulesController) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rules)
}
