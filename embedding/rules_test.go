package embedding

import (
	"testing"

	"github.com/grovetools/homeshell/intent"
	"github.com/stretchr/testify/assert"
)

var (
	homepage = intent.ComponentName{Package: "homeshell", Class: "Homepage"}
	wifi     = intent.ComponentName{Package: "homeshell", Class: "WifiSettings"}
	sound    = intent.ComponentName{Package: "homeshell", Class: "SoundSettings"}
)

func TestRegisterAndLookup(t *testing.T) {
	c := NewRulesController()
	c.RegisterTwoPanePairRule(PaneRule{
		Primary:                    homepage,
		Secondary:                  wifi,
		Action:                     "settings.action.WIFI",
		FinishPrimaryWithSecondary: true,
		FinishSecondaryWithPrimary: true,
		ClearTop:                   true,
	})

	rule, ok := c.RuleFor(homepage, wifi, "settings.action.WIFI")
	assert.True(t, ok)
	assert.True(t, rule.FinishPrimaryWithSecondary)
	assert.True(t, rule.FinishSecondaryWithPrimary)
	assert.True(t, rule.ClearTop)

	_, ok = c.RuleFor(homepage, sound, "settings.action.WIFI")
	assert.False(t, ok)
}

func TestReRegistrationReplaces(t *testing.T) {
	c := NewRulesController()
	c.RegisterTwoPanePairRule(PaneRule{
		Primary: homepage, Secondary: wifi, Action: "settings.action.WIFI",
		ClearTop: true,
	})
	c.RegisterTwoPanePairRule(PaneRule{
		Primary: homepage, Secondary: wifi, Action: "settings.action.WIFI",
		ClearTop: false,
	})

	assert.Equal(t, 1, c.Len(), "upsert must replace, not append")

	rule, ok := c.RuleFor(homepage, wifi, "settings.action.WIFI")
	assert.True(t, ok)
	assert.False(t, rule.ClearTop)
}

func TestRulesForSecondary(t *testing.T) {
	c := NewRulesController()
	root := intent.ComponentName{Package: "homeshell", Class: "SettingsRoot"}

	c.RegisterTwoPanePairRule(PaneRule{Primary: homepage, Secondary: wifi, Action: "a"})
	c.RegisterTwoPanePairRule(PaneRule{Primary: root, Secondary: wifi, Action: "a"})
	c.RegisterTwoPanePairRule(PaneRule{Primary: homepage, Secondary: sound, Action: "b"})

	rules := c.RulesForSecondary(wifi)
	assert.Len(t, rules, 2)
	assert.Equal(t, homepage, rules[0].Primary, "registration order preserved")
	assert.Equal(t, root, rules[1].Primary)
}

func TestRulesSnapshot(t *testing.T) {
	c := NewRulesController()
	c.RegisterTwoPanePairRule(PaneRule{Primary: homepage, Secondary: wifi, Action: "a"})
	c.RegisterTwoPanePairRule(PaneRule{Primary: homepage, Secondary: sound, Action: "b"})

	rules := c.Rules()
	assert.Len(t, rules, 2)
	assert.Equal(t, wifi, rules[0].Secondary)
	assert.Equal(t, sound, rules[1].Secondary)
}
