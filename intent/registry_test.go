package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryResolveByAction(t *testing.T) {
	reg := NewRegistry()
	wifi := ComponentName{Package: "homeshell", Class: "WifiSettings"}
	reg.Register("settings.action.WIFI", wifi)

	req := NewRequest("settings.action.WIFI")
	got, ok := reg.ResolveComponent(req)
	assert.True(t, ok)
	assert.Equal(t, wifi, got)

	_, ok = reg.ResolveComponent(NewRequest("settings.action.UNKNOWN"))
	assert.False(t, ok)
}

func TestRegistryExplicitComponentWins(t *testing.T) {
	reg := NewRegistry()
	wifi := ComponentName{Package: "homeshell", Class: "WifiSettings"}
	sound := ComponentName{Package: "homeshell", Class: "SoundSettings"}
	reg.Register("settings.action.WIFI", wifi)
	reg.RegisterComponent(sound)

	req := NewRequest("settings.action.WIFI")
	req.Component = sound

	got, ok := reg.ResolveComponent(req)
	assert.True(t, ok)
	assert.Equal(t, sound, got)
}

func TestRegistryUnknownExplicitComponent(t *testing.T) {
	reg := NewRegistry()
	reg.Register("settings.action.WIFI", ComponentName{Package: "homeshell", Class: "WifiSettings"})

	req := NewRequest("settings.action.WIFI")
	req.Component = ComponentName{Package: "rogue", Class: "Injected"}

	// A named but unknown component must not resolve, even when the
	// action alone would have.
	_, ok := reg.ResolveComponent(req)
	assert.False(t, ok)
}

func TestRegistryReRegisterReplaces(t *testing.T) {
	reg := NewRegistry()
	old := ComponentName{Package: "homeshell", Class: "OldWifi"}
	now := ComponentName{Package: "homeshell", Class: "WifiSettings"}
	reg.Register("settings.action.WIFI", old)
	reg.Register("settings.action.WIFI", now)

	got, ok := reg.ResolveComponent(NewRequest("settings.action.WIFI"))
	assert.True(t, ok)
	assert.Equal(t, now, got)
}
