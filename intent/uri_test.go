package intent

import (
	"testing"

	"github.com/grovetools/homeshell/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	req, err := ParseURI("intent:#Intent;action=settings.action.WIFI;component=homeshell/WifiSettings;launchFlags=0x1;S.ssid=cafe;end")
	require.NoError(t, err)

	assert.Equal(t, "settings.action.WIFI", req.Action)
	assert.Equal(t, ComponentName{Package: "homeshell", Class: "WifiSettings"}, req.Component)
	assert.Equal(t, FlagNewTask, req.Flags)
	assert.Equal(t, "cafe", req.StringExtra("ssid"))
}

func TestParseURIWithData(t *testing.T) {
	req, err := ParseURI("intent:wifi%3A%2F%2Fnetworks#Intent;action=settings.action.WIFI;end")
	require.NoError(t, err)
	assert.Equal(t, "wifi://networks", req.Data)
}

func TestParseURIBareFragment(t *testing.T) {
	// A URI may omit the data head entirely
	req, err := ParseURI("#Intent;action=settings.action.SOUND;end")
	require.NoError(t, err)
	assert.Equal(t, "settings.action.SOUND", req.Action)
	assert.Empty(t, req.Data)
}

func TestParseURIErrors(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{"empty", ""},
		{"no fragment", "intent:only-data"},
		{"missing end token", "intent:#Intent;action=a.b"},
		{"unknown token", "intent:#Intent;bogus=1;end"},
		{"token without value", "intent:#Intent;action;end"},
		{"bad component", "intent:#Intent;component=noslash;end"},
		{"bad flags", "intent:#Intent;launchFlags=12;end"},
		{"bad flag hex", "intent:#Intent;launchFlags=0xzz;end"},
		{"empty extra key", "intent:#Intent;S.=v;end"},
		{"content after end", "intent:#Intent;end;action=a.b"},
		{"missing scheme", "data#Intent;end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseURI(tt.uri)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeIntentURISyntax, errors.GetCode(err))
		})
	}
}

func TestEncodeURIRoundTrip(t *testing.T) {
	req := NewRequest("settings.action.BLUETOOTH")
	req.Component = ComponentName{Package: "homeshell", Class: "BluetoothSettings"}
	req.Data = "device://aa:bb:cc"
	req.Flags = FlagForwardResult | FlagClearTop
	req.PutExtra("device", "keyboard one")
	req.PutExtra("pair", "true")

	parsed, err := ParseURI(req.EncodeURI())
	require.NoError(t, err)

	assert.Equal(t, req.Action, parsed.Action)
	assert.Equal(t, req.Component, parsed.Component)
	assert.Equal(t, req.Data, parsed.Data)
	assert.Equal(t, req.Flags, parsed.Flags)
	assert.Equal(t, req.Extras, parsed.Extras)
}

func TestEncodeURIEscapesSeparators(t *testing.T) {
	req := NewRequest("a.b")
	req.PutExtra("note", "semi;colon")

	encoded := req.EncodeURI()
	parsed, err := ParseURI(encoded)
	require.NoError(t, err)
	assert.Equal(t, "semi;colon", parsed.StringExtra("note"))
}

func TestFlagsHelpers(t *testing.T) {
	req := NewRequest("a.b")
	req.AddFlags(FlagNewTask | FlagClearTop)
	assert.True(t, req.Flags.Has(FlagNewTask))

	req.ClearFlags(FlagNewTask)
	assert.False(t, req.Flags.Has(FlagNewTask))
	assert.True(t, req.Flags.Has(FlagClearTop))
}
