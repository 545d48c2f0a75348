package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNavigationProvider(t *testing.T) {
	for _, value := range []string{"mapbox", "google", "apple", "waze"} {
		p, err := ParseNavigationProvider(value)
		require.NoError(t, err)
		assert.Equal(t, value, string(p))
	}

	_, err := ParseNavigationProvider("here")
	assert.ErrorContains(t, err, `unknown navigation provider "here"`)
}

func TestNavigationProvider_ExternalApp(t *testing.T) {
	assert.Equal(t, ProviderApple, ProviderApple.ExternalApp())
	assert.Equal(t, ProviderWaze, ProviderWaze.ExternalApp())
	assert.Equal(t, ProviderGoogle, ProviderGoogle.ExternalApp())
	assert.Equal(t, ProviderGoogle, ProviderInApp.ExternalApp())
	assert.Equal(t, "Google Maps", ProviderInApp.ExternalApp().DisplayName())
}

func TestNavigationSettings_UnmarshalRejectsUnknownProvider(t *testing.T) {
	var s NavigationSettings
	err := json.Unmarshal([]byte(`{"provider":"here","voiceGuidance":true}`), &s)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"provider":"waze","voiceGuidance":false,"avoidTolls":true}`), &s)
	require.NoError(t, err)
	assert.Equal(t, NavigationSettings{Provider: ProviderWaze, AvoidTolls: true}, s)
}

func TestSettingsPatch_Apply(t *testing.T) {
	var patch SettingsPatch
	require.NoError(t, json.Unmarshal([]byte(`{"avoidTolls":true}`), &patch))

	base := NavigationSettings{Provider: ProviderApple, VoiceGuidance: false, AvoidHighways: true}
	got := patch.Apply(base)

	assert.Equal(t, NavigationSettings{Provider: ProviderApple, VoiceGuidance: false, AvoidTolls: true, AvoidHighways: true}, got)
	assert.False(t, base.AvoidTolls)
	assert.Equal(t, DefaultNavigationSettings(), SettingsPatch{}.Apply(DefaultNavigationSettings()))
}

func TestDestination_Coordinate(t *testing.T) {
	lat, lng := -6.2, 106.8

	c, ok := Destination{Latitude: &lat, Longitude: &lng}.Coordinate()
	assert.True(t, ok)
	assert.Equal(t, Coordinate{Latitude: lat, Longitude: lng}, c)

	_, ok = Destination{Address: "Monas", Latitude: &lat}.Coordinate()
	assert.False(t, ok)
}
