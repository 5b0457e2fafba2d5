package service

import (
	"testing"
	"time"

	"github.com/mgoscar2018/invitaboda/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeddingConfig() config.WeddingConfig {
	return config.WeddingConfig{
		BrideName:    "Silvia",
		GroomName:    "Oscar",
		Date:         "2025-07-26T14:00:00-06:00",
		VenueAddress: "Av. Jiutepec #87, Jiutepec, Morelos",
		MusicURL:     "/static/music/track.mp3",
		Padres:       []string{"MA. ARACELI GONGORA"},
		Padrinos: []config.PadrinoConfig{
			{Names: "Sandra & Pedro", Role: "Padrinos de Biblia"},
		},
		Itinerary: []config.ItineraryEntry{
			{Time: "2:00 p.m.", Description: "Ceremonia"},
		},
		PhotoURLs: []string{"/static/photos/p1.jpg"},
	}
}

func TestContentService_Wedding(t *testing.T) {
	svc, err := NewContentService(testWeddingConfig())
	require.NoError(t, err)

	info := svc.Wedding()

	assert.Equal(t, "Silvia", info.BrideName)
	assert.Equal(t, "Oscar", info.GroomName)
	assert.Equal(t, 2025, info.Date.Year())
	assert.Len(t, info.Padrinos, 1)
	assert.Len(t, info.Itinerary, 1)
	assert.Contains(t, info.MapsURL, "google.com/maps")
	// the venue address goes into the maps link URL-escaped
	assert.NotContains(t, info.MapsURL, "#")
}

func TestContentService_Countdown(t *testing.T) {
	svc, err := NewContentService(testWeddingConfig())
	require.NoError(t, err)

	info := svc.Wedding()

	before := info.Date.Add(-48 * time.Hour)
	assert.Equal(t, 48*time.Hour, info.Countdown(before))

	after := info.Date.Add(time.Hour)
	assert.Equal(t, time.Duration(0), info.Countdown(after))
}

func TestContentService_BadDate(t *testing.T) {
	cfg := testWeddingConfig()
	cfg.Date = "26 de julio"

	_, err := NewContentService(cfg)

	require.Error(t, err)
}
