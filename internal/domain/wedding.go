package domain

import "time"

// WeddingInfo is the static content of the invitation page: who, when,
// where, plus the itinerary and sponsor lists shown to every guest.
type WeddingInfo struct {
	BrideName string    `json:"bride_name"`
	GroomName string    `json:"groom_name"`
	Date      time.Time `json:"date"`

	VenueAddress string `json:"venue_address"`
	MapsURL      string `json:"maps_url"`
	MusicURL     string `json:"music_url"`

	Padres    []string        `json:"padres"`
	Padrinos  []Padrino       `json:"padrinos"`
	Itinerary []ItineraryItem `json:"itinerary"`
	PhotoURLs []string        `json:"photo_urls"`
}

// Padrino is one sponsor couple and their role in the ceremony.
type Padrino struct {
	Names string `json:"names"`
	Role  string `json:"role"`
}

type ItineraryItem struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

// Countdown reports how long remains until the wedding, zero once it started.
func (w WeddingInfo) Countdown(now time.Time) time.Duration {
	if remaining := w.Date.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}
