package service

import (
	"fmt"
	"net/url"
	"time"

	"github.com/mgoscar2018/invitaboda/internal/config"
	"github.com/mgoscar2018/invitaboda/internal/domain"
)

// ContentService serves the static invitation page content assembled from
// configuration. Nothing here touches the database.
type ContentService struct {
	info domain.WeddingInfo
}

func NewContentService(cfg config.WeddingConfig) (*ContentService, error) {
	date, err := time.Parse(time.RFC3339, cfg.Date)
	if err != nil {
		return nil, fmt.Errorf("parse wedding date: %w", err)
	}

	info := domain.WeddingInfo{
		BrideName:    cfg.BrideName,
		GroomName:    cfg.GroomName,
		Date:         date,
		VenueAddress: cfg.VenueAddress,
		MapsURL:      "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(cfg.VenueAddress),
		MusicURL:     cfg.MusicURL,
		Padres:       cfg.Padres,
		PhotoURLs:    cfg.PhotoURLs,
	}
	for _, p := range cfg.Padrinos {
		info.Padrinos = append(info.Padrinos, domain.Padrino{Names: p.Names, Role: p.Role})
	}
	for _, it := range cfg.Itinerary {
		info.Itinerary = append(info.Itinerary, domain.ItineraryItem{Time: it.Time, Description: it.Description})
	}

	return &ContentService{info: info}, nil
}

func (s *ContentService) Wedding() domain.WeddingInfo {
	return s.info
}
