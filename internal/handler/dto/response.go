package dto

import (
	"fmt"
	"time"

	"github.com/mgoscar2018/invitaboda/internal/domain"
)

type InvitationResponse struct {
	ID                 string               `json:"id"`
	DisplayName        string               `json:"display_name"`
	Status             string               `json:"status"`
	AssignedPasses     int                  `json:"assigned_passes"`
	ConfirmedPassCount int                  `json:"confirmed_pass_count"`
	Adults             []string             `json:"adults"`
	Children           []ChildGuestResponse `json:"children"`
}

type ChildGuestResponse struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	// Display is the page-facing rendering, e.g. "Sofía García (7 años)".
	Display string `json:"display"`
}

type RSVPResponse struct {
	Invitation      InvitationResponse `json:"invitation"`
	ForfeitedPasses int                `json:"forfeited_passes,omitempty"`
	Warning         string             `json:"warning,omitempty"`
}

type WeddingResponse struct {
	BrideName        string                  `json:"bride_name"`
	GroomName        string                  `json:"groom_name"`
	Date             string                  `json:"date"`
	CountdownSeconds int64                   `json:"countdown_seconds"`
	VenueAddress     string                  `json:"venue_address"`
	MapsURL          string                  `json:"maps_url"`
	MusicURL         string                  `json:"music_url"`
	Padres           []string                `json:"padres"`
	Padrinos         []PadrinoResponse       `json:"padrinos"`
	Itinerary        []ItineraryItemResponse `json:"itinerary"`
	PhotoURLs        []string                `json:"photo_urls"`
}

type PadrinoResponse struct {
	Names string `json:"names"`
	Role  string `json:"role"`
}

type ItineraryItemResponse struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToInvitationResponse(inv *domain.Invitation) InvitationResponse {
	adults := inv.Adults
	if adults == nil {
		adults = []string{}
	}

	children := make([]ChildGuestResponse, 0, len(inv.Children))
	for _, c := range inv.Children {
		children = append(children, ChildGuestResponse{
			Name:    c.Name,
			Age:     c.Age,
			Display: fmt.Sprintf("%s (%d años)", c.Name, c.Age),
		})
	}

	return InvitationResponse{
		ID:                 inv.ID,
		DisplayName:        inv.DisplayName,
		Status:             string(inv.Status()),
		AssignedPasses:     inv.AssignedPasses,
		ConfirmedPassCount: inv.ConfirmedPassCount,
		Adults:             adults,
		Children:           children,
	}
}

func ToRSVPResponse(res *domain.RSVPResult) RSVPResponse {
	resp := RSVPResponse{
		Invitation:      ToInvitationResponse(res.Invitation),
		ForfeitedPasses: res.ForfeitedPasses,
	}
	if res.ForfeitedPasses > 0 {
		resp.Warning = fmt.Sprintf(
			"Solo se reservaron %d de los %d pases disponibles.",
			res.Invitation.ConfirmedPassCount, res.Invitation.AssignedPasses,
		)
	}
	return resp
}

func ToWeddingResponse(info domain.WeddingInfo, now time.Time) WeddingResponse {
	padrinos := make([]PadrinoResponse, 0, len(info.Padrinos))
	for _, p := range info.Padrinos {
		padrinos = append(padrinos, PadrinoResponse{Names: p.Names, Role: p.Role})
	}

	itinerary := make([]ItineraryItemResponse, 0, len(info.Itinerary))
	for _, it := range info.Itinerary {
		itinerary = append(itinerary, ItineraryItemResponse{Time: it.Time, Description: it.Description})
	}

	return WeddingResponse{
		BrideName:        info.BrideName,
		GroomName:        info.GroomName,
		Date:             info.Date.Format(time.RFC3339),
		CountdownSeconds: int64(info.Countdown(now).Seconds()),
		VenueAddress:     info.VenueAddress,
		MapsURL:          info.MapsURL,
		MusicURL:         info.MusicURL,
		Padres:           info.Padres,
		Padrinos:         padrinos,
		Itinerary:        itinerary,
		PhotoURLs:        info.PhotoURLs,
	}
}
