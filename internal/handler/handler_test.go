package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mgoscar2018/invitaboda/internal/domain"
	"github.com/mgoscar2018/invitaboda/internal/handler/dto"
	hmocks "github.com/mgoscar2018/invitaboda/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockInvitationSvc, *hmocks.MockRSVPSvc, *hmocks.MockContentSvc, http.Handler) {
	t.Helper()
	invitationSvc := hmocks.NewMockInvitationSvc(t)
	rsvpSvc := hmocks.NewMockRSVPSvc(t)
	contentSvc := hmocks.NewMockContentSvc(t)

	h := NewHandler(invitationSvc, rsvpSvc, contentSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/wedding", h.GetWedding)
		api.GET("/invitations/:id", h.GetInvitation)
		api.POST("/invitations/:id/rsvp", h.SubmitRSVP)
		api.POST("/admin/invitations", h.CreateInvitation)
		api.GET("/admin/invitations", h.ListInvitations)
		api.POST("/admin/invitations/merge", h.MergeInvitations)
		api.GET("/admin/summary", h.GetSummary)
	}

	return invitationSvc, rsvpSvc, contentSvc, r
}

// --- Wedding content ---

func TestHandler_GetWedding(t *testing.T) {
	_, _, contentSvc, r := setupRouter(t)

	contentSvc.EXPECT().Wedding().Return(domain.WeddingInfo{
		BrideName:    "Silvia",
		GroomName:    "Oscar",
		Date:         time.Now().Add(30 * 24 * time.Hour),
		VenueAddress: "Jiutepec, Morelos",
		Itinerary:    []domain.ItineraryItem{{Time: "2:00 p.m.", Description: "Ceremonia"}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/wedding", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.WeddingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Silvia", resp.BrideName)
	assert.Positive(t, resp.CountdownSeconds)
	assert.Len(t, resp.Itinerary, 1)
}

// --- Invitations ---

func TestHandler_GetInvitation_Success(t *testing.T) {
	invitationSvc, _, _, r := setupRouter(t)

	inv := &domain.Invitation{
		ID:             "GARCIA01",
		DisplayName:    "Familia García",
		AssignedPasses: 4,
	}
	invitationSvc.EXPECT().Resolve(mock.Anything, "GARCIA01").Return(inv, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/invitations/GARCIA01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.InvitationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "GARCIA01", resp.ID)
	assert.Equal(t, "unanswered", resp.Status)
	assert.Equal(t, 4, resp.AssignedPasses)
}

func TestHandler_GetInvitation_NotFound(t *testing.T) {
	invitationSvc, _, _, r := setupRouter(t)

	invitationSvc.EXPECT().Resolve(mock.Anything, "missing").Return(nil, domain.ErrInvitationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/invitations/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SubmitRSVP_Confirm(t *testing.T) {
	_, rsvpSvc, _, r := setupRouter(t)

	inv := &domain.Invitation{
		ID:                 "GARCIA01",
		DisplayName:        "Familia García",
		Confirmed:          true,
		AssignedPasses:     3,
		ConfirmedPassCount: 3,
		Adults:             []string{"Juan Perez", "Ana Lopez"},
		Children:           []domain.ChildGuest{{Name: "Sofía García", Age: 7}},
	}
	rsvpSvc.EXPECT().Submit(mock.Anything, "GARCIA01", domain.RSVPInput{
		Adults:   []string{"Juan Perez", "Ana Lopez"},
		Children: []domain.ChildGuest{{Name: "Sofía García", Age: 7}},
	}).Return(&domain.RSVPResult{Invitation: inv}, nil)

	body, _ := json.Marshal(dto.RSVPRequest{
		Adults:   []string{"Juan Perez", "Ana Lopez"},
		Children: []dto.ChildGuestRequest{{Name: "Sofía García", Age: 7}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/invitations/GARCIA01/rsvp", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RSVPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Invitation.Status)
	assert.Equal(t, 3, resp.Invitation.ConfirmedPassCount)
	require.Len(t, resp.Invitation.Children, 1)
	assert.Equal(t, "Sofía García (7 años)", resp.Invitation.Children[0].Display)
	assert.Empty(t, resp.Warning)
}

func TestHandler_SubmitRSVP_ForfeitWarning(t *testing.T) {
	_, rsvpSvc, _, r := setupRouter(t)

	inv := &domain.Invitation{
		ID:                 "GARCIA01",
		Confirmed:          true,
		AssignedPasses:     4,
		ConfirmedPassCount: 2,
		Adults:             []string{"Juan Perez", "Ana Lopez"},
	}
	rsvpSvc.EXPECT().Submit(mock.Anything, "GARCIA01", mock.Anything).
		Return(&domain.RSVPResult{Invitation: inv, ForfeitedPasses: 2}, nil)

	body := []byte(`{"adults":["Juan Perez","Ana Lopez"]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/invitations/GARCIA01/rsvp", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RSVPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.ForfeitedPasses)
	assert.NotEmpty(t, resp.Warning)
}

func TestHandler_SubmitRSVP_Decline(t *testing.T) {
	_, rsvpSvc, _, r := setupRouter(t)

	inv := &domain.Invitation{
		ID:             "GARCIA01",
		Confirmed:      true,
		AssignedPasses: 4,
	}
	rsvpSvc.EXPECT().Submit(mock.Anything, "GARCIA01", domain.RSVPInput{Declined: true}).
		Return(&domain.RSVPResult{Invitation: inv}, nil)

	body := []byte(`{"declined":true}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/invitations/GARCIA01/rsvp", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RSVPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "declined", resp.Invitation.Status)
	assert.Equal(t, 0, resp.Invitation.ConfirmedPassCount)
}

func TestHandler_SubmitRSVP_ValidationError(t *testing.T) {
	_, rsvpSvc, _, r := setupRouter(t)

	rsvpSvc.EXPECT().Submit(mock.Anything, "GARCIA01", mock.Anything).
		Return(nil, domain.ErrValidation)

	body := []byte(`{"adults":["Juan"]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/invitations/GARCIA01/rsvp", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SubmitRSVP_ZeroQuota(t *testing.T) {
	_, rsvpSvc, _, r := setupRouter(t)

	rsvpSvc.EXPECT().Submit(mock.Anything, "GARCIA01", mock.Anything).
		Return(nil, domain.ErrNoPassesAssigned)

	body := []byte(`{"adults":["Juan Perez"]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/invitations/GARCIA01/rsvp", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SubmitRSVP_BadJSON(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"adults":`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/invitations/GARCIA01/rsvp", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Admin ---

func TestHandler_CreateInvitation_Success(t *testing.T) {
	invitationSvc, _, _, r := setupRouter(t)

	inv := &domain.Invitation{ID: "GARCIA01", DisplayName: "Familia García", AssignedPasses: 4}
	invitationSvc.EXPECT().Create(mock.Anything, domain.CreateInvitationInput{
		ID:             "GARCIA01",
		DisplayName:    "Familia García",
		AssignedPasses: 4,
	}).Return(inv, nil)

	body, _ := json.Marshal(dto.CreateInvitationRequest{
		ID:             "GARCIA01",
		DisplayName:    "Familia García",
		AssignedPasses: 4,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/invitations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.InvitationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "GARCIA01", resp.ID)
}

func TestHandler_CreateInvitation_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"assigned_passes":4}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/invitations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateInvitation_Duplicate(t *testing.T) {
	invitationSvc, _, _, r := setupRouter(t)

	invitationSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrInvitationExists)

	body := []byte(`{"id":"GARCIA01","display_name":"Familia García","assigned_passes":4}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/invitations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListInvitations(t *testing.T) {
	invitationSvc, _, _, r := setupRouter(t)

	invitations := []*domain.Invitation{
		{ID: "A", DisplayName: "Familia García", AssignedPasses: 4},
		{ID: "B", DisplayName: "Familia Miranda", Confirmed: true, ConfirmedPassCount: 2, AssignedPasses: 2},
	}
	invitationSvc.EXPECT().List(mock.Anything).Return(invitations, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/invitations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.InvitationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "unanswered", resp[0].Status)
	assert.Equal(t, "confirmed", resp[1].Status)
}

func TestHandler_MergeInvitations_Success(t *testing.T) {
	invitationSvc, _, _, r := setupRouter(t)

	survivor := &domain.Invitation{ID: "NEW456", DisplayName: "Familia García", AssignedPasses: 6}
	invitationSvc.EXPECT().Merge(mock.Anything, "OLD123", "NEW456").Return(survivor, nil)

	body := []byte(`{"old_id":"OLD123","new_id":"NEW456"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/invitations/merge", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.InvitationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NEW456", resp.ID)
	assert.Equal(t, 6, resp.AssignedPasses)
}

func TestHandler_MergeInvitations_Conflict(t *testing.T) {
	invitationSvc, _, _, r := setupRouter(t)

	invitationSvc.EXPECT().Merge(mock.Anything, "OLD123", "NEW456").Return(nil, domain.ErrMergeConflict)

	body := []byte(`{"old_id":"OLD123","new_id":"NEW456"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/invitations/merge", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetSummary(t *testing.T) {
	invitationSvc, _, _, r := setupRouter(t)

	summary := &domain.Summary{
		Invitations:     10,
		Confirmed:       4,
		Declined:        2,
		Pending:         4,
		PassesAssigned:  32,
		PassesConfirmed: 11,
	}
	invitationSvc.EXPECT().Summary(mock.Anything).Return(summary, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/summary", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Pending)
	assert.Equal(t, 11, resp.PassesConfirmed)
}
