package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mgoscar2018/invitaboda/internal/domain"
	"github.com/mgoscar2018/invitaboda/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type InvitationSvc interface {
	Resolve(ctx context.Context, externalID string) (*domain.Invitation, error)
	Create(ctx context.Context, input domain.CreateInvitationInput) (*domain.Invitation, error)
	List(ctx context.Context) ([]*domain.Invitation, error)
	Merge(ctx context.Context, oldID, newID string) (*domain.Invitation, error)
	Summary(ctx context.Context) (*domain.Summary, error)
}

type RSVPSvc interface {
	Submit(ctx context.Context, externalID string, input domain.RSVPInput) (*domain.RSVPResult, error)
}

type ContentSvc interface {
	Wedding() domain.WeddingInfo
}

type Handler struct {
	invitationService InvitationSvc
	rsvpService       RSVPSvc
	contentService    ContentSvc
}

func NewHandler(invitationService InvitationSvc, rsvpService RSVPSvc, contentService ContentSvc) *Handler {
	return &Handler{
		invitationService: invitationService,
		rsvpService:       rsvpService,
		contentService:    contentService,
	}
}

// Wedding page content

func (h *Handler) GetWedding(c *ginext.Context) {
	info := h.contentService.Wedding()
	c.JSON(http.StatusOK, dto.ToWeddingResponse(info, time.Now()))
}

// Invitations

func (h *Handler) GetInvitation(c *ginext.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invitation id is required"})
		return
	}

	inv, err := h.invitationService.Resolve(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationResponse(inv))
}

func (h *Handler) SubmitRSVP(c *ginext.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invitation id is required"})
		return
	}

	var req dto.RSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RSVPInput{
		Declined: req.Declined,
		Adults:   req.Adults,
	}
	for _, child := range req.Children {
		input.Children = append(input.Children, domain.ChildGuest{Name: child.Name, Age: child.Age})
	}

	result, err := h.rsvpService.Submit(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRSVPResponse(result))
}

// Admin

func (h *Handler) CreateInvitation(c *ginext.Context) {
	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateInvitationInput{
		ID:             req.ID,
		DisplayName:    req.DisplayName,
		AssignedPasses: req.AssignedPasses,
	}

	inv, err := h.invitationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvitationResponse(inv))
}

func (h *Handler) ListInvitations(c *ginext.Context) {
	invitations, err := h.invitationService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		resp = append(resp, dto.ToInvitationResponse(inv))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) MergeInvitations(c *ginext.Context) {
	var req dto.MergeInvitationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	inv, err := h.invitationService.Merge(c.Request.Context(), req.OldID, req.NewID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationResponse(inv))
}

func (h *Handler) GetSummary(c *ginext.Context) {
	summary, err := h.invitationService.Summary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrInvitationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoPassesAssigned),
		errors.Is(err, domain.ErrInvitationExists),
		errors.Is(err, domain.ErrMergeConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
