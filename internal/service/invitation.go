package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mgoscar2018/invitaboda/internal/domain"
	"github.com/mgoscar2018/invitaboda/internal/service/ports"
)

type InvitationService struct {
	repo ports.InvitationRepo
}

func NewInvitationService(repo ports.InvitationRepo) *InvitationService {
	return &InvitationService{repo: repo}
}

// Resolve follows the alias indirection in the repository; the caller gets
// back the record under its effective id.
func (s *InvitationService) Resolve(ctx context.Context, externalID string) (*domain.Invitation, error) {
	return s.repo.Resolve(ctx, externalID)
}

func (s *InvitationService) Create(ctx context.Context, input domain.CreateInvitationInput) (*domain.Invitation, error) {
	name := strings.TrimSpace(input.DisplayName)
	if name == "" {
		return nil, fmt.Errorf("%w: display_name is required", domain.ErrValidation)
	}
	if input.AssignedPasses < 0 {
		return nil, fmt.Errorf("%w: assigned_passes must not be negative", domain.ErrValidation)
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.New().String()
	}

	inv := &domain.Invitation{
		ID:             id,
		DisplayName:    name,
		Confirmed:      false,
		AssignedPasses: input.AssignedPasses,
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}

	return inv, nil
}

func (s *InvitationService) List(ctx context.Context) ([]*domain.Invitation, error) {
	return s.repo.List(ctx)
}

// Merge fuses the invitation oldID into newID and resolves the surviving
// record afterwards so the caller sees the grown pass quota.
func (s *InvitationService) Merge(ctx context.Context, oldID, newID string) (*domain.Invitation, error) {
	oldID = strings.TrimSpace(oldID)
	newID = strings.TrimSpace(newID)
	if oldID == "" || newID == "" {
		return nil, fmt.Errorf("%w: both invitation ids are required", domain.ErrValidation)
	}
	if oldID == newID {
		return nil, fmt.Errorf("%w: cannot merge an invitation into itself", domain.ErrValidation)
	}

	if err := s.repo.Merge(ctx, oldID, newID); err != nil {
		return nil, fmt.Errorf("merge invitations: %w", err)
	}

	return s.repo.Resolve(ctx, newID)
}

func (s *InvitationService) Summary(ctx context.Context) (*domain.Summary, error) {
	return s.repo.Summary(ctx)
}
