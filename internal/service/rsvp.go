package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mgoscar2018/invitaboda/internal/domain"
	"github.com/mgoscar2018/invitaboda/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RSVPService runs the confirmation workflow: resolve the invitation,
// validate the guest rows against the assigned quota and persist the answer
// in one update. Re-submission replaces the previous answer wholesale
// (last write wins).
type RSVPService struct {
	repo     ports.InvitationRepo
	notifier ports.RSVPNotifier
	logger   logger.Logger
}

func NewRSVPService(repo ports.InvitationRepo, notifier ports.RSVPNotifier, logger logger.Logger) *RSVPService {
	return &RSVPService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit records the RSVP for the invitation behind externalID. The id may
// be a retired alias; the write always lands on the effective record.
// Validation failures never reach the repository.
func (s *RSVPService) Submit(ctx context.Context, externalID string, input domain.RSVPInput) (*domain.RSVPResult, error) {
	inv, err := s.repo.Resolve(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("resolve invitation: %w", err)
	}

	if input.Declined {
		return s.decline(ctx, inv, input)
	}
	return s.confirm(ctx, inv, input)
}

func (s *RSVPService) decline(ctx context.Context, inv *domain.Invitation, input domain.RSVPInput) (*domain.RSVPResult, error) {
	if input.TotalGuests() > 0 {
		return nil, fmt.Errorf("%w: a declined response cannot name guests", domain.ErrValidation)
	}

	if err := s.repo.SubmitResponse(ctx, inv.ID, nil, nil, true); err != nil {
		return nil, fmt.Errorf("submit decline: %w", err)
	}
	inv.ApplyResponse(nil, nil, true)

	s.logger.Info("invitation declined",
		logger.String("invitation_id", inv.ID),
	)

	go s.notifier.NotifyDeclined(context.WithoutCancel(ctx), inv)

	return &domain.RSVPResult{Invitation: inv}, nil
}

func (s *RSVPService) confirm(ctx context.Context, inv *domain.Invitation, input domain.RSVPInput) (*domain.RSVPResult, error) {
	if inv.AssignedPasses == 0 {
		return nil, domain.ErrNoPassesAssigned
	}

	total := input.TotalGuests()
	if total == 0 {
		return nil, fmt.Errorf("%w: at least one guest name is required to confirm", domain.ErrValidation)
	}
	if total > inv.AssignedPasses {
		return nil, fmt.Errorf("%w: %d guests exceed the %d assigned passes",
			domain.ErrValidation, total, inv.AssignedPasses)
	}

	adults := make([]string, len(input.Adults))
	for i, name := range input.Adults {
		if err := domain.ValidateGuestName(name); err != nil {
			return nil, err
		}
		adults[i] = strings.TrimSpace(name)
	}

	children := make([]domain.ChildGuest, len(input.Children))
	for i, child := range input.Children {
		if err := domain.ValidateChildGuest(child); err != nil {
			return nil, err
		}
		children[i] = domain.ChildGuest{Name: strings.TrimSpace(child.Name), Age: child.Age}
	}

	if err := s.repo.SubmitResponse(ctx, inv.ID, adults, children, false); err != nil {
		return nil, fmt.Errorf("submit confirmation: %w", err)
	}
	inv.ApplyResponse(adults, children, false)

	s.logger.Info("invitation confirmed",
		logger.String("invitation_id", inv.ID),
		logger.Int("passes", inv.ConfirmedPassCount),
	)

	go s.notifier.NotifyConfirmed(context.WithoutCancel(ctx), inv)

	return &domain.RSVPResult{
		Invitation:      inv,
		ForfeitedPasses: inv.AssignedPasses - total,
	}, nil
}
