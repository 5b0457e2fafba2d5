package ports

import (
	"context"

	"github.com/mgoscar2018/invitaboda/internal/domain"
)

type InvitationRepo interface {
	Create(ctx context.Context, inv *domain.Invitation) error
	Resolve(ctx context.Context, externalID string) (*domain.Invitation, error)
	SubmitResponse(ctx context.Context, id string, adults []string, children []domain.ChildGuest, declined bool) error
	List(ctx context.Context) ([]*domain.Invitation, error)
	Merge(ctx context.Context, oldID, newID string) error
	Summary(ctx context.Context) (*domain.Summary, error)
}
