package ports

import (
	"context"

	"github.com/mgoscar2018/invitaboda/internal/domain"
)

type RSVPNotifier interface {
	NotifyConfirmed(ctx context.Context, inv *domain.Invitation)
	NotifyDeclined(ctx context.Context, inv *domain.Invitation)
	NotifyPendingDigest(ctx context.Context, summary *domain.Summary)
}
