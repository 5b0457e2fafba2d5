package scheduler

import (
	"context"
	"time"

	"github.com/mgoscar2018/invitaboda/internal/domain"
	"github.com/mgoscar2018/invitaboda/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type summarySource interface {
	Summary(ctx context.Context) (*domain.Summary, error)
}

// Scheduler periodically sends the couple a digest of invitations still
// waiting for an answer. Quiet when everyone has responded.
type Scheduler struct {
	source   summarySource
	notifier ports.RSVPNotifier
	interval time.Duration
	logger   logger.Logger
}

func New(
	source summarySource,
	notifier ports.RSVPNotifier,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		source:   source,
		notifier: notifier,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	summary, err := s.source.Summary(ctx)
	if err != nil {
		s.logger.Error("failed to collect rsvp summary",
			logger.String("error", err.Error()),
		)
		return
	}

	if summary.Pending == 0 {
		return
	}

	s.logger.Info("pending rsvp digest",
		logger.Int("pending", summary.Pending),
		logger.Int("confirmed", summary.Confirmed),
		logger.Int("declined", summary.Declined),
	)

	s.notifier.NotifyPendingDigest(ctx, summary)
}
