package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mgoscar2018/invitaboda/internal/domain"
	"github.com/mgoscar2018/invitaboda/internal/scheduler/mocks"
	portmocks "github.com/mgoscar2018/invitaboda/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_SendsDigest(t *testing.T) {
	source := mocks.NewMockSummarySource(t)
	notifier := portmocks.NewMockRSVPNotifier(t)
	log := newTestLogger(t)

	s := New(source, notifier, 50*time.Millisecond, log)

	summary := &domain.Summary{Invitations: 10, Pending: 4, PassesAssigned: 30}
	source.EXPECT().Summary(mock.Anything).Return(summary, nil)
	notifier.EXPECT().NotifyPendingDigest(mock.Anything, summary).Return()

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(source.Calls), 1)
}

func TestScheduler_Tick_QuietWhenNonePending(t *testing.T) {
	source := mocks.NewMockSummarySource(t)
	notifier := portmocks.NewMockRSVPNotifier(t)
	log := newTestLogger(t)

	s := New(source, notifier, 50*time.Millisecond, log)

	source.EXPECT().Summary(mock.Anything).Return(&domain.Summary{Invitations: 10, Pending: 0}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	notifier.AssertNotCalled(t, "NotifyPendingDigest", mock.Anything, mock.Anything)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	source := mocks.NewMockSummarySource(t)
	notifier := portmocks.NewMockRSVPNotifier(t)
	log := newTestLogger(t)

	s := New(source, notifier, 50*time.Millisecond, log)

	source.EXPECT().Summary(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(source.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	source := mocks.NewMockSummarySource(t)
	notifier := portmocks.NewMockRSVPNotifier(t)
	log := newTestLogger(t)

	s := New(source, notifier, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
