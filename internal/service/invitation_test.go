package service

import (
	"context"
	"testing"

	"github.com/mgoscar2018/invitaboda/internal/domain"
	"github.com/mgoscar2018/invitaboda/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInvitationService_Resolve_Direct(t *testing.T) {
	repo := mocks.NewMockInvitationRepo(t)
	svc := NewInvitationService(repo)

	inv := &domain.Invitation{ID: "ABC", DisplayName: "Familia García", AssignedPasses: 4}
	repo.EXPECT().Resolve(mock.Anything, "ABC").Return(inv, nil)

	got, err := svc.Resolve(context.Background(), "ABC")

	require.NoError(t, err)
	assert.Equal(t, inv, got)
}

func TestInvitationService_Resolve_NotFound(t *testing.T) {
	repo := mocks.NewMockInvitationRepo(t)
	svc := NewInvitationService(repo)

	repo.EXPECT().Resolve(mock.Anything, "missing").Return(nil, domain.ErrInvitationNotFound)

	_, err := svc.Resolve(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
}

func TestInvitationService_Create_Success(t *testing.T) {
	repo := mocks.NewMockInvitationRepo(t)
	svc := NewInvitationService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	inv, err := svc.Create(context.Background(), domain.CreateInvitationInput{
		ID:             "GARCIA01",
		DisplayName:    "Familia García",
		AssignedPasses: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, "GARCIA01", inv.ID)
	assert.Equal(t, "Familia García", inv.DisplayName)
	assert.Equal(t, 4, inv.AssignedPasses)
	assert.False(t, inv.Confirmed)
	assert.Equal(t, domain.StatusUnanswered, inv.Status())
}

func TestInvitationService_Create_GeneratesID(t *testing.T) {
	repo := mocks.NewMockInvitationRepo(t)
	svc := NewInvitationService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	inv, err := svc.Create(context.Background(), domain.CreateInvitationInput{
		DisplayName:    "Familia Miranda",
		AssignedPasses: 2,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, inv.ID)
}

func TestInvitationService_Create_MissingName(t *testing.T) {
	repo := mocks.NewMockInvitationRepo(t)
	svc := NewInvitationService(repo)

	_, err := svc.Create(context.Background(), domain.CreateInvitationInput{
		DisplayName:    "   ",
		AssignedPasses: 2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvitationService_Create_NegativePasses(t *testing.T) {
	repo := mocks.NewMockInvitationRepo(t)
	svc := NewInvitationService(repo)

	_, err := svc.Create(context.Background(), domain.CreateInvitationInput{
		DisplayName:    "Familia Miranda",
		AssignedPasses: -1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvitationService_Create_Duplicate(t *testing.T) {
	repo := mocks.NewMockInvitationRepo(t)
	svc := NewInvitationService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrInvitationExists)

	_, err := svc.Create(context.Background(), domain.CreateInvitationInput{
		ID:             "GARCIA01",
		DisplayName:    "Familia García",
		AssignedPasses: 4,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvitationExists)
}

func TestInvitationService_Merge_Success(t *testing.T) {
	repo := mocks.NewMockInvitationRepo(t)
	svc := NewInvitationService(repo)

	survivor := &domain.Invitation{ID: "NEW456", DisplayName: "Familia García", AssignedPasses: 6}
	repo.EXPECT().Merge(mock.Anything, "OLD123", "NEW456").Return(nil)
	repo.EXPECT().Resolve(mock.Anything, "NEW456").Return(survivor, nil)

	inv, err := svc.Merge(context.Background(), "OLD123", "NEW456")

	require.NoError(t, err)
	assert.Equal(t, "NEW456", inv.ID)
	assert.Equal(t, 6, inv.AssignedPasses)
}

func TestInvitationService_Merge_SameID(t *testing.T) {
	repo := mocks.NewMockInvitationRepo(t)
	svc := NewInvitationService(repo)

	_, err := svc.Merge(context.Background(), "ABC", "ABC")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvitationService_Merge_MissingID(t *testing.T) {
	repo := mocks.NewMockInvitationRepo(t)
	svc := NewInvitationService(repo)

	_, err := svc.Merge(context.Background(), " ", "NEW456")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvitationService_Merge_Conflict(t *testing.T) {
	repo := mocks.NewMockInvitationRepo(t)
	svc := NewInvitationService(repo)

	repo.EXPECT().Merge(mock.Anything, "OLD123", "NEW456").Return(domain.ErrMergeConflict)

	_, err := svc.Merge(context.Background(), "OLD123", "NEW456")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMergeConflict)
}

func TestInvitationService_List(t *testing.T) {
	repo := mocks.NewMockInvitationRepo(t)
	svc := NewInvitationService(repo)

	invitations := []*domain.Invitation{
		{ID: "A", DisplayName: "Familia García"},
		{ID: "B", DisplayName: "Familia Miranda"},
	}
	repo.EXPECT().List(mock.Anything).Return(invitations, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestInvitationService_Summary(t *testing.T) {
	repo := mocks.NewMockInvitationRepo(t)
	svc := NewInvitationService(repo)

	summary := &domain.Summary{Invitations: 10, Confirmed: 4, Declined: 2, Pending: 4}
	repo.EXPECT().Summary(mock.Anything).Return(summary, nil)

	got, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, got.Pending)
}
