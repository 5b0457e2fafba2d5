package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvitation_Status(t *testing.T) {
	assert.Equal(t, StatusUnanswered, (&Invitation{}).Status())
	assert.Equal(t, StatusDeclined, (&Invitation{Confirmed: true}).Status())
	assert.Equal(t, StatusConfirmed, (&Invitation{Confirmed: true, ConfirmedPassCount: 2}).Status())
}

func TestApplyResponse_Declined_WipesPriorAnswer(t *testing.T) {
	inv := &Invitation{
		ID:                 "ABC",
		Confirmed:          true,
		AssignedPasses:     4,
		ConfirmedPassCount: 3,
		Adults:             []string{"Juan Perez"},
		Children:           []ChildGuest{{Name: "Sofía García", Age: 7}},
	}

	inv.ApplyResponse(nil, nil, true)

	assert.True(t, inv.Confirmed)
	assert.Equal(t, 0, inv.ConfirmedPassCount)
	assert.Empty(t, inv.Adults)
	assert.Empty(t, inv.Children)
	assert.Equal(t, StatusDeclined, inv.Status())
}

func TestApplyResponse_Confirmed_ReplacesWholesale(t *testing.T) {
	inv := &Invitation{
		ID:             "ABC",
		AssignedPasses: 3,
		Adults:         []string{"Old Name"},
	}

	inv.ApplyResponse([]string{"Juan Perez", "Ana Lopez"}, nil, false)

	assert.True(t, inv.Confirmed)
	assert.Equal(t, 2, inv.ConfirmedPassCount)
	assert.Equal(t, []string{"Juan Perez", "Ana Lopez"}, inv.Adults)
	assert.Empty(t, inv.Children)
}

func TestApplyResponse_IdempotentInShape(t *testing.T) {
	adults := []string{"Juan Perez"}
	children := []ChildGuest{{Name: "Sofía García", Age: 7}}

	once := &Invitation{ID: "ABC", AssignedPasses: 3}
	once.ApplyResponse(adults, children, false)

	twice := &Invitation{ID: "ABC", AssignedPasses: 3}
	twice.ApplyResponse(adults, children, false)
	twice.ApplyResponse(adults, children, false)

	assert.Equal(t, once, twice)
}

func TestRSVPInput_TotalGuests(t *testing.T) {
	in := RSVPInput{
		Adults:   []string{"Juan Perez", "Ana Lopez"},
		Children: []ChildGuest{{Name: "Sofía García", Age: 7}},
	}
	assert.Equal(t, 3, in.TotalGuests())
	assert.Equal(t, 0, RSVPInput{}.TotalGuests())
}
