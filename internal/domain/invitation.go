package domain

import "time"

type ResponseStatus string

const (
	StatusUnanswered ResponseStatus = "unanswered"
	StatusConfirmed  ResponseStatus = "confirmed"
	StatusDeclined   ResponseStatus = "declined"
)

// Invitation is one RSVP unit: a household or a single guest, identified by
// an opaque code distributed with the invitation link.
type Invitation struct {
	ID                 string       `json:"id"`
	DisplayName        string       `json:"display_name"`
	Confirmed          bool         `json:"confirmed"`
	AssignedPasses     int          `json:"assigned_passes"`
	ConfirmedPassCount int          `json:"confirmed_pass_count"`
	Adults             []string     `json:"adults"`
	Children           []ChildGuest `json:"children"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// ChildGuest keeps name and age as separate fields; the "Nombre (N años)"
// string is assembled at the presentation layer only.
type ChildGuest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Alias points a retired invitation code at the surviving record after two
// invitations were fused. Old links keep working through it.
type Alias struct {
	OldID string `json:"old_id"`
	NewID string `json:"new_id"`
}

// Status derives the response state: a confirmed record with zero passes is
// a decline, not an unanswered invitation.
func (i *Invitation) Status() ResponseStatus {
	switch {
	case !i.Confirmed:
		return StatusUnanswered
	case i.ConfirmedPassCount == 0:
		return StatusDeclined
	default:
		return StatusConfirmed
	}
}

// ApplyResponse records an RSVP on the invitation. Previous answers are
// replaced wholesale, never merged, so re-applying the same response leaves
// the record unchanged.
func (i *Invitation) ApplyResponse(adults []string, children []ChildGuest, declined bool) {
	i.Confirmed = true
	if declined {
		i.ConfirmedPassCount = 0
		i.Adults = nil
		i.Children = nil
		return
	}
	i.ConfirmedPassCount = len(adults) + len(children)
	i.Adults = adults
	i.Children = children
}

type CreateInvitationInput struct {
	ID             string
	DisplayName    string
	AssignedPasses int
}

// RSVPInput is a single submission attempt. Declined is mutually exclusive
// with naming any guests.
type RSVPInput struct {
	Declined bool
	Adults   []string
	Children []ChildGuest
}

// TotalGuests counts every named guest, adult or child.
func (in RSVPInput) TotalGuests() int {
	return len(in.Adults) + len(in.Children)
}

// RSVPResult is what a successful submission reports back: the updated
// record and how many assigned passes went unused.
type RSVPResult struct {
	Invitation      *Invitation
	ForfeitedPasses int
}

// Summary aggregates response progress across all invitations.
type Summary struct {
	Invitations     int `json:"invitations"`
	Confirmed       int `json:"confirmed"`
	Declined        int `json:"declined"`
	Pending         int `json:"pending"`
	PassesAssigned  int `json:"passes_assigned"`
	PassesConfirmed int `json:"passes_confirmed"`
}
