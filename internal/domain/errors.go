package domain

import "errors"

var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrAliasNotFound      = errors.New("alias not found")
	ErrInvitationExists   = errors.New("invitation already exists")
)

var (
	ErrNoPassesAssigned = errors.New("no passes assigned to this invitation")
	ErrMergeConflict    = errors.New("invitations cannot be merged")
)

var (
	ErrValidation = errors.New("validation error")
)
