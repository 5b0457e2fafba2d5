package dto

type RSVPRequest struct {
	Declined bool                `json:"declined"`
	Adults   []string            `json:"adults"`
	Children []ChildGuestRequest `json:"children"`
}

type ChildGuestRequest struct {
	Name string `json:"name" binding:"required"`
	Age  int    `json:"age"  binding:"required"`
}

type CreateInvitationRequest struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"    binding:"required"`
	AssignedPasses int    `json:"assigned_passes" binding:"min=0"`
}

type MergeInvitationsRequest struct {
	OldID string `json:"old_id" binding:"required"`
	NewID string `json:"new_id" binding:"required"`
}
