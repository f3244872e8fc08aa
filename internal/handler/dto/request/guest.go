package request

import (
	"hotel-desk/internal/pkg/patch"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"
)

type CreateGuestRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

func (r *CreateGuestRequest) ToParams() commands.GuestParams {
	return commands.GuestParams{ID: r.ID, Name: r.Name, Phone: r.Phone}
}

// UpdateGuestRequest replaces both contact fields.
type UpdateGuestRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

func (r *UpdateGuestRequest) ToParams(id string) commands.GuestParams {
	return commands.GuestParams{ID: id, Name: r.Name, Phone: r.Phone}
}

type PatchGuestRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// ToParams fills absent fields from the stored guest.
func (r *PatchGuestRequest) ToParams(existing *queries.GuestView) commands.GuestParams {
	return commands.GuestParams{
		ID:    existing.ID,
		Name:  patch.Coalesce(r.Name, existing.Name),
		Phone: patch.Coalesce(r.Phone, existing.Phone),
	}
}
