package request

import (
	"hotel-desk/internal/usecase/commands"
)

type NewGuestRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// CreateReservationRequest dates are YYYY-MM-DD. NewGuest registers the
// guest in the same transaction when GuestID is not on file.
type CreateReservationRequest struct {
	RoomNumber int32            `json:"room_number"`
	GuestID    string           `json:"guest_id" binding:"required"`
	StartDate  string           `json:"start_date" binding:"required"`
	EndDate    string           `json:"end_date" binding:"required"`
	NewGuest   *NewGuestRequest `json:"new_guest"`
}

func (r *CreateReservationRequest) ToParams() commands.CreateReservationParams {
	params := commands.CreateReservationParams{
		RoomNumber: r.RoomNumber,
		GuestID:    r.GuestID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
	if r.NewGuest != nil {
		params.NewGuest = &commands.NewGuestDetails{
			Name:  r.NewGuest.Name,
			Phone: r.NewGuest.Phone,
		}
	}
	return params
}

type AvailabilityQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
	Type  string `form:"type" binding:"required"`
}
