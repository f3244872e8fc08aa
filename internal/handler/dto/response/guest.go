package response

import (
	"hotel-desk/internal/usecase/queries"
)

type GuestResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func FromGuestView(v *queries.GuestView) *GuestResponse {
	return &GuestResponse{ID: v.ID, Name: v.Name, Phone: v.Phone}
}

func FromGuestViews(views []*queries.GuestView) ([]GuestResponse, error) {
	return copySlice[GuestResponse](views)
}
