package response

import (
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"
)

type ReservationResponse struct {
	Number       int64  `json:"number"`
	RoomNumber   int32  `json:"room_number"`
	RoomTypeCode string `json:"room_type_code"`
	GuestID      string `json:"guest_id"`
	GuestName    string `json:"guest_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Nights       int32  `json:"nights"`
	Status       string `json:"status"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	res, err := copyInto[ReservationResponse](v)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

type ReservationCreatedResponse struct {
	Number     int64  `json:"number"`
	RoomNumber int32  `json:"room_number"`
	GuestID    string `json:"guest_id"`
}

func FromCreateResult(r *commands.CreateReservationResult) *ReservationCreatedResponse {
	return &ReservationCreatedResponse{
		Number:     r.Number,
		RoomNumber: r.RoomNumber,
		GuestID:    r.GuestID,
	}
}

type GuestReservationResponse struct {
	Number     int64  `json:"number"`
	RoomNumber int32  `json:"room_number"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Nights     int32  `json:"nights"`
}

func FromGuestReservationItems(items []*queries.GuestReservationItem) ([]GuestReservationResponse, error) {
	return copySlice[GuestReservationResponse](items)
}

type NextNumberResponse struct {
	Number int64 `json:"number"`
}
