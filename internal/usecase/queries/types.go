package queries

import (
	"time"
)

// RoomView is one line of the room overview.
type RoomView struct {
	Number            int32   `json:"number"`
	Description       string  `json:"description"`
	Floor             int32   `json:"floor"`
	TypeDescription   string  `json:"type_description"`
	StatusDescription string  `json:"status_description"`
	CostPerNight      float64 `json:"cost_per_night"`
}

type RoomTypeView struct {
	Code         string  `json:"code"`
	Description  string  `json:"description"`
	CostPerNight float64 `json:"cost_per_night"`
	Active       bool    `json:"active"`
}

// AvailableRoomTypeView is a type with at least one room in Available status.
type AvailableRoomTypeView struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type AvailableRoomView struct {
	Number      int32  `json:"number"`
	Description string `json:"description"`
	Floor       int32  `json:"floor"`
	TypeCode    string `json:"type_code"`
}

type GuestView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ReservationView struct {
	Number       int64     `json:"number"`
	RoomNumber   int32     `json:"room_number"`
	RoomTypeCode string    `json:"room_type_code"`
	GuestID      string    `json:"guest_id"`
	GuestName    string    `json:"guest_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Nights       int32     `json:"nights"`
	Status       string    `json:"status"`
}

type GuestReservationItem struct {
	Number     int64     `json:"number"`
	RoomNumber int32     `json:"room_number"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Nights     int32     `json:"nights"`
}
