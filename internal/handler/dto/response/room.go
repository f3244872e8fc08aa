package response

import (
	"hotel-desk/internal/usecase/queries"
)

type RoomResponse struct {
	Number            int32   `json:"number"`
	Description       string  `json:"description"`
	Floor             int32   `json:"floor"`
	TypeDescription   string  `json:"type_description"`
	StatusDescription string  `json:"status_description"`
	CostPerNight      float64 `json:"cost_per_night"`
}

func FromRoomViews(views []*queries.RoomView) ([]RoomResponse, error) {
	return copySlice[RoomResponse](views)
}

type RoomTypeResponse struct {
	Code         string  `json:"code"`
	Description  string  `json:"description"`
	CostPerNight float64 `json:"cost_per_night"`
	Active       bool    `json:"active"`
}

func FromRoomTypeViews(views []*queries.RoomTypeView) ([]RoomTypeResponse, error) {
	return copySlice[RoomTypeResponse](views)
}

type AvailableRoomTypeResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func FromAvailableRoomTypeViews(views []*queries.AvailableRoomTypeView) ([]AvailableRoomTypeResponse, error) {
	return copySlice[AvailableRoomTypeResponse](views)
}

type AvailableRoomResponse struct {
	Number      int32  `json:"number"`
	Description string `json:"description"`
	Floor       int32  `json:"floor"`
	TypeCode    string `json:"type_code"`
}

func FromAvailableRoomViews(views []*queries.AvailableRoomView) ([]AvailableRoomResponse, error) {
	return copySlice[AvailableRoomResponse](views)
}
