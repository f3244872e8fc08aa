package room

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRoomNumber = errors.New("invalid room number")
	ErrInvalidStatus     = errors.New("invalid room status")
	ErrInvalidRoomType   = errors.New("invalid room type code")
)

// Room carries its type as a code; Doble/Triple/Cuadruple differ only in data.
type Room struct {
	number      int32
	description string
	floor       int32
	typeCode    string
	status      Status
}

func NewRoom(number int32, description string, floor int32, typeCode string, status Status) (*Room, error) {
	if number <= 0 {
		return nil, ErrInvalidRoomNumber
	}
	typeCode = strings.TrimSpace(typeCode)
	if typeCode == "" {
		return nil, ErrInvalidRoomType
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Room{
		number:      number,
		description: description,
		floor:       floor,
		typeCode:    typeCode,
		status:      status,
	}, nil
}

func (r *Room) IsAvailable() bool {
	return r.status == StatusAvailable
}

func (r *Room) Number() int32       { return r.number }
func (r *Room) Description() string { return r.description }
func (r *Room) Floor() int32        { return r.floor }
func (r *Room) TypeCode() string    { return r.typeCode }
func (r *Room) Status() Status      { return r.status }

type RoomType struct {
	Code         string
	Description  string
	CostPerNight float64
	Active       bool
}
