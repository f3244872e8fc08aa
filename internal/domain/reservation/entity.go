package reservation

import (
	"errors"
	"strings"
)

var (
	ErrRoomNotSelected = errors.New("must select an available room")
	ErrInvalidGuest    = errors.New("guest id is required")
	ErrInvalidNumber   = errors.New("reservation number must be positive")
)

type Number int64

type Reservation struct {
	number     Number
	roomNumber int32
	guestID    string
	stay       Stay
	status     Status
}

func NewReservation(number Number, roomNumber int32, guestID string, stay Stay) (*Reservation, error) {
	if roomNumber <= 0 {
		return nil, ErrRoomNotSelected
	}
	guestID = strings.TrimSpace(guestID)
	if guestID == "" {
		return nil, ErrInvalidGuest
	}
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	return &Reservation{
		number:     number,
		roomNumber: roomNumber,
		guestID:    guestID,
		stay:       stay,
		status:     StatusActive,
	}, nil
}

func (r *Reservation) Number() Number    { return r.number }
func (r *Reservation) RoomNumber() int32 { return r.roomNumber }
func (r *Reservation) GuestID() string   { return r.guestID }
func (r *Reservation) Stay() Stay        { return r.stay }
func (r *Reservation) Nights() int       { return r.stay.Nights() }
func (r *Reservation) Status() Status    { return r.status }
