package room

import "strconv"

// Status mirrors estados_h.codestado.
type Status int16

const (
	StatusAvailable Status = 1
	StatusReserved  Status = 2
	StatusOccupied  Status = 3
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusOccupied:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusReserved:
		return "reserved"
	case StatusOccupied:
		return "occupied"
	default:
		return "unknown(" + strconv.Itoa(int(s)) + ")"
	}
}
