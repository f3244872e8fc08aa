package reservation

// Status mirrors reserva.estado. Only Active is ever persisted today:
// cancellation removes the row.
type Status int16

const (
	StatusActive     Status = 0
	StatusRegistered Status = 1
	StatusCancelled  Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusRegistered:
		return "registered"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusRegistered, StatusCancelled:
		return true
	default:
		return false
	}
}
