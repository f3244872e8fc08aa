package shared

// GuestSnapshot keeps command handlers independent of query view types.
type GuestSnapshot struct {
	ID    string
	Name  string
	Phone string
}
