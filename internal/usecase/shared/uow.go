package shared

import (
	"context"
	"time"

	"hotel-desk/internal/domain/guest"
	"hotel-desk/internal/domain/reservation"
	"hotel-desk/internal/domain/room"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one open transaction.
type Tx interface {
	Rooms() RoomRepository
	Guests() GuestRepository
	Reservations() ReservationRepository
	Reads() CommandReads
}

type CommandReads interface {
	GuestByID(ctx context.Context, id string) (*GuestSnapshot, error)
}

type RoomRepository interface {
	// LockForUpdate holds the row lock until the transaction ends.
	LockForUpdate(ctx context.Context, number int32) (*room.Room, error)
	SetStatus(ctx context.Context, number int32, status room.Status) error
	ReleaseIdle(ctx context.Context, today time.Time) (int64, error)
}

type GuestRepository interface {
	Create(ctx context.Context, g *guest.Guest) error
	Update(ctx context.Context, g *guest.Guest) error
	Delete(ctx context.Context, id guest.ID) error
}

type ReservationRepository interface {
	// LockLedger serializes number assignment until the transaction ends.
	LockLedger(ctx context.Context) error
	NextNumber(ctx context.Context) (reservation.Number, error)
	Create(ctx context.Context, res *reservation.Reservation) (reservation.Number, error)
	// Delete returns the room number the reservation was holding.
	Delete(ctx context.Context, number reservation.Number) (int32, error)
	ActiveStaysForRoom(ctx context.Context, roomNumber int32) ([]reservation.Stay, error)
	CountActiveForRoom(ctx context.Context, roomNumber int32, today time.Time) (int64, error)
}
