package commands

import (
	"context"
	"log/slog"

	"hotel-desk/internal/domain/guest"
	"hotel-desk/internal/domain/reservation"
	"hotel-desk/internal/domain/room"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/pkg/clock"
	"hotel-desk/internal/usecase/shared"
)

// NewGuestDetails registers the guest inline when GuestID is unknown.
type NewGuestDetails struct {
	Name  string `validate:"required"`
	Phone string `validate:"required,numeric,min=10,max=20"`
}

type CreateReservationParams struct {
	RoomNumber int32
	GuestID    string `validate:"required,numeric,max=20"`
	StartDate  string `validate:"required,datetime=2006-01-02"`
	EndDate    string `validate:"required,datetime=2006-01-02"`
	NewGuest   *NewGuestDetails
}

type CreateReservationResult struct {
	Number     int64
	RoomNumber int32
	GuestID    string
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams) (*CreateReservationResult, error)
	Cancel(ctx context.Context, number int64) error
}

type reservationCommandsImpl struct {
	uow    shared.UnitOfWork
	policy reservation.Policy
	clock  clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, policy reservation.Policy, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, policy: policy, clock: clk}
}

// Create books the room, assigns the next number and marks the room Reserved
// in one transaction. The room row lock serializes bookings of the same room
// and the ledger lock serializes number assignment.
func (uc *reservationCommandsImpl) Create(ctx context.Context, params CreateReservationParams) (*CreateReservationResult, error) {
	if params.RoomNumber <= 0 {
		return nil, ErrRoomNotSelected
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}

	stay, err := reservation.ParseStay(params.StartDate, params.EndDate)
	if err != nil {
		return nil, invalid(ErrInvalidStay, err)
	}
	guestID, err := guest.NewID(params.GuestID)
	if err != nil {
		return nil, invalid(ErrInvalidGuest, err)
	}

	var newGuest *guest.Guest
	if params.NewGuest != nil {
		if err := validateParams(params.NewGuest); err != nil {
			return nil, err
		}
		newGuest, err = guest.NewGuest(guestID.Value(), params.NewGuest.Name, params.NewGuest.Phone)
		if err != nil {
			return nil, invalid(ErrInvalidGuest, err)
		}
	}

	var number reservation.Number
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().LockForUpdate(ctx, params.RoomNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return asStorage(err)
		}

		if err := uc.ensureGuest(ctx, tx, guestID, newGuest); err != nil {
			return err
		}

		if !rm.IsAvailable() {
			return ErrRoomUnavailable
		}
		stays, err := tx.Reservations().ActiveStaysForRoom(ctx, rm.Number())
		if err != nil {
			return asStorage(err)
		}
		if uc.policy.FirstConflict(stays, stay) >= 0 {
			return ErrRoomUnavailable
		}

		if err := tx.Reservations().LockLedger(ctx); err != nil {
			return asStorage(err)
		}
		next, err := tx.Reservations().NextNumber(ctx)
		if err != nil {
			return asStorage(err)
		}

		res, err := reservation.NewReservation(next, rm.Number(), guestID.Value(), stay)
		if err != nil {
			return invalid(ErrInvalidParams, err)
		}
		number, err = tx.Reservations().Create(ctx, res)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateReservation
			}
			return asStorage(err)
		}

		if err := tx.Rooms().SetStatus(ctx, rm.Number(), room.StatusReserved); err != nil {
			return asStorage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "reservation created",
		"reservation", int64(number),
		"room", params.RoomNumber,
		"guest", guestID.Value())

	return &CreateReservationResult{
		Number:     int64(number),
		RoomNumber: params.RoomNumber,
		GuestID:    guestID.Value(),
	}, nil
}

func (uc *reservationCommandsImpl) ensureGuest(ctx context.Context, tx shared.Tx, id guest.ID, newGuest *guest.Guest) error {
	_, err := tx.Reads().GuestByID(ctx, id.Value())
	if err == nil {
		return nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return asStorage(err)
	}
	if newGuest == nil {
		return ErrGuestNotFound
	}

	if err := tx.Guests().Create(ctx, newGuest); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrDuplicateGuest
		}
		return asStorage(err)
	}
	return nil
}

// Cancel deletes the reservation and frees the room once no other active
// reservation on it runs past today, matching the idle-room reconciler.
func (uc *reservationCommandsImpl) Cancel(ctx context.Context, number int64) error {
	if number <= 0 {
		return ErrInvalidReservationNumber
	}

	today := clock.Today(uc.clock)
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		roomNumber, err := tx.Reservations().Delete(ctx, reservation.Number(number))
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return asStorage(err)
		}

		remaining, err := tx.Reservations().CountActiveForRoom(ctx, roomNumber, today)
		if err != nil {
			return asStorage(err)
		}
		if remaining > 0 {
			return nil
		}

		if err := tx.Rooms().SetStatus(ctx, roomNumber, room.StatusAvailable); err != nil {
			return asStorage(err)
		}
		slog.InfoContext(ctx, "room released after cancellation", "reservation", number, "room", roomNumber)
		return nil
	})
}
