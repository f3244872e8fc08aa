package commands

import (
	"hotel-desk/internal/pkg/errs"
)

var (
	ErrInvalidParams            = errs.NewKind("invalid parameters", errs.ErrValidation)
	ErrRoomNotSelected          = errs.NewKind("must select an available room", errs.ErrValidation)
	ErrInvalidStay              = errs.NewKind("invalid stay dates", errs.ErrValidation)
	ErrInvalidGuest             = errs.NewKind("invalid guest data", errs.ErrValidation)
	ErrInvalidReservationNumber = errs.NewKind("invalid reservation number", errs.ErrValidation)
	ErrDuplicateGuest           = errs.NewKind("guest already exists", errs.ErrDuplicate)
	ErrDuplicateReservation     = errs.NewKind("reservation number already taken", errs.ErrDuplicate)
	ErrRoomNotFound             = errs.NewKind("room not found", errs.ErrNotFound)
	ErrGuestNotFound            = errs.NewKind("guest not found", errs.ErrNotFound)
	ErrReservationNotFound      = errs.NewKind("reservation not found", errs.ErrNotFound)
	ErrRoomUnavailable          = errs.NewKind("room is not available for the requested dates", errs.ErrConflict)
	ErrGuestHasReservations     = errs.NewKind("guest still has reservations", errs.ErrConflict)
)

// asStorage tags uncategorized failures as storage errors.
func asStorage(err error) error {
	if err == nil || errs.Category(err) != nil {
		return err
	}
	return errs.Mark(err, errs.ErrStorage)
}

// invalid wraps a domain validation error under a category sentinel, keeping its message.
func invalid(sentinel, cause error) error {
	return errs.Wrap(sentinel, cause.Error())
}
