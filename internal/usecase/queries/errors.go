package queries

import (
	"hotel-desk/internal/pkg/errs"
)

var (
	ErrRoomTypeRequired    = errs.NewKind("room type code is required", errs.ErrValidation)
	ErrInvalidDateRange    = errs.NewKind("end date must not be before start date", errs.ErrValidation)
	ErrInvalidSearchDate   = errs.NewKind("dates must be formatted as YYYY-MM-DD", errs.ErrValidation)
	ErrGuestIDRequired     = errs.NewKind("guest id is required for lookup", errs.ErrValidation)
	ErrGuestNotFound       = errs.NewKind("guest does not exist", errs.ErrNotFound)
	ErrReservationNotFound = errs.NewKind("reservation does not exist", errs.ErrNotFound)
	ErrInvalidNumber       = errs.NewKind("reservation number must be a positive integer", errs.ErrValidation)
)

// asStorage tags uncategorized read store failures as storage errors.
func asStorage(err error) error {
	if err == nil || errs.Category(err) != nil {
		return err
	}
	return errs.Mark(err, errs.ErrStorage)
}
