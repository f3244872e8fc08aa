package queries

import (
	"context"
	"strings"

	"hotel-desk/internal/infra"
)

type ReservationReadStore interface {
	NextNumber(ctx context.Context) (int64, error)
	FindByNumber(ctx context.Context, number int64) (*ReservationView, error)
	FindByGuest(ctx context.Context, guestID string) ([]*GuestReservationItem, error)
}

type ReservationQueries interface {
	// NextNumber previews the number the next reservation would get. It takes no lock.
	NextNumber(ctx context.Context) (int64, error)
	GetByNumber(ctx context.Context, number int64) (*ReservationView, error)
	GuestReservations(ctx context.Context, guestID string) ([]*GuestReservationItem, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) NextNumber(ctx context.Context) (int64, error) {
	n, err := q.store.NextNumber(ctx)
	if err != nil {
		return 0, asStorage(err)
	}
	return n, nil
}

func (q *reservationQueriesImpl) GetByNumber(ctx context.Context, number int64) (*ReservationView, error) {
	if number <= 0 {
		return nil, ErrInvalidNumber
	}

	rv, err := q.store.FindByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, asStorage(err)
	}
	return rv, nil
}

// GuestReservations lists by ascending number; an unknown guest yields an empty list.
func (q *reservationQueriesImpl) GuestReservations(ctx context.Context, guestID string) ([]*GuestReservationItem, error) {
	guestID = strings.TrimSpace(guestID)
	if guestID == "" {
		return nil, ErrGuestIDRequired
	}
	items, err := q.store.FindByGuest(ctx, guestID)
	if err != nil {
		return nil, asStorage(err)
	}
	return items, nil
}
