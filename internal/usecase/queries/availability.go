package queries

import (
	"context"
	"strings"
	"time"

	"hotel-desk/internal/domain/reservation"
	"hotel-desk/internal/pkg/errs"
)

type AvailabilityReadStore interface {
	RoomTypesWithAvailability(ctx context.Context) ([]*AvailableRoomTypeView, error)
	AvailableRooms(ctx context.Context, policy reservation.Policy, typeCode string, start, end time.Time) ([]*AvailableRoomView, error)
}

type AvailabilityQueries interface {
	RoomTypesWithAvailability(ctx context.Context) ([]*AvailableRoomTypeView, error)
	AvailableRooms(ctx context.Context, startDate, endDate, typeCode string) ([]*AvailableRoomView, error)
}

type availabilityQueriesImpl struct {
	store  AvailabilityReadStore
	policy reservation.Policy
}

func NewAvailabilityQueries(store AvailabilityReadStore, policy reservation.Policy) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, policy: policy}
}

func (q *availabilityQueriesImpl) RoomTypesWithAvailability(ctx context.Context) ([]*AvailableRoomTypeView, error) {
	types, err := q.store.RoomTypesWithAvailability(ctx)
	if err != nil {
		return nil, asStorage(err)
	}
	return types, nil
}

// AvailableRooms accepts a single-day range (start == end).
func (q *availabilityQueriesImpl) AvailableRooms(ctx context.Context, startDate, endDate, typeCode string) ([]*AvailableRoomView, error) {
	typeCode = strings.TrimSpace(typeCode)
	if typeCode == "" {
		return nil, ErrRoomTypeRequired
	}

	start, err := reservation.ParseDate(startDate)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidSearchDate, err.Error())
	}
	end, err := reservation.ParseDate(endDate)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidSearchDate, err.Error())
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	if q.policy == reservation.PolicyOverlap && end.Equal(start) {
		// a half-open range needs at least one night
		end = end.AddDate(0, 0, 1)
	}

	rooms, err := q.store.AvailableRooms(ctx, q.policy, typeCode, start, end)
	if err != nil {
		return nil, asStorage(err)
	}
	return rooms, nil
}
