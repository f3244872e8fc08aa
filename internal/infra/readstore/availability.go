package readstore

import (
	"context"
	"time"

	"hotel-desk/internal/domain/reservation"
	"hotel-desk/internal/infra"
	sqlc "hotel-desk/internal/infra/sqlc/generated"
	"hotel-desk/internal/pkg/pgconv"
	"hotel-desk/internal/usecase/queries"
)

type AvailabilityReadQueries interface {
	ListRoomTypesWithAvailability(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListRoomTypesWithAvailabilityRow, error)
	ListAvailableRoomsContainment(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableRoomsContainmentParams) ([]sqlc.Habitaciones, error)
	ListAvailableRoomsOverlap(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableRoomsOverlapParams) ([]sqlc.Habitaciones, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) RoomTypesWithAvailability(ctx context.Context) ([]*queries.AvailableRoomTypeView, error) {
	rows, err := r.queries.ListRoomTypesWithAvailability(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types with availability", err)
	}

	result := make([]*queries.AvailableRoomTypeView, len(rows))
	for i, row := range rows {
		result[i] = &queries.AvailableRoomTypeView{
			Code:        row.Codtipo,
			Description: row.Descripcion,
		}
	}
	return result, nil
}

// AvailableRooms evaluates the policy in SQL; both queries only return rooms in Available status.
func (r *AvailabilityReadStore) AvailableRooms(ctx context.Context, policy reservation.Policy, typeCode string, start, end time.Time) ([]*queries.AvailableRoomView, error) {
	var (
		rows []sqlc.Habitaciones
		err  error
	)
	switch policy {
	case reservation.PolicyOverlap:
		rows, err = r.queries.ListAvailableRoomsOverlap(ctx, r.db, sqlc.ListAvailableRoomsOverlapParams{
			Codtipo:   typeCode,
			EndDate:   pgconv.DateToPgtype(end),
			StartDate: pgconv.DateToPgtype(start),
		})
	default:
		rows, err = r.queries.ListAvailableRoomsContainment(ctx, r.db, sqlc.ListAvailableRoomsContainmentParams{
			Codtipo:   typeCode,
			StartDate: pgconv.DateToPgtype(start),
			EndDate:   pgconv.DateToPgtype(end),
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}

	result := make([]*queries.AvailableRoomView, len(rows))
	for i, row := range rows {
		result[i] = &queries.AvailableRoomView{
			Number:      row.Numero,
			Description: row.Descripcion,
			Floor:       row.Piso,
			TypeCode:    row.Codtipo,
		}
	}
	return result, nil
}
