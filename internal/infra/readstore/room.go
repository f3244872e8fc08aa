package readstore

import (
	"context"

	"hotel-desk/internal/infra"
	sqlc "hotel-desk/internal/infra/sqlc/generated"
	"hotel-desk/internal/pkg/pgconv"
	"hotel-desk/internal/usecase/queries"
)

type RoomReadQueries interface {
	ListRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListRoomsRow, error)
	ListRoomTypes(ctx context.Context, db sqlc.DBTX) ([]sqlc.TipoHabitacion, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) ListRooms(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		cost, err := pgconv.Float64FromNumeric(row.Costo)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid room cost", err, infra.KindDBFailure)
		}
		result[i] = &queries.RoomView{
			Number:            row.Numero,
			Description:       row.Descripcion,
			Floor:             row.Piso,
			TypeDescription:   row.TipoDescripcion,
			StatusDescription: row.EstadoDescripcion,
			CostPerNight:      cost,
		}
	}
	return result, nil
}

func (r *RoomReadStore) ListRoomTypes(ctx context.Context) ([]*queries.RoomTypeView, error) {
	rows, err := r.queries.ListRoomTypes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}

	result := make([]*queries.RoomTypeView, len(rows))
	for i, row := range rows {
		cost, err := pgconv.Float64FromNumeric(row.Costo)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid room type cost", err, infra.KindDBFailure)
		}
		result[i] = &queries.RoomTypeView{
			Code:         row.Codtipo,
			Description:  row.Descripcion,
			CostPerNight: cost,
			Active:       row.Estado,
		}
	}
	return result, nil
}
