package repository

import (
	"context"
	"time"

	"hotel-desk/internal/domain/room"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/infra/repository/converter"
	sqlc "hotel-desk/internal/infra/sqlc/generated"
	"hotel-desk/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type RoomWriteQueries interface {
	GetRoomForUpdate(ctx context.Context, db sqlc.DBTX, numero int32) (sqlc.Habitaciones, error)
	UpdateRoomStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomStatusParams) (int64, error)
	ReleaseIdleRooms(ctx context.Context, db sqlc.DBTX, today pgtype.Date) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) LockForUpdate(ctx context.Context, number int32) (*room.Room, error) {
	row, err := r.queries.GetRoomForUpdate(ctx, r.db, number)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}

	rm, err := converter.RoomFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored room is invalid", err, infra.KindDBFailure)
	}
	return rm, nil
}

func (r *RoomRepository) SetStatus(ctx context.Context, number int32, status room.Status) error {
	if !status.IsValid() {
		return room.ErrInvalidStatus
	}

	params := sqlc.UpdateRoomStatusParams{
		Numero:    number,
		Codestado: int16(status),
	}
	affected, err := r.queries.UpdateRoomStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

// ReleaseIdle flips Reserved and Occupied rooms back to Available when no active stay runs past today.
func (r *RoomRepository) ReleaseIdle(ctx context.Context, today time.Time) (int64, error) {
	affected, err := r.queries.ReleaseIdleRooms(ctx, r.db, pgconv.DateToPgtype(today))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release idle rooms", err)
	}
	return affected, nil
}
