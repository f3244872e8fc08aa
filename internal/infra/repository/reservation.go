package repository

import (
	"context"
	"time"

	"hotel-desk/internal/domain/reservation"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/infra/repository/converter"
	sqlc "hotel-desk/internal/infra/sqlc/generated"
	"hotel-desk/internal/pkg/pgconv"
)

// ledgerLockKey is the advisory lock guarding reservation number assignment.
const ledgerLockKey int64 = 0x686f74656c // "hotel"

type ReservationWriteQueries interface {
	LockReservationLedger(ctx context.Context, db sqlc.DBTX, lockKey int64) error
	NextReservationNumber(ctx context.Context, db sqlc.DBTX) (int64, error)
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, reservano int64) (int32, error)
	ListActiveStaysForRoom(ctx context.Context, db sqlc.DBTX, numero int32) ([]sqlc.ListActiveStaysForRoomRow, error)
	CountActiveReservationsForRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveReservationsForRoomParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) LockLedger(ctx context.Context) error {
	if err := r.queries.LockReservationLedger(ctx, r.db, ledgerLockKey); err != nil {
		return infra.WrapRepoErr("failed to lock reservation ledger", err)
	}
	return nil
}

func (r *ReservationRepository) NextNumber(ctx context.Context) (reservation.Number, error) {
	next, err := r.queries.NextReservationNumber(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to compute next reservation number", err)
	}
	return reservation.Number(next), nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (reservation.Number, error) {
	params := converter.ReservationToCreateParams(res)

	number, err := r.queries.CreateReservation(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}

	return reservation.Number(number), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, number reservation.Number) (int32, error) {
	roomNumber, err := r.queries.DeleteReservation(ctx, r.db, int64(number))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return roomNumber, nil
}

func (r *ReservationRepository) ActiveStaysForRoom(ctx context.Context, roomNumber int32) ([]reservation.Stay, error) {
	rows, err := r.queries.ListActiveStaysForRoom(ctx, r.db, roomNumber)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active stays", err)
	}

	stays := make([]reservation.Stay, 0, len(rows))
	for _, row := range rows {
		start, err := pgconv.DateFromPgtype(row.FechaReserva)
		if err != nil {
			return nil, infra.WrapRepoErr("stored reservation has no start date", err, infra.KindDBFailure)
		}
		end, err := pgconv.DateFromPgtype(row.FechaSalida)
		if err != nil {
			return nil, infra.WrapRepoErr("stored reservation has no end date", err, infra.KindDBFailure)
		}
		stays = append(stays, reservation.ReconstructStay(start, end))
	}
	return stays, nil
}

// CountActiveForRoom counts the room's active reservations whose stay runs past today.
func (r *ReservationRepository) CountActiveForRoom(ctx context.Context, roomNumber int32, today time.Time) (int64, error) {
	count, err := r.queries.CountActiveReservationsForRoom(ctx, r.db, sqlc.CountActiveReservationsForRoomParams{
		Numero: roomNumber,
		Today:  pgconv.DateToPgtype(today),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations", err)
	}
	return count, nil
}
