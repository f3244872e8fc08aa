package readstore

import (
	"context"

	"hotel-desk/internal/domain/reservation"
	"hotel-desk/internal/infra"
	sqlc "hotel-desk/internal/infra/sqlc/generated"
	"hotel-desk/internal/pkg/pgconv"
	"hotel-desk/internal/usecase/queries"
)

type ReservationViewQueries interface {
	NextReservationNumber(ctx context.Context, db sqlc.DBTX) (int64, error)
	GetReservationByNumber(ctx context.Context, db sqlc.DBTX, reservano int64) (sqlc.GetReservationByNumberRow, error)
	ListReservationsByGuest(ctx context.Context, db sqlc.DBTX, codcliente string) ([]sqlc.ListReservationsByGuestRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) NextNumber(ctx context.Context) (int64, error) {
	next, err := r.queries.NextReservationNumber(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to compute next reservation number", err)
	}
	return next, nil
}

func (r *ReservationReadStore) FindByNumber(ctx context.Context, number int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByNumber(ctx, r.db, number)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by number", err)
	}

	start, err := pgconv.DateFromPgtype(row.FechaReserva)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation start date", err, infra.KindDBFailure)
	}
	end, err := pgconv.DateFromPgtype(row.FechaSalida)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation end date", err, infra.KindDBFailure)
	}

	return &queries.ReservationView{
		Number:       row.Reservano,
		RoomNumber:   row.Numero,
		RoomTypeCode: row.Codtipo,
		GuestID:      row.Codcliente,
		GuestName:    row.ClienteNombre,
		StartDate:    start,
		EndDate:      end,
		Nights:       row.CantidadDias,
		Status:       reservation.Status(row.Estado).String(),
	}, nil
}

func (r *ReservationReadStore) FindByGuest(ctx context.Context, guestID string) ([]*queries.GuestReservationItem, error) {
	rows, err := r.queries.ListReservationsByGuest(ctx, r.db, guestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guest reservations", err)
	}

	result := make([]*queries.GuestReservationItem, len(rows))
	for i, row := range rows {
		start, err := pgconv.DateFromPgtype(row.FechaReserva)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid reservation start date", err, infra.KindDBFailure)
		}
		end, err := pgconv.DateFromPgtype(row.FechaSalida)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid reservation end date", err, infra.KindDBFailure)
		}
		result[i] = &queries.GuestReservationItem{
			Number:     row.Reservano,
			RoomNumber: row.Numero,
			StartDate:  start,
			EndDate:    end,
			Nights:     row.CantidadDias,
		}
	}
	return result, nil
}
