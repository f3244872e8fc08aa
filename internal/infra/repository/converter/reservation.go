package converter

import (
	"fmt"
	"math"

	"hotel-desk/internal/domain/reservation"
	sqlc "hotel-desk/internal/infra/sqlc/generated"
	"hotel-desk/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	nights := res.Nights()
	if nights > math.MaxInt32 {
		panic(fmt.Sprintf("nights out of int32 range: %d", nights))
	}

	return sqlc.CreateReservationParams{
		Reservano:    int64(res.Number()),
		Numero:       res.RoomNumber(),
		Codcliente:   res.GuestID(),
		FechaReserva: pgconv.DateToPgtype(res.Stay().Start()),
		CantidadDias: int32(nights),
		FechaSalida:  pgconv.DateToPgtype(res.Stay().End()),
		Estado:       int16(res.Status()),
	}
}
