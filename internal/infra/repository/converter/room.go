package converter

import (
	"hotel-desk/internal/domain/room"
	sqlc "hotel-desk/internal/infra/sqlc/generated"
)

func RoomFromRow(row sqlc.Habitaciones) (*room.Room, error) {
	return room.NewRoom(row.Numero, row.Descripcion, row.Piso, row.Codtipo, room.Status(row.Codestado))
}
