package converter

import (
	"hotel-desk/internal/domain/guest"
	sqlc "hotel-desk/internal/infra/sqlc/generated"
)

func GuestToCreateParams(g *guest.Guest) sqlc.CreateGuestParams {
	return sqlc.CreateGuestParams{
		Codcliente: g.ID().Value(),
		Nombre:     g.Name().Value(),
		Telefono:   g.Phone().Value(),
	}
}

func GuestToUpdateParams(g *guest.Guest) sqlc.UpdateGuestParams {
	return sqlc.UpdateGuestParams{
		Codcliente: g.ID().Value(),
		Nombre:     g.Name().Value(),
		Telefono:   g.Phone().Value(),
	}
}
