//go:build unit || e2e

package builder

import (
	"hotel-desk/internal/domain/guest"
	reqdto "hotel-desk/internal/handler/dto/request"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"
)

type GuestBuilder struct {
	id    string
	name  string
	phone string
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		id:    "1020304050",
		name:  "Ana Torres",
		phone: "3001234567",
	}
}

func (b *GuestBuilder) WithID(id string) *GuestBuilder {
	b.id = id
	return b
}

func (b *GuestBuilder) WithName(name string) *GuestBuilder {
	b.name = name
	return b
}

func (b *GuestBuilder) WithPhone(phone string) *GuestBuilder {
	b.phone = phone
	return b
}

func (b *GuestBuilder) Build() *guest.Guest {
	return guest.ReconstructGuest(b.id, b.name, b.phone)
}

func (b *GuestBuilder) BuildParams() commands.GuestParams {
	return commands.GuestParams{ID: b.id, Name: b.name, Phone: b.phone}
}

func (b *GuestBuilder) BuildCreateRequestDTO() reqdto.CreateGuestRequest {
	return reqdto.CreateGuestRequest{ID: b.id, Name: b.name, Phone: b.phone}
}

func (b *GuestBuilder) BuildView() *queries.GuestView {
	return &queries.GuestView{ID: b.id, Name: b.name, Phone: b.phone}
}
