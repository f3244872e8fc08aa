//go:build unit || e2e

package builder

import (
	"time"

	reqdto "hotel-desk/internal/handler/dto/request"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"
)

type ReservationBuilder struct {
	number     int64
	roomNumber int32
	typeCode   string
	guestID    string
	guestName  string
	start      time.Time
	end        time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		number:     1,
		roomNumber: 101,
		typeCode:   "DBL",
		guestID:    "1020304050",
		guestName:  "Ana Torres",
		start:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		end:        time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) WithNumber(n int64) *ReservationBuilder {
	b.number = n
	return b
}

func (b *ReservationBuilder) WithRoom(number int32) *ReservationBuilder {
	b.roomNumber = number
	return b
}

func (b *ReservationBuilder) WithGuest(id string) *ReservationBuilder {
	b.guestID = id
	return b
}

func (b *ReservationBuilder) WithDates(start, end time.Time) *ReservationBuilder {
	b.start = start
	b.end = end
	return b
}

func (b *ReservationBuilder) StartDate() string { return b.start.Format("2006-01-02") }
func (b *ReservationBuilder) EndDate() string   { return b.end.Format("2006-01-02") }

func (b *ReservationBuilder) nights() int32 {
	return int32(b.end.Sub(b.start).Hours() / 24)
}

func (b *ReservationBuilder) BuildParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		RoomNumber: b.roomNumber,
		GuestID:    b.guestID,
		StartDate:  b.StartDate(),
		EndDate:    b.EndDate(),
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomNumber: b.roomNumber,
		GuestID:    b.guestID,
		StartDate:  b.StartDate(),
		EndDate:    b.EndDate(),
	}
}

func (b *ReservationBuilder) BuildResult() *commands.CreateReservationResult {
	return &commands.CreateReservationResult{
		Number:     b.number,
		RoomNumber: b.roomNumber,
		GuestID:    b.guestID,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		Number:       b.number,
		RoomNumber:   b.roomNumber,
		RoomTypeCode: b.typeCode,
		GuestID:      b.guestID,
		GuestName:    b.guestName,
		StartDate:    b.start,
		EndDate:      b.end,
		Nights:       b.nights(),
		Status:       "active",
	}
}

func (b *ReservationBuilder) BuildGuestItem() *queries.GuestReservationItem {
	return &queries.GuestReservationItem{
		Number:     b.number,
		RoomNumber: b.roomNumber,
		StartDate:  b.start,
		EndDate:    b.end,
		Nights:     b.nights(),
	}
}
