//go:build unit

package commands_test

import (
	"context"
	"maps"
	"sort"
	"time"

	"hotel-desk/internal/domain/guest"
	"hotel-desk/internal/domain/reservation"
	"hotel-desk/internal/domain/room"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/usecase/shared"
)

type storedReservation struct {
	room  int32
	guest string
	stay  reservation.Stay
}

// memStore is an in-memory hotel. Within restores the previous state when fn fails.
type memStore struct {
	rooms        map[int32]room.Status
	roomTypes    map[int32]string
	guests       map[string]*guest.Guest
	reservations map[int64]storedReservation

	failOn map[string]error
	calls  []string
}

func newMemStore() *memStore {
	return &memStore{
		rooms:        map[int32]room.Status{101: room.StatusAvailable, 102: room.StatusAvailable},
		roomTypes:    map[int32]string{101: "DBL", 102: "DBL"},
		guests:       map[string]*guest.Guest{},
		reservations: map[int64]storedReservation{},
		failOn:       map[string]error{},
	}
}

func (s *memStore) addGuest(id string) {
	s.guests[id] = guest.ReconstructGuest(id, "Ana Torres", "3001234567")
}

func (s *memStore) addReservation(number int64, roomNumber int32, start, end string) {
	st, err := reservation.ParseStay(start, end)
	if err != nil {
		panic(err)
	}
	s.reservations[number] = storedReservation{room: roomNumber, guest: "1020304050", stay: st}
}

func (s *memStore) record(op string) error {
	s.calls = append(s.calls, op)
	return s.failOn[op]
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	rooms := maps.Clone(s.rooms)
	guests := maps.Clone(s.guests)
	reservations := maps.Clone(s.reservations)

	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.rooms, s.guests, s.reservations = rooms, guests, reservations
		return err
	}
	return nil
}

type memTx struct{ s *memStore }

func (t *memTx) Rooms() shared.RoomRepository               { return memRooms{s: t.s} }
func (t *memTx) Guests() shared.GuestRepository             { return memGuests{s: t.s} }
func (t *memTx) Reservations() shared.ReservationRepository { return memReservations{s: t.s} }
func (t *memTx) Reads() shared.CommandReads                 { return memReads{s: t.s} }

type memReads struct{ s *memStore }

func (r memReads) GuestByID(_ context.Context, id string) (*shared.GuestSnapshot, error) {
	if err := r.s.record("GuestByID"); err != nil {
		return nil, err
	}
	g, ok := r.s.guests[id]
	if !ok {
		return nil, infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return &shared.GuestSnapshot{ID: g.ID().Value(), Name: g.Name().Value(), Phone: g.Phone().Value()}, nil
}

type memRooms struct{ s *memStore }

func (r memRooms) LockForUpdate(_ context.Context, number int32) (*room.Room, error) {
	if err := r.s.record("LockForUpdate"); err != nil {
		return nil, err
	}
	status, ok := r.s.rooms[number]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return room.NewRoom(number, "room", 1, r.s.roomTypes[number], status)
}

func (r memRooms) SetStatus(_ context.Context, number int32, status room.Status) error {
	if err := r.s.record("SetStatus"); err != nil {
		return err
	}
	if _, ok := r.s.rooms[number]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	r.s.rooms[number] = status
	return nil
}

func (r memRooms) ReleaseIdle(_ context.Context, today time.Time) (int64, error) {
	if err := r.s.record("ReleaseIdle"); err != nil {
		return 0, err
	}
	var n int64
	for number, status := range r.s.rooms {
		if status == room.StatusAvailable {
			continue
		}
		busy := false
		for _, res := range r.s.reservations {
			if res.room == number && res.stay.End().After(today) {
				busy = true
			}
		}
		if !busy {
			r.s.rooms[number] = room.StatusAvailable
			n++
		}
	}
	return n, nil
}

type memGuests struct{ s *memStore }

func (g memGuests) Create(_ context.Context, gu *guest.Guest) error {
	if err := g.s.record("CreateGuest"); err != nil {
		return err
	}
	if _, ok := g.s.guests[gu.ID().Value()]; ok {
		return infra.WrapRepoErr("duplicate guest", nil, infra.KindDuplicateKey)
	}
	g.s.guests[gu.ID().Value()] = gu
	return nil
}

func (g memGuests) Update(_ context.Context, gu *guest.Guest) error {
	if err := g.s.record("UpdateGuest"); err != nil {
		return err
	}
	if _, ok := g.s.guests[gu.ID().Value()]; !ok {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	g.s.guests[gu.ID().Value()] = gu
	return nil
}

func (g memGuests) Delete(_ context.Context, id guest.ID) error {
	if err := g.s.record("DeleteGuest"); err != nil {
		return err
	}
	if _, ok := g.s.guests[id.Value()]; !ok {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	for _, res := range g.s.reservations {
		if res.guest == id.Value() {
			return infra.WrapRepoErr("guest referenced", nil, infra.KindForeignKeyViolated)
		}
	}
	delete(g.s.guests, id.Value())
	return nil
}

type memReservations struct{ s *memStore }

func (r memReservations) LockLedger(context.Context) error {
	return r.s.record("LockLedger")
}

func (r memReservations) NextNumber(context.Context) (reservation.Number, error) {
	if err := r.s.record("NextNumber"); err != nil {
		return 0, err
	}
	var highest int64
	for n := range r.s.reservations {
		highest = max(highest, n)
	}
	return reservation.Number(highest + 1), nil
}

func (r memReservations) Create(_ context.Context, res *reservation.Reservation) (reservation.Number, error) {
	if err := r.s.record("CreateReservation"); err != nil {
		return 0, err
	}
	if _, ok := r.s.reservations[int64(res.Number())]; ok {
		return 0, infra.WrapRepoErr("duplicate reservation", nil, infra.KindDuplicateKey)
	}
	r.s.reservations[int64(res.Number())] = storedReservation{room: res.RoomNumber(), guest: res.GuestID(), stay: res.Stay()}
	return res.Number(), nil
}

func (r memReservations) Delete(_ context.Context, number reservation.Number) (int32, error) {
	if err := r.s.record("DeleteReservation"); err != nil {
		return 0, err
	}
	res, ok := r.s.reservations[int64(number)]
	if !ok {
		return 0, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(r.s.reservations, int64(number))
	return res.room, nil
}

func (r memReservations) ActiveStaysForRoom(_ context.Context, roomNumber int32) ([]reservation.Stay, error) {
	if err := r.s.record("ActiveStaysForRoom"); err != nil {
		return nil, err
	}
	var numbers []int64
	for n, res := range r.s.reservations {
		if res.room == roomNumber {
			numbers = append(numbers, n)
		}
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	stays := make([]reservation.Stay, 0, len(numbers))
	for _, n := range numbers {
		stays = append(stays, r.s.reservations[n].stay)
	}
	return stays, nil
}

func (r memReservations) CountActiveForRoom(_ context.Context, roomNumber int32, today time.Time) (int64, error) {
	if err := r.s.record("CountActiveForRoom"); err != nil {
		return 0, err
	}
	var n int64
	for _, res := range r.s.reservations {
		if res.room == roomNumber && res.stay.End().After(today) {
			n++
		}
	}
	return n, nil
}
