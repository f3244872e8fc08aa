//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-desk/internal/domain/reservation"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/infra/readstore"
	sqlc "hotel-desk/internal/infra/sqlc/generated"
	"hotel-desk/internal/pkg/pgconv"
	"hotel-desk/internal/usecase/queries"
	readstoremock "hotel-desk/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func numeric(t *testing.T, v float64) pgtype.Numeric {
	t.Helper()
	n, err := pgconv.Float64ToNumeric(v)
	require.NoError(t, err)
	return n
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// Rooms
// =============================================================================

func TestRoomReadStore_ListRooms(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockRoomReadQueries(ctrl)
	store := readstore.NewRoomReadStore(mockQueries, nil)

	mockQueries.EXPECT().ListRooms(ctx, gomock.Any()).Return([]sqlc.ListRoomsRow{
		{Numero: 101, Descripcion: "Doble vista al mar", Piso: 1, TipoDescripcion: "Doble", EstadoDescripcion: "Disponible", Costo: numeric(t, 120.5)},
		{Numero: 201, Descripcion: "Triple familiar", Piso: 2, TipoDescripcion: "Triple", EstadoDescripcion: "Reservada", Costo: pgtype.Numeric{}},
	}, nil)

	got, err := store.ListRooms(ctx)
	require.NoError(t, err)

	want := []*queries.RoomView{
		{Number: 101, Description: "Doble vista al mar", Floor: 1, TypeDescription: "Doble", StatusDescription: "Disponible", CostPerNight: 120.5},
		{Number: 201, Description: "Triple familiar", Floor: 2, TypeDescription: "Triple", StatusDescription: "Reservada", CostPerNight: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListRooms mismatch (-want +got):\n%s", diff)
	}
}

func TestRoomReadStore_ListRoomTypes_Error(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockRoomReadQueries(ctrl)
	store := readstore.NewRoomReadStore(mockQueries, nil)

	mockQueries.EXPECT().ListRoomTypes(ctx, gomock.Any()).Return(nil, errDBConnectionLost)

	_, err := store.ListRoomTypes(ctx)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

// =============================================================================
// Availability
// =============================================================================

func TestAvailabilityReadStore_RoomTypesWithAvailability(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockAvailabilityReadQueries(ctrl)
	store := readstore.NewAvailabilityReadStore(mockQueries, nil)

	mockQueries.EXPECT().ListRoomTypesWithAvailability(ctx, gomock.Any()).Return([]sqlc.ListRoomTypesWithAvailabilityRow{
		{Codtipo: "DBL", Descripcion: "Doble"},
		{Codtipo: "TPL", Descripcion: "Triple"},
	}, nil)

	got, err := store.RoomTypesWithAvailability(ctx)
	require.NoError(t, err)

	want := []*queries.AvailableRoomTypeView{
		{Code: "DBL", Description: "Doble"},
		{Code: "TPL", Description: "Triple"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RoomTypesWithAvailability mismatch (-want +got):\n%s", diff)
	}
}

func TestAvailabilityReadStore_AvailableRooms(t *testing.T) {
	ctx := context.Background()
	start, end := date(2026, 3, 10), date(2026, 3, 12)
	rows := []sqlc.Habitaciones{{Numero: 102, Descripcion: "Doble interior", Piso: 1, Codtipo: "DBL", Codestado: 1}}

	t.Run("containment policy uses the containment query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAvailabilityReadQueries(ctrl)
		store := readstore.NewAvailabilityReadStore(mockQueries, nil)

		mockQueries.EXPECT().ListAvailableRoomsContainment(ctx, gomock.Any(), sqlc.ListAvailableRoomsContainmentParams{
			Codtipo:   "DBL",
			StartDate: pgconv.DateToPgtype(start),
			EndDate:   pgconv.DateToPgtype(end),
		}).Return(rows, nil)

		got, err := store.AvailableRooms(ctx, reservation.PolicyContainment, "DBL", start, end)
		require.NoError(t, err)
		want := []*queries.AvailableRoomView{{Number: 102, Description: "Doble interior", Floor: 1, TypeCode: "DBL"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("AvailableRooms mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("overlap policy uses the overlap query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAvailabilityReadQueries(ctrl)
		store := readstore.NewAvailabilityReadStore(mockQueries, nil)

		mockQueries.EXPECT().ListAvailableRoomsOverlap(ctx, gomock.Any(), sqlc.ListAvailableRoomsOverlapParams{
			Codtipo:   "DBL",
			EndDate:   pgconv.DateToPgtype(end),
			StartDate: pgconv.DateToPgtype(start),
		}).Return(nil, nil)

		got, err := store.AvailableRooms(ctx, reservation.PolicyOverlap, "DBL", start, end)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockAvailabilityReadQueries(ctrl)
		store := readstore.NewAvailabilityReadStore(mockQueries, nil)

		mockQueries.EXPECT().ListAvailableRoomsContainment(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.AvailableRooms(ctx, reservation.PolicyContainment, "DBL", start, end)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Guests
// =============================================================================

func TestGuestReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        sqlc.Clientes
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: guest found", row: sqlc.Clientes{Codcliente: "1", Nombre: "Ana", Telefono: "3001234567"}},
		{name: "error: guest not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", err: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockGuestReadQueries(ctrl)
			store := readstore.NewGuestReadStore(mockQueries, nil)

			mockQueries.EXPECT().GetGuest(ctx, gomock.Any(), "1").Return(tc.row, tc.err)

			v, err := store.FindByID(ctx, "1")
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "1", v.ID)
			assert.Equal(t, "3001234567", v.Phone)
		})
	}
}

func TestGuestReadStore_Search(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockGuestReadQueries(ctrl)
	store := readstore.NewGuestReadStore(mockQueries, nil)

	mockQueries.EXPECT().SearchGuests(ctx, gomock.Any(), "%300%").Return([]sqlc.Clientes{
		{Codcliente: "1", Nombre: "Ana", Telefono: "3001234567"},
		{Codcliente: "2", Nombre: "Luis", Telefono: "3009876543"},
	}, nil)

	got, err := store.Search(ctx, "%300%")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Luis", got[1].Name)
}

// =============================================================================
// Reservations
// =============================================================================

func TestReservationReadStore_FindByNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("success: maps the joined row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetReservationByNumber(ctx, gomock.Any(), int64(3)).Return(sqlc.GetReservationByNumberRow{
			Reservano:     3,
			Numero:        101,
			Codtipo:       "DBL",
			Codcliente:    "1",
			ClienteNombre: "Ana",
			FechaReserva:  pgconv.DateToPgtype(date(2026, 3, 10)),
			CantidadDias:  2,
			FechaSalida:   pgconv.DateToPgtype(date(2026, 3, 12)),
			Estado:        0,
		}, nil)

		got, err := store.FindByNumber(ctx, 3)
		require.NoError(t, err)

		want := &queries.ReservationView{
			Number:       3,
			RoomNumber:   101,
			RoomTypeCode: "DBL",
			GuestID:      "1",
			GuestName:    "Ana",
			StartDate:    date(2026, 3, 10),
			EndDate:      date(2026, 3, 12),
			Nights:       2,
			Status:       "active",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FindByNumber mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetReservationByNumber(ctx, gomock.Any(), int64(3)).
			Return(sqlc.GetReservationByNumberRow{}, pgx.ErrNoRows)

		_, err := store.FindByNumber(ctx, 3)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationReadStore_FindByGuest(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
	store := readstore.NewReservationReadStore(mockQueries, nil)

	mockQueries.EXPECT().ListReservationsByGuest(ctx, gomock.Any(), "1").Return([]sqlc.ListReservationsByGuestRow{
		{Reservano: 1, Numero: 101, FechaReserva: pgconv.DateToPgtype(date(2026, 3, 1)), CantidadDias: 2, FechaSalida: pgconv.DateToPgtype(date(2026, 3, 3))},
		{Reservano: 4, Numero: 201, FechaReserva: pgconv.DateToPgtype(date(2026, 4, 1)), CantidadDias: 1, FechaSalida: pgconv.DateToPgtype(date(2026, 4, 2))},
	}, nil)

	got, err := store.FindByGuest(ctx, "1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(4), got[1].Number)
	assert.Equal(t, date(2026, 4, 1), got[1].StartDate)
}

func TestReservationReadStore_NextNumber(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
	store := readstore.NewReservationReadStore(mockQueries, nil)

	mockQueries.EXPECT().NextReservationNumber(ctx, gomock.Any()).Return(int64(1), nil)

	n, err := store.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
