//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Room types and rooms inserted by SeedReferenceData.
const (
	TypeDouble    = "DBL"
	TypeTriple    = "TPL"
	TypeQuadruple = "QDR"

	RoomDouble1    int32 = 101
	RoomDouble2    int32 = 102
	RoomTriple1    int32 = 201
	RoomQuadruple1 int32 = 301
)

func CreateTestGuest(t *testing.T, db DBLike, id, name, phone string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO clientes (codcliente, nombre, telefono) VALUES ($1, $2, $3) ON CONFLICT (codcliente) DO NOTHING",
		id, name, phone)
	require.NoError(t, err)
}

func SetRoomStatus(t *testing.T, db DBLike, number int32, status int16) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE habitaciones SET codestado = $2 WHERE numero = $1", number, status)
	require.NoError(t, err)
}

func RoomStatus(t *testing.T, db DBLike, number int32) int16 {
	t.Helper()

	var status int16
	err := db.QueryRow(context.Background(), "SELECT codestado FROM habitaciones WHERE numero = $1", number).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountReservations(t *testing.T, db DBLike) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM reserva").Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData inserts the room catalog used by tests.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO tipo_habitacion (codtipo, descripcion, costo, estado) VALUES
		    ('DBL', 'Doble', 120.00, true),
		    ('TPL', 'Triple', 160.00, true),
		    ('QDR', 'Cuadruple', 200.00, true)
		ON CONFLICT (codtipo) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO habitaciones (numero, descripcion, piso, codtipo, codestado) VALUES
		    (101, 'Doble vista al mar', 1, 'DBL', 1),
		    (102, 'Doble interior', 1, 'DBL', 1),
		    (201, 'Triple familiar', 2, 'TPL', 1),
		    (301, 'Cuadruple suite', 3, 'QDR', 1)
		ON CONFLICT (numero) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table except the status catalog and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('estados_h', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
