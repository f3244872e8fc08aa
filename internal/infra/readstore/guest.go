package readstore

import (
	"context"

	"hotel-desk/internal/infra"
	sqlc "hotel-desk/internal/infra/sqlc/generated"
	"hotel-desk/internal/pkg/pgconv"
	"hotel-desk/internal/usecase/queries"
)

type GuestReadQueries interface {
	GetGuest(ctx context.Context, db sqlc.DBTX, codcliente string) (sqlc.Clientes, error)
	SearchGuests(ctx context.Context, db sqlc.DBTX, pattern string) ([]sqlc.Clientes, error)
}

type GuestReadStore struct {
	queries GuestReadQueries
	db      sqlc.DBTX
}

func NewGuestReadStore(queries GuestReadQueries, db sqlc.DBTX) *GuestReadStore {
	return &GuestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *GuestReadStore) FindByID(ctx context.Context, id string) (*queries.GuestView, error) {
	row, err := r.queries.GetGuest(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest by ID", err)
	}
	return toGuestView(row), nil
}

// Search matches pattern with LIKE against id, name and phone.
func (r *GuestReadStore) Search(ctx context.Context, pattern string) ([]*queries.GuestView, error) {
	rows, err := r.queries.SearchGuests(ctx, r.db, pattern)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search guests", err)
	}

	result := make([]*queries.GuestView, len(rows))
	for i, row := range rows {
		result[i] = toGuestView(row)
	}
	return result, nil
}

func toGuestView(row sqlc.Clientes) *queries.GuestView {
	return &queries.GuestView{
		ID:    row.Codcliente,
		Name:  row.Nombre,
		Phone: row.Telefono,
	}
}
