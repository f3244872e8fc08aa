package repository

import (
	"context"

	"hotel-desk/internal/domain/guest"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/infra/repository/converter"
	sqlc "hotel-desk/internal/infra/sqlc/generated"
)

type GuestWriteQueries interface {
	CreateGuest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGuestParams) error
	UpdateGuest(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateGuestParams) (int64, error)
	DeleteGuest(ctx context.Context, db sqlc.DBTX, codcliente string) (int64, error)
}

type GuestRepository struct {
	queries GuestWriteQueries
	db      sqlc.DBTX
}

func NewGuestRepository(queries GuestWriteQueries, db sqlc.DBTX) *GuestRepository {
	return &GuestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GuestRepository) Create(ctx context.Context, g *guest.Guest) error {
	if err := r.queries.CreateGuest(ctx, r.db, converter.GuestToCreateParams(g)); err != nil {
		return infra.WrapRepoErr("failed to create guest", err)
	}
	return nil
}

func (r *GuestRepository) Update(ctx context.Context, g *guest.Guest) error {
	affected, err := r.queries.UpdateGuest(ctx, r.db, converter.GuestToUpdateParams(g))
	if err != nil {
		return infra.WrapRepoErr("failed to update guest", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete fails with KindForeignKeyViolated while reservations still reference the guest.
func (r *GuestRepository) Delete(ctx context.Context, id guest.ID) error {
	affected, err := r.queries.DeleteGuest(ctx, r.db, id.Value())
	if err != nil {
		return infra.WrapRepoErr("failed to delete guest", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	return nil
}
