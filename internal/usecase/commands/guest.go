package commands

import (
	"context"
	"log/slog"

	"hotel-desk/internal/domain/guest"
	"hotel-desk/internal/infra"
	"hotel-desk/internal/usecase/shared"
)

type GuestParams struct {
	ID    string `validate:"required,numeric,max=20"`
	Name  string `validate:"required"`
	Phone string `validate:"required,numeric,min=10,max=20"`
}

type GuestCommands interface {
	Create(ctx context.Context, params GuestParams) error
	Update(ctx context.Context, params GuestParams) error
	Delete(ctx context.Context, id string) error
}

type guestCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewGuestCommands(uow shared.UnitOfWork) GuestCommands {
	return &guestCommandsImpl{uow: uow}
}

func (uc *guestCommandsImpl) Create(ctx context.Context, params GuestParams) error {
	g, err := buildGuest(params)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Guests().Create(ctx, g); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateGuest
			}
			return asStorage(err)
		}
		return nil
	})
}

// Update replaces name and phone together on the stored guest. An update that
// changes nothing skips the write.
func (uc *guestCommandsImpl) Update(ctx context.Context, params GuestParams) error {
	want, err := buildGuest(params)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().GuestByID(ctx, want.ID().Value())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrGuestNotFound
			}
			return asStorage(err)
		}

		g := guest.ReconstructGuest(snap.ID, snap.Name, snap.Phone)
		if err := g.UpdateContact(want.Name().Value(), want.Phone().Value()); err != nil {
			return invalid(ErrInvalidGuest, err)
		}
		if g.Name().Value() == snap.Name && g.Phone().Value() == snap.Phone {
			slog.DebugContext(ctx, "guest contact unchanged", "guest", snap.ID)
			return nil
		}

		if err := tx.Guests().Update(ctx, g); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrGuestNotFound
			}
			return asStorage(err)
		}
		return nil
	})
}

func (uc *guestCommandsImpl) Delete(ctx context.Context, id string) error {
	gid, err := guest.NewID(id)
	if err != nil {
		return invalid(ErrInvalidGuest, err)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Guests().Delete(ctx, gid); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return ErrGuestNotFound
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return ErrGuestHasReservations
			default:
				return asStorage(err)
			}
		}
		return nil
	})
}

func buildGuest(params GuestParams) (*guest.Guest, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	g, err := guest.NewGuest(params.ID, params.Name, params.Phone)
	if err != nil {
		return nil, invalid(ErrInvalidGuest, err)
	}
	return g, nil
}
