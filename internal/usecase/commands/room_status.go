package commands

import (
	"context"
	"log/slog"

	"hotel-desk/internal/pkg/clock"
	"hotel-desk/internal/usecase/shared"
)

type RoomStatusCommands interface {
	// ReleaseIdleRooms returns Reserved and Occupied rooms to Available once no active
	// reservation for them ends after today.
	ReleaseIdleRooms(ctx context.Context) (int64, error)
}

type roomStatusCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomStatusCommands(uow shared.UnitOfWork, clk clock.Clock) RoomStatusCommands {
	return &roomStatusCommandsImpl{uow: uow, clock: clk}
}

func (uc *roomStatusCommandsImpl) ReleaseIdleRooms(ctx context.Context) (int64, error) {
	today := clock.Today(uc.clock)

	var released int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Rooms().ReleaseIdle(ctx, today)
		if err != nil {
			return asStorage(err)
		}
		released = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	if released > 0 {
		slog.InfoContext(ctx, "idle rooms released", "count", released, "today", today.Format("2006-01-02"))
	}
	return released, nil
}
