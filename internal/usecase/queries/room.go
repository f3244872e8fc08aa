package queries

import (
	"context"
	"log/slog"
)

type RoomReadStore interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
}

// RoomTypeCache is a read-through cache in front of ListRoomTypes.
type RoomTypeCache interface {
	GetRoomTypes(ctx context.Context) ([]*RoomTypeView, bool, error)
	SetRoomTypes(ctx context.Context, types []*RoomTypeView) error
}

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
	cache RoomTypeCache
}

func NewRoomQueries(store RoomReadStore, cache RoomTypeCache) RoomQueries {
	return &roomQueriesImpl{store: store, cache: cache}
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]*RoomView, error) {
	rooms, err := q.store.ListRooms(ctx)
	if err != nil {
		return nil, asStorage(err)
	}
	return rooms, nil
}

// ListRoomTypes never fails because of the cache; cache errors only get logged.
func (q *roomQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	cached, ok, err := q.cache.GetRoomTypes(ctx)
	if err != nil {
		slog.WarnContext(ctx, "room type cache read failed", "error", err.Error())
	}
	if ok {
		return cached, nil
	}

	types, err := q.store.ListRoomTypes(ctx)
	if err != nil {
		return nil, asStorage(err)
	}

	if err := q.cache.SetRoomTypes(ctx, types); err != nil {
		slog.WarnContext(ctx, "room type cache write failed", "error", err.Error())
	}
	return types, nil
}
