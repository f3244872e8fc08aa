package queries

import (
	"context"
	"strings"

	"hotel-desk/internal/infra"
)

type GuestReadStore interface {
	FindByID(ctx context.Context, id string) (*GuestView, error)
	Search(ctx context.Context, pattern string) ([]*GuestView, error)
}

type GuestQueries interface {
	Get(ctx context.Context, id string) (*GuestView, error)
	Find(ctx context.Context, criterion string) ([]*GuestView, error)
}

type guestQueriesImpl struct {
	store GuestReadStore
}

func NewGuestQueries(store GuestReadStore) GuestQueries {
	return &guestQueriesImpl{store: store}
}

func (q *guestQueriesImpl) Get(ctx context.Context, id string) (*GuestView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrGuestIDRequired
	}

	g, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, asStorage(err)
	}
	return g, nil
}

// Find is a substring match; LIKE wildcards in criterion are passed through.
func (q *guestQueriesImpl) Find(ctx context.Context, criterion string) ([]*GuestView, error) {
	guests, err := q.store.Search(ctx, "%"+criterion+"%")
	if err != nil {
		return nil, asStorage(err)
	}
	return guests, nil
}
