//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"hotel-desk/internal/infra"
	"hotel-desk/internal/infra/repository"
	sqlc "hotel-desk/internal/infra/sqlc/generated"
	"hotel-desk/tests/common/builder"
	repositorymock "hotel-desk/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGuestRepository_Create(t *testing.T) {
	ctx := context.Background()
	g := builder.NewGuestBuilder().Build()

	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: guest created"},
		{
			name:       "error: duplicate id",
			err:        &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: database failure",
			err:        errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockGuestWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewGuestRepository(mockQueries, mockDB)

			mockQueries.EXPECT().CreateGuest(ctx, mockDB, sqlc.CreateGuestParams{
				Codcliente: "1020304050",
				Nombre:     "Ana Torres",
				Telefono:   "3001234567",
			}).Return(tc.err)

			err := repo.Create(ctx, g)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGuestRepository_Update(t *testing.T) {
	ctx := context.Background()
	g := builder.NewGuestBuilder().Build()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockGuestWriteQueries(ctrl)
		repo := repository.NewGuestRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().UpdateGuest(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil)

		assert.NoError(t, repo.Update(ctx, g))
	})

	t.Run("error: unknown guest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockGuestWriteQueries(ctrl)
		repo := repository.NewGuestRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().UpdateGuest(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		assert.True(t, infra.IsKind(repo.Update(ctx, g), infra.KindNotFound))
	})
}

func TestGuestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	g := builder.NewGuestBuilder().Build()

	testCases := []struct {
		name       string
		affected   int64
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "error: unknown guest", affected: 0, expectKind: infra.KindNotFound},
		{
			name:       "error: reservations still reference the guest",
			err:        &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockGuestWriteQueries(ctrl)
			repo := repository.NewGuestRepository(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().DeleteGuest(ctx, gomock.Any(), "1020304050").Return(tc.affected, tc.err)

			err := repo.Delete(ctx, g.ID())

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
