//go:build unit

package infra

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []RepositoryErrorKind
		want RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: KindForeignKeyViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "57014"}, want: KindDBFailure},
		{name: "plain error", err: assert.AnError, want: KindDBFailure},
		{name: "explicit kind wins", err: assert.AnError, kind: []RepositoryErrorKind{KindNotFound}, want: KindNotFound},
		{name: "nil cause", err: nil, kind: []RepositoryErrorKind{KindNotFound}, want: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("op failed", tt.err, tt.kind...)

			assert.True(t, IsKind(err, tt.want))
			assert.Contains(t, err.Error(), "op failed")
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestIsKind_NonRepositoryError(t *testing.T) {
	assert.False(t, IsKind(assert.AnError, KindDBFailure))
	assert.False(t, IsKind(nil, KindNotFound))
}
