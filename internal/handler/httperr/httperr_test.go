//go:build unit

package httperr

import (
	"net/http"
	"testing"

	"hotel-desk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.NewKind("bad input", errs.ErrValidation), want: http.StatusBadRequest},
		{name: "not found", err: errs.NewKind("missing", errs.ErrNotFound), want: http.StatusNotFound},
		{name: "duplicate", err: errs.NewKind("dup", errs.ErrDuplicate), want: http.StatusConflict},
		{name: "conflict", err: errs.NewKind("busy", errs.ErrConflict), want: http.StatusConflict},
		{name: "wrapped validation", err: errs.Wrap(errs.NewKind("bad date", errs.ErrValidation), "parse"), want: http.StatusBadRequest},
		{name: "storage", err: errs.Mark(assert.AnError, errs.ErrStorage), want: http.StatusInternalServerError},
		{name: "uncategorized", err: assert.AnError, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}
