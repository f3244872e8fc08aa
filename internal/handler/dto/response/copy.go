package response

import (
	"time"

	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				t, _ := src.(time.Time)
				return t.Format(dateLayout), nil
			},
		},
	},
}

// copyInto maps read views onto response DTOs by field name; dates become YYYY-MM-DD.
func copyInto[T any](from any) (T, error) {
	var to T
	err := copier.CopyWithOption(&to, from, copyOptions)
	return to, err
}

// copySlice never returns nil so empty lists encode as [].
func copySlice[T any](from any) ([]T, error) {
	to, err := copyInto[[]T](from)
	if err != nil {
		return nil, err
	}
	if to == nil {
		to = []T{}
	}
	return to, nil
}
