package errs

// Error categories. Usecase sentinels are marked with exactly one of these so
// the transport layer can map failures without knowing every sentinel.
var (
	ErrValidation = New("validation failed")
	ErrDuplicate  = New("duplicate entry")
	ErrNotFound   = New("not found")
	ErrConflict   = New("conflict")
	ErrStorage    = New("storage failure")
)

// Category returns the category marker carried by err, or nil.
func Category(err error) error {
	for _, c := range []error{ErrValidation, ErrDuplicate, ErrNotFound, ErrConflict, ErrStorage} {
		if Is(err, c) {
			return c
		}
	}
	return nil
}

// NewKind creates a sentinel error already marked with a category.
func NewKind(msg string, category error) error {
	return Mark(New(msg), category)
}
