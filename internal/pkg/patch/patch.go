package patch

// Coalesce returns *ptr, or fallback when the field was absent from the payload.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
