package common

// Coalesce returns the first of values that is not the zero value for its
// type, checking in order. Useful for applying a default when an optional
// numeric setting was left unset.
//
// Parameters:
//   - values: candidate values, checked in order
//
// Returns:
//   - T: the first non-zero value, or the zero value when every candidate is zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
