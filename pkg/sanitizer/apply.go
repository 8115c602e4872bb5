package sanitizer

// Apply runs transforms over value in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose returns a reusable pipeline of transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Each lifts a transform to slices. The input slice is not modified.
func Each[T any](transform func(T) T) func([]T) []T {
	return func(values []T) []T {
		if values == nil {
			return nil
		}
		out := make([]T, len(values))
		for i, v := range values {
			out[i] = transform(v)
		}
		return out
	}
}
