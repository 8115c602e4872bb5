package sanitizer

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp returns a transform constraining values to [min, max].
func Clamp[T Numeric](min, max T) func(T) T {
	return func(v T) T {
		if v < min {
			return min
		}
		if v > max {
			return max
		}
		return v
	}
}

func ClampMin[T Numeric](min T) func(T) T {
	return func(v T) T {
		if v < min {
			return min
		}
		return v
	}
}

func ClampMax[T Numeric](max T) func(T) T {
	return func(v T) T {
		if v > max {
			return max
		}
		return v
	}
}
