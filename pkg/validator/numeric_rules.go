package validator

import "fmt"

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min validates that a number is greater than or equal to min.
func Min[T Numeric](min T) Rule[T] {
	return predicate(CodeMin, fmt.Sprintf("must be at least %v", min), func(v T) bool {
		return v >= min
	})
}

// Max validates that a number is less than or equal to max.
func Max[T Numeric](max T) Rule[T] {
	return predicate(CodeMax, fmt.Sprintf("must be at most %v", max), func(v T) bool {
		return v <= max
	})
}

// Between validates min <= v <= max.
func Between[T Numeric](min, max T) Rule[T] {
	return predicate(CodeRange, fmt.Sprintf("must be between %v and %v", min, max), func(v T) bool {
		return v >= min && v <= max
	})
}

func Positive[T Numeric]() Rule[T] {
	return predicate(CodePositive, "must be greater than zero", func(v T) bool {
		return v > 0
	})
}

func NonNegative[T Numeric]() Rule[T] {
	return predicate(CodeNonNegative, "must not be negative", func(v T) bool {
		return v >= 0
	})
}
