package validator

import "fmt"

// Required validates that a comparable value is not its zero value.
func Required[T comparable]() Rule[T] {
	var zero T
	return predicate(CodeRequired, "field is required", func(v T) bool {
		return v != zero
	})
}

func Equal[T comparable](want T) Rule[T] {
	return predicate(CodeEqual, fmt.Sprintf("must be equal to %v", want), func(v T) bool {
		return v == want
	})
}

func NotEqual[T comparable](unwanted T) Rule[T] {
	return predicate(CodeNotEqual, fmt.Sprintf("must not be equal to %v", unwanted), func(v T) bool {
		return v != unwanted
	})
}
