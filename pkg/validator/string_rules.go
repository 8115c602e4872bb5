package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// runeLen counts characters of the NFC form so that "é" written as
// e + combining accent counts once.
func runeLen(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// NotBlank fails when the string is empty after trimming whitespace.
func NotBlank() Rule[string] {
	return predicate(CodeBlank, "must not be blank", func(v string) bool {
		return strings.TrimSpace(v) != ""
	})
}

// NotEmpty fails only on the empty string; whitespace is accepted.
func NotEmpty() Rule[string] {
	return predicate(CodeRequired, "field is required", func(v string) bool {
		return v != ""
	})
}

// MinLen validates that a string has at least min characters.
func MinLen(min int) Rule[string] {
	return predicate(CodeMinLength, fmt.Sprintf("must be at least %d characters long", min), func(v string) bool {
		return runeLen(v) >= min
	})
}

// MaxLen validates that a string has at most max characters.
func MaxLen(max int) Rule[string] {
	return predicate(CodeMaxLength, fmt.Sprintf("must be at most %d characters long", max), func(v string) bool {
		return runeLen(v) <= max
	})
}

// LenBetween validates that a string has between min and max characters.
func LenBetween(min, max int) Rule[string] {
	return predicate(CodeLengthRange, fmt.Sprintf("must be between %d and %d characters long", min, max), func(v string) bool {
		n := runeLen(v)
		return n >= min && n <= max
	})
}

// ExactLen validates that a string has exactly exact characters.
func ExactLen(exact int) Rule[string] {
	return predicate(CodeExactLength, fmt.Sprintf("must be exactly %d characters long", exact), func(v string) bool {
		return runeLen(v) == exact
	})
}
