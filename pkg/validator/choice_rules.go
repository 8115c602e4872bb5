package validator

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// OneOf validates that the value is one of options.
func OneOf[T comparable](options ...T) Rule[T] {
	return predicate(CodeInList, fmt.Sprintf("must be one of: %v", options), func(v T) bool {
		return slices.Contains(options, v)
	})
}

// NoneOf validates that the value is not one of forbidden.
func NoneOf[T comparable](forbidden ...T) Rule[T] {
	return predicate(CodeNotInList, fmt.Sprintf("must not be one of: %v", forbidden), func(v T) bool {
		return !slices.Contains(forbidden, v)
	})
}

// OneOfFold is OneOf for strings compared with Unicode case folding,
// so "STRASSE" matches "straße".
func OneOfFold(options ...string) Rule[string] {
	fold := cases.Fold()
	folded := make([]string, len(options))
	for i, o := range options {
		folded[i] = fold.String(o)
	}
	message := fmt.Sprintf("must be one of (case-insensitive): %s", strings.Join(options, ", "))
	return func(value string, id ID, _ Fail) (string, error) {
		// cases.Caser is stateful; use a fresh one per call.
		if slices.Contains(folded, cases.Fold().String(value)) {
			return value, nil
		}
		return "", Report{{ID: id, Message: message, Code: CodeInList}}
	}
}
