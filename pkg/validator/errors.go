package validator

import "errors"

// Usage errors. They signal a programming mistake in how rules are built or
// combined and are raised with panic, never returned inside a Report.
var (
	// ErrInvalidFailure is raised when a rule fails with an error that is not a Report.
	ErrInvalidFailure = errors.New("validator: rule failed with a non-report error")

	// ErrEmptyReport is raised when a rule fails with a Report holding no violations.
	ErrEmptyReport = errors.New("validator: rule failed with an empty report")

	// ErrUnsupportedOperand is raised when a merge operand is nil or of an unknown kind.
	ErrUnsupportedOperand = errors.New("validator: unsupported merge operand")

	// ErrUnsupportedType is raised when a built-in rule receives a value it has no
	// notion of, for example a size rule applied to a struct.
	ErrUnsupportedType = errors.New("validator: unsupported value type")

	// ErrInvalidIdentifier is raised when an identifier wraps a non-comparable value.
	ErrInvalidIdentifier = errors.New("validator: identifier must be comparable")
)

var usageErrors = []error{
	ErrInvalidFailure,
	ErrEmptyReport,
	ErrUnsupportedOperand,
	ErrUnsupportedType,
	ErrInvalidIdentifier,
}

// IsUsageError reports whether v, typically a value obtained from recover(),
// is one of the usage errors raised by this package.
func IsUsageError(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	for _, target := range usageErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
