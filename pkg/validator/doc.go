// Package validator provides composable, type-safe validation rules and a
// structured Report that aggregates every field-level violation of a call.
//
// A Rule[T] is a plain function checking one value of type T. Rules are
// stateless, so a rule built once can be shared between goroutines and reused
// for any number of inputs. The built-in catalog (NotBlank, EmailFormat, Min,
// MinSize, UUID, ...) returns such rules; custom ones are written with Build
// or Predicate.
//
// # Core building blocks
//
//   - ID        – names the validated value; NoID for untagged values
//   - Violation – one (ID, Message, Code) failure
//   - Report    – ordered violations; the only failure payload, implements error
//   - Rule[T]   – func(value T, id ID, fail Fail) (T, error)
//   - Input[T]  – a value bound to an ID and its rules
//   - Merged    – several inputs validated together
//
// # Composition
//
// Rules applied to one value run in priority order and stop at the first
// failure, so the user sees the most actionable message:
//
//	email := validator.Compose(validator.NotBlank(), validator.EmailFormat())
//
// Inputs merged together always run to the end, so a form reports every
// broken field at once:
//
//	values, err := validator.MergeAny(
//	    validator.NotBlank().Validates(form.Name).WithID("name"),
//	    validator.Min(18).Validates(form.Age).WithID("age"),
//	)
//
// Object builds a rule for a struct from per-field checks and nests to any
// depth:
//
//	address := validator.Object(func(f *validator.Fields, a Address) {
//	    validator.Field(f, "city", a.City, validator.NotBlank())
//	})
//	user := validator.Object(func(f *validator.Fields, u User) {
//	    validator.Field(f, "name", u.Name, validator.NotBlank())
//	    validator.Field(f, "address", u.Address, address)
//	})
//
// # Error Handling
//
// A failed validation always returns a Report, which can be recovered from a
// wrapped error with AsReport and rendered with String (one violation per
// line) or logged directly through slog.
//
// Misuse is not a validation failure. A rule failing with anything other than
// a non-empty Report, a nil merge operand, a size rule used on a type without
// a size, or a non-comparable identifier panics with one of the Err* usage
// errors. IsUsageError classifies a recovered value.
package validator
