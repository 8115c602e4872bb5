// Package sanitizer provides small normalisers of the form func(T) T.
//
// They never fail: a value that cannot be normalised is returned unchanged
// and left for a validator rule to reject. Plug them into a rule chain with
// validator.Transform, or build pipelines with Compose:
//
//	email := validator.Compose(
//		validator.Transform(sanitizer.NormalizeEmail),
//		validator.NotBlank(),
//		validator.EmailFormat(),
//	)
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.NormalizeWhitespace)
//	clean("  Mixed   input\n") // "Mixed input"
//
// All functions are stateless and safe for concurrent use.
package sanitizer
