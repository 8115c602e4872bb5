package forms

import (
	"github.com/dmitrymomot/rulekit/pkg/sanitizer"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Credentials carries the password as bytes so callers can wipe it.
type Credentials struct {
	Email    string
	Password []byte
}

// bytePassword checks a []byte password with the string rules.
var bytePassword = validator.Adapt(PasswordRule(), func(b []byte) string { return string(b) })

// CheckCredentials validates both fields together and returns the normalised
// email and the untouched password.
func CheckCredentials(c Credentials) (string, []byte, error) {
	return validator.Validate2(
		validator.NewInput("email", c.Email,
			validator.Transform(sanitizer.NormalizeEmail),
			validator.NotBlank(),
			validator.EmailFormat(),
		),
		bytePassword.Validates(c.Password).WithID("password"),
	)
}
