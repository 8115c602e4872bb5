package forms

import (
	"regexp"

	"github.com/dmitrymomot/rulekit/pkg/sanitizer"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type Signup struct {
	Name       string   `json:"name" yaml:"name"`
	Email      string   `json:"email" yaml:"email"`
	Age        int      `json:"age" yaml:"age"`
	Password   string   `json:"password" yaml:"password,omitempty"`
	Website    string   `json:"website,omitempty" yaml:"website,omitempty"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Address    Address  `json:"address" yaml:"address"`
	ReferrerID string   `json:"referrer_id,omitempty" yaml:"referrer_id,omitempty"`
}

type Address struct {
	Street   string `json:"street" yaml:"street"`
	City     string `json:"city" yaml:"city"`
	Postcode string `json:"postcode" yaml:"postcode"`
	Country  string `json:"country" yaml:"country"`
}

const MaxTags = 5

// Countries accepted in addresses, ISO 3166-1 alpha-2.
var Countries = []string{"AT", "CH", "DE", "FR", "GB", "NL", "US"}

var postcodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,10}$`)

// NormalizeSignup cleans user input before it is checked.
func NormalizeSignup(s Signup) Signup {
	s.Name = sanitizer.NormalizeWhitespace(s.Name)
	s.Email = sanitizer.NormalizeEmail(s.Email)
	if s.Website != "" {
		s.Website = sanitizer.NormalizeURL(s.Website)
	}
	s.Tags = sanitizer.Compose(
		sanitizer.Each(sanitizer.ToLower),
		sanitizer.CleanStrings,
	)(s.Tags)
	s.ReferrerID = sanitizer.Trim(s.ReferrerID)
	s.Address = NormalizeAddress(s.Address)
	return s
}

func NormalizeAddress(a Address) Address {
	a.Street = sanitizer.NormalizeWhitespace(a.Street)
	a.City = sanitizer.NormalizeWhitespace(a.City)
	a.Postcode = sanitizer.NormalizePostcode(a.Postcode)
	a.Country = sanitizer.Trim(a.Country)
	return a
}

// SignupRule normalises a Signup and checks every field. The rule returns the
// normalised value. Violations are keyed by JSON field path.
func SignupRule() validator.Rule[Signup] {
	return validator.Compose(
		validator.Transform(NormalizeSignup),
		validator.Object(func(f *validator.Fields, s Signup) {
			validator.Field(f, "name", s.Name, validator.NotBlank(), validator.LenBetween(2, 64))
			validator.Field(f, "email", s.Email, validator.NotBlank(), validator.EmailFormat())
			validator.Field(f, "age", s.Age, validator.Between(18, 130))
			validator.Field(f, "password", s.Password, PasswordRule())
			validator.Field(f, "website", s.Website, validator.Optional(validator.URLWithScheme("http", "https")))
			validator.Field(f, "tags", s.Tags,
				validator.MaxSize[[]string](MaxTags),
				validator.Each(validator.Compose(validator.LenBetween(2, 20), validator.NoWhitespace())),
			)
			validator.Field(f, "address", s.Address, AddressRule())
			validator.Field(f, "referrer_id", s.ReferrerID, validator.Optional(validator.UUID()))
		}),
	)
}

// AddressRule checks an Address. Violations are keyed "address.<field>".
func AddressRule() validator.Rule[Address] {
	return validator.Object(func(f *validator.Fields, a Address) {
		validator.Field(f, "address.street", a.Street, validator.NotBlank(), validator.MaxLen(128))
		validator.Field(f, "address.city", a.City, validator.NotBlank(), validator.MaxLen(64))
		validator.Field(f, "address.postcode", a.Postcode,
			validator.NotBlank(),
			validator.Matches(postcodeRegex, "postal code"),
		)
		validator.Field(f, "address.country", a.Country, validator.OneOfFold(Countries...))
	})
}

// PasswordRule reports every missing password requirement at once.
func PasswordRule() validator.Rule[string] {
	return validator.Compose(
		validator.NotEmpty(),
		validator.All(
			validator.MinLen(8),
			validator.MaxLen(72),
			validator.ContainsUpper(),
			validator.ContainsLower(),
			validator.ContainsDigit(),
		),
	)
}
