package validator

// Codes attached to violations produced by the built-in rules.
const (
	CodeRequired     = "validation.required"
	CodeBlank        = "validation.blank"
	CodeMinLength    = "validation.min_length"
	CodeMaxLength    = "validation.max_length"
	CodeLengthRange  = "validation.length_range"
	CodeExactLength  = "validation.exact_length"
	CodeMin          = "validation.min"
	CodeMax          = "validation.max"
	CodeRange        = "validation.range"
	CodePositive     = "validation.positive"
	CodeNonNegative  = "validation.non_negative"
	CodeEqual        = "validation.equal"
	CodeNotEqual     = "validation.not_equal"
	CodeInList       = "validation.in_list"
	CodeNotInList    = "validation.not_in_list"
	CodeEmail        = "validation.email"
	CodeURL          = "validation.url"
	CodeURLScheme    = "validation.url_scheme"
	CodePhone        = "validation.phone"
	CodeIP           = "validation.ip"
	CodeIPv4         = "validation.ipv4"
	CodeIPv6         = "validation.ipv6"
	CodeAlphanumeric = "validation.alphanumeric"
	CodeAlpha        = "validation.alpha"
	CodeDigits       = "validation.numeric_string"
	CodePattern      = "validation.regex_pattern"
	CodeNotPattern   = "validation.regex_not_pattern"
	CodeNoWhitespace = "validation.no_whitespace"
	CodeASCII        = "validation.ascii_only"
	CodeUppercase    = "validation.contains_uppercase"
	CodeLowercase    = "validation.contains_lowercase"
	CodeDigit        = "validation.contains_digit"
	CodeSpecial      = "validation.contains_special"
	CodeMinItems     = "validation.min_items"
	CodeMaxItems     = "validation.max_items"
	CodeItemsRange   = "validation.items_range"
	CodeDatePast     = "validation.date_past"
	CodeDateFuture   = "validation.date_future"
	CodeDateAfter    = "validation.date_after"
	CodeDateBefore   = "validation.date_before"
	CodeDateBetween  = "validation.date_between"
	CodeMinAge       = "validation.min_age"
	CodeUUID         = "validation.uuid"
	CodeUUIDVersion  = "validation.uuid_version"
	CodeUUIDNotNil   = "validation.uuid_not_nil"
)
