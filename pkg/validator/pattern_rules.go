package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Matches validates the value against re. The description names the pattern
// in the message, e.g. "postal code".
func Matches(re *regexp.Regexp, description string) Rule[string] {
	return predicate(CodePattern, fmt.Sprintf("must match %s pattern", description), re.MatchString)
}

// NotMatches is the negation of Matches.
func NotMatches(re *regexp.Regexp, description string) Rule[string] {
	return predicate(CodeNotPattern, fmt.Sprintf("must not match %s pattern", description), func(v string) bool {
		return !re.MatchString(v)
	})
}

func NoWhitespace() Rule[string] {
	return predicate(CodeNoWhitespace, "must not contain whitespace", func(v string) bool {
		return !strings.ContainsFunc(v, unicode.IsSpace)
	})
}

func ASCII() Rule[string] {
	return predicate(CodeASCII, "must contain only ASCII characters", func(v string) bool {
		for i := 0; i < len(v); i++ {
			if v[i] > unicode.MaxASCII {
				return false
			}
		}
		return true
	})
}

func ContainsUpper() Rule[string] {
	return predicate(CodeUppercase, "must contain at least one uppercase letter", func(v string) bool {
		return strings.ContainsFunc(v, unicode.IsUpper)
	})
}

func ContainsLower() Rule[string] {
	return predicate(CodeLowercase, "must contain at least one lowercase letter", func(v string) bool {
		return strings.ContainsFunc(v, unicode.IsLower)
	})
}

func ContainsDigit() Rule[string] {
	return predicate(CodeDigit, "must contain at least one digit", func(v string) bool {
		return strings.ContainsFunc(v, unicode.IsDigit)
	})
}

// ContainsSpecial requires a punctuation or symbol character.
func ContainsSpecial() Rule[string] {
	return predicate(CodeSpecial, "must contain at least one special character", func(v string) bool {
		return strings.ContainsFunc(v, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
	})
}
