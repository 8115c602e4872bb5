package validator

import (
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var (
	// E.164 with optional leading plus
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	digitsRegex       = regexp.MustCompile(`^[0-9]+$`)
)

// EmailFormat validates a bare address such as user@example.com.
// Display-name forms like "John <john@example.com>" are rejected.
func EmailFormat() Rule[string] {
	return predicate(CodeEmail, "must be a valid email address", isEmail)
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL validates an absolute URL with a scheme and a host.
func URL() Rule[string] {
	return predicate(CodeURL, "must be a valid URL", func(v string) bool {
		u, ok := parseURL(v)
		return ok && u.Scheme != "" && u.Host != ""
	})
}

// URLWithScheme validates an absolute URL restricted to schemes.
func URLWithScheme(schemes ...string) Rule[string] {
	message := fmt.Sprintf("must be a valid URL with scheme: %s", strings.Join(schemes, ", "))
	return predicate(CodeURLScheme, message, func(v string) bool {
		u, ok := parseURL(v)
		return ok && u.Host != "" && slices.Contains(schemes, u.Scheme)
	})
}

func parseURL(v string) (*url.URL, bool) {
	if strings.TrimSpace(v) == "" {
		return nil, false
	}
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return nil, false
	}
	return u, true
}

// Phone validates an international number in E.164 form. Spaces and dashes
// are ignored.
func Phone() Rule[string] {
	return predicate(CodePhone, "must be a valid phone number in international format", func(v string) bool {
		cleaned := strings.NewReplacer(" ", "", "-", "").Replace(v)
		return phoneRegex.MatchString(cleaned)
	})
}

func IP() Rule[string] {
	return predicate(CodeIP, "must be a valid IP address", func(v string) bool {
		return net.ParseIP(v) != nil
	})
}

func IPv4() Rule[string] {
	return predicate(CodeIPv4, "must be a valid IPv4 address", func(v string) bool {
		ip := net.ParseIP(v)
		return ip != nil && ip.To4() != nil && !strings.Contains(v, ":")
	})
}

// IPv6 accepts IPv4-mapped forms such as ::ffff:192.0.2.1.
func IPv6() Rule[string] {
	return predicate(CodeIPv6, "must be a valid IPv6 address", func(v string) bool {
		return net.ParseIP(v) != nil && strings.Contains(v, ":")
	})
}

func Alphanumeric() Rule[string] {
	return predicate(CodeAlphanumeric, "must contain only letters and numbers", alphanumericRegex.MatchString)
}

func Alpha() Rule[string] {
	return predicate(CodeAlpha, "must contain only letters", alphaRegex.MatchString)
}

// Digits validates a non-empty string of ASCII digits.
func Digits() Rule[string] {
	return predicate(CodeDigits, "must contain only digits", digitsRegex.MatchString)
}
