package sanitizer

import (
	"net/url"
	"strings"
)

// NormalizeEmail trims and lowercases an address and collapses repeated dots
// in the local part. Values without exactly one "@" are only trimmed and
// lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	for strings.Contains(local, "..") {
		local = strings.ReplaceAll(local, "..", ".")
	}
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// NormalizePhone keeps the digits of a phone number and a leading plus.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := KeepDigits(phone)
	if strings.HasPrefix(phone, "+") && digits != "" {
		return "+" + digits
	}
	return digits
}

// NormalizeURL trims the value, adds an https scheme when none is present,
// lowercases the host and drops a bare trailing slash. Unparseable values are
// returned trimmed.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Path == "/" {
		u.Path = ""
	}
	return u.String()
}

// NormalizePostcode uppercases a postal code and removes spaces and dashes.
func NormalizePostcode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	return strings.NewReplacer(" ", "", "-", "").Replace(code)
}
