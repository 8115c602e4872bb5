package sanitizer

import "strings"

// Deduplicate keeps the first occurrence of every element.
func Deduplicate[T comparable](values []T) []T {
	if values == nil {
		return nil
	}
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// CleanStrings trims every element and drops empty ones and duplicates.
func CleanStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return Deduplicate(out)
}

// Limit truncates a slice to at most n elements.
func Limit[T any](n int) func([]T) []T {
	n = max(n, 0)
	return func(values []T) []T {
		if len(values) <= n {
			return values
		}
		return values[:n]
	}
}
