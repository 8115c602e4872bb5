package validator

import "reflect"

// Compose runs rules left to right and stops at the first failure, returning
// only that failure. Later rules are not evaluated. The value returned by each
// successful rule is passed to the next one. Zero rules always succeed.
//
// Order rules cheapest and most fundamental first, e.g. NotBlank before EmailFormat.
func Compose[T any](rules ...Rule[T]) Rule[T] {
	if len(rules) == 1 {
		return rules[0]
	}
	return func(value T, id ID, fail Fail) (T, error) {
		current := value
		for _, rule := range rules {
			out, report := invoke(rule, current, id, fail)
			if report != nil {
				return out, report
			}
			current = out
		}
		return current, nil
	}
}

// All runs every rule and concatenates their failures in order. A rule sees
// the value returned by the last successful rule before it.
func All[T any](rules ...Rule[T]) Rule[T] {
	return func(value T, id ID, fail Fail) (T, error) {
		current := value
		var collected Report
		for _, rule := range rules {
			out, report := invoke(rule, current, id, fail)
			if report != nil {
				collected = append(collected, report...)
				continue
			}
			current = out
		}
		if len(collected) > 0 {
			var zero T
			return zero, collected
		}
		return current, nil
	}
}

// When applies rule only if cond holds for the value.
func When[T any](cond func(T) bool, rule Rule[T]) Rule[T] {
	return func(value T, id ID, fail Fail) (T, error) {
		if !cond(value) {
			return value, nil
		}
		out, report := invoke(rule, value, id, fail)
		if report != nil {
			return out, report
		}
		return out, nil
	}
}

// Optional composes rules that only run when the value is not its zero value.
func Optional[T any](rules ...Rule[T]) Rule[T] {
	return When(func(v T) bool { return !isZero(v) }, Compose(rules...))
}

// Transform returns a rule that always succeeds with fn applied to the value.
// Use it in front of other rules to normalise input, e.g. trimming spaces.
func Transform[T any](fn func(T) T) Rule[T] {
	return func(value T, _ ID, _ Fail) (T, error) {
		return fn(value), nil
	}
}

func isZero[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	return rv.IsZero()
}
