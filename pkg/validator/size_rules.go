package validator

import (
	"fmt"
	"reflect"
)

// Lengther is implemented by custom collections that know their size.
type Lengther interface {
	Len() int
}

var lengtherType = reflect.TypeFor[Lengther]()

// sizeOf returns the number of elements of v: characters for strings,
// elements for arrays, slices, maps and channels, or Len() for a Lengther.
func sizeOf(v any) (int, bool) {
	if l, ok := v.(Lengther); ok {
		return l.Len(), true
	}
	if s, ok := v.(string); ok {
		return runeLen(s), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return runeLen(rv.String()), true
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice:
		return rv.Len(), true
	}
	return 0, false
}

// sized reports whether values of t always have a size. Interface types are
// resolved per value at check time.
func sized(t reflect.Type) bool {
	if t.Kind() == reflect.Interface || t.Implements(lengtherType) {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Array, reflect.Chan, reflect.Map, reflect.Slice:
		return true
	}
	return false
}

// sizeRule builds a rule over the size of T. Types without a notion of size
// panic with ErrUnsupportedType, when the rule is built for concrete types
// and when it is checked for interface types holding such values.
func sizeRule[T any](code, message string, ok func(n int) bool) Rule[T] {
	if t := reflect.TypeFor[T](); !sized(t) {
		panic(fmt.Errorf("%w: %s has no size", ErrUnsupportedType, t))
	}
	return func(value T, id ID, _ Fail) (T, error) {
		n, known := sizeOf(value)
		if !known {
			panic(fmt.Errorf("%w: %T has no size", ErrUnsupportedType, value))
		}
		if ok(n) {
			return value, nil
		}
		var zero T
		return zero, Report{{ID: id, Message: message, Code: code}}
	}
}

// MinSize validates that a string, collection or Lengther holds at least min elements.
func MinSize[T any](min int) Rule[T] {
	return sizeRule[T](CodeMinItems, fmt.Sprintf("must have at least %d items", min), func(n int) bool {
		return n >= min
	})
}

func MaxSize[T any](max int) Rule[T] {
	return sizeRule[T](CodeMaxItems, fmt.Sprintf("must have at most %d items", max), func(n int) bool {
		return n <= max
	})
}

func SizeBetween[T any](min, max int) Rule[T] {
	return sizeRule[T](CodeItemsRange, fmt.Sprintf("must have between %d and %d items", min, max), func(n int) bool {
		return n >= min && n <= max
	})
}

// NotEmptySize fails on empty strings and collections.
func NotEmptySize[T any]() Rule[T] {
	return sizeRule[T](CodeRequired, "field is required", func(n int) bool {
		return n > 0
	})
}
