package validator

import (
	"fmt"
	"reflect"
)

// noIDText is how NoID renders.
const noIDText = "<no-id>"

// ID names the value being validated and tags every violation it produces.
// The zero value is NoID.
type ID struct {
	key any
	set bool
}

// NoID is the identifier of inputs that are not tied to a named field,
// such as the ones created by Bypass.
var NoID = ID{}

// Key wraps a comparable value into an identifier. Identifiers compare and
// print by the wrapped value, so Key("email") == Key("email").
// It panics with ErrInvalidIdentifier when the dynamic value is not comparable.
func Key[K comparable](key K) ID {
	return toID(key)
}

// toID converts an arbitrary key into an identifier. Existing identifiers are
// returned unchanged.
func toID(key any) ID {
	switch k := key.(type) {
	case ID:
		return k
	case nil:
		panic(fmt.Errorf("%w: got nil", ErrInvalidIdentifier))
	}
	if !reflect.TypeOf(key).Comparable() {
		panic(fmt.Errorf("%w: got %T", ErrInvalidIdentifier, key))
	}
	return ID{key: key, set: true}
}

// IsNone reports whether id is NoID.
func (id ID) IsNone() bool {
	return !id.set
}

// Value returns the wrapped key, or nil for NoID.
func (id ID) Value() any {
	return id.key
}

// Equal reports whether both identifiers wrap the same key.
func (id ID) Equal(other ID) bool {
	return id == other
}

func (id ID) String() string {
	if !id.set {
		return noIDText
	}
	if s, ok := id.key.(string); ok {
		return s
	}
	return fmt.Sprint(id.key)
}

// MarshalText renders the identifier for encoders such as encoding/json map keys.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
