package validator

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID validates the canonical 36-character form.
func UUID() Rule[string] {
	return predicate(CodeUUID, "must be a valid UUID", func(v string) bool {
		_, ok := parseUUID(v)
		return ok
	})
}

// UUIDVersion validates a canonical UUID string of the given version.
func UUIDVersion(version int) Rule[string] {
	return predicate(CodeUUIDVersion, fmt.Sprintf("must be a valid UUID version %d", version), func(v string) bool {
		id, ok := parseUUID(v)
		return ok && int(id.Version()) == version
	})
}

func NonNilUUID() Rule[uuid.UUID] {
	return predicate(CodeUUIDNotNil, "UUID cannot be nil", func(v uuid.UUID) bool {
		return v != uuid.Nil
	})
}

func parseUUID(v string) (uuid.UUID, bool) {
	// uuid.Parse also accepts urn and braced forms; only the canonical one is valid here.
	if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
