package validator

import "time"

// SetNow fixes the clock used by date rules and returns a restore func.
func SetNow(t time.Time) func() {
	prev := now
	now = func() time.Time { return t }
	return func() { now = prev }
}
