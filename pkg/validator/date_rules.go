package validator

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// now is replaced in tests.
var now = time.Now

func Past() Rule[time.Time] {
	return predicate(CodeDatePast, "date must be in the past", func(v time.Time) bool {
		return v.Before(now())
	})
}

func Future() Rule[time.Time] {
	return predicate(CodeDateFuture, "date must be in the future", func(v time.Time) bool {
		return v.After(now())
	})
}

func After(t time.Time) Rule[time.Time] {
	return predicate(CodeDateAfter, fmt.Sprintf("date must be after %s", t.Format(dateLayout)), func(v time.Time) bool {
		return v.After(t)
	})
}

func Before(t time.Time) Rule[time.Time] {
	return predicate(CodeDateBefore, fmt.Sprintf("date must be before %s", t.Format(dateLayout)), func(v time.Time) bool {
		return v.Before(t)
	})
}

// DateBetween validates start <= v <= end.
func DateBetween(start, end time.Time) Rule[time.Time] {
	message := fmt.Sprintf("date must be between %s and %s", start.Format(dateLayout), end.Format(dateLayout))
	return predicate(CodeDateBetween, message, func(v time.Time) bool {
		return !v.Before(start) && !v.After(end)
	})
}

// MinAge validates a birthdate, counting whole years as of today.
func MinAge(years int) Rule[time.Time] {
	return predicate(CodeMinAge, fmt.Sprintf("minimum age of %d years required", years), func(birthdate time.Time) bool {
		return age(birthdate, now()) >= years
	})
}

func age(birthdate, at time.Time) int {
	years := at.Year() - birthdate.Year()
	if at.Month() < birthdate.Month() ||
		(at.Month() == birthdate.Month() && at.Day() < birthdate.Day()) {
		years--
	}
	return years
}
