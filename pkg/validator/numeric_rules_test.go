package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestNumericRules(t *testing.T) {
	t.Parallel()

	t.Run("min", func(t *testing.T) {
		checkRule(t, validator.Min(18), validator.CodeMin, []int{18, 99}, []int{17, -1})
		_, err := validator.Min(18).Check(10, "age")
		assert.Equal(t, []string{"must be at least 18"}, mustReport(t, err).Get("age"))
	})

	t.Run("max", func(t *testing.T) {
		checkRule(t, validator.Max(1.5), validator.CodeMax, []float64{1.5, -3}, []float64{1.51})
	})

	t.Run("between", func(t *testing.T) {
		checkRule(t, validator.Between[uint8](1, 5), validator.CodeRange, []uint8{1, 5}, []uint8{0, 6})
	})

	t.Run("positive", func(t *testing.T) {
		checkRule(t, validator.Positive[int64](), validator.CodePositive, []int64{1}, []int64{0, -1})
	})

	t.Run("non negative", func(t *testing.T) {
		checkRule(t, validator.NonNegative[float32](), validator.CodeNonNegative, []float32{0, 2}, []float32{-0.1})
	})
}

func TestComparableRules(t *testing.T) {
	t.Parallel()

	t.Run("required", func(t *testing.T) {
		checkRule(t, validator.Required[int](), validator.CodeRequired, []int{1, -1}, []int{0})
		checkRule(t, validator.Required[string](), validator.CodeRequired, []string{" "}, []string{""})
	})

	t.Run("equal", func(t *testing.T) {
		checkRule(t, validator.Equal("yes"), validator.CodeEqual, []string{"yes"}, []string{"no", ""})
	})

	t.Run("not equal", func(t *testing.T) {
		checkRule(t, validator.NotEqual(0), validator.CodeNotEqual, []int{1}, []int{0})
	})
}

func TestChoiceRules(t *testing.T) {
	t.Parallel()

	t.Run("one of", func(t *testing.T) {
		checkRule(t, validator.OneOf("user", "admin"), validator.CodeInList, []string{"user", "admin"}, []string{"root", "User"})
		_, err := validator.OneOf("user", "admin").Check("root", "role")
		assert.Equal(t, []string{"must be one of: [user admin]"}, mustReport(t, err).Get("role"))
	})

	t.Run("none of", func(t *testing.T) {
		checkRule(t, validator.NoneOf(1, 2), validator.CodeNotInList, []int{3}, []int{1, 2})
	})

	t.Run("one of fold", func(t *testing.T) {
		rule := validator.OneOfFold("straße", "Admin")
		checkRule(t, rule, validator.CodeInList, []string{"STRASSE", "admin", "ADMIN"}, []string{"street"})
	})
}
