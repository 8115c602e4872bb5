package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type queue struct{ items []int }

func (q queue) Len() int { return len(q.items) }

func TestSizeRules(t *testing.T) {
	t.Parallel()

	t.Run("slices", func(t *testing.T) {
		checkRule(t, validator.MinSize[[]int](2), validator.CodeMinItems, [][]int{{1, 2}, {1, 2, 3}}, [][]int{nil, {1}})
		checkRule(t, validator.MaxSize[[]int](1), validator.CodeMaxItems, [][]int{nil, {1}}, [][]int{{1, 2}})
	})

	t.Run("maps", func(t *testing.T) {
		checkRule(t, validator.SizeBetween[map[string]int](1, 2), validator.CodeItemsRange,
			[]map[string]int{{"a": 1}, {"a": 1, "b": 2}},
			[]map[string]int{{}, {"a": 1, "b": 2, "c": 3}},
		)
	})

	t.Run("strings count characters", func(t *testing.T) {
		checkRule(t, validator.MaxSize[string](2), validator.CodeMaxItems, []string{"日本"}, []string{"abc"})
	})

	t.Run("arrays", func(t *testing.T) {
		checkRule(t, validator.MinSize[[3]byte](3), validator.CodeMinItems, [][3]byte{{}}, nil)
	})

	t.Run("lengther", func(t *testing.T) {
		checkRule(t, validator.NotEmptySize[queue](), validator.CodeRequired, []queue{{items: []int{1}}}, []queue{{}})
	})

	t.Run("message", func(t *testing.T) {
		_, err := validator.MinSize[[]string](1).Check(nil, "tags")
		assert.Equal(t, []string{"must have at least 1 items"}, mustReport(t, err).Get("tags"))
	})

	t.Run("unsized type panics when built", func(t *testing.T) {
		err := panicErr(t, func() { validator.MinSize[int](1) })
		assert.ErrorIs(t, err, validator.ErrUnsupportedType)

		err = panicErr(t, func() { validator.NotEmptySize[struct{ Name string }]() })
		assert.ErrorIs(t, err, validator.ErrUnsupportedType)
	})

	t.Run("interface holding unsized value panics when checked", func(t *testing.T) {
		rule := validator.MaxSize[any](3)

		v, err := rule.Check([]string{"a"}, "payload")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, v)

		err = panicErr(t, func() { _, _ = rule.Check(42, "payload") })
		assert.ErrorIs(t, err, validator.ErrUnsupportedType)
		assert.True(t, validator.IsUsageError(err))
	})
}
