package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type address struct {
	Street string
	City   string
}

type person struct {
	Name    string
	Age     int
	Address address
	Tags    []string
}

var addressRule = validator.Object(func(f *validator.Fields, a address) {
	validator.Field(f, "street", a.Street, validator.NotBlank())
	validator.Field(f, "city", a.City, validator.NotBlank())
})

var personRule = validator.Object(func(f *validator.Fields, p person) {
	validator.Field(f, "name", p.Name, validator.NotBlank())
	validator.Field(f, "age", p.Age, validator.Min(18))
	validator.Field(f, "address", p.Address, addressRule)
	validator.Field(f, "tags", p.Tags, validator.MaxSize[[]string](2), validator.Each(validator.MinLen(2)))
})

func TestObject(t *testing.T) {
	t.Parallel()

	valid := person{Name: "Ann", Age: 30, Address: address{"Main St 1", "Berlin"}, Tags: []string{"go"}}

	t.Run("valid object returns value", func(t *testing.T) {
		got, err := personRule.Check(valid, "person")
		require.NoError(t, err)
		assert.Equal(t, valid, got)
	})

	t.Run("two failing nested fields give two violations", func(t *testing.T) {
		p := valid
		p.Address = address{}

		_, err := personRule.Check(p, "person")
		report := mustReport(t, err)
		assert.Equal(t, validator.Report{
			{ID: validator.Key("street"), Message: "must not be blank", Code: validator.CodeBlank},
			{ID: validator.Key("city"), Message: "must not be blank", Code: validator.CodeBlank},
		}, report)
	})

	t.Run("all fields are checked", func(t *testing.T) {
		p := person{Name: " ", Age: 12, Address: address{City: "Paris"}, Tags: []string{"ok", "x"}}

		_, err := personRule.Check(p, "person")
		report := mustReport(t, err)
		assert.Equal(t, []validator.ID{
			validator.Key("name"),
			validator.Key("age"),
			validator.Key("street"),
			validator.Key("tags[1]"),
		}, report.IDs())
	})

	t.Run("zero fields succeed", func(t *testing.T) {
		empty := validator.Object(func(*validator.Fields, person) {})
		got, err := empty.Check(valid, "person")
		require.NoError(t, err)
		assert.Equal(t, valid, got)
	})

	t.Run("check accepts merged sources", func(t *testing.T) {
		rule := validator.Object(func(f *validator.Fields, p person) {
			f.Check(validator.Merge(
				validator.NewInput("name", p.Name, validator.NotBlank()),
				validator.NewInput("age", p.Age, validator.Min(18)),
			))
		})
		_, err := rule.Check(person{}, "person")
		assert.Len(t, mustReport(t, err), 2)
	})

	t.Run("usable as a merge operand", func(t *testing.T) {
		_, err := validator.MergeAny(
			validator.NewInput("person", person{Age: 40, Address: valid.Address}, personRule),
			validator.NewInput("nickname", "", validator.NotBlank()),
		)
		assert.Equal(t, []validator.ID{validator.Key("name"), validator.Key("nickname")}, mustReport(t, err).IDs())
	})
}

func TestEach(t *testing.T) {
	t.Parallel()

	rule := validator.Each(validator.EmailFormat())

	t.Run("tags elements by index", func(t *testing.T) {
		_, err := rule.Check([]string{"a@example.com", "bad", "worse"}, "emails")
		report := mustReport(t, err)
		assert.Equal(t, []validator.ID{validator.Key("emails[1]"), validator.Key("emails[2]")}, report.IDs())
	})

	t.Run("returns checked elements", func(t *testing.T) {
		trim := validator.Each(validator.Transform(func(s string) string { return s + "!" }))
		got, err := trim.Check([]string{"a", "b"}, "xs")
		require.NoError(t, err)
		assert.Equal(t, []string{"a!", "b!"}, got)
	})

	t.Run("no id uses bare index", func(t *testing.T) {
		_, err := rule.Check([]string{"a@example.com", "bad"}, validator.NoID)
		assert.Equal(t, []validator.ID{validator.Key("[1]")}, mustReport(t, err).IDs())
	})

	t.Run("nil and empty", func(t *testing.T) {
		got, err := rule.Check(nil, "emails")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = rule.Check([]string{}, "emails")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
