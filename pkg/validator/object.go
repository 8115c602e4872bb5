package validator

import "fmt"

// Fields collects the field checks declared inside an Object body.
type Fields struct {
	sources []Source
}

// Check declares a field check. Sources are evaluated after the body returns,
// in declaration order.
func (f *Fields) Check(sources ...Source) {
	for _, s := range sources {
		mustSource(s)
	}
	f.sources = append(f.sources, sources...)
}

// Field declares a check of value under id. It is shorthand for
// f.Check(NewInput(id, value, rules...)).
func Field[V any](f *Fields, id any, value V, rules ...Rule[V]) {
	f.Check(NewInput(id, value, rules...))
}

// Object builds a rule for a structured value from per-field checks. The id
// the rule is checked under is not used; violations carry the field ids. Every
// declared field is validated, and all of their violations are returned
// together, keeping the field identifiers. Object rules nest: a field rule may
// itself be an Object rule.
//
//	user := validator.Object(func(f *validator.Fields, u User) {
//		validator.Field(f, "name", u.Name, validator.NotBlank())
//		validator.Field(f, "age", u.Age, validator.Min(18))
//	})
func Object[T any](declare func(f *Fields, value T)) Rule[T] {
	return func(value T, _ ID, _ Fail) (T, error) {
		f := &Fields{}
		declare(f, value)

		var report Report
		for _, s := range f.sources {
			if _, r := s.collect(); r != nil {
				report = append(report, r...)
			}
		}
		if len(report) > 0 {
			var zero T
			return zero, report
		}
		return value, nil
	}
}

// Each applies rule to every element of a slice. Elements are tagged
// "<id>[<index>]", or "[<index>]" when id is NoID, and all failing elements
// are reported. Object rules ignore the id they are given, so violations of
// Each(Object(...)) keep the field identifiers and lose the index.
func Each[E any](rule Rule[E]) Rule[[]E] {
	return func(values []E, id ID, _ Fail) ([]E, error) {
		out := make([]E, len(values))
		var report Report
		for i, v := range values {
			elemID := elementID(id, i)
			res, r := invoke(rule, v, elemID, failFor(elemID))
			if r != nil {
				report = append(report, r...)
				continue
			}
			out[i] = res
		}
		if len(report) > 0 {
			return nil, report
		}
		if values == nil {
			return nil, nil
		}
		return out, nil
	}
}

func elementID(id ID, i int) ID {
	if id.IsNone() {
		return Key(fmt.Sprintf("[%d]", i))
	}
	return Key(fmt.Sprintf("%s[%d]", id, i))
}
