package validator

import (
	"fmt"
	"reflect"
)

// Source is anything that can take part in a merge: an Input or a Merged.
// The interface is sealed; other kinds of operands cannot be merged.
type Source interface {
	collect() ([]any, Report)
}

// Merged validates several sources together. Every leaf is always evaluated,
// so a form reports all of its field errors at once.
type Merged struct {
	left, right Source
}

// Merge combines two sources. On success the payload holds one value per leaf
// input in declaration order, however the merges are nested. On failure the
// Reports of all failing leaves are concatenated in the same order.
// It panics with ErrUnsupportedOperand when an operand is nil or a zero Merged.
func Merge(left, right Source) Merged {
	mustSource(left)
	mustSource(right)
	return Merged{left: left, right: right}
}

// Merge appends another source to the right of m.
func (m Merged) Merge(other Source) Merged {
	return Merge(m, other)
}

// Validate evaluates every leaf and returns their values in declaration order.
func (m Merged) Validate() ([]any, error) {
	values, report := m.collect()
	if report != nil {
		return nil, report
	}
	return values, nil
}

func (m Merged) collect() ([]any, Report) {
	m.mustBuilt()
	lv, lr := m.left.collect()
	rv, rr := m.right.collect()
	if lr != nil || rr != nil {
		return nil, concat(lr, rr)
	}
	return append(lv, rv...), nil
}

// MergeAny validates every source and returns all values in order, or the
// concatenated Reports of the failing ones. Values are only returned when
// every source succeeds.
func MergeAny(sources ...Source) ([]any, error) {
	for _, s := range sources {
		mustSource(s)
	}

	var (
		values   []any
		failures Report
	)
	for _, s := range sources {
		v, report := s.collect()
		if report != nil {
			failures = append(failures, report...)
			continue
		}
		values = append(values, v...)
	}
	if len(failures) > 0 {
		return nil, failures
	}
	if values == nil {
		values = []any{}
	}
	return values, nil
}

// MergeAll is the typed form of MergeAny for inputs of one type.
func MergeAll[T any](inputs ...Input[T]) ([]T, error) {
	values := make([]T, 0, len(inputs))
	var failures Report
	for _, in := range inputs {
		v, report := in.run()
		if report != nil {
			failures = append(failures, report...)
			continue
		}
		values = append(values, v)
	}
	if len(failures) > 0 {
		return nil, failures
	}
	return values, nil
}

// Validate2 merges two inputs of different types and keeps their static types.
func Validate2[A, B any](a Input[A], b Input[B]) (A, B, error) {
	va, ra := a.run()
	vb, rb := b.run()
	if ra != nil || rb != nil {
		var (
			za A
			zb B
		)
		return za, zb, concat(ra, rb)
	}
	return va, vb, nil
}

// Validate3 merges three inputs of different types and keeps their static types.
func Validate3[A, B, C any](a Input[A], b Input[B], c Input[C]) (A, B, C, error) {
	va, ra := a.run()
	vb, rb := b.run()
	vc, rc := c.run()
	if ra != nil || rb != nil || rc != nil {
		var (
			za A
			zb B
			zc C
		)
		return za, zb, zc, concat(ra, rb, rc)
	}
	return va, vb, vc, nil
}

func concat(reports ...Report) Report {
	var out Report
	for _, r := range reports {
		out = append(out, r...)
	}
	return out
}

// mustSource rejects operands that cannot be collected: nil sources, nil
// pointers and zero Merged values.
func mustSource(s Source) {
	if s == nil {
		panic(fmt.Errorf("%w: nil source", ErrUnsupportedOperand))
	}
	if rv := reflect.ValueOf(s); rv.Kind() == reflect.Pointer && rv.IsNil() {
		panic(fmt.Errorf("%w: nil %T", ErrUnsupportedOperand, s))
	}
	switch m := s.(type) {
	case Merged:
		m.mustBuilt()
	case *Merged:
		m.mustBuilt()
	}
}

func (m Merged) mustBuilt() {
	if m.left == nil || m.right == nil {
		panic(fmt.Errorf("%w: zero Merged, use Merge", ErrUnsupportedOperand))
	}
}
