package validator

// Input binds a value to an identifier and an ordered list of rules.
// It is immutable; validating it has no side effects and can be repeated.
type Input[T any] struct {
	id    ID
	value T
	rules []Rule[T]
}

// NewInput binds value and rules to id (an ID or a raw comparable key).
// It is equivalent to Compose(rules...).Validates(value).WithID(id).
func NewInput[T any](id any, value T, rules ...Rule[T]) Input[T] {
	return Input[T]{
		id:    toID(id),
		value: value,
		rules: append([]Rule[T](nil), rules...),
	}
}

// Bypass wraps a value that is not validated. It always succeeds with value,
// which lets unchecked values take part in a merge.
func Bypass[T any](value T) Input[T] {
	return Input[T]{id: NoID, value: value}
}

// WithID returns a copy of the input tagged with id.
func (in Input[T]) WithID(id any) Input[T] {
	in.id = toID(id)
	return in
}

func (in Input[T]) ID() ID {
	return in.id
}

func (in Input[T]) Value() T {
	return in.value
}

// Validate runs the rules in order, stopping at the first failure. Every
// violation in the returned Report carries the input identifier.
func (in Input[T]) Validate() (T, error) {
	out, report := in.run()
	if report != nil {
		return out, report
	}
	return out, nil
}

// Merge combines the input with another source; both are always evaluated.
func (in Input[T]) Merge(other Source) Merged {
	return Merge(in, other)
}

func (in Input[T]) run() (T, Report) {
	return invoke(Compose(in.rules...), in.value, in.id, failFor(in.id))
}

func (in Input[T]) collect() ([]any, Report) {
	out, report := in.run()
	if report != nil {
		return nil, report
	}
	return []any{out}, nil
}
