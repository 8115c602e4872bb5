package validator

import "fmt"

// Fail turns a message into a failure tagged with the identifier of the value
// under validation. Rules receive it already bound.
type Fail func(message string) error

// Rule checks a single value. On success it returns the value, normally
// unchanged, and a nil error. On failure it returns the zero value and a
// Report. Rules are stateless and safe for concurrent use.
type Rule[T any] func(value T, id ID, fail Fail) (T, error)

// failFor returns the error factory bound to id.
func failFor(id ID) Fail {
	return func(message string) error {
		return Report{{ID: id, Message: message}}
	}
}

// invoke runs rule and enforces that any failure is a non-empty, unwrapped
// Report.
// Every boundary consuming a rule result goes through here.
func invoke[T any](rule Rule[T], value T, id ID, fail Fail) (T, Report) {
	out, err := rule(value, id, fail)
	if err == nil {
		return out, nil
	}

	// Wrapped reports are rejected too: the wrapper's context would be lost.
	report, ok := err.(Report)
	if !ok {
		panic(fmt.Errorf("%w: %T: %v", ErrInvalidFailure, err, err))
	}
	if len(report) == 0 {
		panic(ErrEmptyReport)
	}
	var zero T
	return zero, report
}

// Check runs the rule against value with violations tagged by id
// (an ID or a raw key).
func (r Rule[T]) Check(value T, id any) (T, error) {
	key := toID(id)
	out, report := invoke(r, value, key, failFor(key))
	if report != nil {
		return out, report
	}
	return out, nil
}

// Validates binds the rule to value, producing an Input with NoID.
// Chain WithID to name it.
func (r Rule[T]) Validates(value T) Input[T] {
	return NewInput(NoID, value, r)
}

// And runs next after r, stopping at the first failure.
func (r Rule[T]) And(next Rule[T]) Rule[T] {
	return Compose(r, next)
}

// WithMessage replaces the message of every violation produced by r.
func (r Rule[T]) WithMessage(message string) Rule[T] {
	return func(value T, id ID, fail Fail) (T, error) {
		out, report := invoke(r, value, id, fail)
		if report == nil {
			return out, nil
		}
		replaced := make(Report, len(report))
		for i, v := range report {
			v.Message = message
			replaced[i] = v
		}
		return out, replaced
	}
}

// Scope is handed to Build bodies. It records violations for the value being
// checked and is discarded when the body returns.
type Scope[T any] struct {
	value T
	b     *Builder
}

func (s *Scope[T]) Value() T {
	return s.value
}

func (s *Scope[T]) ID() ID {
	return s.b.id
}

// Error records a violation unconditionally.
func (s *Scope[T]) Error(message string) {
	s.b.Add(message)
}

func (s *Scope[T]) Errorf(format string, args ...any) {
	s.b.Add(fmt.Sprintf(format, args...))
}

// ErrorIf records a violation when cond holds for the value.
func (s *Scope[T]) ErrorIf(cond func(T) bool, message string) {
	if cond(s.value) {
		s.b.Add(message)
	}
}

func (s *Scope[T]) ErrorCode(code, message string) {
	s.b.AddCode(code, message)
}

func (s *Scope[T]) ErrorCodeIf(cond func(T) bool, code, message string) {
	if cond(s.value) {
		s.b.AddCode(code, message)
	}
}

// Build creates a rule from a body that records zero or more violations.
// No violations means success with the original value; otherwise the rule
// fails with exactly the recorded violations.
//
//	adult := validator.Build(func(s *validator.Scope[int], age int) {
//		s.ErrorIf(func(v int) bool { return v < 18 }, "must be an adult")
//	})
func Build[T any](body func(s *Scope[T], value T)) Rule[T] {
	return func(value T, id ID, _ Fail) (T, error) {
		s := &Scope[T]{value: value, b: &Builder{id: id}}
		body(s, value)
		if err := s.b.Err(); err != nil {
			var zero T
			return zero, err
		}
		return value, nil
	}
}

// Predicate creates a rule failing with message whenever ok returns false.
func Predicate[T any](ok func(T) bool, message string) Rule[T] {
	return predicate("", message, ok)
}

func predicate[T any](code, message string, ok func(T) bool) Rule[T] {
	return func(value T, id ID, _ Fail) (T, error) {
		if ok(value) {
			return value, nil
		}
		var zero T
		return zero, Report{{ID: id, Message: message, Code: code}}
	}
}
