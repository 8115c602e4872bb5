package validator

// Adapt lets a rule written for R check values of type T. The rule runs on
// transform(value) with the same identifier, and on success the original T
// value is returned untouched.
//
//	bufEmail := validator.Adapt(validator.EmailFormat(), func(b []byte) string { return string(b) })
func Adapt[T, R any](rule Rule[R], transform func(T) R) Rule[T] {
	return func(value T, id ID, fail Fail) (T, error) {
		if _, report := invoke(rule, transform(value), id, fail); report != nil {
			var zero T
			return zero, report
		}
		return value, nil
	}
}
