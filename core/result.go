package core

// Result outcome of a call whose failure the caller may choose to tolerate
type Result[T any] struct {
	Value T
	Err   error
}

// Ok successful result
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fail failed result
func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// Failed report whether the call failed
func (r Result[T]) Failed() bool {
	return r.Err != nil
}

// ValueOr value, or def when the call failed
func (r Result[T]) ValueOr(def T) T {
	if r.Failed() {
		return def
	}

	return r.Value
}
