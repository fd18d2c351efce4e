// Package result provides an explicit two-variant success/failure container.
//
// Go call sites normally use (T, error) pairs directly; Result exists for
// code that wants to pass an outcome around as a single value before
// deciding what to do with it. Std converts back to the native idiom.
package result

import "fmt"

// Result holds either a value or an error, never both.
// It is an immutable value type; copying it is safe.
type Result[T any] struct {
	val T
	err error
}

// Ok wraps a successful value.
func Ok[T any](val T) Result[T] {
	return Result[T]{val: val}
}

// Err wraps a failure. It panics on a nil error, which would otherwise
// produce a Result with no populated variant.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with a nil error")
	}
	return Result[T]{err: err}
}

// IsOk reports whether the Result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Unwrap returns the value. Calling Unwrap on an Err is a programmer
// error and panics.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic("result: Unwrap called on an Err value")
	}
	return r.val
}

// UnwrapErr returns the error. Calling UnwrapErr on an Ok is a programmer
// error and panics.
func (r Result[T]) UnwrapErr() error {
	if r.err == nil {
		panic("result: UnwrapErr called on an Ok value")
	}
	return r.err
}

// Std converts the Result to Go's native (value, error) pair so callers
// can use ordinary error propagation.
func (r Result[T]) Std() (T, error) {
	return r.val, r.err
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.val)
}
