package result

import (
	"context"
	"errors"
	"fmt"
)

// ErrPanic wraps a value recovered from a panicking function in TryCatch.
var ErrPanic = errors.New("result: panic")

// ErrNilFunc is the failure returned by TryCatch for a nil function.
var ErrNilFunc = errors.New("result: nil function")

// ErrNoError is stored by Failure when it is given a nil error.
var ErrNoError = errors.New("result: failure without error")

// Result is either a success carrying Data or a failure carrying Err.
//
// A failed Result always has the zero value of T in Data.
type Result[T any] struct {
	Data T
	Err  error
}

// Success returns a successful Result holding v.
func Success[T any](v T) Result[T] { return Result[T]{Data: v} }

// Failure returns a failed Result holding err.
//
// A nil err still yields a failure, reported as ErrNoError.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = ErrNoError
	}
	return Result[T]{Err: err}
}

// Ok reports whether r is a success.
func (r Result[T]) Ok() bool { return r.Err == nil }

// Unwrap returns the data and error in the usual Go shape.
func (r Result[T]) Unwrap() (T, error) { return r.Data, r.Err }

// OrElse returns Data for a success and def for a failure.
func (r Result[T]) OrElse(def T) T {
	if r.Err != nil {
		return def
	}
	return r.Data
}

// From builds a Result from a (value, error) pair.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// Map applies fn to a successful Result's data. Failures pass through with
// their error unchanged.
func Map[T, R any](r Result[T], fn func(T) R) Result[R] {
	if r.Err != nil {
		return Failure[R](r.Err)
	}
	return Success(fn(r.Data))
}

// ErrorAs returns the failure's error as E when it matches via errors.As.
func ErrorAs[E error, T any](r Result[T]) (E, bool) {
	var target E
	if r.Err == nil {
		return target, false
	}
	ok := errors.As(r.Err, &target)
	return target, ok
}

// TryCatch runs fn and captures its outcome.
//
// A returned error becomes a failure. A panic is recovered and reported as a
// failure wrapping ErrPanic. If ctx is already done, fn is not called and the
// failure carries ctx.Err(). A nil ctx is treated as context.Background().
func TryCatch[T any](ctx context.Context, fn func(context.Context) (T, error)) (res Result[T]) {
	if fn == nil {
		return Failure[T](ErrNilFunc)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Failure[T](err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			if err, ok := rec.(error); ok {
				res = Failure[T](fmt.Errorf("%w: %w", ErrPanic, err))
				return
			}
			res = Failure[T](fmt.Errorf("%w: %v", ErrPanic, rec))
		}
	}()

	v, err := fn(ctx)
	return From(v, err)
}
