// Package result holds a value or an error in a single object, so callers can
// pass outcomes around and inspect them later.
//
//	e := result.Err[string](errors.New("oops something went wrong"))
//	v := result.Val("Bon Voyage")
package result

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of errors originated by this package.
var Error = errs.Class("result")

// ErrNilError is carried by a failed Result that was built from a nil error.
var ErrNilError = Error.New("failed result built from a nil error")

// Result is either Ok, holding a value, or Failed, holding a non-nil error.
// The zero value is Ok with T's zero value.
type Result[T any] struct {
	value T // zero when err != nil
	err   error
}

// Val returns an Ok result holding v.
func Val[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a Failed result holding e. A nil e is replaced by ErrNilError.
func Err[T any](e error) Result[T] {
	if e == nil {
		e = ErrNilError
	}
	return Result[T]{err: e}
}

// New builds a result from a (value, error) pair, as returned by most
// functions. A non-nil err wins and v is dropped.
func New[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Val(v)
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// MustValue returns the value, panicking if r is Failed.
func (r Result[T]) MustValue() T {
	if r.err != nil {
		panic(Error.Wrap(r.err))
	}
	return r.value
}

func (r Result[T]) ValueOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Failed(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
