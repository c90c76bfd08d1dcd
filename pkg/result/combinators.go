package result

// Match calls onOk or onErr depending on the variant of r.
func Match[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// Map transforms the value of an Ok result. A Failed result keeps its error
// under the new value type.
func Map[A, B any](r Result[A], fn func(A) B) Result[B] {
	if r.err != nil {
		return Result[B]{err: r.err}
	}
	return Val(fn(r.value))
}

// Then chains a step that may fail. fn is not called when r is Failed.
func Then[A, B any](r Result[A], fn func(A) Result[B]) Result[B] {
	if r.err != nil {
		return Result[B]{err: r.err}
	}
	return fn(r.value)
}
