package result

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MarshalLogObject emits "ok" and then either "value" or "error".
func (r Result[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("ok", r.err == nil)
	if r.err != nil {
		zap.NamedError("error", r.err).AddTo(enc)
		return nil
	}
	return enc.AddReflected("value", r.value)
}

// Field renders r as a structured zap field under key.
func Field[S ~string, T any](key S, r Result[T]) zap.Field {
	return zap.Object(string(key), r)
}
