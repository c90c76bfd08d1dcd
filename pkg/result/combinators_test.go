package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Match(t *testing.T) {
	describe := func(r Result[int]) string {
		return Match(r,
			func(v int) string { return "value " + strconv.Itoa(v) },
			func(err error) string { return "error " + err.Error() },
		)
	}

	assert.Equal(t, "value 5", describe(Val(5)))
	assert.Equal(t, "error boom", describe(Err[int](errors.New("boom"))))
}

func Test_MapTransformsValue(t *testing.T) {
	r := Map(Val(21), func(v int) string { return strconv.Itoa(v * 2) })

	assert.True(t, r.IsOk())
	assert.Equal(t, "42", r.Value())
}

func Test_MapPropagatesError(t *testing.T) {
	e := errors.New("boom")
	called := false

	r := Map(Err[int](e), func(v int) string {
		called = true
		return ""
	})

	assert.False(t, called)
	assert.Same(t, e, r.Err())
}

func Test_Then(t *testing.T) {
	parse := func(s string) Result[int] {
		return New(strconv.Atoi(s))
	}

	assert.Equal(t, 12, Then(Val("12"), parse).Value())
	assert.True(t, Then(Val("twelve"), parse).IsErr())

	e := errors.New("upstream")
	called := false
	r := Then(Err[string](e), func(s string) Result[int] {
		called = true
		return parse(s)
	})
	assert.False(t, called)
	assert.Same(t, e, r.Err())
}
