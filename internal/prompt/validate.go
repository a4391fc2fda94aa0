package prompt

import (
	"strconv"
	"strings"
)

// Result is the outcome of validating one line: either a value or nothing.
type Result[T any] struct {
	value T
	valid bool
}

// Success wraps an accepted value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, valid: true}
}

// Failure reports a rejected line.
func Failure[T any]() Result[T] {
	return Result[T]{}
}

func (r Result[T]) Valid() bool {
	return r.valid
}

// Value returns the accepted value, or the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Validator converts raw text into a typed value.
type Validator[T any] interface {
	Validate(raw string) Result[T]
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc[T any] func(raw string) Result[T]

func (f ValidatorFunc[T]) Validate(raw string) Result[T] {
	return f(raw)
}

// MenuIndex accepts a 1-based menu choice and yields the zero-based index.
type MenuIndex struct {
	Options int
}

// Validate accepts integers in [1, Options]. Surrounding whitespace, including
// the line terminator, is ignored.
func (m MenuIndex) Validate(raw string) Result[int] {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Failure[int]()
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return Failure[int]()
	}
	index := parsed - 1
	if index < 0 || index >= m.Options {
		return Failure[int]()
	}
	return Success(index)
}
