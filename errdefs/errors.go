// Package errdefs defines the domain error taxonomy shared by all grand
// components. Every expected failure is an *Error with one of the five
// kinds below; callers separate domain failures from unexpected ones with
// IsDomain and branch on KindOf.
package errdefs

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindDistribution
	KindGeneration
	KindOutput
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDistribution:
		return "distribution"
	case KindGeneration:
		return "generation"
	case KindOutput:
		return "output"
	case KindConfiguration:
		return "configuration"
	}
	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// Error is the root domain error: a kind, a message, and an optional
// wrapped cause.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Cause }

func Newf(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Wrapf attaches a domain kind and context to cause. A nil cause yields nil.
func Wrapf(k Kind, cause error, format string, args ...interface{}) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

func Validationf(format string, args ...interface{}) *Error {
	return Newf(KindValidation, format, args...)
}

func Distributionf(format string, args ...interface{}) *Error {
	return Newf(KindDistribution, format, args...)
}

func Generationf(format string, args ...interface{}) *Error {
	return Newf(KindGeneration, format, args...)
}

func Outputf(format string, args ...interface{}) *Error {
	return Newf(KindOutput, format, args...)
}

func Configurationf(format string, args ...interface{}) *Error {
	return Newf(KindConfiguration, format, args...)
}

// KindOf reports the domain kind of err, or 0 when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsDomain reports whether err is (or wraps) a domain error.
func IsDomain(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
