package factory

import (
	"errors"
	"reflect"
	"strconv"

	"fixture-generator/node"
)

var (
	ErrUnsupportedType    = errors.New("unsupported type")
	ErrStrategyInvocation = errors.New("strategy invocation failed")
	ErrMetadataFormat     = errors.New("malformed field metadata")

	ErrWrongType       = errors.New("value of the wrong type")
	ErrSetterPanic     = errors.New("setter panicked")
	ErrNotAPointer     = errors.New("not a non-nil pointer to a struct")
	ErrDesignatedTwice = errors.New("designated constructor registered twice")
)

// UnsupportedTypeError reports a type no construction path exists for.
// Cause holds the failure of the last constructor tried, if any.
type UnsupportedTypeError struct {
	Type  reflect.Type
	Path  string
	Cause error
}

func (e *UnsupportedTypeError) Error() string {
	msg := "unsupported type " + node.TypeStr(e.Type) + at(e.Path)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

func (e *UnsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }
func (e *UnsupportedTypeError) Unwrap() error        { return e.Cause }

// StrategyInvocationError reports a strategy which is unknown, failed, or
// produced a value not assignable to the requested type.
type StrategyInvocationError struct {
	Type     reflect.Type
	Path     string
	Strategy string
	Err      error
}

func (e *StrategyInvocationError) Error() string {
	return "strategy " + e.Strategy + " for " + node.TypeStr(e.Type) + at(e.Path) + ": " + e.Err.Error()
}

func (e *StrategyInvocationError) Is(target error) bool { return target == ErrStrategyInvocation }
func (e *StrategyInvocationError) Unwrap() error        { return e.Err }

// MetadataFormatError reports field metadata which cannot be applied: a
// malformed tag, or an exact value or bound not convertible to the type.
type MetadataFormatError struct {
	Type  reflect.Type
	Path  string
	Value string
	Err   error
}

func (e *MetadataFormatError) Error() string {
	return "metadata " + strconv.Quote(e.Value) + " for " + node.TypeStr(e.Type) + at(e.Path) + ": " + e.Err.Error()
}

func (e *MetadataFormatError) Is(target error) bool { return target == ErrMetadataFormat }
func (e *MetadataFormatError) Unwrap() error        { return e.Err }

// fatal errors abort the whole call instead of failing over to the next
// constructor.
func fatal(err error) bool {
	return errors.Is(err, ErrStrategyInvocation) || errors.Is(err, ErrMetadataFormat)
}

func at(path string) string {
	if path == "" {
		return ""
	}

	return " at " + path
}
