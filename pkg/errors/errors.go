// Package errors provides structured error handling for genui.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindResource indicates a color, drawable, or style could not be resolved.
	KindResource
	// KindDescriptor indicates a malformed view descriptor (unknown kind, bad attribute).
	KindDescriptor
	// KindBridge indicates a native bridge call failure.
	KindBridge
	// KindParsing indicates a payload parsing failure.
	KindParsing
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindBinding indicates a model binding could not be applied.
	KindBinding
)

func (k ErrorKind) String() string {
	switch k {
	case KindResource:
		return "resource"
	case KindDescriptor:
		return "descriptor"
	case KindBridge:
		return "bridge"
	case KindParsing:
		return "parsing"
	case KindPanic:
		return "panic"
	case KindBinding:
		return "binding"
	default:
		return "unknown"
	}
}

// GenUIError represents a structured error raised while building or driving a view tree.
type GenUIError struct {
	// Op is the operation that failed (e.g., "builder.Build").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// View is the identifier of the view involved, if any.
	View string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *GenUIError) Error() string {
	if e.View != "" {
		return fmt.Sprintf("%s [%s] view=%s: %v", e.Op, e.Kind, e.View, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GenUIError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "platform.Looper").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to parse a payload field.
type ParseError struct {
	// Field is the name of the field being decoded.
	Field string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("failed to parse %s: got %T", e.DataType, e.Got)
	}
	return fmt.Sprintf("failed to parse %s from field %s: got %T", e.DataType, e.Field, e.Got)
}

// ErrorHandler receives errors reported by genui.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *GenUIError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// New returns a GenUIError for the given operation and kind.
func New(op string, kind ErrorKind, err error) *GenUIError {
	return &GenUIError{Op: op, Kind: kind, Err: err}
}

// ForView returns a GenUIError tagged with a view identifier.
func ForView(op string, kind ErrorKind, view string, err error) *GenUIError {
	return &GenUIError{Op: op, Kind: kind, View: view, Err: err}
}
