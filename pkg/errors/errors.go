// Package errors provides structured error handling for the dropdown
// library and its host integrations.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a settings-loading failure.
	KindConfig
	// KindUpdate indicates a failure inside a host update function.
	KindUpdate
	// KindView indicates a failure while producing a UI description.
	KindView
	// KindTransport indicates a failure on the host's event transport.
	KindTransport
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindUpdate:
		return "update"
	case KindView:
		return "view"
	case KindTransport:
		return "transport"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// WidgetError represents a structured error in the dropdown library.
type WidgetError struct {
	// Op is the operation that failed (e.g., "dropdown.LoadSettingsFile").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WidgetError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WidgetError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "program.Dispatch").
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

// ErrorHandler receives errors reported by the dropdown library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *WidgetError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
