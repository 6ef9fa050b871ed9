package core

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const modulePath = "github.com/lguimbarda/min-lazy"

// ErrPanic wraps a value recovered from a panicking transform or predicate.
// Stack holds the goroutine stack with this module's own frames removed, so
// it points straight at the user function that failed.
type ErrPanic struct {
	Value any
	Stack string
}

func (e ErrPanic) Error() string {
	if e.Stack != "" {
		return fmt.Sprintf("panic in pipeline: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic in pipeline: %v", e.Value)
}

// Unwrap exposes the recovered value when it was itself an error, so
// errors.Is and errors.As see through the panic.
func (e ErrPanic) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// NewPanicError creates an ErrPanic from a recovered value.
// It must be called from the deferred function that recovered.
func NewPanicError(recovered any) ErrPanic {
	return ErrPanic{
		Value: recovered,
		Stack: userStack(3),
	}
}

// IsPanic reports whether err carries a recovered panic.
func IsPanic(err error) bool {
	var p ErrPanic
	return errors.As(err, &p)
}

// userStack renders the calling goroutine's stack without runtime frames and
// without this module's own frames, outermost call last.
func userStack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	var lines []string
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var frame runtime.Frame
		frame, more = frames.Next()
		if internalFrame(frame) {
			continue
		}
		lines = append(lines, frame.Function, fmt.Sprintf("\t%s:%d", frame.File, frame.Line))
	}
	return strings.Join(lines, "\n")
}

// internalFrame reports whether frame belongs to the runtime or to a
// non-test file of this module.
func internalFrame(frame runtime.Frame) bool {
	if strings.HasSuffix(frame.File, "_test.go") {
		return false
	}
	return strings.HasPrefix(frame.Function, "runtime.") ||
		strings.HasPrefix(frame.Function, modulePath+"/lazy.") ||
		strings.HasPrefix(frame.Function, modulePath+"/lazy/")
}
