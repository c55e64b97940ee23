// Package guard converts panics and errors from a single pipeline step into
// Fault values so that a failing step is recorded as a run diagnostic instead
// of aborting the whole run.
package guard

import (
	"fmt"
)

// A Fault is a failure of one named step, split into a stable kind label and
// a human-readable message. Faults render as "<kind>:<message>" in the run
// error list and as "Unhandled: <kind>: <message>" at the top level.
type Fault struct {
	Kind    string
	Message string
}

// Error implements the error interface.
func (f *Fault) Error() string {
	return f.Kind + ":" + f.Message
}

// Kinder is implemented by errors that carry their own kind label. Errors
// that do not implement it are recorded under the generic "Error" kind.
type Kinder interface {
	FaultKind() string
}

// Run invokes f and normalizes its outcome. A returned error becomes a Fault
// with the error's own kind if it provides one; a panic is recovered and
// becomes a Fault of kind "Panic". The zero value of T is returned alongside
// any fault.
func Run[T any](step string, f func() (T, error)) (result T, fault *Fault) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			fault = &Fault{Kind: "Panic", Message: fmt.Sprintf("%s: %v", step, r)}
		}
	}()

	result, err := f()
	if err == nil {
		return result, nil
	}

	kind := "Error"
	if k, ok := err.(Kinder); ok {
		kind = k.FaultKind()
	}
	return result, &Fault{Kind: kind, Message: fmt.Sprintf("%s: %v", step, err)}
}
