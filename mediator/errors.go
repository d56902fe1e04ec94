package mediator

import (
	"fmt"
	"reflect"
	"strings"
)

// NoHandlerFoundError is returned by Send when no handler is registered for
// the dispatched request's concrete type. This is a configuration mistake,
// not a runtime condition worth retrying.
type NoHandlerFoundError struct {
	RequestType reflect.Type
}

func (e *NoHandlerFoundError) Error() string {
	return fmt.Sprintf("no handler registered for request type %s", e.RequestType)
}

// DuplicateHandlerError is returned by Register when a handler is already
// bound to the request type. Detected eagerly at registration time so a
// misconfigured application refuses to start.
type DuplicateHandlerError struct {
	RequestType reflect.Type
}

func (e *DuplicateHandlerError) Error() string {
	return fmt.Sprintf("handler already registered for request type %s", e.RequestType)
}

// ValidationFailure records a single rule that a single field failed.
type ValidationFailure struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError aborts a dispatch before the handler runs. It carries the
// original request, every failure reported by every validator for the
// request's type (in validator registration order), and the names of the
// validators that were executed.
type ValidationError struct {
	Request  Request
	Failures []ValidationFailure
	RuleSets []string
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Field + " " + f.Message
	}
	return fmt.Sprintf("validation failed for %T: %s", e.Request, strings.Join(parts, "; "))
}
