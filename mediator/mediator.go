package mediator

import (
	"context"
	"fmt"
	"reflect"
)

// Mediator dispatches requests to their registered handlers, routing every
// dispatch through the configured behavior chain first.
//
// Register and Use are startup-time operations. Once wiring is complete,
// Send only reads the handler map and is safe for concurrent use.
type Mediator struct {
	handlers  map[reflect.Type]RequestHandler
	behaviors []Behavior
}

// New creates an empty mediator.
func New() *Mediator {
	return &Mediator{
		handlers: make(map[reflect.Type]RequestHandler),
	}
}

// Register binds a handler to a request type. Exactly one handler is allowed
// per concrete request type; a second registration fails with
// *DuplicateHandlerError.
func (m *Mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	if requestType == nil {
		return fmt.Errorf("request type cannot be nil")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	if _, exists := m.handlers[requestType]; exists {
		return &DuplicateHandlerError{RequestType: requestType}
	}

	m.handlers[requestType] = handler
	return nil
}

// Use appends a behavior to the chain. Behaviors run in the order they were
// added; the first Use call wraps outermost.
func (m *Mediator) Use(behavior Behavior) {
	m.behaviors = append(m.behaviors, behavior)
}

// Send dispatches a request to the handler registered for its concrete type.
// Lookup is by exact runtime type identity. The handler is not invoked
// directly: Send composes the behavior chain around it and invokes the head
// of the chain, so any behavior may short-circuit the dispatch.
func (m *Mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	requestType := reflect.TypeOf(request)
	handler, ok := m.handlers[requestType]
	if !ok {
		return nil, &NoHandlerFoundError{RequestType: requestType}
	}

	chain := HandlerFunc(handler.Handle)
	for i := len(m.behaviors) - 1; i >= 0; i-- {
		behavior := m.behaviors[i]
		next := chain
		chain = func(ctx context.Context, request Request) (Response, error) {
			return behavior(ctx, request, next)
		}
	}

	return chain(ctx, request)
}

// RegisterHandler registers a handler with the request type inferred from T.
func RegisterHandler[T Request](m *Mediator, handler RequestHandler) error {
	var zero T
	return m.Register(reflect.TypeOf(zero), handler)
}
