package mediator

import (
	"context"
)

// Request represents a command or query dispatched through the mediator.
// Requests are plain immutable values; they carry parameters and no behavior.
type Request interface{}

// Response represents the result of handling a request. Commands that have
// no meaningful result return a nil Response.
type Response interface{}

// RequestHandler handles exactly one concrete request type.
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc adapts a plain function to the RequestHandler interface.
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

func (f HandlerFunc) Handle(ctx context.Context, request Request) (Response, error) {
	return f(ctx, request)
}

// Behavior wraps every dispatch with a cross-cutting concern such as
// validation or logging. next produces the result of the rest of the chain,
// eventually the registered handler. A behavior either calls next and returns
// (possibly after inspecting) its result, or returns without calling next,
// short-circuiting everything downstream including the handler.
type Behavior func(ctx context.Context, request Request, next HandlerFunc) (Response, error)
