package mediator

import (
	"context"
	"reflect"
)

// Validator checks one request and reports rule failures. An empty or nil
// result means the request is valid.
type Validator interface {
	Validate(ctx context.Context, request Request) []ValidationFailure
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(ctx context.Context, request Request) []ValidationFailure

func (f ValidatorFunc) Validate(ctx context.Context, request Request) []ValidationFailure {
	return f(ctx, request)
}

// NamedValidator is an optional extension: validators that report a name have
// it recorded on ValidationError.RuleSets when they execute.
type NamedValidator interface {
	Validator
	Name() string
}

// ValidationBehavior short-circuits a dispatch when any validator registered
// for the request's type reports a failure. Request types without validators
// pass through untouched.
type ValidationBehavior struct {
	validators map[reflect.Type][]Validator
}

// NewValidationBehavior creates a validation behavior with an empty registry.
func NewValidationBehavior() *ValidationBehavior {
	return &ValidationBehavior{
		validators: make(map[reflect.Type][]Validator),
	}
}

// Register adds a validator for a request type. A type may have any number of
// validators; they run in registration order and ALL must pass for the
// request to reach its handler.
func (b *ValidationBehavior) Register(requestType reflect.Type, validator Validator) {
	b.validators[requestType] = append(b.validators[requestType], validator)
}

// Behavior returns the chain link to install with Mediator.Use.
func (b *ValidationBehavior) Behavior() Behavior {
	return func(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
		validators := b.validators[reflect.TypeOf(request)]
		if len(validators) == 0 {
			return next(ctx, request)
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var failures []ValidationFailure
		var ruleSets []string
		for _, v := range validators {
			failures = append(failures, v.Validate(ctx, request)...)
			if named, ok := v.(NamedValidator); ok {
				ruleSets = append(ruleSets, named.Name())
			}
		}

		if len(failures) > 0 {
			return nil, &ValidationError{
				Request:  request,
				Failures: failures,
				RuleSets: ruleSets,
			}
		}

		return next(ctx, request)
	}
}

// RegisterValidator registers a validator with the request type inferred from T.
func RegisterValidator[T Request](b *ValidationBehavior, validator Validator) {
	var zero T
	b.Register(reflect.TypeOf(zero), validator)
}
