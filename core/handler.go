package core

import (
	"context"

	"github.com/hupe1980/mirrorskill/logging"
)

// HandlerInput carries everything a handler needs for one turn: the ambient
// context, the inbound envelope, the attributes manager, a fresh response
// builder and a request scoped logger.
type HandlerInput struct {
	Context         context.Context
	InvocationID    string
	Envelope        *RequestEnvelope
	Attributes      *AttributesManager
	ResponseBuilder *ResponseBuilder
	Logger          logging.Logger
}

// NewHandlerInput constructs a HandlerInput with a new response builder and
// an attributes manager bound to store. A nil logger becomes NoOpLogger.
func NewHandlerInput(ctx context.Context, invocationID string, env *RequestEnvelope, store AttributesStore, logger logging.Logger) *HandlerInput {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &HandlerInput{
		Context:         ctx,
		InvocationID:    invocationID,
		Envelope:        env,
		Attributes:      NewAttributesManager(env, store),
		ResponseBuilder: NewResponseBuilder(),
		Logger:          logger,
	}
}

// RequestHandler serves the requests its CanHandle predicate claims.
type RequestHandler interface {
	CanHandle(in *HandlerInput) bool
	Handle(in *HandlerInput) (*Response, error)
}

// ErrorHandler turns an error raised during dispatch into a response.
type ErrorHandler interface {
	CanHandle(in *HandlerInput, err error) bool
	Handle(in *HandlerInput, err error) (*Response, error)
}

// RequestInterceptor runs before routing on every request.
type RequestInterceptor interface {
	Process(in *HandlerInput) error
}

// ResponseInterceptor runs after the handler (or error handler) produced a
// response.
type ResponseInterceptor interface {
	Process(in *HandlerInput, resp *Response) error
}

// RequestInterceptorFunc adapts a function to RequestInterceptor.
type RequestInterceptorFunc func(in *HandlerInput) error

// Process calls f(in).
func (f RequestInterceptorFunc) Process(in *HandlerInput) error { return f(in) }

// ResponseInterceptorFunc adapts a function to ResponseInterceptor.
type ResponseInterceptorFunc func(in *HandlerInput, resp *Response) error

// Process calls f(in, resp).
func (f ResponseInterceptorFunc) Process(in *HandlerInput, resp *Response) error { return f(in, resp) }

// IsRequestType reports whether the envelope carries a request of type t.
func IsRequestType(in *HandlerInput, t RequestType) bool {
	return in.Envelope.RequestType() == t
}

// IsIntent reports whether the envelope is an intent request for one of names.
func IsIntent(in *HandlerInput, names ...string) bool {
	if !IsRequestType(in, IntentRequest) {
		return false
	}
	got := in.Envelope.IntentName()
	for _, n := range names {
		if got == n {
			return true
		}
	}
	return false
}
