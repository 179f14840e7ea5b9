package skill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/mirrorskill/core"
	"github.com/hupe1980/mirrorskill/logging"
)

// Route binds a handler to a name used in logs and route listings.
type Route struct {
	Name    string
	Handler core.RequestHandler
}

// Options configures a Skill instance using the functional options pattern.
type Options struct {
	// Routes are evaluated in order; the first handler whose CanHandle
	// returns true serves the request.
	Routes []Route

	// RequestInterceptors run in order before routing.
	RequestInterceptors []core.RequestInterceptor

	// ResponseInterceptors run in order after a response was produced.
	ResponseInterceptors []core.ResponseInterceptor

	// ErrorHandlers are evaluated in order for any dispatch error.
	ErrorHandlers []core.ErrorHandler

	// Store backs persistent attributes. With a nil store every persistent
	// access returns core.ErrNoStore.
	Store core.AttributesStore

	// Logger defaults to NoOpLogger if nil.
	Logger logging.Logger
}

// Skill dispatches request envelopes to handlers. It is immutable after
// construction and safe for concurrent use.
type Skill struct {
	routes               []Route
	requestInterceptors  []core.RequestInterceptor
	responseInterceptors []core.ResponseInterceptor
	errorHandlers        []core.ErrorHandler
	store                core.AttributesStore
	logger               logging.Logger
}

// New creates a Skill from the provided option functions.
func New(optFns ...func(o *Options)) *Skill {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Skill{
		routes:               append([]Route(nil), opts.Routes...),
		requestInterceptors:  append([]core.RequestInterceptor(nil), opts.RequestInterceptors...),
		responseInterceptors: append([]core.ResponseInterceptor(nil), opts.ResponseInterceptors...),
		errorHandlers:        append([]core.ErrorHandler(nil), opts.ErrorHandlers...),
		store:                opts.Store,
		logger:               opts.Logger,
	}
}

// Routes returns the route names in evaluation order.
func (s *Skill) Routes() []string {
	names := make([]string, len(s.routes))
	for i, r := range s.routes {
		names[i] = r.Name
	}
	return names
}

// Invoke processes one request envelope and returns the response envelope.
// Errors raised by interceptors or handlers, and requests no route claims,
// are given to the error handlers. Invoke itself only fails when no error
// handler could produce a response.
func (s *Skill) Invoke(ctx context.Context, env *core.RequestEnvelope) (*core.ResponseEnvelope, error) {
	if env == nil {
		return nil, errors.New("nil request envelope")
	}
	invocationID := uuid.NewString()
	logger := s.scopedLogger(env, invocationID)
	in := core.NewHandlerInput(ctx, invocationID, env, s.store, logger)

	logger.Debug("skill.request.received", "type", string(env.RequestType()), "intent", env.IntentName())

	resp, err := s.dispatch(in)
	if err != nil {
		resp, err = s.handleError(in, err)
		if err != nil {
			return nil, err
		}
	}

	for _, ri := range s.responseInterceptors {
		if err := ri.Process(in, resp); err != nil {
			return nil, fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	out := &core.ResponseEnvelope{Version: core.EnvelopeVersion, Response: *resp}
	if st := in.Attributes.SessionState(); !st.IsZero() {
		out.SessionAttributes = &st
	}
	return out, nil
}

// Handle has the signature expected by the Lambda runtime.
func (s *Skill) Handle(ctx context.Context, env *core.RequestEnvelope) (*core.ResponseEnvelope, error) {
	return s.Invoke(ctx, env)
}

func (s *Skill) dispatch(in *core.HandlerInput) (*core.Response, error) {
	for _, ri := range s.requestInterceptors {
		if err := ri.Process(in); err != nil {
			return nil, fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	for _, r := range s.routes {
		if !r.Handler.CanHandle(in) {
			continue
		}
		start := time.Now()
		resp, err := r.Handler.Handle(in)
		s.logDispatch(in.Logger, r.Name, time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("handler %s: %w", r.Name, err)
		}
		if resp == nil {
			resp = &core.Response{}
		}
		return resp, nil
	}

	return nil, fmt.Errorf("%w: type=%s intent=%s", core.ErrNoHandler, in.Envelope.RequestType(), in.Envelope.IntentName())
}

func (s *Skill) handleError(in *core.HandlerInput, cause error) (*core.Response, error) {
	for _, eh := range s.errorHandlers {
		if !eh.CanHandle(in, cause) {
			continue
		}
		resp, err := eh.Handle(in, cause)
		if err != nil {
			return nil, fmt.Errorf("error handler failed: %w (cause: %v)", err, cause)
		}
		if resp == nil {
			resp = &core.Response{}
		}
		return resp, nil
	}
	in.Logger.Error("skill.error.unhandled", "error", cause.Error())
	return nil, cause
}

func (s *Skill) scopedLogger(env *core.RequestEnvelope, invocationID string) logging.Logger {
	sl, ok := s.logger.(*logging.SkillLogger)
	if !ok {
		return s.logger
	}
	sl = sl.WithRequest(env.Request.RequestID, env.SessionID(), invocationID)
	if env.Request.Locale != "" {
		sl = sl.WithContext("locale", env.Request.Locale)
	}
	return sl
}

func (s *Skill) logDispatch(logger logging.Logger, handler string, dur time.Duration, err error) {
	if dl, ok := logger.(interface {
		LogDispatch(handler string, dur time.Duration, success bool, err error)
	}); ok {
		dl.LogDispatch(handler, dur, err == nil, err)
		return
	}
	if err != nil {
		logger.Error("skill.dispatch.failed", "handler", handler, "duration", dur, "error", err.Error())
		return
	}
	logger.Info("skill.dispatch.completed", "handler", handler, "duration", dur)
}
