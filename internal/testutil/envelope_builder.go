package testutil

import (
	"context"

	"github.com/hupe1980/mirrorskill/core"
	"github.com/hupe1980/mirrorskill/logging"
)

// DefaultUserID is the user id applied by NewEnvelopeBuilder.
const DefaultUserID = "amzn1.ask.account.TEST"

// EnvelopeBuilder provides a fluent helper for constructing request envelopes
// in tests. Example:
//
//	env := NewEnvelopeBuilder().Intent("WhoIsTheXofAllIntent").Slot("characteristic", "prettiest").Build()
//
// Chain only the parts you need; sensible defaults are applied.
type EnvelopeBuilder struct {
	reqType    core.RequestType
	requestID  string
	sessionID  string
	userID     string
	newSession bool
	intent     string
	slots      map[string]core.Slot
	attrs      *core.State
	reason     string
	reqErr     *core.RequestError
	noContext  bool
}

// NewEnvelopeBuilder creates a builder for a LaunchRequest in a new session
// of DefaultUserID.
func NewEnvelopeBuilder() *EnvelopeBuilder {
	return &EnvelopeBuilder{
		reqType:    core.LaunchRequest,
		requestID:  "amzn1.echo-api.request.TEST",
		sessionID:  "amzn1.echo-api.session.TEST",
		userID:     DefaultUserID,
		newSession: true,
	}
}

// Launch makes the envelope a LaunchRequest (chainable).
func (b *EnvelopeBuilder) Launch() *EnvelopeBuilder { b.reqType = core.LaunchRequest; return b }

// Intent makes the envelope an IntentRequest for name (chainable).
func (b *EnvelopeBuilder) Intent(name string) *EnvelopeBuilder {
	b.reqType = core.IntentRequest
	b.intent = name
	return b
}

// Slot adds a slot with a value (chainable).
func (b *EnvelopeBuilder) Slot(name, value string) *EnvelopeBuilder {
	if b.slots == nil {
		b.slots = map[string]core.Slot{}
	}
	b.slots[name] = core.Slot{Name: name, Value: value, ConfirmationStatus: core.ConfirmationNone}
	return b
}

// EmptySlot adds a slot without a value (chainable).
func (b *EnvelopeBuilder) EmptySlot(name string) *EnvelopeBuilder {
	if b.slots == nil {
		b.slots = map[string]core.Slot{}
	}
	b.slots[name] = core.Slot{Name: name, ConfirmationStatus: core.ConfirmationNone}
	return b
}

// SessionEnded makes the envelope a SessionEndedRequest (chainable).
func (b *EnvelopeBuilder) SessionEnded(reason string, err *core.RequestError) *EnvelopeBuilder {
	b.reqType = core.SessionEndedRequest
	b.reason = reason
	b.reqErr = err
	return b
}

// Type sets an arbitrary request type (chainable).
func (b *EnvelopeBuilder) Type(t core.RequestType) *EnvelopeBuilder { b.reqType = t; return b }

// User overrides the user id; "" removes it (chainable).
func (b *EnvelopeBuilder) User(id string) *EnvelopeBuilder { b.userID = id; return b }

// Session sets the session id and whether the session is new (chainable).
func (b *EnvelopeBuilder) Session(id string, isNew bool) *EnvelopeBuilder {
	b.sessionID = id
	b.newSession = isNew
	return b
}

// Attributes sets the session attributes carried in from the previous turn (chainable).
func (b *EnvelopeBuilder) Attributes(s core.State) *EnvelopeBuilder {
	b.attrs = &s
	b.newSession = false
	return b
}

// WithoutContext drops the System context so the user id only lives on the
// session object (chainable).
func (b *EnvelopeBuilder) WithoutContext() *EnvelopeBuilder { b.noContext = true; return b }

// Build assembles the envelope.
func (b *EnvelopeBuilder) Build() *core.RequestEnvelope {
	app := core.Application{ApplicationID: "amzn1.ask.skill.TEST"}
	env := &core.RequestEnvelope{
		Version: "1.0",
		Session: &core.Session{
			New:         b.newSession,
			SessionID:   b.sessionID,
			Application: app,
			Attributes:  b.attrs,
			User:        &core.User{UserID: b.userID},
		},
		Request: core.Request{
			Type:      b.reqType,
			RequestID: b.requestID,
			Locale:    "en-US",
			Reason:    b.reason,
			Error:     b.reqErr,
		},
	}
	if !b.noContext {
		env.Context = &core.Context{System: core.System{Application: app, User: core.User{UserID: b.userID}}}
	}
	if b.reqType == core.IntentRequest {
		slots := make(map[string]core.Slot, len(b.slots))
		for k, v := range b.slots {
			slots[k] = v
		}
		env.Request.Intent = &core.Intent{Name: b.intent, ConfirmationStatus: core.ConfirmationNone, Slots: slots}
	}
	return env
}

// Input builds the envelope and wraps it in a HandlerInput bound to store.
func (b *EnvelopeBuilder) Input(store core.AttributesStore) *core.HandlerInput {
	return core.NewHandlerInput(context.Background(), "inv-test", b.Build(), store, logging.NoOpLogger{})
}
