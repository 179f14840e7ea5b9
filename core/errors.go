package core

import "errors"

var (
	// ErrNoHandler is returned when no route claims the request.
	ErrNoHandler = errors.New("no request handler found")
	// ErrMissingSlot is returned when an intent lacks a required slot value.
	ErrMissingSlot = errors.New("missing slot value")
	// ErrNoUserID is returned when persistence is needed but the envelope
	// carries no user identity.
	ErrNoUserID = errors.New("request has no user id")
	// ErrNoStore is returned when persistent attributes are used without a
	// configured AttributesStore.
	ErrNoStore = errors.New("no attributes store configured")
)
