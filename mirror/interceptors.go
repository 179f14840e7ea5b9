package mirror

import (
	"errors"
	"strconv"

	"github.com/hupe1980/mirrorskill/core"
)

// LoadStateInterceptor copies the persistent (name, characteristic) pair into
// the session state when both fields are present. It never writes the
// persistent attributes and leaves the session state alone otherwise. Without
// a configured store there is nothing to load and the request proceeds.
type LoadStateInterceptor struct{}

// Process implements core.RequestInterceptor.
func (LoadStateInterceptor) Process(in *core.HandlerInput) error {
	persisted, err := in.Attributes.PersistentState(in.Context)
	if errors.Is(err, core.ErrNoStore) {
		return nil
	}
	if err != nil {
		return err
	}
	if persisted.Complete() {
		in.Attributes.SetSessionState(persisted)
	}
	return nil
}

// LogResponseInterceptor writes a debug line describing the outgoing response.
type LogResponseInterceptor struct{}

// Process implements core.ResponseInterceptor.
func (LogResponseInterceptor) Process(in *core.HandlerInput, resp *core.Response) error {
	end := ""
	if resp.ShouldEndSession != nil {
		end = strconv.FormatBool(*resp.ShouldEndSession)
	}
	in.Logger.Debug("mirror.response.sent",
		"speech", resp.SpeechText(),
		"reprompt", resp.RepromptText() != "",
		"directives", len(resp.Directives),
		"should_end_session", end,
	)
	return nil
}
