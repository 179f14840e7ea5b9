package mirror

import (
	"fmt"

	"github.com/hupe1980/mirrorskill/core"
	"github.com/hupe1980/mirrorskill/internal/util"
)

func render(tmpl string, data speechData) (string, error) {
	out, err := util.RenderTemplate(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("failed to render speech: %w", err)
	}
	return out, nil
}

func requireSlot(in *core.HandlerInput, slot string) (string, error) {
	v, ok := in.Envelope.SlotValue(slot)
	if !ok {
		return "", fmt.Errorf("%w: %s", core.ErrMissingSlot, slot)
	}
	return v, nil
}

// LaunchHandler greets the user when the skill is opened without an intent.
type LaunchHandler struct{}

func (LaunchHandler) CanHandle(in *core.HandlerInput) bool {
	return core.IsRequestType(in, core.LaunchRequest)
}

func (LaunchHandler) Handle(in *core.HandlerInput) (*core.Response, error) {
	return in.ResponseBuilder.Speak(SpeechWelcome).Reprompt(SpeechWelcomeReprompt).Response(), nil
}

// WhoIsTheXofAllHandler answers from the session state, or asks who has the
// characteristic and elicits the name for SaveCharacteristicIntent.
type WhoIsTheXofAllHandler struct{}

func (WhoIsTheXofAllHandler) CanHandle(in *core.HandlerInput) bool {
	return core.IsIntent(in, IntentWhoIsTheXofAll)
}

func (WhoIsTheXofAllHandler) Handle(in *core.HandlerInput) (*core.Response, error) {
	asked, err := requireSlot(in, SlotCharacteristic)
	if err != nil {
		return nil, err
	}
	state := in.Attributes.SessionState()

	// Only one characteristic is remembered; anything else is unknown.
	if state.Knows(asked) {
		speech, err := render(SpeechAnswer, speechData{Name: state.Name, Characteristic: state.Characteristic})
		if err != nil {
			return nil, err
		}
		return in.ResponseBuilder.Speak(speech).Response(), nil
	}

	data := speechData{Characteristic: asked}
	speech, err := render(SpeechUnknown, data)
	if err != nil {
		return nil, err
	}
	reprompt, err := render(SpeechUnknownReprompt, data)
	if err != nil {
		return nil, err
	}
	in.Logger.Debug("mirror.characteristic.unknown", "asked", asked, "known", state.Characteristic)

	return in.ResponseBuilder.
		AddElicitSlotDirective(SlotName, saveCharacteristicIntent(asked)).
		Speak(speech).
		Reprompt(reprompt).
		Response(), nil
}

// saveCharacteristicIntent is the updated intent sent with the elicit-slot
// directive; it carries the asked characteristic so the next turn knows it.
func saveCharacteristicIntent(characteristic string) *core.Intent {
	return &core.Intent{
		Name:               IntentSaveCharacteristic,
		ConfirmationStatus: core.ConfirmationNone,
		Slots: map[string]core.Slot{
			SlotCharacteristic: {
				Name:               SlotCharacteristic,
				Value:              characteristic,
				ConfirmationStatus: core.ConfirmationNone,
				SlotValue:          &core.SlotValue{Type: "Simple", Value: characteristic},
			},
			SlotName: {
				Name:               SlotName,
				ConfirmationStatus: core.ConfirmationNone,
			},
		},
	}
}

// SaveCharacteristicHandler acknowledges the elicited name. With
// PersistLearned it also stores the (name, characteristic) pair in the session
// and the persistent attributes; without it nothing is stored.
type SaveCharacteristicHandler struct {
	PersistLearned bool
}

func (SaveCharacteristicHandler) CanHandle(in *core.HandlerInput) bool {
	return core.IsIntent(in, IntentSaveCharacteristic)
}

func (h SaveCharacteristicHandler) Handle(in *core.HandlerInput) (*core.Response, error) {
	name, err := requireSlot(in, SlotName)
	if err != nil {
		return nil, err
	}

	if !h.PersistLearned {
		speech, err := render(SpeechThanks, speechData{Name: name})
		if err != nil {
			return nil, err
		}
		return in.ResponseBuilder.Speak(speech).Response(), nil
	}

	characteristic, err := requireSlot(in, SlotCharacteristic)
	if err != nil {
		return nil, err
	}
	learned := core.State{Name: name, Characteristic: characteristic}
	in.Attributes.SetPersistentState(learned)
	if err := in.Attributes.SavePersistent(in.Context); err != nil {
		return nil, err
	}
	// Only a stored pair reaches the session.
	in.Attributes.SetSessionState(learned)
	in.Logger.Info("mirror.characteristic.learned", "characteristic", characteristic)

	speech, err := render(SpeechThanksLearned, speechData{Name: name, Characteristic: characteristic})
	if err != nil {
		return nil, err
	}
	return in.ResponseBuilder.Speak(speech).Response(), nil
}

// HelpHandler explains what the skill can do.
type HelpHandler struct{}

func (HelpHandler) CanHandle(in *core.HandlerInput) bool {
	return core.IsIntent(in, IntentHelp)
}

func (HelpHandler) Handle(in *core.HandlerInput) (*core.Response, error) {
	return in.ResponseBuilder.Speak(SpeechHelp).Reprompt(SpeechHelp).Response(), nil
}

// CancelAndStopHandler says goodbye and closes the session.
type CancelAndStopHandler struct{}

func (CancelAndStopHandler) CanHandle(in *core.HandlerInput) bool {
	return core.IsIntent(in, IntentCancel, IntentStop)
}

func (CancelAndStopHandler) Handle(in *core.HandlerInput) (*core.Response, error) {
	return in.ResponseBuilder.Speak(SpeechGoodbye).WithShouldEndSession(true).Response(), nil
}

// FallbackHandler serves utterances the interaction model could not map.
type FallbackHandler struct{}

func (FallbackHandler) CanHandle(in *core.HandlerInput) bool {
	return core.IsIntent(in, IntentFallback)
}

func (FallbackHandler) Handle(in *core.HandlerInput) (*core.Response, error) {
	return in.ResponseBuilder.Speak(SpeechFallback).Reprompt(SpeechFallback).Response(), nil
}

// SessionEndedHandler logs why the session ended and returns a response
// without speech that closes the session.
type SessionEndedHandler struct{}

func (SessionEndedHandler) CanHandle(in *core.HandlerInput) bool {
	return core.IsRequestType(in, core.SessionEndedRequest)
}

func (SessionEndedHandler) Handle(in *core.HandlerInput) (*core.Response, error) {
	args := []any{"reason", in.Envelope.Request.Reason}
	if e := in.Envelope.Request.Error; e != nil {
		args = append(args, "error_type", e.Type, "error_message", e.Message)
	}
	in.Logger.Info("mirror.session.ended", args...)
	return in.ResponseBuilder.WithShouldEndSession(true).Response(), nil
}

// IntentReflectorHandler repeats the name of any intent that reached it.
// Used for interaction model testing; it must stay last.
type IntentReflectorHandler struct{}

func (IntentReflectorHandler) CanHandle(in *core.HandlerInput) bool {
	return core.IsRequestType(in, core.IntentRequest)
}

func (IntentReflectorHandler) Handle(in *core.HandlerInput) (*core.Response, error) {
	speech, err := render(SpeechReflect, speechData{Intent: in.Envelope.IntentName()})
	if err != nil {
		return nil, err
	}
	return in.ResponseBuilder.Speak(speech).Response(), nil
}

// ErrorHandler catches every dispatch error, logs it and apologizes while
// keeping the session open.
type ErrorHandler struct{}

func (ErrorHandler) CanHandle(*core.HandlerInput, error) bool { return true }

func (ErrorHandler) Handle(in *core.HandlerInput, err error) (*core.Response, error) {
	in.Logger.Error("mirror.error.handled", "error", err.Error())
	return in.ResponseBuilder.Speak(SpeechError).Reprompt(SpeechError).Response(), nil
}
