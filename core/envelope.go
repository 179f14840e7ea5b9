package core

// RequestType discriminates the request union delivered by the platform.
type RequestType string

const (
	LaunchRequest       RequestType = "LaunchRequest"
	IntentRequest       RequestType = "IntentRequest"
	SessionEndedRequest RequestType = "SessionEndedRequest"
)

// Confirmation status values used on intents and slots.
const (
	ConfirmationNone      = "NONE"
	ConfirmationConfirmed = "CONFIRMED"
	ConfirmationDenied    = "DENIED"
)

// EnvelopeVersion is the response envelope version understood by the platform.
const EnvelopeVersion = "1.0"

// RequestEnvelope is the inbound JSON document for a single turn.
type RequestEnvelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session,omitempty"`
	Context *Context `json:"context,omitempty"`
	Request Request  `json:"request"`
}

// Session identifies the conversation and carries the session attributes
// returned by the previous turn.
type Session struct {
	New         bool        `json:"new"`
	SessionID   string      `json:"sessionId"`
	Application Application `json:"application"`
	Attributes  *State      `json:"attributes,omitempty"`
	User        *User       `json:"user,omitempty"`
}

// Application identifies the skill the request is addressed to.
type Application struct {
	ApplicationID string `json:"applicationId"`
}

// User identifies the account the request originates from.
type User struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken,omitempty"`
}

// Context holds the device level system state.
type Context struct {
	System System `json:"System"`
}

// System is the system object of the request context.
type System struct {
	Application Application `json:"application"`
	User        User        `json:"user"`
	Device      *Device     `json:"device,omitempty"`
	APIEndpoint string      `json:"apiEndpoint,omitempty"`
}

// Device identifies the device the user spoke to.
type Device struct {
	DeviceID string `json:"deviceId"`
}

// Request is the tagged union over launch, intent and session-ended requests.
// Intent is set only for IntentRequest; Reason and Error only for
// SessionEndedRequest.
type Request struct {
	Type        RequestType   `json:"type"`
	RequestID   string        `json:"requestId"`
	Timestamp   string        `json:"timestamp,omitempty"`
	Locale      string        `json:"locale,omitempty"`
	DialogState string        `json:"dialogState,omitempty"`
	Intent      *Intent       `json:"intent,omitempty"`
	Reason      string        `json:"reason,omitempty"`
	Error       *RequestError `json:"error,omitempty"`
}

// RequestError describes why a session ended abnormally.
type RequestError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Intent is a recognized user goal with its slots.
type Intent struct {
	Name               string          `json:"name"`
	ConfirmationStatus string          `json:"confirmationStatus,omitempty"`
	Slots              map[string]Slot `json:"slots,omitempty"`
}

// Slot is a named parameter extracted from the utterance.
type Slot struct {
	Name               string     `json:"name"`
	Value              string     `json:"value,omitempty"`
	ConfirmationStatus string     `json:"confirmationStatus,omitempty"`
	SlotValue          *SlotValue `json:"slotValue,omitempty"`
}

// SlotValue is the structured form of a simple slot value.
type SlotValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// RequestType returns the type of the wrapped request.
func (e *RequestEnvelope) RequestType() RequestType {
	if e == nil {
		return ""
	}
	return e.Request.Type
}

// IntentName returns the intent name, or "" when the request is not an
// intent request.
func (e *RequestEnvelope) IntentName() string {
	if e == nil || e.Request.Type != IntentRequest || e.Request.Intent == nil {
		return ""
	}
	return e.Request.Intent.Name
}

// SlotValue returns the value of the named slot. The second result is false
// when the slot is absent or has no value.
func (e *RequestEnvelope) SlotValue(name string) (string, bool) {
	if e == nil || e.Request.Intent == nil {
		return "", false
	}
	slot, ok := e.Request.Intent.Slots[name]
	if !ok {
		return "", false
	}
	if slot.Value != "" {
		return slot.Value, true
	}
	if slot.SlotValue != nil && slot.SlotValue.Value != "" {
		return slot.SlotValue.Value, true
	}
	return "", false
}

// UserID returns the user identity, preferring the system context over the
// session object.
func (e *RequestEnvelope) UserID() string {
	if e == nil {
		return ""
	}
	if e.Context != nil && e.Context.System.User.UserID != "" {
		return e.Context.System.User.UserID
	}
	if e.Session != nil && e.Session.User != nil {
		return e.Session.User.UserID
	}
	return ""
}

// SessionID returns the session identifier, or "" for sessionless requests.
func (e *RequestEnvelope) SessionID() string {
	if e == nil || e.Session == nil {
		return ""
	}
	return e.Session.SessionID
}

// ResponseEnvelope is the outbound JSON document for a single turn.
type ResponseEnvelope struct {
	Version           string   `json:"version"`
	SessionAttributes *State   `json:"sessionAttributes,omitempty"`
	Response          Response `json:"response"`
}

// Response is what the platform speaks and does next.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	Directives       []Directive   `json:"directives,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

// OutputSpeech types.
const (
	SpeechPlainText = "PlainText"
	SpeechSSML      = "SSML"
)

// OutputSpeech is spoken text, either plain or SSML.
type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	SSML string `json:"ssml,omitempty"`
}

// Reprompt is spoken when the microphone re-opens and the user stays silent.
type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// DirectiveElicitSlot asks the platform to collect a slot for an intent.
const DirectiveElicitSlot = "Dialog.ElicitSlot"

// Directive is an instruction to the platform attached to a response.
type Directive struct {
	Type          string  `json:"type"`
	SlotToElicit  string  `json:"slotToElicit,omitempty"`
	UpdatedIntent *Intent `json:"updatedIntent,omitempty"`
}

// SpeechText returns the plain text of the output speech, or "".
func (r *Response) SpeechText() string {
	if r == nil || r.OutputSpeech == nil {
		return ""
	}
	return r.OutputSpeech.Text
}

// RepromptText returns the plain text of the reprompt, or "".
func (r *Response) RepromptText() string {
	if r == nil || r.Reprompt == nil {
		return ""
	}
	return r.Reprompt.OutputSpeech.Text
}
