package core

// ResponseBuilder assembles a Response fluently. A fresh builder is handed to
// every handler through HandlerInput.
//
// Example:
//
//	return in.ResponseBuilder.Speak("Hello").Reprompt("Anything else?").Response(), nil
type ResponseBuilder struct {
	resp Response
}

// NewResponseBuilder returns an empty builder.
func NewResponseBuilder() *ResponseBuilder { return &ResponseBuilder{} }

// Speak sets the plain text output speech.
func (b *ResponseBuilder) Speak(text string) *ResponseBuilder {
	b.resp.OutputSpeech = &OutputSpeech{Type: SpeechPlainText, Text: text}
	return b
}

// Reprompt sets the reprompt text and keeps the session open.
func (b *ResponseBuilder) Reprompt(text string) *ResponseBuilder {
	b.resp.Reprompt = &Reprompt{OutputSpeech: OutputSpeech{Type: SpeechPlainText, Text: text}}
	return b.WithShouldEndSession(false)
}

// AddElicitSlotDirective asks the platform to collect slot for updatedIntent.
// Dialog directives require an open session.
func (b *ResponseBuilder) AddElicitSlotDirective(slot string, updatedIntent *Intent) *ResponseBuilder {
	b.resp.Directives = append(b.resp.Directives, Directive{
		Type:          DirectiveElicitSlot,
		SlotToElicit:  slot,
		UpdatedIntent: updatedIntent,
	})
	return b.WithShouldEndSession(false)
}

// WithShouldEndSession sets the session termination flag explicitly.
func (b *ResponseBuilder) WithShouldEndSession(end bool) *ResponseBuilder {
	b.resp.ShouldEndSession = &end
	return b
}

// Response returns a copy of the built response.
func (b *ResponseBuilder) Response() *Response {
	r := b.resp
	if len(b.resp.Directives) > 0 {
		r.Directives = append([]Directive(nil), b.resp.Directives...)
	}
	return &r
}
