package mirror

// Intent names from the interaction model.
const (
	IntentWhoIsTheXofAll     = "WhoIsTheXofAllIntent"
	IntentSaveCharacteristic = "SaveCharacteristicIntent"
	IntentHelp               = "AMAZON.HelpIntent"
	IntentCancel             = "AMAZON.CancelIntent"
	IntentStop               = "AMAZON.StopIntent"
	IntentFallback           = "AMAZON.FallbackIntent"
)

// Slot names.
const (
	SlotCharacteristic = "characteristic"
	SlotName           = "name"
)

// Spoken text. Templates are rendered against speechData.
const (
	SpeechWelcome         = "Welcome master! You can ask me things like, who is the prettiest of them all, or who is the ugliest of them all? What would you like to know?"
	SpeechWelcomeReprompt = "What would you like to ask? You can ask me things like, who is the prettiest of them all, or who is the ugliest of them all?"
	SpeechHelp            = "You can say hello to me! How can I help?"
	SpeechGoodbye         = "Goodbye!"
	SpeechFallback        = "Sorry, I don't know about that. Please try again."
	SpeechError           = "Sorry, I had trouble doing what you asked. Please try again."

	SpeechUnknown         = "Hm.... I don't know that one. Who do you think is the {{.Characteristic}} of all?"
	SpeechUnknownReprompt = "Who do you think is the {{.Characteristic}} of all?"
	SpeechAnswer          = "{{.Name}} is the {{.Characteristic}} of all"
	SpeechThanks          = "Thank you! I will remember that {{.Name}} is the X next time you ask me!"
	SpeechThanksLearned   = "Thank you! I will remember that {{.Name}} is the {{.Characteristic}} next time you ask me!"
	SpeechReflect         = "You just triggered {{.Intent}}"
)

type speechData struct {
	Name           string
	Characteristic string
	Intent         string
}
