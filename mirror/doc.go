// Package mirror implements the "magic mirror" skill: it answers "who is the
// X of all?" from a remembered (name, characteristic) pair and asks the user
// to fill in the name when it does not know.
//
// The skill holds a single pair. Asking about any other characteristic than
// the remembered one always takes the "don't know" path, even if that
// characteristic was taught in an earlier session and later replaced.
//
// NewSkill wires the handlers in their fixed evaluation order:
//
//	Launch → WhoIsTheXofAll → SaveCharacteristic → Help → CancelAndStop →
//	Fallback → SessionEnded → IntentReflector
//
// with LoadStateInterceptor as the only request interceptor and
// ErrorHandler as the catch-all error handler.
package mirror
