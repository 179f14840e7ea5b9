// Package core defines the domain contracts of the skill: the request and
// response envelopes exchanged with the voice platform, the typed State
// carried across turns, the AttributesStore persistence capability and the
// handler / interceptor interfaces the dispatcher evaluates.
//
// Concrete store implementations live in the persistence packages; the
// dispatcher lives in package skill and the mirror specific handlers in
// package mirror. Keeping the contracts here lets those packages depend on
// each other only through core.
package core
