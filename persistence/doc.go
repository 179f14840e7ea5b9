// Package persistence contains concrete AttributesStore implementations. The
// store interface and the State type reside in the core package. Depend on
// core.AttributesStore in your code and select an implementation (the
// in‑memory store below, or the S3 backed store in persistence/s3) at wiring
// time.
package persistence
