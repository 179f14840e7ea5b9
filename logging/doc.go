// Package logging provides a minimal logging interface and adapters for the skill.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the dispatcher, handlers and stores use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SkillLogger with request scoped attributes and dispatch helpers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json")
//	s := mirror.NewSkill(store, func(o *skill.Options) { o.Logger = logger })
package logging
