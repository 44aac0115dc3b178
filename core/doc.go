// Package core provides the foundational domain types and interfaces used by
// engineroom. It defines the core abstractions for:
//
//   - Commands (protocol-agnostic instructions sent to an engine)
//   - Updates / Events (typed state changes parsed from engine output)
//   - Engine state (a versioned snapshot of one engine's knowledge)
//   - Composer / Parser (the protocol seam between commands and wire text)
//   - The error taxonomy shared by all runtime components
//
// The package intentionally keeps implementation concerns (process
// management, the UCI binding, the event bus) out of scope, exposing small
// interfaces so that a second protocol binding only requires a new
// Composer/Parser pair, never changes to process or state management.
package core
