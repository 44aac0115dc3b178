// Package process owns the runtime of one supervised engine: the child
// process itself, the Input handler writing composed commands to its stdin,
// and the Output handler reading, parsing and republishing its stdout as
// typed events.
//
// Concurrency model: each spawned Process contributes exactly one background
// reader goroutine. Commands are synchronous (a send returns only after
// write and flush completed); events arrive asynchronously through the
// Output handler's bus. The shared engine state is owned by the Process and
// handed to exactly its own Input/Output pair, never wider.
package process
