// Package state provides Info, the concrete engine-state implementation
// backing every supervised engine. Info satisfies
// core.State[core.Update, core.Event] and is safe for concurrent use: it is
// shared for read/write between exactly one process's input and output
// handler pair.
package state
