package core

import "errors"

// Error taxonomy shared by all runtime components. Errors returned by
// engineroom wrap one of these sentinels so callers can classify failures
// with errors.Is regardless of the contextual message added along the way.
var (
	// Process errors.

	// ErrProcessFailedToStart indicates the child process could not be
	// spawned.
	ErrProcessFailedToStart = errors.New("engine process failed to start")
	// ErrProcessAlreadyRunning indicates a spawn was attempted on a process
	// that already has a live child.
	ErrProcessAlreadyRunning = errors.New("engine process already running")
	// ErrProcessNotRunning indicates an operation that requires a live child
	// was attempted before spawn or after kill.
	ErrProcessNotRunning = errors.New("engine process not running")
	// ErrProcessFailedToKill indicates the child refused to terminate.
	ErrProcessFailedToKill = errors.New("engine process failed to kill")

	// Protocol errors.

	// ErrParseLine indicates a line of engine output could not be parsed.
	// Non-fatal: the reader continues with the next line.
	ErrParseLine = errors.New("failed to parse engine output line")
	// ErrUnknownCommand indicates a composer received a command outside its
	// protocol vocabulary.
	ErrUnknownCommand = errors.New("unknown command for protocol")

	// State errors.

	// ErrApplyUpdate indicates a state update was rejected.
	ErrApplyUpdate = errors.New("failed to apply state update")

	// I/O errors. Write and flush failures are distinct so callers can tell
	// a transient buffering failure from a severed pipe.

	// ErrWriteLine indicates writing a composed line to the engine's input
	// stream failed.
	ErrWriteLine = errors.New("failed to write line to engine")
	// ErrFlush indicates flushing the engine's input stream failed.
	ErrFlush = errors.New("failed to flush engine input")
	// ErrReadLine indicates reading from the engine's output stream failed.
	ErrReadLine = errors.New("failed to read line from engine")

	// Structural errors.

	// ErrOutputAlreadyStarted indicates Start was called twice on one output
	// handler; a second reader would race the first for the same stream.
	ErrOutputAlreadyStarted = errors.New("output handler already started")
	// ErrInvalidConfiguration indicates a builder or constructor was given
	// an incomplete or inconsistent configuration.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
