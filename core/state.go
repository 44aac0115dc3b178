package core

// ReadyState tracks how far an engine has progressed through the protocol
// handshake and whether it is currently able to accept work. States are
// ordered by protocol progression, not by value: NotRunning → Starting →
// Initialized → Ready ⇄ Busy / Analyzing. There is no terminal variant; a
// killed process simply stops producing events.
type ReadyState int

const (
	// NotRunning means no child process exists yet.
	NotRunning ReadyState = iota
	// Starting means the process was spawned but the handshake is incomplete.
	Starting
	// Initialized means the engine finished announcing itself (uciok).
	Initialized
	// Ready means the engine confirmed it can accept commands (readyok).
	Ready
	// Busy means the engine is processing a command without searching.
	Busy
	// Analyzing means a search is running.
	Analyzing
)

// String returns a human readable name for the ready state.
func (s ReadyState) String() string {
	switch s {
	case NotRunning:
		return "not_running"
	case Starting:
		return "starting"
	case Initialized:
		return "initialized"
	case Ready:
		return "ready"
	case Busy:
		return "busy"
	case Analyzing:
		return "analyzing"
	default:
		return "unknown"
	}
}

// State is the mutable, shared snapshot of one engine's knowledge. It is
// parameterized over its update and event vocabulary so ApplyUpdate is total
// over one state kind. A concrete implementation is shared for read/write
// between exactly one process's input and output handlers and must be safe
// for concurrent use.
//
// ApplyUpdate mutates the state according to the update and returns the
// event observers should see, or an error that aborts the update without
// mutation.
type State[U, E any] interface {
	ApplyUpdate(update U) (E, error)
}
