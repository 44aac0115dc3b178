package core

// Composer translates protocol-agnostic commands into wire-format lines.
// Implementations must be deterministic, pure and free of side effects so a
// composed line can be retried or logged safely.
type Composer interface {
	// Compose returns the wire text for the command, without a trailing
	// newline.
	Compose(cmd Command) (string, error)

	// InitialCommand returns the command that must be sent first to begin
	// the protocol handshake.
	InitialCommand() Command
}

// Parser translates one line of engine output into a typed update. Parsing
// is line-oriented and must never block.
//
// ParseLine returns a nil Update for lines that are recognized but carry no
// state change; lifecycle notifications are returned as the LifecycleEvent
// update variant, which applies as a passthrough. An unrecognized or
// malformed line yields an error wrapping ErrParseLine, which is non-fatal:
// the reader logs it and continues with the next line.
type Parser interface {
	ParseLine(line string) (Update, error)
}

// Sink consumes named events on behalf of the surrounding application. The
// manager forwards every engine event as an (engine name, event) pair; a
// Sink implementation decides how to surface them (UI notification, log,
// test capture). Emit must not block for long: it runs on the forwarding
// goroutine of the engine that produced the event.
type Sink interface {
	Emit(engine string, event Event)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(engine string, event Event)

// Emit calls the wrapped function.
func (f SinkFunc) Emit(engine string, event Event) { f(engine, event) }
