package core

// Command represents a protocol-agnostic instruction for an engine. Concrete
// command types implement the unexported isCommand marker enabling a closed
// set. A Composer turns a Command into one wire-format line.
type Command interface{ isCommand() }

// Raw carries pre-composed wire text verbatim. It is the escape hatch for
// protocol features without a dedicated command type and is used for the
// handshake initiation line.
type Raw struct {
	Text string
}

// isCommand implements the Command interface for Raw.
func (Raw) isCommand() {}

// IsReady asks the engine to confirm it has processed all prior commands.
type IsReady struct{}

// isCommand implements the Command interface for IsReady.
func (IsReady) isCommand() {}

// NewGame tells the engine that the next position belongs to a new game.
type NewGame struct{}

// isCommand implements the Command interface for NewGame.
func (NewGame) isCommand() {}

// StartposFEN is the standard chess starting position. It is the effective
// position recorded when a SetPosition command carries no explicit FEN.
const StartposFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SetPosition loads a position onto the engine's internal board. A nil FEN
// means the standard starting position; Moves are applied on top in order.
type SetPosition struct {
	FEN   *string  // Position in Forsyth-Edwards notation; nil = startpos
	Moves []string // Long-algebraic moves played from the position
}

// isCommand implements the Command interface for SetPosition.
func (SetPosition) isCommand() {}

// StartAnalysis begins a search on the current position. All limits are
// optional; an empty value requests an infinite search the engine will only
// leave on StopAnalysis.
type StartAnalysis struct {
	Depth       *int     // Maximum search depth in plies
	MoveTime    *int     // Search time budget in milliseconds
	Nodes       *int     // Node budget
	MultiPV     *int     // Number of principal variations to report
	SearchMoves []string // Restrict the search to these root moves
}

// isCommand implements the Command interface for StartAnalysis.
func (StartAnalysis) isCommand() {}

// StopAnalysis interrupts a running search. The engine answers with its best
// move so far.
type StopAnalysis struct{}

// isCommand implements the Command interface for StopAnalysis.
func (StopAnalysis) isCommand() {}

// SetOption changes a configuration option the engine announced during the
// handshake.
type SetOption struct {
	Name  string
	Value OptionValue
}

// isCommand implements the Command interface for SetOption.
func (SetOption) isCommand() {}

// Quit asks the engine process to terminate on its own.
type Quit struct{}

// isCommand implements the Command interface for Quit.
func (Quit) isCommand() {}
