package core

// Update is a typed state change parsed from engine output. Concrete update
// types implement the unexported isUpdate marker enabling a closed set.
// Applying an Update to a State yields the Event observers receive; here the
// update and event vocabulary are the same sum type.
type Update interface{ isUpdate() }

// Event is what subscribers observe after an Update was applied.
type Event = Update

// InfoUpdate carries identity details the engine announces during the
// handshake. Fields are optional pointers so absence can be distinguished
// from empty values; set fields overwrite the previous value.
type InfoUpdate struct {
	Name           *string
	Author         *string
	Version        *string
	CopyProtection *string
}

// isUpdate implements the Update interface for InfoUpdate.
func (InfoUpdate) isUpdate() {}

// CapabilityAdded records a configuration option the engine announced.
// Re-announcing a name overwrites the previous definition.
type CapabilityAdded struct {
	Name       string
	Definition OptionDefinition
}

// isUpdate implements the Update interface for CapabilityAdded.
func (CapabilityAdded) isUpdate() {}

// AnalysisUpdate carries one per-iteration search report.
type AnalysisUpdate struct {
	Data AnalysisData
}

// isUpdate implements the Update interface for AnalysisUpdate.
func (AnalysisUpdate) isUpdate() {}

// BestMove reports the engine's final move choice for the current search.
// Applying it always forces the ready state back to Ready.
type BestMove struct {
	Move   string
	Ponder *string // Expected reply the engine would ponder on
}

// isUpdate implements the Update interface for BestMove.
func (BestMove) isUpdate() {}

// ReadyStateChanged moves the engine to a new ready state.
type ReadyStateChanged struct {
	State ReadyState
}

// isUpdate implements the Update interface for ReadyStateChanged.
func (ReadyStateChanged) isUpdate() {}

// CurrentPositionChanged records the position last explicitly set on the
// engine. Applying it clears any accumulated analysis, since analysis for a
// different position is meaningless.
type CurrentPositionChanged struct {
	FEN string
}

// isUpdate implements the Update interface for CurrentPositionChanged.
func (CurrentPositionChanged) isUpdate() {}

// LifecycleKind categorizes protocol lifecycle notifications that carry no
// engine-state mutation.
type LifecycleKind int

const (
	// LifecycleRegistration reports a registration status line.
	LifecycleRegistration LifecycleKind = iota
)

// LifecycleEvent is a passthrough notification: applying it mutates nothing
// and simply republishes the event to observers.
type LifecycleEvent struct {
	Kind   LifecycleKind
	Status string // checking, ok or error
}

// isUpdate implements the Update interface for LifecycleEvent.
func (LifecycleEvent) isUpdate() {}

// ErrorEvent signals a failure to whoever is monitoring events. It is the
// only update whose application fails: ApplyUpdate returns the wrapped error
// and performs no mutation.
type ErrorEvent struct {
	Err error
}

// isUpdate implements the Update interface for ErrorEvent.
func (ErrorEvent) isUpdate() {}

// ScoreBound qualifies a centipawn score that is only a bound, not an exact
// evaluation.
type ScoreBound int

const (
	// ScoreExact is an exact evaluation.
	ScoreExact ScoreBound = iota
	// ScoreLowerBound means the real score is at least the reported value.
	ScoreLowerBound
	// ScoreUpperBound means the real score is at most the reported value.
	ScoreUpperBound
)

// Score is a search evaluation: either centipawns from the side to move or
// a forced mate in N moves.
type Score struct {
	CP    *int // Centipawns; nil when a mate score was reported
	Mate  *int // Moves to mate (negative = getting mated); nil otherwise
	Bound ScoreBound
}

// AnalysisData is one per-iteration search report. All fields are optional;
// engines report whatever subset applies to the iteration.
type AnalysisData struct {
	Depth          *int
	SelDepth       *int
	TimeMs         *int
	Nodes          *int
	NPS            *int
	MultiPV        *int
	Score          *Score
	PV             []string
	CurrMove       *string
	CurrMoveNumber *int
	HashFull       *int
	TBHits         *int
	SBHits         *int
	CPULoad        *int
	Text           *string // Free-form "string" payload
	Refutation     []string
	CurrLine       []string
}
