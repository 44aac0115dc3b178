package state

import (
	"fmt"
	"sync"

	"github.com/hupe1980/engineroom/core"
)

// Identity holds the descriptive details an engine announces during the
// handshake. Populated once during initialization, overwritten only on
// re-initialization.
type Identity struct {
	Name           string
	Author         string
	Version        string
	CopyProtection string
}

// BestMove is the engine's final move choice plus the reply it would ponder.
type BestMove struct {
	Move   string
	Ponder *string
}

// Info is the mutable, versioned snapshot of one engine's knowledge.
//
// Contract:
//   - Capabilities grow monotonically; a repeated name overwrites, never
//     duplicates
//   - Changing the current position clears accumulated analysis
//   - A best move always forces the ready state to Ready
//   - Applying an ErrorEvent fails without mutation
type Info struct {
	mu sync.RWMutex

	identity        Identity
	readyState      core.ReadyState
	capabilities    map[string]core.OptionDefinition
	currentPosition *string
	analysis        []core.AnalysisData
	bestMove        *BestMove
}

// NewInfo creates an empty engine state in the NotRunning ready state.
func NewInfo() *Info {
	return &Info{
		readyState:   core.NotRunning,
		capabilities: make(map[string]core.OptionDefinition),
	}
}

// ApplyUpdate mutates the state according to the update and returns the
// event observers should see. All updates are total functions over the
// current state except ErrorEvent, which returns its error without mutation.
func (i *Info) ApplyUpdate(update core.Update) (core.Event, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	switch u := update.(type) {
	case core.InfoUpdate:
		if u.Name != nil {
			i.identity.Name = *u.Name
		}
		if u.Author != nil {
			i.identity.Author = *u.Author
		}
		if u.Version != nil {
			i.identity.Version = *u.Version
		}
		if u.CopyProtection != nil {
			i.identity.CopyProtection = *u.CopyProtection
		}

	case core.CapabilityAdded:
		i.capabilities[u.Name] = u.Definition

	case core.AnalysisUpdate:
		i.analysis = append(i.analysis, u.Data)

	case core.BestMove:
		i.bestMove = &BestMove{Move: u.Move, Ponder: u.Ponder}
		i.readyState = core.Ready

	case core.ReadyStateChanged:
		i.readyState = u.State

	case core.CurrentPositionChanged:
		fen := u.FEN
		i.currentPosition = &fen
		i.analysis = nil

	case core.LifecycleEvent:
		// Passthrough: observers see the event, state is untouched.

	case core.ErrorEvent:
		return nil, fmt.Errorf("%w: %w", core.ErrApplyUpdate, u.Err)

	default:
		return nil, fmt.Errorf("%w: unsupported update %T", core.ErrApplyUpdate, update)
	}

	return update, nil
}

// ReadyState returns the current ready state.
func (i *Info) ReadyState() core.ReadyState {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.readyState
}

// Snapshot is an immutable deep copy of an Info taken at one point in time.
type Snapshot struct {
	Identity        Identity
	ReadyState      core.ReadyState
	Capabilities    map[string]core.OptionDefinition
	CurrentPosition *string
	Analysis        []core.AnalysisData
	BestMove        *BestMove
}

// Snapshot returns a deep copy of the current state safe for independent
// use by callers.
func (i *Info) Snapshot() Snapshot {
	i.mu.RLock()
	defer i.mu.RUnlock()

	snap := Snapshot{
		Identity:   i.identity,
		ReadyState: i.readyState,
	}

	snap.Capabilities = make(map[string]core.OptionDefinition, len(i.capabilities))
	for name, def := range i.capabilities {
		snap.Capabilities[name] = def
	}

	if i.currentPosition != nil {
		fen := *i.currentPosition
		snap.CurrentPosition = &fen
	}

	if len(i.analysis) > 0 {
		snap.Analysis = make([]core.AnalysisData, len(i.analysis))
		copy(snap.Analysis, i.analysis)
	}

	if i.bestMove != nil {
		bm := *i.bestMove
		snap.BestMove = &bm
	}

	return snap
}
