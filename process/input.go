package process

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/hupe1980/engineroom/core"
	"github.com/hupe1980/engineroom/logging"
)

// Input owns exclusive write access to an engine process's input stream.
// Every send composes the command, writes the line plus newline, then
// flushes before returning, so commands issued through one Input are
// strictly ordered. Safe for concurrent use; concurrent senders serialize
// on an internal mutex.
type Input struct {
	mu       sync.Mutex
	w        *bufio.Writer
	composer core.Composer
	state    core.State[core.Update, core.Event]
	logger   logging.Logger
}

// NewInput creates an input handler writing to w. The state handle is the
// one shared with the process's output handler; convenience operations apply
// optimistic transitions to it.
func NewInput(w io.Writer, composer core.Composer, state core.State[core.Update, core.Event], logger logging.Logger) *Input {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Input{
		w:        bufio.NewWriter(w),
		composer: composer,
		state:    state,
		logger:   logger,
	}
}

// SendCommand composes cmd and writes it to the engine. Write and flush
// failures are reported as distinct error kinds so callers can tell a
// transient buffering failure from a severed pipe.
func (in *Input) SendCommand(cmd core.Command) error {
	wire, err := in.composer.Compose(cmd)
	if err != nil {
		return err
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	if _, err := in.w.WriteString(wire + "\n"); err != nil {
		return fmt.Errorf("%w: %q: %w", core.ErrWriteLine, wire, err)
	}
	if err := in.w.Flush(); err != nil {
		return fmt.Errorf("%w: %q: %w", core.ErrFlush, wire, err)
	}

	in.logger.Debug("command sent", "command", wire)
	return nil
}

// IsReady asks the engine to confirm it has processed all prior commands.
func (in *Input) IsReady() error {
	return in.SendCommand(core.IsReady{})
}

// NewGame tells the engine the next position starts a new game.
func (in *Input) NewGame() error {
	return in.SendCommand(core.NewGame{})
}

// SetPosition loads a position (nil fen = startpos) and, once the write
// succeeded, records it on the shared state. The transition is applied
// optimistically because the composed position command has no
// acknowledgement in the protocol; the accumulated analysis is cleared as
// part of the position change.
func (in *Input) SetPosition(fen *string, moves []string) error {
	if err := in.SendCommand(core.SetPosition{FEN: fen, Moves: moves}); err != nil {
		return err
	}

	effective := core.StartposFEN
	if fen != nil {
		effective = *fen
	}
	_, err := in.state.ApplyUpdate(core.CurrentPositionChanged{FEN: effective})
	return err
}

// StartAnalysis begins a search and, once the write succeeded, optimistically
// marks the engine as analyzing.
func (in *Input) StartAnalysis(req core.StartAnalysis) error {
	if err := in.SendCommand(req); err != nil {
		return err
	}

	_, err := in.state.ApplyUpdate(core.ReadyStateChanged{State: core.Analyzing})
	return err
}

// StopAnalysis interrupts a running search. The state transition back to
// Ready is driven by the engine's bestmove answer, not applied here.
func (in *Input) StopAnalysis() error {
	return in.SendCommand(core.StopAnalysis{})
}

// SetOption changes an engine configuration option.
func (in *Input) SetOption(name string, value core.OptionValue) error {
	return in.SendCommand(core.SetOption{Name: name, Value: value})
}

// Quit asks the engine process to terminate on its own.
func (in *Input) Quit() error {
	return in.SendCommand(core.Quit{})
}
