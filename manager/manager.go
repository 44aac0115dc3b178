package manager

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hupe1980/engineroom/bus"
	"github.com/hupe1980/engineroom/core"
	"github.com/hupe1980/engineroom/history"
	"github.com/hupe1980/engineroom/logging"
	"github.com/hupe1980/engineroom/process"
	"github.com/hupe1980/engineroom/state"
	"github.com/hupe1980/engineroom/uci"
)

// ErrEngineNotFound is returned by single-engine operations addressing a
// name that is not registered.
var ErrEngineNotFound = errors.New("engine not found")

// Options configures a Manager using the functional options pattern.
type Options struct {
	// Composer translates commands to wire text. Defaults to the UCI binding.
	Composer core.Composer

	// Parser translates wire text to updates. Defaults to the UCI binding.
	Parser core.Parser

	// Sink receives every forwarded (engine name, event) pair. Defaults to a
	// sink that discards events; the journal still records them.
	Sink core.Sink

	// History journals forwarded events per engine. Defaults to an in-memory
	// store with default retention.
	History *history.InMemoryStore

	// Logger provides structured logging. Defaults to NoOpLogger.
	Logger logging.Logger

	// SubscriptionBuffer sets the channel capacity of the per-engine
	// forwarding subscription.
	SubscriptionBuffer int
}

// engineProcess is the slice of process.Process the manager depends on,
// kept narrow so tests can substitute a fake.
type engineProcess interface {
	Spawn(ctx context.Context, composer core.Composer, parser core.Parser) error
	WaitUntilReady(ctx context.Context, target core.ReadyState) error
	Input() (*process.Input, error)
	Output() (*process.Output, error)
	State() *state.Info
	Shutdown(ctx context.Context) error
	Kill() error
}

// registration ties a running process to its forwarding goroutine.
type registration struct {
	proc engineProcess
	done chan struct{}
}

// Manager owns zero or more independently named engine processes sharing the
// same protocol binding. All public methods are safe for concurrent use; a
// single mutex serializes command issuance across engines.
type Manager struct {
	composer core.Composer
	parser   core.Parser
	sink     core.Sink
	history  *history.InMemoryStore
	logger   logging.Logger
	buffer   int

	// newProcess builds the process for AddEngine. Replaced in tests.
	newProcess func(path string, args []string) (engineProcess, error)

	mu      sync.Mutex
	engines map[string]*registration
}

// New creates a Manager with the UCI protocol binding and in-memory
// defaults.
func New(optFns ...func(o *Options)) *Manager {
	opts := Options{
		Composer: uci.NewComposer(),
		Parser:   uci.NewParser(),
		Sink:     core.SinkFunc(func(string, core.Event) {}),
		History:  history.NewInMemoryStore(0),
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	m := &Manager{
		composer: opts.Composer,
		parser:   opts.Parser,
		sink:     opts.Sink,
		history:  opts.History,
		logger:   opts.Logger,
		buffer:   opts.SubscriptionBuffer,
		engines:  make(map[string]*registration),
	}
	m.newProcess = func(path string, args []string) (engineProcess, error) {
		return process.New(path, state.NewInfo(), func(o *process.Options) {
			o.Args = args
			o.Logger = m.logger
			if m.buffer > 0 {
				o.SubscriptionBuffer = m.buffer
			}
		})
	}
	return m
}

// AddEngine spawns the executable at path, waits for protocol initialization
// and starts forwarding its events to the sink and the journal. Adding a
// name that is already registered is a no-op, not an error, so duplicate
// load requests are tolerated. Bound the initialization wait through ctx.
//
// If the engine spawns but never initializes, the child is killed before the
// error is returned so no orphan lingers behind a failed registration.
func (m *Manager) AddEngine(ctx context.Context, name, path string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.engines[name]; exists {
		m.logger.Debug("engine already registered", "name", name)
		return nil
	}

	proc, err := m.newProcess(path, args)
	if err != nil {
		return err
	}

	if err := proc.Spawn(ctx, m.composer, m.parser); err != nil {
		return fmt.Errorf("engine %q: %w", name, err)
	}

	if err := proc.WaitUntilReady(ctx, core.Initialized); err != nil {
		_ = proc.Kill()
		return fmt.Errorf("engine %q did not initialize: %w", name, err)
	}

	out, err := proc.Output()
	if err != nil {
		_ = proc.Kill()
		return fmt.Errorf("engine %q: %w", name, err)
	}

	reg := &registration{proc: proc, done: make(chan struct{})}
	m.engines[name] = reg

	sub := out.Bus().Subscribe(m.buffer)
	go m.forward(name, sub, reg.done)

	m.logger.Info("engine registered", "name", name, "path", path)
	return nil
}

// forward relays every event of one engine to the sink and the journal until
// the engine is removed or its event stream ends.
func (m *Manager) forward(name string, sub *bus.Subscription[core.Event], done <-chan struct{}) {
	defer sub.Close()

	for {
		select {
		case <-done:
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			m.history.Append(name, ev)
			m.sink.Emit(name, ev)
		}
	}
}

// RemoveEngine kills the named engine and deregisters it. A graceful quit is
// attempted first, bounded by ctx.
func (m *Manager) RemoveEngine(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg, exists := m.engines[name]
	if !exists {
		return fmt.Errorf("%w: %q", ErrEngineNotFound, name)
	}

	close(reg.done)
	delete(m.engines, name)
	m.history.Remove(name)

	if err := reg.proc.Shutdown(ctx); err != nil {
		return fmt.Errorf("engine %q: %w", name, err)
	}

	m.logger.Info("engine removed", "name", name)
	return nil
}

// SetPosition loads a position (nil fen = starting position) on every
// registered engine. The broadcast stops at the first per-engine failure and
// returns it; engines already updated keep the new position.
func (m *Manager) SetPosition(fen *string, moves []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.broadcast(func(in *process.Input) error {
		return in.SetPosition(fen, moves)
	})
}

// StartAnalysis starts a search on every registered engine with the same
// parameters. Stops at the first per-engine failure.
func (m *Manager) StartAnalysis(req core.StartAnalysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.broadcast(func(in *process.Input) error {
		return in.StartAnalysis(req)
	})
}

// StopAnalysis interrupts the search on every registered engine. Stops at
// the first per-engine failure.
func (m *Manager) StopAnalysis() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.broadcast(func(in *process.Input) error {
		return in.StopAnalysis()
	})
}

// broadcast applies op to every engine in name order. Iteration order is
// made deterministic so a mid-broadcast failure always names the same
// partition of updated and untouched engines.
func (m *Manager) broadcast(op func(in *process.Input) error) error {
	for _, name := range m.sortedNamesLocked() {
		in, err := m.engines[name].proc.Input()
		if err != nil {
			return fmt.Errorf("engine %q: %w", name, err)
		}
		if err := op(in); err != nil {
			return fmt.Errorf("engine %q: %w", name, err)
		}
	}
	return nil
}

// SetEngineOption changes one configuration option on one named engine.
func (m *Manager) SetEngineOption(name, option string, value core.OptionValue) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg, exists := m.engines[name]
	if !exists {
		return fmt.Errorf("%w: %q", ErrEngineNotFound, name)
	}

	in, err := reg.proc.Input()
	if err != nil {
		return fmt.Errorf("engine %q: %w", name, err)
	}
	return in.SetOption(option, value)
}

// QuickStartPositionAnalysisFor sets a position and immediately starts a
// search on one named engine.
func (m *Manager) QuickStartPositionAnalysisFor(name string, fen *string, moves []string, req core.StartAnalysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg, exists := m.engines[name]
	if !exists {
		return fmt.Errorf("%w: %q", ErrEngineNotFound, name)
	}

	in, err := reg.proc.Input()
	if err != nil {
		return fmt.Errorf("engine %q: %w", name, err)
	}
	if err := in.SetPosition(fen, moves); err != nil {
		return fmt.Errorf("engine %q: %w", name, err)
	}
	return in.StartAnalysis(req)
}

// GetAllEngineState returns a point-in-time snapshot of every registered
// engine's state, keyed by engine name.
func (m *Manager) GetAllEngineState() map[string]state.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshots := make(map[string]state.Snapshot, len(m.engines))
	for name, reg := range m.engines {
		snapshots[name] = reg.proc.State().Snapshot()
	}
	return snapshots
}

// RecentEvents returns the journaled events of one engine, oldest first.
func (m *Manager) RecentEvents(name string) []history.Entry {
	return m.history.Recent(name)
}

// EngineNames returns the registered engine names in sorted order.
func (m *Manager) EngineNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedNamesLocked()
}

// Shutdown removes every registered engine, attempting graceful quits
// bounded by ctx. The first failure is returned after all engines have been
// attempted.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	names := m.sortedNamesLocked()
	m.mu.Unlock()

	var firstErr error
	for _, name := range names {
		if err := m.RemoveEngine(ctx, name); err != nil && !errors.Is(err, ErrEngineNotFound) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *Manager) sortedNamesLocked() []string {
	names := make([]string, 0, len(m.engines))
	for name := range m.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
