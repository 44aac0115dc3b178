// Package engineroom provides a high-level façade over the engine manager
// and protocol abstractions enabling rapid construction of chess analysis
// applications on top of UCI engines. Most applications interact with this
// package by:
//  1. Creating an EngineRoom via New() (optionally overriding the sink,
//     journal or logger)
//  2. Adding one or more engines by name and executable path
//  3. Broadcasting positions and analysis requests, or addressing a single
//     engine
//
// The façade delegates orchestration to manager.Manager while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing; production deployments typically supply a real sink and a
// structured logger.
package engineroom

import (
	"context"

	"github.com/hupe1980/engineroom/core"
	"github.com/hupe1980/engineroom/history"
	"github.com/hupe1980/engineroom/logging"
	"github.com/hupe1980/engineroom/manager"
	"github.com/hupe1980/engineroom/state"
)

// Options configures the EngineRoom instance.
type Options struct {
	// Composer translates commands to wire text. Defaults to the UCI binding.
	Composer core.Composer

	// Parser translates wire text to updates. Defaults to the UCI binding.
	Parser core.Parser

	// Sink receives every (engine name, event) pair the manager forwards.
	// Defaults to a sink that discards events.
	Sink core.Sink

	// History journals forwarded events per engine (defaults to an in-memory
	// store with default retention).
	History *history.InMemoryStore

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// SubscriptionBuffer sets the channel buffer size for event forwarding.
	SubscriptionBuffer int
}

// EngineRoom is the high-level façade aggregating the underlying manager.
type EngineRoom struct {
	opts    Options
	manager *manager.Manager
}

// New creates a new EngineRoom instance with optional overrides. Any unset
// collaborator is initialized with an in-memory or no-op implementation.
func New(optFns ...func(o *Options)) *EngineRoom {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	m := manager.New(func(o *manager.Options) {
		if opts.Composer != nil {
			o.Composer = opts.Composer
		}
		if opts.Parser != nil {
			o.Parser = opts.Parser
		}
		if opts.Sink != nil {
			o.Sink = opts.Sink
		}
		if opts.History != nil {
			o.History = opts.History
		}
		o.Logger = opts.Logger
		o.SubscriptionBuffer = opts.SubscriptionBuffer
	})

	return &EngineRoom{opts: opts, manager: m}
}

// AddEngine spawns and registers an engine. Adding an already registered
// name is a no-op.
func (r *EngineRoom) AddEngine(ctx context.Context, name, path string, args ...string) error {
	return r.manager.AddEngine(ctx, name, path, args...)
}

// RemoveEngine kills and deregisters an engine.
func (r *EngineRoom) RemoveEngine(ctx context.Context, name string) error {
	return r.manager.RemoveEngine(ctx, name)
}

// SetPosition loads a position on every registered engine (nil fen selects
// the starting position).
func (r *EngineRoom) SetPosition(fen *string, moves []string) error {
	return r.manager.SetPosition(fen, moves)
}

// StartAnalysis starts a search on every registered engine.
func (r *EngineRoom) StartAnalysis(req core.StartAnalysis) error {
	return r.manager.StartAnalysis(req)
}

// StopAnalysis interrupts the search on every registered engine.
func (r *EngineRoom) StopAnalysis() error {
	return r.manager.StopAnalysis()
}

// SetEngineOption changes one configuration option on one named engine.
func (r *EngineRoom) SetEngineOption(name, option string, value core.OptionValue) error {
	return r.manager.SetEngineOption(name, option, value)
}

// QuickStartPositionAnalysisFor sets a position and immediately starts a
// search on one named engine.
func (r *EngineRoom) QuickStartPositionAnalysisFor(name string, fen *string, moves []string, req core.StartAnalysis) error {
	return r.manager.QuickStartPositionAnalysisFor(name, fen, moves, req)
}

// GetAllEngineState returns a point-in-time snapshot of every engine's
// state, keyed by engine name.
func (r *EngineRoom) GetAllEngineState() map[string]state.Snapshot {
	return r.manager.GetAllEngineState()
}

// RecentEvents returns the journaled events of one engine, oldest first.
func (r *EngineRoom) RecentEvents(name string) []history.Entry {
	return r.manager.RecentEvents(name)
}

// EngineNames returns the registered engine names in sorted order.
func (r *EngineRoom) EngineNames() []string {
	return r.manager.EngineNames()
}

// Shutdown removes every registered engine, attempting graceful quits
// bounded by ctx.
func (r *EngineRoom) Shutdown(ctx context.Context) error {
	return r.manager.Shutdown(ctx)
}
