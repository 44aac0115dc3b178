package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/hupe1980/engineroom/bus"
	"github.com/hupe1980/engineroom/core"
	"github.com/hupe1980/engineroom/logging"
)

// Options holds optional configuration for a Process.
type Options struct {
	// Args are extra command line arguments passed to the engine executable.
	Args []string

	// Logger receives runtime diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger

	// SubscriptionBuffer sets the channel capacity used by WaitUntilReady
	// and MonitorEvents subscriptions. Defaults to bus.DefaultBufferSize.
	SubscriptionBuffer int
}

// Process supervises one external engine as a child process together with
// its Input/Output handler pair and shutdown signaling. Lifecycle:
// unspawned → spawned (handlers running) → killed. Kill is idempotent.
type Process[S core.State[core.Update, core.Event]] struct {
	path   string
	args   []string
	state  S
	logger logging.Logger
	buffer int

	mu     sync.Mutex
	cmd    *exec.Cmd
	input  *Input
	output *Output

	shutdown chan struct{}
	stopOnce sync.Once
}

// New validates the launch configuration and returns an unspawned Process.
// Both the executable path and the initial state are required; construction
// fails rather than deferring the problem to a failure deep inside Spawn.
func New[S core.State[core.Update, core.Event]](path string, state S, optFns ...func(o *Options)) (*Process[S], error) {
	if path == "" {
		return nil, fmt.Errorf("%w: executable path is required", core.ErrInvalidConfiguration)
	}
	if any(state) == nil {
		return nil, fmt.Errorf("%w: initial state is required", core.ErrInvalidConfiguration)
	}

	opts := Options{
		Logger:             logging.NoOpLogger{},
		SubscriptionBuffer: bus.DefaultBufferSize,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Process[S]{
		path:     path,
		args:     opts.Args,
		state:    state,
		logger:   opts.Logger,
		buffer:   opts.SubscriptionBuffer,
		shutdown: make(chan struct{}),
	}, nil
}

// State returns the shared engine state.
func (p *Process[S]) State() S { return p.state }

// Input returns the write-side handler, or core.ErrProcessNotRunning before
// a successful Spawn.
func (p *Process[S]) Input() (*Input, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.input == nil {
		return nil, core.ErrProcessNotRunning
	}
	return p.input, nil
}

// Output returns the read-side handler, or core.ErrProcessNotRunning before
// a successful Spawn.
func (p *Process[S]) Output() (*Output, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.output == nil {
		return nil, core.ErrProcessNotRunning
	}
	return p.output, nil
}

// Spawn starts the child process, wires its stdin/stdout into a fresh
// Input/Output handler pair, starts the background reader and sends the
// protocol's initiation command.
//
// If the reader fails to start, the child is left running but event delivery
// is absent; that is a configuration error surfaced to the caller, not
// retried automatically.
func (p *Process[S]) Spawn(ctx context.Context, composer core.Composer, parser core.Parser) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd != nil {
		return core.ErrProcessAlreadyRunning
	}

	cmd := exec.CommandContext(ctx, p.path, p.args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%w: stdin pipe: %w", core.ErrProcessFailedToStart, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("%w: stdout pipe: %w", core.ErrProcessFailedToStart, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %w", core.ErrProcessFailedToStart, p.path, err)
	}

	p.cmd = cmd
	p.logger.Info("engine process spawned", "path", p.path, "pid", cmd.Process.Pid)

	if _, err := p.state.ApplyUpdate(core.ReadyStateChanged{State: core.Starting}); err != nil {
		p.logger.Warn("could not record starting state", "error", err)
	}

	p.input = NewInput(stdin, composer, p.state, p.logger)
	p.output = NewOutput(stdout, parser, p.state, p.shutdown, p.logger)

	if err := p.output.Start(); err != nil {
		return err
	}

	// Reap the exit status so the child never lingers as a zombie.
	go func() { _ = cmd.Wait() }()

	return p.input.SendCommand(composer.InitialCommand())
}

// WaitUntilReady blocks until a ReadyStateChanged event for the target state
// is observed. An ErrorEvent short-circuits the wait and is returned as the
// failure. There is no built-in timeout; bound the wait through ctx.
func (p *Process[S]) WaitUntilReady(ctx context.Context, target core.ReadyState) error {
	out, err := p.Output()
	if err != nil {
		return err
	}

	sub := out.Bus().Subscribe(p.buffer)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-sub.Events():
			if !ok {
				return core.ErrProcessNotRunning
			}
			switch e := ev.(type) {
			case core.ReadyStateChanged:
				if e.State == target {
					return nil
				}
			case core.ErrorEvent:
				return e.Err
			}
		}
	}
}

// MonitorEvents subscribes to the process's events and invokes fn for each
// one. The callback returns a continuation flag; returning false ends the
// loop cleanly. An ErrorEvent always terminates the loop with its error,
// regardless of what the callback would have returned.
func (p *Process[S]) MonitorEvents(ctx context.Context, fn func(event core.Event) bool) error {
	out, err := p.Output()
	if err != nil {
		return err
	}

	sub := out.Bus().Subscribe(p.buffer)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if e, isErr := ev.(core.ErrorEvent); isErr {
				return e.Err
			}
			if !fn(ev) {
				return nil
			}
		}
	}
}

// Shutdown attempts a graceful stop: it sends the protocol's quit command,
// waits for the reader to observe end-of-stream (bounded by ctx) and kills
// the child if it did not exit in time.
func (p *Process[S]) Shutdown(ctx context.Context) error {
	in, err := p.Input()
	if err != nil {
		return p.Kill()
	}
	out, err := p.Output()
	if err != nil {
		return p.Kill()
	}

	if err := in.Quit(); err != nil {
		p.logger.Warn("quit command failed, killing engine", "error", err)
		return p.Kill()
	}

	done := make(chan struct{})
	go func() {
		out.Join()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		p.logger.Warn("engine ignored quit, killing", "path", p.path)
	}
	return p.Kill()
}

// Kill terminates the child process and interrupts the reader loop. It is
// idempotent: killing an unspawned or already-dead process is a no-op.
// Failure to kill is reported, not retried.
func (p *Process[S]) Kill() error {
	p.stopOnce.Do(func() { close(p.shutdown) })

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd == nil || p.cmd.Process == nil {
		return nil
	}

	if err := p.cmd.Process.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			return nil
		}
		return fmt.Errorf("%w: %w", core.ErrProcessFailedToKill, err)
	}

	p.logger.Info("engine process killed", "path", p.path)
	return nil
}
