package process

import (
	"bufio"
	"io"
	"sync"

	"github.com/hupe1980/engineroom/bus"
	"github.com/hupe1980/engineroom/core"
	"github.com/hupe1980/engineroom/logging"
)

// Output continuously reads lines from an engine process's output stream,
// parses each into a typed update, applies it to the shared state and
// publishes the resulting event on its bus.
//
// Exactly one background reader runs per Output; a second Start fails with
// core.ErrOutputAlreadyStarted instead of spawning a duplicate that would
// race the first for the same stream. The read loop terminates on
// end-of-stream (clean exit, silent), a read error (logged) or the shutdown
// signal (immediate, possibly mid-read). A single unparseable line or
// rejected update never stops the loop.
type Output struct {
	r        io.Reader
	parser   core.Parser
	state    core.State[core.Update, core.Event]
	events   *bus.Bus[core.Event]
	shutdown <-chan struct{}
	logger   logging.Logger

	mu      sync.Mutex
	started bool
	done    chan struct{}
}

// NewOutput creates an output handler reading from r. The shutdown channel
// is shared with the owning process; closing it interrupts the read loop.
func NewOutput(r io.Reader, parser core.Parser, state core.State[core.Update, core.Event], shutdown <-chan struct{}, logger logging.Logger) *Output {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Output{
		r:        r,
		parser:   parser,
		state:    state,
		events:   bus.New[core.Event](),
		shutdown: shutdown,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Bus returns the event bus this handler publishes to. Subscribers may
// attach at any time; events published before registration are not replayed.
func (o *Output) Bus() *bus.Bus[core.Event] { return o.events }

// Start launches the background reader. Calling Start on an already started
// handler returns core.ErrOutputAlreadyStarted without spawning a second
// reader.
func (o *Output) Start() error {
	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		return core.ErrOutputAlreadyStarted
	}
	o.started = true
	o.mu.Unlock()

	lines := make(chan string)
	go o.readLines(lines)

	go func() {
		defer close(o.done)
		for {
			select {
			case <-o.shutdown:
				o.logger.Debug("reader interrupted by shutdown signal")
				return
			case line, ok := <-lines:
				if !ok {
					o.logger.Debug("engine output stream ended")
					return
				}
				o.handleLine(line)
			}
		}
	}()

	return nil
}

// readLines feeds scanned lines into the processing loop. Runs until
// end-of-stream, a read error or shutdown.
func (o *Output) readLines(lines chan<- string) {
	defer close(lines)

	scanner := bufio.NewScanner(o.r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-o.shutdown:
			return
		}
	}

	if err := scanner.Err(); err != nil {
		o.logger.Error("reading engine output failed", "error", err)
	}
}

func (o *Output) handleLine(line string) {
	o.logger.Debug("engine line", "line", line)

	update, err := o.parser.ParseLine(line)
	if err != nil {
		// One bad line must not end analysis; drop it and keep reading.
		o.logger.Warn("dropping unparseable engine line", "line", line, "error", err)
		return
	}
	if update == nil {
		return
	}

	event, err := o.state.ApplyUpdate(update)
	if err != nil {
		// Surface the rejection to monitors without stopping the loop.
		o.logger.Error("state update rejected", "error", err)
		o.events.Publish(core.ErrorEvent{Err: err})
		return
	}

	o.events.Publish(event)
}

// Join blocks until the read loop has terminated. Valid only after a
// successful Start.
func (o *Output) Join() { <-o.done }
