package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/engineroom"
	"github.com/hupe1980/engineroom/core"
	"github.com/hupe1980/engineroom/internal/config"
	"github.com/hupe1980/engineroom/internal/ui"
)

type AnalyzeCmd struct {
	Config string `help:"Engine roster file." short:"c" default:"engineroom.yaml" type:"path"`

	FEN   string   `help:"Position in FEN notation (starting position if omitted)."`
	Moves []string `help:"Moves played from the position, long algebraic notation." sep:" "`

	Depth    int           `help:"Search depth limit (overrides the roster default)."`
	Movetime int           `help:"Search time limit in milliseconds (overrides the roster default)."`
	Multipv  int           `help:"Number of principal variations (overrides the roster default)."`
	Watch    time.Duration `help:"Maximum time to stream analysis output." default:"30s"`
}

func (c *AnalyzeCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	logger, cleanup := buildLogger(cfg.Log)
	defer cleanup()

	// One slot per engine so the sink never blocks on a slow terminal.
	finished := make(chan string, len(cfg.Engines))

	sink := core.SinkFunc(func(engine string, event core.Event) {
		switch ev := event.(type) {
		case core.AnalysisUpdate:
			ui.PrintAnalysisLine(engine, ev.Data)
		case core.BestMove:
			ui.PrintBestMove(engine, ev.Move, ev.Ponder)
			finished <- engine
		case core.ErrorEvent:
			fmt.Fprintf(ui.Output, "%s %s\n", ui.Bold(engine+":"), ui.Red(ev.Err.Error()))
		}
	})

	room := engineroom.New(func(o *engineroom.Options) {
		o.Sink = sink
		o.Logger = logger
	})

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	defer func() { _ = room.Shutdown(shutdownCtx) }()

	for _, e := range cfg.Engines {
		addCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := room.AddEngine(addCtx, e.Name, e.Path, e.Args...)
		cancel()
		if err != nil {
			return err
		}

		for option, value := range e.Options {
			if err := room.SetEngineOption(e.Name, option, core.StringValue{Value: value}); err != nil {
				return err
			}
		}
	}

	var fen *string
	if c.FEN != "" {
		fen = &c.FEN
	}
	if err := room.SetPosition(fen, c.Moves); err != nil {
		return err
	}

	if err := room.StartAnalysis(c.request(cfg.Analysis)); err != nil {
		return err
	}

	deadline := time.NewTimer(c.Watch)
	defer deadline.Stop()

	for remaining := len(cfg.Engines); remaining > 0; {
		select {
		case <-finished:
			remaining--
		case <-deadline.C:
			// Unbounded searches never answer on their own; stop them and
			// collect the forced bestmove replies.
			if err := room.StopAnalysis(); err != nil {
				return err
			}
			grace := time.NewTimer(2 * time.Second)
			defer grace.Stop()
			for remaining > 0 {
				select {
				case <-finished:
					remaining--
				case <-grace.C:
					remaining = 0
				}
			}
		}
	}

	fmt.Fprintln(ui.Output)
	for name, snap := range room.GetAllEngineState() {
		ui.PrintEngineState(name, snap)
	}
	return nil
}

// request merges command line flags over roster defaults; a flag left at
// zero keeps the roster value.
func (c *AnalyzeCmd) request(defaults config.AnalysisConfig) core.StartAnalysis {
	req := core.StartAnalysis{
		Depth:    defaults.Depth,
		MoveTime: defaults.MoveTimeMs,
		Nodes:    defaults.Nodes,
		MultiPV:  defaults.MultiPV,
	}
	if c.Depth > 0 {
		req.Depth = &c.Depth
	}
	if c.Movetime > 0 {
		req.MoveTime = &c.Movetime
	}
	if c.Multipv > 0 {
		req.MultiPV = &c.Multipv
	}
	return req
}
