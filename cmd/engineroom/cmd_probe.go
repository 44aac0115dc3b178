package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/engineroom"
	"github.com/hupe1980/engineroom/internal/ui"
)

type ProbeCmd struct {
	Path    string        `arg:"" help:"Engine executable to probe."`
	Args    []string      `arg:"" optional:"" help:"Extra engine arguments."`
	Timeout time.Duration `help:"How long to wait for the engine handshake." default:"5s"`
}

func (c *ProbeCmd) Run() error {
	room := engineroom.New()

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	if err := room.AddEngine(ctx, "probe", c.Path, c.Args...); err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancelShutdown()
		_ = room.Shutdown(shutdownCtx)
	}()

	snap, ok := room.GetAllEngineState()["probe"]
	if !ok {
		return fmt.Errorf("engine state unavailable after handshake")
	}

	ui.PrintEngineState(c.Path, snap)
	fmt.Fprintln(ui.Output)
	ui.PrintCapabilities(snap.Identity.Name, snap.Capabilities)
	return nil
}
