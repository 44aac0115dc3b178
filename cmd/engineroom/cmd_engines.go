package main

import (
	"fmt"
	"strings"

	"github.com/hupe1980/engineroom/internal/config"
	"github.com/hupe1980/engineroom/internal/ui"
)

type EnginesCmd struct {
	Config string `help:"Engine roster file." short:"c" default:"engineroom.yaml" type:"path"`
}

func (c *EnginesCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	fmt.Fprintln(ui.Output, ui.Bold("Configured engines:"))
	for _, e := range cfg.Engines {
		line := fmt.Sprintf("  %s %s", ui.Cyan(e.Name), e.Path)
		if len(e.Args) > 0 {
			line += ui.Dim(" " + strings.Join(e.Args, " "))
		}
		if len(e.Options) > 0 {
			line += ui.Dim(fmt.Sprintf(" (%d options)", len(e.Options)))
		}
		fmt.Fprintln(ui.Output, line)
	}
	return nil
}
