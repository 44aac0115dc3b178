package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

var version = "dev"

type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a position with the configured engines"`
	Probe   ProbeCmd   `cmd:"" help:"Launch one engine and print its identity and options"`
	Engines EnginesCmd `cmd:"" help:"List the engines configured in the roster file"`

	Version VersionCmd `cmd:"" help:"Show version"`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("engineroom version %s\n", version)
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("engineroom"),
		kong.Description("UCI chess engine supervisor"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
