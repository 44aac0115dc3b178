// Package main provides a fake UCI engine for integration testing. It
// speaks just enough of the protocol to exercise the handshake, analysis
// and shutdown paths without a real chess engine on the machine.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

func main() {
	mode := flag.String("mode", "normal", "Engine mode: normal, mute, slowquit")
	flag.Parse()

	var mu sync.Mutex
	out := bufio.NewWriter(os.Stdout)
	emit := func(line string) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(out, line)
		out.Flush()
	}

	searching := false
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if *mode == "mute" {
			// Swallow everything; used to test handshake deadlines.
			continue
		}

		switch fields[0] {
		case "uci":
			emit("id name FakeEngine 1.0")
			emit("id author The Fake Authors")
			emit("option name Hash type spin default 16 min 1 max 1024")
			emit("option name Ponder type check default false")
			emit("uciok")

		case "isready":
			emit("readyok")

		case "ucinewgame", "position", "setoption":
			// Accepted silently, like a real engine.

		case "go":
			searching = true
			emit("info depth 1 score cp 20 nodes 100 pv e2e4")
			emit("info depth 2 score cp 25 nodes 400 pv e2e4 e7e5")
			if hasToken(fields, "movetime") || hasToken(fields, "depth") {
				// Bounded searches answer on their own.
				go func() {
					time.Sleep(50 * time.Millisecond)
					emit("bestmove e2e4 ponder e7e5")
				}()
			}

		case "stop":
			if searching {
				searching = false
				emit("bestmove e2e4")
			}

		case "quit":
			if *mode == "slowquit" {
				time.Sleep(10 * time.Second)
			}
			return
		}
	}
}

func hasToken(fields []string, token string) bool {
	for _, f := range fields {
		if f == token {
			return true
		}
	}
	return false
}
