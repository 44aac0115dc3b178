package uci

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/engineroom/core"
)

// Composer renders protocol-agnostic commands as UCI wire lines. It is
// stateless and safe for concurrent use.
type Composer struct{}

// NewComposer creates a UCI composer.
func NewComposer() *Composer { return &Composer{} }

// InitialCommand returns the handshake initiation line.
func (c *Composer) InitialCommand() core.Command { return core.Raw{Text: "uci"} }

// Compose returns the wire text for the command, without a trailing newline.
func (c *Composer) Compose(cmd core.Command) (string, error) {
	switch cmd := cmd.(type) {
	case core.Raw:
		return cmd.Text, nil

	case core.IsReady:
		return "isready", nil

	case core.NewGame:
		return "ucinewgame", nil

	case core.SetPosition:
		var sb strings.Builder
		sb.WriteString("position ")
		if cmd.FEN != nil {
			sb.WriteString("fen ")
			sb.WriteString(*cmd.FEN)
		} else {
			sb.WriteString("startpos")
		}
		if len(cmd.Moves) > 0 {
			sb.WriteString(" moves ")
			sb.WriteString(strings.Join(cmd.Moves, " "))
		}
		return sb.String(), nil

	case core.StartAnalysis:
		parts := []string{"go"}
		if cmd.Depth != nil {
			parts = append(parts, "depth", strconv.Itoa(*cmd.Depth))
		}
		if cmd.MoveTime != nil {
			parts = append(parts, "movetime", strconv.Itoa(*cmd.MoveTime))
		}
		if cmd.Nodes != nil {
			parts = append(parts, "nodes", strconv.Itoa(*cmd.Nodes))
		}
		if cmd.MultiPV != nil {
			parts = append(parts, "multipv", strconv.Itoa(*cmd.MultiPV))
		}
		if len(cmd.SearchMoves) > 0 {
			parts = append(parts, "searchmoves")
			parts = append(parts, cmd.SearchMoves...)
		}
		return strings.Join(parts, " "), nil

	case core.StopAnalysis:
		return "stop", nil

	case core.SetOption:
		if cmd.Name == "" {
			return "", fmt.Errorf("%w: setoption requires a name", core.ErrUnknownCommand)
		}
		if cmd.Value == nil {
			// Button options carry no value.
			return "setoption name " + cmd.Name, nil
		}
		return fmt.Sprintf("setoption name %s value %s", cmd.Name, cmd.Value.Wire()), nil

	case core.Quit:
		return "quit", nil

	default:
		return "", fmt.Errorf("%w: %T", core.ErrUnknownCommand, cmd)
	}
}
