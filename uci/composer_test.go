package uci

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/engineroom/core"
)

func TestComposer_InitialCommand(t *testing.T) {
	c := NewComposer()

	wire, err := c.Compose(c.InitialCommand())
	require.NoError(t, err)
	assert.Equal(t, "uci", wire)
}

func TestComposer_SimpleCommands(t *testing.T) {
	c := NewComposer()

	tests := []struct {
		name string
		cmd  core.Command
		want string
	}{
		{"raw", core.Raw{Text: "debug on"}, "debug on"},
		{"isready", core.IsReady{}, "isready"},
		{"newgame", core.NewGame{}, "ucinewgame"},
		{"stop", core.StopAnalysis{}, "stop"},
		{"quit", core.Quit{}, "quit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire, err := c.Compose(tt.cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.want, wire)
		})
	}
}

func TestComposer_SetPosition(t *testing.T) {
	c := NewComposer()

	t.Run("startpos without moves", func(t *testing.T) {
		wire, err := c.Compose(core.SetPosition{})
		require.NoError(t, err)
		assert.Equal(t, "position startpos", wire)
	})

	t.Run("startpos with moves", func(t *testing.T) {
		wire, err := c.Compose(core.SetPosition{Moves: []string{"e2e4", "e7e5"}})
		require.NoError(t, err)
		assert.Equal(t, "position startpos moves e2e4 e7e5", wire)
	})

	t.Run("fen with moves", func(t *testing.T) {
		fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
		wire, err := c.Compose(core.SetPosition{FEN: &fen, Moves: []string{"f1b5"}})
		require.NoError(t, err)
		assert.Equal(t, "position fen "+fen+" moves f1b5", wire)
	})
}

func TestComposer_StartAnalysis(t *testing.T) {
	c := NewComposer()

	t.Run("unbounded", func(t *testing.T) {
		wire, err := c.Compose(core.StartAnalysis{})
		require.NoError(t, err)
		assert.Equal(t, "go", wire)
	})

	t.Run("all parameters in canonical order", func(t *testing.T) {
		depth, movetime, nodes, multipv := 20, 5000, 1000000, 3
		wire, err := c.Compose(core.StartAnalysis{
			Depth:       &depth,
			MoveTime:    &movetime,
			Nodes:       &nodes,
			MultiPV:     &multipv,
			SearchMoves: []string{"e2e4", "d2d4"},
		})
		require.NoError(t, err)
		assert.Equal(t, "go depth 20 movetime 5000 nodes 1000000 multipv 3 searchmoves e2e4 d2d4", wire)
	})
}

func TestComposer_SetOption(t *testing.T) {
	c := NewComposer()

	t.Run("string value", func(t *testing.T) {
		wire, err := c.Compose(core.SetOption{Name: "SyzygyPath", Value: core.StringValue{Value: "/tb"}})
		require.NoError(t, err)
		assert.Equal(t, "setoption name SyzygyPath value /tb", wire)
	})

	t.Run("int value", func(t *testing.T) {
		wire, err := c.Compose(core.SetOption{Name: "Hash", Value: core.IntValue{Value: 256}})
		require.NoError(t, err)
		assert.Equal(t, "setoption name Hash value 256", wire)
	})

	t.Run("bool value", func(t *testing.T) {
		wire, err := c.Compose(core.SetOption{Name: "Ponder", Value: core.BoolValue{Value: true}})
		require.NoError(t, err)
		assert.Equal(t, "setoption name Ponder value true", wire)
	})

	t.Run("button carries no value", func(t *testing.T) {
		wire, err := c.Compose(core.SetOption{Name: "Clear Hash"})
		require.NoError(t, err)
		assert.Equal(t, "setoption name Clear Hash", wire)
	})

	t.Run("missing name fails", func(t *testing.T) {
		_, err := c.Compose(core.SetOption{})
		assert.True(t, errors.Is(err, core.ErrUnknownCommand))
	})
}
