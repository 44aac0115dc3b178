package process

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/engineroom/core"
	"github.com/hupe1980/engineroom/state"
)

func TestNew_RequiresPath(t *testing.T) {
	_, err := New("", state.NewInfo())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestNew_RequiresState(t *testing.T) {
	_, err := New[*state.Info]("/usr/bin/stockfish", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestProcess_HandlersUnavailableBeforeSpawn(t *testing.T) {
	p, err := New("/usr/bin/stockfish", state.NewInfo())
	require.NoError(t, err)

	_, err = p.Input()
	assert.ErrorIs(t, err, core.ErrProcessNotRunning)

	_, err = p.Output()
	assert.ErrorIs(t, err, core.ErrProcessNotRunning)
}

func TestProcess_StateAvailableBeforeSpawn(t *testing.T) {
	info := state.NewInfo()
	p, err := New("/usr/bin/stockfish", info)
	require.NoError(t, err)

	assert.Same(t, info, p.State())
	assert.Equal(t, core.NotRunning, p.State().ReadyState())
}

func TestProcess_KillBeforeSpawnIsIdempotentNoOp(t *testing.T) {
	p, err := New("/usr/bin/stockfish", state.NewInfo())
	require.NoError(t, err)

	assert.NoError(t, p.Kill())
	assert.NoError(t, p.Kill())
}

func TestProcess_WaitUntilReadyBeforeSpawnFails(t *testing.T) {
	p, err := New("/usr/bin/stockfish", state.NewInfo())
	require.NoError(t, err)

	assert.ErrorIs(t, p.WaitUntilReady(context.Background(), core.Ready), core.ErrProcessNotRunning)
}

func TestOptions_Defaults(t *testing.T) {
	p, err := New("/usr/bin/stockfish", state.NewInfo(), func(o *Options) {
		o.Args = []string{"--uci"}
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"--uci"}, p.args)
	assert.NotNil(t, p.logger)
}
