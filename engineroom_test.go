package engineroom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/engineroom/core"
	"github.com/hupe1980/engineroom/history"
	"github.com/hupe1980/engineroom/manager"
)

func TestNew_Defaults(t *testing.T) {
	room := New()
	require.NotNil(t, room)

	assert.Empty(t, room.EngineNames())
	assert.Empty(t, room.GetAllEngineState())
}

func TestEngineRoom_EmptyBroadcastsAreNoOps(t *testing.T) {
	room := New()

	assert.NoError(t, room.SetPosition(nil, nil))
	assert.NoError(t, room.StartAnalysis(core.StartAnalysis{}))
	assert.NoError(t, room.StopAnalysis())
	assert.NoError(t, room.Shutdown(context.Background()))
}

func TestEngineRoom_SingleEngineOpsRequireRegistration(t *testing.T) {
	room := New()

	err := room.SetEngineOption("ghost", "Hash", core.IntValue{Value: 64})
	assert.ErrorIs(t, err, manager.ErrEngineNotFound)

	err = room.QuickStartPositionAnalysisFor("ghost", nil, nil, core.StartAnalysis{})
	assert.ErrorIs(t, err, manager.ErrEngineNotFound)

	err = room.RemoveEngine(context.Background(), "ghost")
	assert.ErrorIs(t, err, manager.ErrEngineNotFound)
}

func TestEngineRoom_OptionOverrides(t *testing.T) {
	journal := history.NewInMemoryStore(4)
	sink := core.SinkFunc(func(string, core.Event) {})

	room := New(func(o *Options) {
		o.Sink = sink
		o.History = journal
		o.SubscriptionBuffer = 8
	})
	require.NotNil(t, room)
	assert.Empty(t, room.RecentEvents("any"))
}
