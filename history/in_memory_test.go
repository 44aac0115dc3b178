package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/engineroom/core"
)

func TestInMemoryStore_AppendAndRecent(t *testing.T) {
	s := NewInMemoryStore(8)

	s.Append("sf", core.ReadyStateChanged{State: core.Starting})
	s.Append("sf", core.ReadyStateChanged{State: core.Initialized})

	entries := s.Recent("sf")
	require.Len(t, entries, 2)
	assert.Equal(t, core.ReadyStateChanged{State: core.Starting}, entries[0].Event)
	assert.Equal(t, core.ReadyStateChanged{State: core.Initialized}, entries[1].Event)
	assert.False(t, entries[0].Observed.After(entries[1].Observed))
}

func TestInMemoryStore_RetentionEvictsOldest(t *testing.T) {
	s := NewInMemoryStore(3)

	for i := 0; i < 5; i++ {
		depth := i
		s.Append("sf", core.AnalysisUpdate{Data: core.AnalysisData{Depth: &depth}})
	}

	entries := s.Recent("sf")
	require.Len(t, entries, 3)
	first := entries[0].Event.(core.AnalysisUpdate)
	require.NotNil(t, first.Data.Depth)
	assert.Equal(t, 2, *first.Data.Depth)
}

func TestInMemoryStore_RecentReturnsCopy(t *testing.T) {
	s := NewInMemoryStore(0)
	s.Append("sf", core.ReadyStateChanged{State: core.Ready})

	entries := s.Recent("sf")
	entries[0].Event = core.ReadyStateChanged{State: core.NotRunning}

	fresh := s.Recent("sf")
	assert.Equal(t, core.ReadyStateChanged{State: core.Ready}, fresh[0].Event)
}

func TestInMemoryStore_JournalsAreIndependent(t *testing.T) {
	s := NewInMemoryStore(0)

	s.Append("a", core.ReadyStateChanged{State: core.Ready})
	s.Append("b", core.ReadyStateChanged{State: core.Analyzing})

	assert.Len(t, s.Recent("a"), 1)
	assert.Len(t, s.Recent("b"), 1)
	assert.ElementsMatch(t, []string{"a", "b"}, s.Engines())
}

func TestInMemoryStore_Remove(t *testing.T) {
	s := NewInMemoryStore(0)
	s.Append("sf", core.ReadyStateChanged{State: core.Ready})

	s.Remove("sf")
	assert.Empty(t, s.Recent("sf"))
	assert.Empty(t, s.Engines())
}

func TestInMemoryStore_DefaultRetention(t *testing.T) {
	s := NewInMemoryStore(0)

	for i := 0; i < DefaultRetention+10; i++ {
		s.Append("sf", core.LifecycleEvent{Kind: core.LifecycleRegistration, Status: fmt.Sprintf("%d", i)})
	}

	assert.Len(t, s.Recent("sf"), DefaultRetention)
}
