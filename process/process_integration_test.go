package process

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/engineroom/core"
	"github.com/hupe1980/engineroom/state"
	"github.com/hupe1980/engineroom/uci"
)

var (
	fakeEnginePath string
	buildOnce      sync.Once
	buildErr       error
)

// buildFakeEngine builds the fake UCI engine binary once per test run.
func buildFakeEngine(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "engineroom-test-*")
		if err != nil {
			buildErr = err
			return
		}

		fakeEnginePath = filepath.Join(tmpDir, "fakeengine")
		cmd := exec.Command("go", "build", "-o", fakeEnginePath, "./testdata/fakeengine")
		cmd.Env = append(os.Environ(), "CGO_ENABLED=0")

		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = err
			t.Logf("build output: %s", out)
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build fakeengine: %v", buildErr)
	}
	return fakeEnginePath
}

func spawnFakeEngine(t *testing.T, args ...string) *Process[*state.Info] {
	t.Helper()

	p, err := New(buildFakeEngine(t), state.NewInfo(), func(o *Options) {
		o.Args = args
	})
	require.NoError(t, err)

	require.NoError(t, p.Spawn(context.Background(), uci.NewComposer(), uci.NewParser()))
	t.Cleanup(func() { _ = p.Kill() })
	return p
}

func TestProcess_SpawnAndHandshake(t *testing.T) {
	p := spawnFakeEngine(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.WaitUntilReady(ctx, core.Initialized))

	snap := p.State().Snapshot()
	assert.Equal(t, "FakeEngine 1.0", snap.Identity.Name)
	assert.Equal(t, "The Fake Authors", snap.Identity.Author)
	assert.Contains(t, snap.Capabilities, "Hash")
	assert.Contains(t, snap.Capabilities, "Ponder")
}

func TestProcess_SpawnTwiceFails(t *testing.T) {
	p := spawnFakeEngine(t)

	err := p.Spawn(context.Background(), uci.NewComposer(), uci.NewParser())
	assert.ErrorIs(t, err, core.ErrProcessAlreadyRunning)
}

func TestProcess_SpawnNonexistentExecutableFails(t *testing.T) {
	p, err := New("/nonexistent/engine", state.NewInfo())
	require.NoError(t, err)

	err = p.Spawn(context.Background(), uci.NewComposer(), uci.NewParser())
	assert.ErrorIs(t, err, core.ErrProcessFailedToStart)
}

func TestProcess_AnalysisRoundTrip(t *testing.T) {
	p := spawnFakeEngine(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.WaitUntilReady(ctx, core.Initialized))

	in, err := p.Input()
	require.NoError(t, err)

	require.NoError(t, in.SetPosition(nil, []string{"e2e4"}))

	depth := 2
	require.NoError(t, in.StartAnalysis(core.StartAnalysis{Depth: &depth}))
	require.NoError(t, p.WaitUntilReady(ctx, core.Ready))

	snap := p.State().Snapshot()
	require.NotNil(t, snap.BestMove)
	assert.Equal(t, "e2e4", snap.BestMove.Move)
	assert.NotEmpty(t, snap.Analysis)
}

func TestProcess_MonitorEventsStopsOnCallbackFalse(t *testing.T) {
	p := spawnFakeEngine(t)

	in, err := p.Input()
	require.NoError(t, err)

	movetime := 10
	require.NoError(t, in.StartAnalysis(core.StartAnalysis{MoveTime: &movetime}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var seen int
	err = p.MonitorEvents(ctx, func(event core.Event) bool {
		seen++
		_, isBest := event.(core.BestMove)
		return !isBest
	})
	require.NoError(t, err)
	assert.Greater(t, seen, 0)
}

func TestProcess_GracefulShutdown(t *testing.T) {
	p := spawnFakeEngine(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.WaitUntilReady(ctx, core.Initialized))

	require.NoError(t, p.Shutdown(ctx))
}

func TestProcess_ShutdownKillsStubbornEngine(t *testing.T) {
	p := spawnFakeEngine(t, "-mode=slowquit")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.WaitUntilReady(ctx, core.Initialized))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancelShutdown()
	require.NoError(t, p.Shutdown(shutdownCtx))
}

func TestProcess_WaitUntilReadyHonorsContext(t *testing.T) {
	p := spawnFakeEngine(t, "-mode=mute")

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := p.WaitUntilReady(ctx, core.Initialized)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProcess_WaitUntilReadyStopsOnErrorEvent(t *testing.T) {
	p, err := New(buildFakeEngine(t), state.NewInfo())
	require.NoError(t, err)

	// Every engine line is turned into a rejected update, so the wait must
	// fail on the first observed event instead of running into its deadline.
	require.NoError(t, p.Spawn(context.Background(), uci.NewComposer(), errorParser{}))
	t.Cleanup(func() { _ = p.Kill() })

	in, err := p.Input()
	require.NoError(t, err)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-time.After(50 * time.Millisecond):
				_ = in.IsReady()
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.WaitUntilReady(ctx, core.Ready)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrApplyUpdate)
}

func TestProcess_KillIsIdempotentAfterSpawn(t *testing.T) {
	p := spawnFakeEngine(t)

	require.NoError(t, p.Kill())
	require.NoError(t, p.Kill())
}
