package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathops/engine"
)

func mustEngine(t *testing.T, n int, opts ...engine.Option) *engine.Engine {
	t.Helper()
	e, err := engine.New(n, opts...)
	require.NoError(t, err)
	return e
}

// Scenario 1: linear chain, single full run.
func TestEngine_LinearChain(t *testing.T) {
	e := mustEngine(t, 4)
	e.AddEdge(0, 1, 1)
	e.AddEdge(1, 2, 2)
	e.AddEdge(2, 3, 1)
	require.NoError(t, e.SetSource(0))

	res, err := e.ShortestPath(3)
	require.NoError(t, err)
	require.True(t, res.Reachable)
	require.Equal(t, 4.0, res.Distance)
	require.Equal(t, []int{0, 1, 2, 3}, res.Path)
}

// Scenario 2: Case A incremental heal.
func TestEngine_CaseA_IncrementalHeal(t *testing.T) {
	e := mustEngine(t, 4)
	e.AddEdge(0, 1, 10)
	e.AddEdge(1, 2, 10)
	e.AddEdge(0, 3, 100)
	require.NoError(t, e.SetSource(0))

	res, err := e.ShortestPath(3)
	require.NoError(t, err)
	require.Equal(t, 100.0, res.Distance, "expected distance before heal")

	_, err = e.AddEdge(2, 3, 1)
	require.NoError(t, err)

	res, err = e.ShortestPath(3)
	require.NoError(t, err)
	require.Equal(t, 21.0, res.Distance, "expected healed distance")
	require.Equal(t, []int{0, 1, 2, 3}, res.Path)
}

// Scenario 3: Case B dirty recompute.
func TestEngine_CaseB_DirtyRecompute(t *testing.T) {
	e := mustEngine(t, 4)
	e.AddEdge(0, 1, 1)
	e.AddEdge(1, 2, 1)
	e.AddEdge(2, 3, 1)
	e.AddEdge(0, 3, 10)
	require.NoError(t, e.SetSource(0))

	res, err := e.ShortestPath(3)
	require.NoError(t, err)
	require.Equal(t, 3.0, res.Distance, "expected distance before removal")

	_, err = e.RemoveEdge(1, 2)
	require.NoError(t, err)

	res, err = e.ShortestPath(3)
	require.NoError(t, err)
	require.Equal(t, 10.0, res.Distance, "expected distance after removal")
	require.Equal(t, []int{0, 3}, res.Path)
}

// Scenario 4: Case B with the source itself inside the dirty subtree.
func TestEngine_CaseB_SourceInDirtySubtree(t *testing.T) {
	e := mustEngine(t, 3)
	e.AddEdge(0, 1, 1)
	e.AddEdge(1, 2, 2)
	require.NoError(t, e.SetSource(1))

	d, err := e.Distance(2)
	require.NoError(t, err)
	require.Equal(t, 2.0, d, "expected distance before removal")

	_, err = e.RemoveEdge(0, 1)
	require.NoError(t, err)

	d, err = e.Distance(2)
	require.NoError(t, err)
	require.Equal(t, 2.0, d, "source's own subtree is unaffected by removing an edge into source")

	res, err := e.ShortestPath(0)
	require.NoError(t, err)
	require.False(t, res.Reachable, "vertex 0 must be unreachable from source 1")
}

// Scenario 5: threshold pruning.
func TestEngine_ThresholdPruning(t *testing.T) {
	e := mustEngine(t, 4)
	e.AddEdge(0, 1, 1)
	e.AddEdge(1, 2, 1)
	e.AddEdge(0, 3, 100)
	require.NoError(t, e.SetSource(0))
	e.SetThreshold(5)

	res, err := e.ShortestPath(3)
	require.NoError(t, err)
	require.False(t, res.Reachable, "vertex 3 must be pruned by the threshold")
	require.True(t, math.IsInf(res.Distance, 1))

	res, err = e.ShortestPath(2)
	require.NoError(t, err)
	require.Equal(t, 2.0, res.Distance, "vertex 2 is within the threshold")
}

// Scenario 6: batched Case A — several pending relaxations flushed together.
func TestEngine_BatchedCaseA(t *testing.T) {
	e := mustEngine(t, 4)
	e.AddEdge(0, 1, 10)
	e.AddEdge(0, 3, 100)
	require.NoError(t, e.SetSource(0))

	res, err := e.ShortestPath(3)
	require.NoError(t, err)
	require.Equal(t, 100.0, res.Distance, "expected distance before batch")

	_, err = e.AddEdge(1, 2, 1)
	require.NoError(t, err)
	_, err = e.AddEdge(2, 3, 1)
	require.NoError(t, err)

	res, err = e.ShortestPath(3)
	require.NoError(t, err)
	require.Equal(t, 12.0, res.Distance, "pending relaxations must be flushed together")
	require.Equal(t, []int{0, 1, 2, 3}, res.Path)
}

// Regression: SetSource followed directly by AddEdge, with no prior full
// commit, must not route into the Case A incremental path — there is no
// cached dist/parent state yet to relax against.
func TestEngine_PendingBeforeFirstCommit_FallsBackToFullRun(t *testing.T) {
	e := mustEngine(t, 3)
	require.NoError(t, e.SetSource(0))

	_, err := e.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = e.AddEdge(1, 2, 1)
	require.NoError(t, err)

	res, err := e.ShortestPath(2)
	require.NoError(t, err)
	require.True(t, res.Reachable)
	require.Equal(t, 2.0, res.Distance)
	require.Equal(t, []int{0, 1, 2}, res.Path)
}

// Regression: a removal queued after pending insertions, against a
// committed cache, must not let the dirty recompute replay the removed
// edge's relaxation.
func TestEngine_DirtyRecompute_DiscardsStalePendingRelax(t *testing.T) {
	e := mustEngine(t, 4)
	e.AddEdge(0, 1, 10)
	e.AddEdge(0, 3, 100)
	require.NoError(t, e.SetSource(0))
	_, err := e.Distance(3)
	require.NoError(t, err)

	// Case A: queue a shortcut through 1->2->3, but do not query yet.
	_, err = e.AddEdge(1, 2, 1)
	require.NoError(t, err)
	_, err = e.AddEdge(2, 3, 1)
	require.NoError(t, err)

	// Case B arrives before the pending relaxations are flushed, and
	// removes the very edge the queued relaxation depended on.
	_, err = e.RemoveEdge(2, 3)
	require.NoError(t, err)

	res, err := e.ShortestPath(3)
	require.NoError(t, err)
	require.Equal(t, 100.0, res.Distance, "removed shortcut must not be resurrected by stale pending relaxations")
}

func TestEngine_OutOfRangeCapacity(t *testing.T) {
	_, err := engine.New(0)
	require.ErrorIs(t, err, engine.ErrCapacityRejected)
}

func TestEngine_NoSource(t *testing.T) {
	e := mustEngine(t, 2)
	_, err := e.Distance(1)
	require.ErrorIs(t, err, engine.ErrNoSource)
}

func TestEngine_Invalidate(t *testing.T) {
	e := mustEngine(t, 2)
	e.AddEdge(0, 1, 1)
	require.NoError(t, e.SetSource(0))
	_, err := e.Distance(1)
	require.NoError(t, err)

	e.Invalidate()
	res, err := e.ShortestPath(1)
	require.NoError(t, err)
	require.Equal(t, 1.0, res.Distance)
}

// Unbounded threshold (default +Inf) must agree with a threshold
// explicitly set to +Inf.
func TestEngine_InfiniteThresholdMatchesUnbounded(t *testing.T) {
	e1 := mustEngine(t, 4)
	e2 := mustEngine(t, 4, engine.WithInitialThreshold(math.Inf(1)))
	for _, e := range []*engine.Engine{e1, e2} {
		e.AddEdge(0, 1, 1)
		e.AddEdge(1, 2, 2)
		e.AddEdge(2, 3, 1)
		require.NoError(t, e.SetSource(0))
	}
	r1, err := e1.ShortestPath(3)
	require.NoError(t, err)
	r2, err := e2.ShortestPath(3)
	require.NoError(t, err)
	require.Equal(t, r1.Distance, r2.Distance)
}
