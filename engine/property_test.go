package engine_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathops/dijkstra"
	"github.com/katalvlaran/pathops/engine"
	"github.com/katalvlaran/pathops/graph"
)

// mirror keeps an independent graph.Graph in lockstep with the engine
// under test, so every query can be cross-checked against dijkstra.Run
// — a from-scratch oracle that never shares a code path with the
// engine's incremental machinery.
type mirror struct {
	g *graph.Graph
}

func newMirror(t *testing.T, n int) *mirror {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	return &mirror{g: g}
}

// TestEngine_PropertyAgainstOracle runs randomized sequences of
// mutations against both an Engine and a plain graph.Graph, comparing
// distances via dijkstra.Run after every query point.
//
// Case B mutations are queried individually (one removal/increase,
// then immediately a query); Case A mutations are batched (one to
// three relaxing mutations, then one query), matching spec.md's
// batched-heal scenario.
func TestEngine_PropertyAgainstOracle(t *testing.T) {
	const n = 12
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		e := mustEngine(t, n)
		m := newMirror(t, n)
		source := rng.Intn(n)
		require.NoError(t, e.SetSource(source))

		// Seed a random base graph.
		for i := 0; i < n*2; i++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			w := float64(rng.Intn(20) + 1)
			_, err := e.AddEdge(u, v, w)
			require.NoError(t, err)
			m.g.Add(u, v, w)
		}
		checkAgainstOracle(t, e, m, source)

		for step := 0; step < 15; step++ {
			switch rng.Intn(3) {
			case 0: // Case A batch: 1-3 relaxing mutations, then one query
				batch := rng.Intn(3) + 1
				for b := 0; b < batch; b++ {
					u, v := rng.Intn(n), rng.Intn(n)
					if u == v {
						continue
					}
					w, _, _ := m.g.GetWeight(u, v)
					var newW float64
					if w == graph.NoPriorWeight {
						newW = float64(rng.Intn(20) + 1)
					} else {
						newW = w / 2
					}
					require.NoError(t, e.SetEdge(u, v, newW))
					m.g.SetWeight(u, v, newW)
				}
				checkAgainstOracle(t, e, m, source)

			case 1: // Case B: single weight increase (an insertion when the edge is absent), queried alone
				u, v := rng.Intn(n), rng.Intn(n)
				if u == v {
					continue
				}
				w, ok, _ := m.g.GetWeight(u, v)
				if !ok {
					w = float64(rng.Intn(20) + 1)
					_, err := e.AddEdge(u, v, w)
					require.NoError(t, err)
					m.g.Add(u, v, w)
				} else {
					newW := w * 3
					require.NoError(t, e.SetEdge(u, v, newW))
					m.g.SetWeight(u, v, newW)
				}
				checkAgainstOracle(t, e, m, source)

			case 2: // Case B: single removal, queried alone
				u, v := rng.Intn(n), rng.Intn(n)
				if u == v {
					continue
				}
				removed, err := e.RemoveEdge(u, v)
				require.NoError(t, err)
				if removed {
					m.g.Remove(u, v)
				}
				checkAgainstOracle(t, e, m, source)
			}
		}
	}
}

func checkAgainstOracle(t *testing.T, e *engine.Engine, m *mirror, source int) {
	t.Helper()
	wantDist, _, err := dijkstra.Run(m.g, source)
	require.NoError(t, err)
	for target := 0; target < m.g.N(); target++ {
		got, err := e.Distance(target)
		require.NoError(t, err)
		if math.IsInf(wantDist[target], 1) {
			require.Truef(t, math.IsInf(got, 1), "target %d: oracle unreachable, engine got %v", target, got)
			continue
		}
		require.Equalf(t, wantDist[target], got, "target %d: oracle/engine distance mismatch", target)
	}
}
