package genflow_test

import "github.com/katalvlaran/netflow/genflow"

// gainEdge is a plain (from, to, capacity, gain) quadruple used to build
// fixtures shared across both solvers' test suites.
type gainEdge struct {
	from, to          int
	capacity, gain genflow.Flow
}

// gainSolver is the common shape both generalized max-flow algorithms in
// this package expose.
type gainSolver interface {
	AddDirectedEdge(from, to int, capacity, gain genflow.Flow) (int, bool)
	Solve(source, sink int) genflow.Flow
}

// gainSolverConstructors enumerates both algorithms this package ships;
// agreement_test.go checks they agree (within epsilon) on the same
// instance.
var gainSolverConstructors = map[string]func(numNodes int, epsilon float64) gainSolver{
	"HighestGainPathMethod": func(numNodes int, epsilon float64) gainSolver {
		return genflow.NewHighestGainPathMethod(numNodes, epsilon)
	},
	"RoundedPrimalDual": func(numNodes int, epsilon float64) gainSolver {
		return genflow.NewRoundedPrimalDual(numNodes, epsilon)
	},
}

func solveGainWith(s gainSolver, edges []gainEdge, source, sink int) genflow.Flow {
	for _, e := range edges {
		s.AddDirectedEdge(e.from, e.to, e.capacity, e.gain)
	}
	return s.Solve(source, sink)
}

// sampleNetworkFixture is the canonical eight-node, fifteen-edge sample:
// expected maximum flow is approximately 7.363 at epsilon 0.01.
func sampleNetworkFixture() (numNodes int, epsilon float64, edges []gainEdge, source, sink int, expected genflow.Flow) {
	edges = []gainEdge{
		{0, 1, 12.0, 0.7},
		{0, 2, 3.0, 0.9},
		{0, 3, 4.0, 0.8},

		{1, 4, 3.0, 0.5},
		{1, 5, 5.0, 0.8},

		{2, 1, 2.7, 1.0},
		{2, 3, 20.0 / 9.0, 0.9},
		{2, 5, 5.0, 0.7},

		{3, 5, 1.0, 1.0},
		{3, 6, 2.0, 0.7},

		{4, 7, 2.0, 0.5},

		{5, 4, 1.0, 0.5},
		{5, 6, 6.0, 0.7},
		{5, 7, 1.3, 1.0},

		{6, 7, 7.0, 1.0},
	}
	return 8, 0.01, edges, 0, 7, 7.363
}

// singleEdgeGainFixture: one edge, gain 1 (lossless), capacity 5.
func singleEdgeGainFixture() (numNodes int, epsilon float64, edges []gainEdge, source, sink int, expected genflow.Flow) {
	return 2, 0.01, []gainEdge{{0, 1, 5.0, 1.0}}, 0, 1, 5.0
}

// lossyChainFixture: a two-hop chain where each edge halves the flow,
// capacity-unconstrained relative to the gain loss.
func lossyChainFixture() (numNodes int, epsilon float64, edges []gainEdge, source, sink int, expected genflow.Flow) {
	return 3, 0.01, []gainEdge{
		{0, 1, 10.0, 0.5},
		{1, 2, 10.0, 0.5},
	}, 0, 2, 2.5
}

// flowGeneratingCycleFixture: a two-node cycle with gain 2 on each arc,
// connected to sink by a lossless edge - an unbounded flow-generating
// cycle reachable from the sink, which Solve must reject by returning 0.
func flowGeneratingCycleFixture() (numNodes int, epsilon float64, edges []gainEdge, source, sink int) {
	return 3, 0.01, []gainEdge{
		{0, 1, 5.0, 2.0},
		{1, 0, 5.0, 2.0},
		{1, 2, 5.0, 1.0},
	}, 0, 2
}
