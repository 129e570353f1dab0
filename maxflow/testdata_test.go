package maxflow_test

import "github.com/katalvlaran/netflow/maxflow"

// flowEdge is a plain (from, to, capacity) triple used to build fixtures
// shared across every solver's test suite.
type flowEdge struct {
	from, to int
	capacity maxflow.Flow
}

// solver is the common shape every integer max-flow algorithm in this
// package exposes.
type solver interface {
	AddDirectedEdge(from, to int, capacity maxflow.Flow) (int, bool)
	Solve(source, sink int) maxflow.Flow
}

// solverConstructors enumerates every algorithm this package ships;
// agreement_test.go checks they all agree on the same instance (spec
// §8.1 item 4).
var solverConstructors = map[string]func() solver{
	"FordFulkerson":           func() solver { return maxflow.NewFordFulkerson() },
	"Dinic":                   func() solver { return maxflow.NewDinic() },
	"CapacityScaling":         func() solver { return maxflow.NewCapacityScaling() },
	"PushRelabelFIFO":         func() solver { return maxflow.NewPushRelabelFIFO() },
	"PushRelabelHighestLabel": func() solver { return maxflow.NewPushRelabelHighestLabel() },
}

func solveWith(s solver, edges []flowEdge, source, sink int) maxflow.Flow {
	for _, e := range edges {
		s.AddDirectedEdge(e.from, e.to, e.capacity)
	}
	return s.Solve(source, sink)
}

// singleEdgeFixture is scenario S1: n=2, one edge 0->1 capacity 5.
func singleEdgeFixture() (edges []flowEdge, source, sink int, want maxflow.Flow) {
	return []flowEdge{{0, 1, 5}}, 0, 1, 5
}

// aojGRL6AFixture is scenario S2: the AOJ GRL_6_A sample, max flow 3.
func aojGRL6AFixture() (edges []flowEdge, source, sink int, want maxflow.Flow) {
	return []flowEdge{
		{0, 1, 2},
		{0, 2, 1},
		{1, 2, 1},
		{1, 3, 1},
		{2, 3, 2},
	}, 0, 3, 3
}

// diamondFixture needs more than one augmentation to saturate: two
// source->sink paths, each limited to one unit, that merge at node 3 and
// share the final edge 3->4.
func diamondFixture() (edges []flowEdge, source, sink int, want maxflow.Flow) {
	return []flowEdge{
		{0, 1, 2},
		{0, 2, 1},
		{1, 3, 1},
		{2, 3, 1},
		{3, 4, 2},
	}, 0, 4, 2
}
