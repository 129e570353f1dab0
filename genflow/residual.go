package genflow

import (
	"container/heap"
	"fmt"
	"math"
	"os"
)

// halfEdge is one directed residual arc in the gain-scaled graph. dist is
// the edge's contribution to the gain-scaled distance metric: roughly
// -log_base(gain), rounded so every edge contributes an integer number of
// distance units.
type halfEdge struct {
	to       int
	flow     Flow
	capacity Flow
	dist     Dist
	rev      int
}

// residualCapacity reports the remaining room to push flow on this half-edge.
func (e *halfEdge) residualCapacity() Flow {
	return e.capacity - e.flow
}

// inputEdge is a caller-added edge, retained (uncompacted) until build lays
// out the CSR table.
type inputEdge struct {
	from, to         int
	capacity, gain Flow
}

// scalingGraph is the CSR residual-graph representation shared by both
// generalized max-flow algorithms (component C2 of the design). Gain is
// folded into dist via a logarithm in the chosen base, so both solvers can
// reason about shortest paths with ordinary (integer) Dijkstra/SPFA instead
// of reasoning about products of gains directly.
//
// scalingGraph is not safe for concurrent use and is built exactly once.
type scalingGraph struct {
	numNodes int
	numEdges int
	base     Flow
	edges    []inputEdge
	isLossy  bool

	start     []int
	half      []halfEdge
	excess    []Flow
	potential []Dist
}

// newScalingGraph derives base from epsilon: base = (1+epsilon)^(1/numNodes),
// the scaling factor that bounds the rounding error introduced by
// integerizing gains to within a (1-epsilon) factor of optimal.
func newScalingGraph(numNodes int, epsilon Flow) scalingGraph {
	base := math.Pow(1.0+epsilon, 1.0/Flow(numNodes))
	return newScalingGraphWithBase(base)
}

func newScalingGraphWithBase(base Flow) scalingGraph {
	return scalingGraph{base: base, isLossy: true}
}

// addDirectedEdge records a new caller edge. A non-positive capacity or
// non-positive gain is rejected (ok == false) and logged to stderr, since a
// degenerate edge this permissive would otherwise silently distort the
// gain-scaling math.
func (g *scalingGraph) addDirectedEdge(from, to int, capacity, gain Flow) (edgeID int, ok bool) {
	if gain <= 0 {
		fmt.Fprintln(os.Stderr, "genflow: warning: gain needs to be greater than 0")
		return 0, false
	}
	if capacity <= 0 {
		fmt.Fprintln(os.Stderr, "genflow: warning: capacity needs to be greater than 0")
		return 0, false
	}

	if gain > 1.0 {
		g.isLossy = false
	}

	g.edges = append(g.edges, inputEdge{from: from, to: to, capacity: capacity, gain: gain})
	if from+1 > g.numNodes {
		g.numNodes = from + 1
	}
	if to+1 > g.numNodes {
		g.numNodes = to + 1
	}
	g.numEdges++

	return g.numEdges - 1, true
}

// neighbors returns the half-edges outgoing from u.
func (g *scalingGraph) neighbors(u int) []halfEdge {
	return g.half[g.start[u]:g.start[u+1]]
}

// pushFlow sends flow canonical-label units across half-edge i, owned by
// node u, converting to raw units via labels[u]/labels[to] on each side of
// the pair. Three clamps guard against floating-point drift pushing either
// half-edge fractionally outside its valid [0, capacity] range:
//   - overflow: forward flow exceeding capacity snaps to fully saturated,
//     its mirror to fully drained.
//   - negative reverse: a mirror that drifted below zero snaps to zero,
//     its forward half to fully saturated.
//   - near-zero residual: once either half-edge's remaining room is within
//     Eps of exhausted, both snap fully saturated/drained to avoid an
//     infinite sequence of ever-smaller augmentations chasing the dust left
//     by floating-point rounding.
func (g *scalingGraph) pushFlow(u, i int, flow Flow, labels []Flow) {
	to := g.half[i].to
	rev := g.half[i].rev

	g.half[i].flow += flow * labels[u]
	g.half[rev].flow -= flow * labels[to]

	if g.half[i].flow > g.half[i].capacity {
		g.half[i].flow = g.half[i].capacity
		g.half[rev].flow = 0
	}

	if g.half[rev].flow < 0 {
		g.half[rev].flow = 0
		g.half[i].flow = g.half[i].capacity
	}

	if g.half[i].residualCapacity() <= Eps || g.half[rev].flow <= Eps {
		g.half[i].flow = g.half[i].capacity
		g.half[rev].flow = 0
	}
}

// build lays the CSR table out of the edge list accumulated so far, scaling
// each edge's gain into an integer dist label: dist = -floor(log_base(gain)),
// and records the corresponding scaled-gain capacity on the reverse
// half-edge, which starts already carrying that much flow (mirroring the
// integer family's saturated-reverse-edge convention, generalized to the
// gain-scaled capacity rather than the raw one).
func (g *scalingGraph) build() {
	degree := make([]int, g.numNodes)
	forwardSlot := make([]int, g.numEdges)
	reverseSlot := make([]int, g.numEdges)

	type placed struct {
		node int
		edge halfEdge
	}
	staged := make([]placed, 0, 2*g.numEdges)
	for i, e := range g.edges {
		forwardSlot[i] = degree[e.from]
		degree[e.from]++
		reverseSlot[i] = degree[e.to]
		degree[e.to]++

		c := math.Floor(math.Log(e.gain) / math.Log(g.base))
		scaledGain := math.Pow(g.base, c)
		dist := Dist(-c)

		staged = append(staged, placed{node: e.from, edge: halfEdge{to: e.to, flow: 0, capacity: e.capacity, dist: dist}})
		staged = append(staged, placed{node: e.to, edge: halfEdge{
			to:       e.from,
			flow:     e.capacity * scaledGain,
			capacity: e.capacity * scaledGain,
			dist:     -dist,
		}})
	}

	g.excess = make([]Flow, g.numNodes)
	g.potential = make([]Dist, g.numNodes)
	g.start = make([]int, g.numNodes+1)
	g.half = make([]halfEdge, 2*g.numEdges)

	for _, p := range staged {
		g.start[p.node+1]++
	}
	for i := 1; i <= g.numNodes; i++ {
		g.start[i] += g.start[i-1]
	}

	counter := make([]int, g.numNodes)
	copy(counter, g.start[:g.numNodes])
	for _, p := range staged {
		g.half[counter[p.node]] = p.edge
		counter[p.node]++
	}

	for i := range g.edges {
		fwd := g.start[g.edges[i].from] + forwardSlot[i]
		rev := g.start[g.edges[i].to] + reverseSlot[i]
		g.half[fwd].rev = rev
		g.half[rev].rev = fwd
	}
}

// calculateDistanceToSinkWithNegativeEdge runs SPFA (Bellman-Ford with a
// FIFO worklist) backward from sink along positive-flow half-edges, since
// dist labels can be negative when gain > 1 and plain Dijkstra would not be
// correct. Returns (nil, false) if any node is relaxed numNodes or more
// times, which signals a flow-generating cycle reachable from the sink:
// no finite maximum flow exists.
//
// Updates g.potential as a side effect, consistent with the Dijkstra-based
// variant below, so later reduced-cost computations stay valid regardless
// of which distance routine ran most recently.
func (g *scalingGraph) calculateDistanceToSinkWithNegativeEdge(sink int) ([]Dist, bool) {
	distance := make([]Dist, g.numNodes)
	distanceToSink := make([]Dist, g.numNodes)
	inQueue := make([]bool, g.numNodes)
	visitCount := make([]int, g.numNodes)
	for u := range distance {
		distance[u] = DistMax
		distanceToSink[u] = DistMax
	}
	distance[sink] = 0
	distanceToSink[sink] = 0

	queue := make([]int, 0, g.numNodes)
	queue = append(queue, sink)
	inQueue[sink] = true

	var farthest Dist
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		inQueue[u] = false
		if distance[u] > farthest {
			farthest = distance[u]
		}

		for i := g.start[u]; i < g.start[u+1]; i++ {
			e := &g.half[i]
			if e.flow <= 0 {
				continue
			}
			d := -e.dist - g.potential[e.to] + g.potential[u]
			newDist := distance[u] + d

			if newDist < distance[e.to] {
				distance[e.to] = newDist
				distanceToSink[e.to] = distanceToSink[u] - e.dist

				visitCount[e.to]++
				if visitCount[e.to] >= g.numNodes {
					return nil, false
				}

				if !inQueue[e.to] {
					inQueue[e.to] = true
					queue = append(queue, e.to)
				}
			}
		}
	}

	for u := range g.potential {
		if distance[u] < farthest {
			g.potential[u] += distance[u]
		} else {
			g.potential[u] += farthest
		}
	}

	return distanceToSink, true
}

// calculateDistanceToSink runs Dijkstra backward from sink over reduced
// costs (valid because potential already certifies all edges non-negative),
// using a lazy-decrease-key binary heap in the idiom of this module's
// shortest-path tooling. Updates g.potential as a side effect.
func (g *scalingGraph) calculateDistanceToSink(sink int) []Dist {
	distance := make([]Dist, g.numNodes)
	distanceToSink := make([]Dist, g.numNodes)
	visited := make([]bool, g.numNodes)
	for u := range distance {
		distance[u] = DistMax
		distanceToSink[u] = DistMax
	}
	distance[sink] = 0
	distanceToSink[sink] = 0

	pq := make(distPQ, 0, g.numNodes)
	heap.Push(&pq, &distItem{node: sink, dist: 0})

	var farthest Dist
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		u := item.node
		if visited[u] {
			continue
		}
		visited[u] = true
		farthest = item.dist

		for i := g.start[u]; i < g.start[u+1]; i++ {
			e := &g.half[i]
			if e.flow <= 0 || visited[e.to] {
				continue
			}
			d := -e.dist - g.potential[e.to] + g.potential[u]
			newDist := item.dist + d
			if newDist < distance[e.to] {
				distance[e.to] = newDist
				distanceToSink[e.to] = distanceToSink[u] - e.dist
				heap.Push(&pq, &distItem{node: e.to, dist: newDist})
			}
		}
	}

	for u := range g.potential {
		if distance[u] < farthest {
			g.potential[u] += distance[u]
		} else {
			g.potential[u] += farthest
		}
	}

	return distanceToSink
}

// prevStep records, for node v reached by findShortestPath, the node u it
// was reached from and the CSR index of the half-edge u -> v.
type prevStep struct {
	node, edgeIdx int
}

// findShortestPath runs forward Dijkstra over reduced costs from source,
// returning the predecessor table needed to reconstruct the shortest
// (highest-gain) path to sink, or false if sink is unreachable. Updates
// g.potential as a side effect, maintaining the invariant that every
// residual edge's reduced cost is non-negative before the next call.
func (g *scalingGraph) findShortestPath(source, sink int) ([]prevStep, bool) {
	prev := make([]prevStep, g.numNodes)
	for u := range prev {
		prev[u] = prevStep{node: g.numNodes, edgeIdx: g.numNodes}
	}

	visited := make([]bool, g.numNodes)
	distance := make([]Dist, g.numNodes)
	for u := range distance {
		distance[u] = DistMax
	}
	distance[source] = 0

	pq := make(distPQ, 0, g.numNodes)
	heap.Push(&pq, &distItem{node: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		u := item.node
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == sink {
			break
		}

		start, end := g.start[u], g.start[u+1]
		for i := start; i < end; i++ {
			e := &g.half[i]
			if e.residualCapacity() < Eps || visited[e.to] {
				continue
			}

			d := e.dist + g.potential[u] - g.potential[e.to]
			newDist := item.dist + d
			if newDist < distance[e.to] {
				distance[e.to] = newDist
				prev[e.to] = prevStep{node: u, edgeIdx: i}
				heap.Push(&pq, &distItem{node: e.to, dist: newDist})
			}
		}
	}

	for u := 0; u < g.numNodes; u++ {
		if visited[u] {
			g.potential[u] += distance[u] - distance[sink]
		}
	}

	if !visited[sink] {
		return nil, false
	}

	return prev, true
}

// distItem is one (node, dist) pair queued by the lazy-decrease-key
// priority queue shared by calculateDistanceToSink and findShortestPath.
type distItem struct {
	node int
	dist Dist
}

// distPQ is a min-heap of *distItem ordered by dist ascending. Stale
// entries (superseded by a later, smaller-dist push for the same node) are
// left in place and simply skipped once popped, rather than removed
// eagerly.
type distPQ []*distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
