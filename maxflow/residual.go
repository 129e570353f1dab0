package maxflow

// halfEdge is one directed residual arc, stored in the CSR half-edge table.
// Every caller edge produces exactly two halfEdges (forward and reverse);
// rev links each to its pair so a push on one is mirrored on the other.
type halfEdge struct {
	to       int  // destination node
	flow     Flow // current flow through this half-edge
	capacity Flow // upper bound on flow
	rev      int  // CSR index of the paired half-edge
}

// residualCapacity reports the remaining room to push flow on this half-edge.
func (e *halfEdge) residualCapacity() Flow {
	return e.capacity - e.flow
}

// inputEdge is a caller-added edge, retained (uncompacted) until build lays
// out the CSR table.
type inputEdge struct {
	from, to int
	capacity Flow
}

// residualGraph is the CSR residual-graph representation shared by every
// integer max-flow algorithm (component C1 of the design). Nodes are dense
// integers 0..numNodes-1, implicitly sized to max(from,to)+1 over every
// added edge. Edges occupy contiguous index ranges start[u]..start[u+1] in
// half, and every half-edge's rev field points at its paired reverse arc.
//
// residualGraph is not safe for concurrent use and is built exactly once:
// add edges, call build, then mutate flow/excess/distance in place via the
// algorithm that owns this graph.
type residualGraph struct {
	numNodes int
	edges    []inputEdge

	start    []int
	half     []halfEdge
	excess   []Flow
	distance []int
}

// addDirectedEdge records a new caller edge. Non-positive capacity is
// rejected silently (ok == false), matching the source contract: invalid
// edges never reach the residual graph and no warning is logged for the
// integer family (unlike the gain family, which does warn - see genflow).
func (g *residualGraph) addDirectedEdge(from, to int, capacity Flow) (edgeID int, ok bool) {
	if capacity <= 0 {
		return 0, false
	}
	g.edges = append(g.edges, inputEdge{from: from, to: to, capacity: capacity})
	if from+1 > g.numNodes {
		g.numNodes = from + 1
	}
	if to+1 > g.numNodes {
		g.numNodes = to + 1
	}

	return len(g.edges) - 1, true
}

// build lays the CSR table out of the edge list accumulated so far: a
// two-pass degree-count / prefix-sum / placement, writing each half-edge
// pair's rev cross-link as it goes. Call at most once per residualGraph;
// idempotency is not required or supported.
func (g *residualGraph) build() {
	numEdges := len(g.edges)
	degree := make([]int, g.numNodes)
	forwardSlot := make([]int, numEdges)
	reverseSlot := make([]int, numEdges)

	type placed struct {
		node int
		edge halfEdge
	}
	staged := make([]placed, 0, 2*numEdges)
	for i, e := range g.edges {
		forwardSlot[i] = degree[e.from]
		degree[e.from]++
		reverseSlot[i] = degree[e.to]
		degree[e.to]++

		// forward: from -> to, full capacity, zero flow.
		staged = append(staged, placed{node: e.from, edge: halfEdge{to: e.to, flow: 0, capacity: e.capacity}})
		// reverse: to -> from, starts saturated so its residual is zero
		// until forward flow is pushed.
		staged = append(staged, placed{node: e.to, edge: halfEdge{to: e.from, flow: e.capacity, capacity: e.capacity}})
	}

	g.excess = make([]Flow, g.numNodes)
	g.distance = make([]int, g.numNodes)
	g.start = make([]int, g.numNodes+1)
	g.half = make([]halfEdge, 2*numEdges)

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

	for i, e := range g.edges {
		fwd := g.start[e.from] + forwardSlot[i]
		rev := g.start[e.to] + reverseSlot[i]
		g.half[fwd].rev = rev
		g.half[rev].rev = fwd
	}
}

// neighbors returns the half-edges outgoing from u.
func (g *residualGraph) neighbors(u int) []halfEdge {
	return g.half[g.start[u]:g.start[u+1]]
}

// pushFlow sends flow units of flow across half-edge i, owned by node u,
// mirroring the update onto its reverse pair and adjusting both endpoints'
// excess.
func (g *residualGraph) pushFlow(u, i int, flow Flow) {
	if flow == 0 {
		return
	}
	to := g.half[i].to
	rev := g.half[i].rev

	g.half[i].flow += flow
	g.half[rev].flow -= flow

	g.excess[u] -= flow
	g.excess[to] += flow
}

// calculateDistanceToSink runs a reverse BFS from sink, following half-edges
// with positive flow (which denote residual capacity in the opposite
// direction). Unreached nodes get distance numNodes (used as infinity).
func (g *residualGraph) calculateDistanceToSink(sink int) []int {
	distance := make([]int, g.numNodes)
	for u := range distance {
		distance[u] = g.numNodes
	}
	distance[sink] = 0

	queue := make([]int, 0, g.numNodes)
	queue = append(queue, sink)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, e := range g.neighbors(u) {
			if e.flow > 0 && distance[e.to] > distance[u]+1 {
				distance[e.to] = distance[u] + 1
				queue = append(queue, e.to)
			}
		}
	}

	return distance
}

// isAdmissibleEdge reports whether (from, to) satisfies the push-relabel
// admissibility invariant dist[from] == dist[to] + 1.
func (g *residualGraph) isAdmissibleEdge(from, to int) bool {
	return g.distance[from] == g.distance[to]+1
}
