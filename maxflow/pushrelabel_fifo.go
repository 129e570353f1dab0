package maxflow

// PushRelabelFIFO computes maximum flow via the preflow-push method,
// discharging active nodes in FIFO order and applying the gap and global
// relabeling heuristics.
//
// Complexity: O(V^2 * E).
// Memory: O(V + E) for distance labels, the current-edge pointer, the
// num-distance histogram, and the active-node queue.
type PushRelabelFIFO struct {
	graph residualGraph
	opts  FlowOptions

	active      []int // FIFO queue of active (non-source, non-sink) nodes
	activeHead  int
	currentEdge []int
	numDistance []int // numDistance[d] = count of nodes with distance d
}

// NewPushRelabelFIFO constructs an empty solver.
func NewPushRelabelFIFO(opts ...Option) *PushRelabelFIFO {
	return &PushRelabelFIFO{opts: buildOptions(opts)}
}

// AddDirectedEdge adds a directed edge from -> to with the given capacity.
func (s *PushRelabelFIFO) AddDirectedEdge(from, to int, capacity Flow) (edgeID int, ok bool) {
	return s.graph.addDirectedEdge(from, to, capacity)
}

// Solve computes the maximum flow from source to sink.
func (s *PushRelabelFIFO) Solve(source, sink int) Flow {
	s.graph.build()
	if source == sink || s.graph.numNodes == 0 || len(s.graph.edges) == 0 {
		return 0
	}

	s.preProcess(source, sink)

	for s.activeHead < len(s.active) {
		u := s.active[s.activeHead]
		s.activeHead++
		if u == sink || s.graph.distance[u] >= s.graph.numNodes {
			continue
		}
		s.discharge(u)
	}

	return s.graph.excess[sink]
}

func (s *PushRelabelFIFO) enqueue(u int) {
	s.active = append(s.active, u)
}

func (s *PushRelabelFIFO) preProcess(source, sink int) {
	n := s.graph.numNodes
	s.currentEdge = make([]int, n)
	s.numDistance = make([]int, n+1)

	s.graph.distance = s.graph.calculateDistanceToSink(sink)
	s.graph.distance[source] = n

	for u := 0; u < n; u++ {
		s.numDistance[s.graph.distance[u]]++
		s.currentEdge[u] = s.graph.start[u]
	}

	start, end := s.graph.start[source], s.graph.start[source+1]
	for i := start; i < end; i++ {
		delta := s.graph.half[i].residualCapacity()
		s.graph.pushFlow(source, i, delta)
	}

	for u := 0; u < n; u++ {
		if u != source && u != sink && s.graph.excess[u] > 0 {
			s.enqueue(u)
		}
	}
}

func (s *PushRelabelFIFO) discharge(u int) {
	end := s.graph.start[u+1]
	for i := s.currentEdge[u]; i < end; i++ {
		s.currentEdge[u] = i
		if s.graph.excess[u] > 0 {
			s.push(u, i)
		}
		if s.graph.excess[u] == 0 {
			return
		}
	}
	s.currentEdge[u] = s.graph.start[u]

	if s.numDistance[s.graph.distance[u]] == 1 {
		s.gapRelabeling(s.graph.distance[u])
	} else {
		s.relabel(u)
	}

	if s.graph.excess[u] > 0 {
		s.enqueue(u)
	}
}

func (s *PushRelabelFIFO) push(u, i int) {
	to := s.graph.half[i].to
	delta := s.graph.excess[u]
	if residual := s.graph.half[i].residualCapacity(); residual < delta {
		delta = residual
	}
	if s.graph.isAdmissibleEdge(u, to) && delta > 0 {
		s.graph.pushFlow(u, i, delta)
		if s.graph.excess[to] == delta {
			s.enqueue(to)
		}
	}
}

func (s *PushRelabelFIFO) relabel(u int) {
	s.numDistance[s.graph.distance[u]]--

	best := s.graph.numNodes
	for _, e := range s.graph.neighbors(u) {
		if e.residualCapacity() > 0 && s.graph.distance[e.to]+1 < best {
			best = s.graph.distance[e.to] + 1
		}
	}
	if best > s.graph.numNodes {
		best = s.graph.numNodes
	}
	s.graph.distance[u] = best

	s.numDistance[s.graph.distance[u]]++
}

// gapRelabeling lifts every node at distance >= k to numNodes in a single
// pass: once level k empties, those nodes can no longer reach the sink.
func (s *PushRelabelFIFO) gapRelabeling(k int) {
	for u := 0; u < s.graph.numNodes; u++ {
		if s.graph.distance[u] >= k {
			s.numDistance[s.graph.distance[u]]--
			if s.graph.distance[u] < s.graph.numNodes {
				s.graph.distance[u] = s.graph.numNodes
			}
			s.numDistance[s.graph.distance[u]]++
		}
	}
}
