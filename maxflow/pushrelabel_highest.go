package maxflow

// PushRelabelHighestLabel computes maximum flow via the preflow-push
// method, always discharging an active node with the highest distance
// label: active nodes are bucketed by distance, and bucketIdx tracks the
// highest currently non-empty bucket.
//
// Complexity: O(V^2 * sqrt(E)).
// Memory: O(V + E) for distance labels, the current-edge pointer, the
// num-distance histogram, and the distance buckets.
type PushRelabelHighestLabel struct {
	graph residualGraph
	opts  FlowOptions

	currentEdge []int
	buckets     [][]int
	inBucket    []bool
	bucketIdx   int
	numDistance []int
}

// NewPushRelabelHighestLabel constructs an empty solver.
func NewPushRelabelHighestLabel(opts ...Option) *PushRelabelHighestLabel {
	return &PushRelabelHighestLabel{opts: buildOptions(opts)}
}

// AddDirectedEdge adds a directed edge from -> to with the given capacity.
func (s *PushRelabelHighestLabel) AddDirectedEdge(from, to int, capacity Flow) (edgeID int, ok bool) {
	return s.graph.addDirectedEdge(from, to, capacity)
}

// Solve computes the maximum flow from source to sink.
func (s *PushRelabelHighestLabel) Solve(source, sink int) Flow {
	s.graph.build()
	if source == sink || s.graph.numNodes == 0 || len(s.graph.edges) == 0 {
		return 0
	}

	s.preProcess(source, sink)

	for {
		if len(s.buckets[s.bucketIdx]) == 0 {
			if s.bucketIdx == 0 {
				break
			}
			s.bucketIdx--
			continue
		}

		last := len(s.buckets[s.bucketIdx]) - 1
		u := s.buckets[s.bucketIdx][last]
		s.buckets[s.bucketIdx] = s.buckets[s.bucketIdx][:last]
		s.inBucket[u] = false
		s.discharge(u)
	}

	return s.graph.excess[sink]
}

func (s *PushRelabelHighestLabel) preProcess(source, sink int) {
	n := s.graph.numNodes
	s.currentEdge = make([]int, n)
	s.buckets = make([][]int, n)
	s.inBucket = make([]bool, n)
	s.numDistance = make([]int, n+1)
	s.bucketIdx = 0

	var sourceCapacity Flow
	for _, e := range s.graph.neighbors(source) {
		sourceCapacity += e.capacity
	}
	s.graph.excess[source] = sourceCapacity

	s.graph.distance = s.graph.calculateDistanceToSink(sink)

	for u := 0; u < n; u++ {
		s.numDistance[s.graph.distance[u]]++
		s.currentEdge[u] = s.graph.start[u]
	}
	s.inBucket[sink] = true
	s.enqueue(source)
}

func (s *PushRelabelHighestLabel) enqueue(u int) {
	if s.inBucket[u] || s.graph.excess[u] <= 0 || s.graph.distance[u] >= s.graph.numNodes {
		return
	}

	s.inBucket[u] = true
	d := s.graph.distance[u]
	s.buckets[d] = append(s.buckets[d], u)
	if d > s.bucketIdx {
		s.bucketIdx = d
	}
	s.currentEdge[u] = s.graph.start[u]
}

func (s *PushRelabelHighestLabel) discharge(u int) {
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

	if s.numDistance[s.graph.distance[u]] == 1 {
		s.gapRelabeling(s.graph.distance[u])
	} else {
		s.relabel(u)
	}
}

func (s *PushRelabelHighestLabel) push(u, i int) {
	to := s.graph.half[i].to
	delta := s.graph.excess[u]
	if residual := s.graph.half[i].residualCapacity(); residual < delta {
		delta = residual
	}
	if s.graph.isAdmissibleEdge(u, to) && delta > 0 {
		s.graph.pushFlow(u, i, delta)
		s.enqueue(to)
	}
}

func (s *PushRelabelHighestLabel) relabel(u int) {
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
	s.enqueue(u)
}

func (s *PushRelabelHighestLabel) gapRelabeling(k int) {
	for u := 0; u < s.graph.numNodes; u++ {
		if s.graph.distance[u] >= k {
			s.numDistance[s.graph.distance[u]]--
			if s.graph.distance[u] < s.graph.numNodes {
				s.graph.distance[u] = s.graph.numNodes
			}
			s.numDistance[s.graph.distance[u]]++
			s.enqueue(u)
		}
	}
}
