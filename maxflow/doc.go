// Package maxflow implements integer maximum-flow algorithms on directed,
// capacitated graphs: Ford–Fulkerson, Dinic, capacity scaling, and two
// push–relabel variants (FIFO and highest-label). All five algorithms share
// one residual-graph representation (residualGraph) and are guaranteed to
// agree on the max-flow value for any given instance.
//
// # Graph model
//
// Vertices are dense integers 0..n-1; a vertex is implicitly created the
// first time it appears as either endpoint of an added edge, so the vertex
// count is max(from, to)+1 over every call to AddDirectedEdge. Edges are
// directed and capacitated; capacity <= 0 is rejected. There is no edge
// removal or mutation after Solve begins — each solver instance is good
// for exactly one Solve call (see the per-algorithm doc comments).
//
// Internally every solver owns a residualGraph: a CSR (compressed sparse
// row) store of paired forward/reverse half-edges, the same layout the
// push–relabel variants need for their distance labels and current-edge
// pointers. See residual.go.
//
// # Algorithms
//
//   - FordFulkerson
//   - Method: DFS for any augmenting path, augment by the bottleneck.
//   - Time:   O(E * F) where F is the total flow pushed.
//   - Use when capacities are small/integral and simplicity matters.
//
//   - Dinic
//   - Method: BFS level graph + DFS blocking flow with a persistent
//     current-edge pointer per phase.
//   - Time:   O(E * sqrt(V)) on unit-capacity networks, O(V^2 * E) in general.
//
//   - CapacityScaling
//   - Method: Dinic-style phases restricted to residual >= Delta, for
//     Delta halving from the highest power of two <= max capacity down to 1.
//   - Time:   O(E^2 * log(maxCapacity)).
//
//   - PushRelabelFIFO
//   - Method: preflow-push with a FIFO active-node queue, gap and global
//     relabeling heuristics.
//   - Time:   O(V^2 * E).
//
//   - PushRelabelHighestLabel
//   - Method: preflow-push with active nodes bucketed by distance label,
//     always discharging the highest label first.
//   - Time:   O(V^2 * sqrt(E)).
//
// # Options
//
// FlowOptions configures the ambient behavior every algorithm shares:
//
//	opts := maxflow.DefaultOptions()
//	opts.Verbose = true // log one line per augmentation to stderr
//
// # Errors
//
// Solve never returns an error: source == sink, an empty graph (no edges
// added), and a sink unreachable from source all make Solve return 0,
// matching the reference implementation this package is ported from.
// AddDirectedEdge rejects a non-positive capacity by returning ok == false;
// the edge is silently dropped, never queued for a later retry.
package maxflow
