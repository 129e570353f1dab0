// Package graphgen builds randomized flow-network instances for the
// benchmarks. It samples an Erdos-Renyi-like directed graph (every
// ordered pair included independently with probability p, self-loops
// excluded) and assigns each sampled edge a capacity drawn uniformly from a
// caller-supplied range.
//
// Determinism: every exported constructor takes an explicit *rand.Rand, so
// a fixed seed always reproduces the same edge set and capacities.
package graphgen

import (
	"fmt"
	"math/rand"
)

// minNodes is the smallest network graphgen will build; smaller networks
// carry no meaningful source/sink separation.
const minNodes = 2

// Edge is one sampled directed edge: source node, destination node, and an
// integer capacity in [minCapacity, maxCapacity].
type Edge struct {
	From, To int
	Capacity int64
}

// GainEdge is one sampled directed edge for the generalized (gain) flow
// family: a capacity plus a per-unit gain multiplier in (0, maxGain].
type GainEdge struct {
	From, To int
	Capacity float64
	Gain     float64
}

// RandomFlowNetwork samples a directed Erdos-Renyi-like network over n
// nodes (0..n-1), including each ordered pair (i, j), i != j, independently
// with probability p, and assigning every included edge an integer
// capacity drawn uniformly from [minCapacity, maxCapacity]. Node 0 is
// returned as source and n-1 as sink.
//
// Panics if n < 2, p is outside [0, 1], or minCapacity > maxCapacity -
// these are programmer errors in test/benchmark setup, not runtime
// conditions a caller should need to recover from.
func RandomFlowNetwork(rng *rand.Rand, n int, p float64, minCapacity, maxCapacity int64) (edges []Edge, source, sink int) {
	if n < minNodes {
		panic(fmt.Sprintf("graphgen: n=%d < min=%d", n, minNodes))
	}
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("graphgen: p=%.6f not in [0,1]", p))
	}
	if minCapacity > maxCapacity {
		panic(fmt.Sprintf("graphgen: minCapacity=%d > maxCapacity=%d", minCapacity, maxCapacity))
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() > p {
				continue
			}
			capacity := minCapacity
			if maxCapacity > minCapacity {
				capacity += int64(rng.Intn(int(maxCapacity - minCapacity + 1)))
			}
			edges = append(edges, Edge{From: i, To: j, Capacity: capacity})
		}
	}

	return edges, 0, n - 1
}

// RandomGainNetwork samples a directed network for the generalized-flow
// family: same Erdos-Renyi-like edge inclusion as RandomFlowNetwork, but
// capacities are real-valued in [minCapacity, maxCapacity] and every edge
// additionally carries a gain sampled uniformly from (0, maxGain].
//
// Panics under the same conditions as RandomFlowNetwork, plus maxGain <= 0.
func RandomGainNetwork(rng *rand.Rand, n int, p float64, minCapacity, maxCapacity, maxGain float64) (edges []GainEdge, source, sink int) {
	if n < minNodes {
		panic(fmt.Sprintf("graphgen: n=%d < min=%d", n, minNodes))
	}
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("graphgen: p=%.6f not in [0,1]", p))
	}
	if minCapacity > maxCapacity {
		panic(fmt.Sprintf("graphgen: minCapacity=%g > maxCapacity=%g", minCapacity, maxCapacity))
	}
	if maxGain <= 0 {
		panic(fmt.Sprintf("graphgen: maxGain=%g must be positive", maxGain))
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() > p {
				continue
			}
			capacity := minCapacity + rng.Float64()*(maxCapacity-minCapacity)
			gain := rng.Float64() * maxGain
			if gain <= 0 {
				gain = maxGain
			}
			edges = append(edges, GainEdge{From: i, To: j, Capacity: capacity, Gain: gain})
		}
	}

	return edges, 0, n - 1
}
