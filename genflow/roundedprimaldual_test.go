package genflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/netflow/genflow"
)

// RoundedPrimalDualSuite exercises RoundedPrimalDual against the shared
// fixtures.
type RoundedPrimalDualSuite struct {
	suite.Suite
}

func (s *RoundedPrimalDualSuite) TestSingleEdge() {
	numNodes, epsilon, edges, source, sink, want := singleEdgeGainFixture()
	got := solveGainWith(genflow.NewRoundedPrimalDual(numNodes, epsilon), edges, source, sink)
	require.InDelta(s.T(), want, got, 1e-6)
}

func (s *RoundedPrimalDualSuite) TestLossyChain() {
	numNodes, epsilon, edges, source, sink, want := lossyChainFixture()
	got := solveGainWith(genflow.NewRoundedPrimalDual(numNodes, epsilon), edges, source, sink)
	require.InDelta(s.T(), want, got, 1e-2)
}

func (s *RoundedPrimalDualSuite) TestSampleNetwork() {
	numNodes, epsilon, edges, source, sink, expected := sampleNetworkFixture()
	got := solveGainWith(genflow.NewRoundedPrimalDual(numNodes, epsilon), edges, source, sink)

	require.LessOrEqual(s.T(), got, expected)
	require.GreaterOrEqual(s.T(), got, expected*(1-epsilon))
}

func (s *RoundedPrimalDualSuite) TestFlowGeneratingCycleRejected() {
	numNodes, epsilon, edges, source, sink := flowGeneratingCycleFixture()
	got := solveGainWith(genflow.NewRoundedPrimalDual(numNodes, epsilon), edges, source, sink)
	require.Zero(s.T(), got)
}

func (s *RoundedPrimalDualSuite) TestEmptyGraph() {
	solver := genflow.NewRoundedPrimalDual(2, 0.01)
	require.Zero(s.T(), solver.Solve(0, 1))
}

func (s *RoundedPrimalDualSuite) TestNonPositiveCapacityRejected() {
	solver := genflow.NewRoundedPrimalDual(2, 0.01)
	_, ok := solver.AddDirectedEdge(0, 1, -1.0, 1.0)
	require.False(s.T(), ok)
}

func (s *RoundedPrimalDualSuite) TestConstructorPanicsOnNonPositiveEpsilon() {
	require.Panics(s.T(), func() { genflow.NewRoundedPrimalDual(2, 0) })
	require.Panics(s.T(), func() { genflow.NewRoundedPrimalDual(0, 0.01) })
}

func TestRoundedPrimalDualSuite(t *testing.T) {
	suite.Run(t, new(RoundedPrimalDualSuite))
}
