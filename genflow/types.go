package genflow

import "math"

// Flow is the real-valued flow/capacity/gain type used throughout this
// package.
type Flow = float64

// Dist is the integer gain-scaled distance label used internally by both
// solvers; it measures distance in units of log(base), not raw gain.
type Dist = int32

// DistMax is a large sentinel standing in for an unreachable distance.
// Halved from Dist's range so two DistMax values can be added without
// overflowing.
const DistMax Dist = math.MaxInt32 / 2

// FlowMax is a large sentinel used to seed augmenting searches with
// "infinite" available flow/excess.
const FlowMax Flow = math.MaxFloat64 / 2

// Eps is the floating-point tolerance used for residual-capacity and
// excess comparisons against zero.
const Eps Flow = 2.220446049250313e-16

// FlowOptions configures the ambient behavior shared by both algorithms in
// this package:
//   - Verbose: log one line per augmentation to stderr, plus a warning
//     when a flow-generating cycle is detected.
//
// Use DefaultOptions to obtain the zero-value defaults explicitly.
type FlowOptions struct {
	Verbose bool
}

// DefaultOptions returns the default FlowOptions: Verbose disabled.
func DefaultOptions() FlowOptions {
	return FlowOptions{Verbose: false}
}

// Option mutates a FlowOptions value; pass zero or more to a constructor.
type Option func(*FlowOptions)

// WithVerbose enables per-augmentation logging to stderr.
func WithVerbose() Option {
	return func(o *FlowOptions) { o.Verbose = true }
}

func buildOptions(opts []Option) FlowOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
