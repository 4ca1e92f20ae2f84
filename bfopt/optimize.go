package bfopt

import (
	"math"

	"github.com/reusee/bf/bfvm"
)

// Options selects which rewrite groups run. The zero value disables
// everything except comment stripping.
type Options struct {
	MergeOperators      bool
	CollapseAssignments bool
	CollapseOffsets     bool
	CollapseLoops       bool
	CollapseScanLoops   bool
}

func Default() Options {
	return Options{
		MergeOperators:      true,
		CollapseAssignments: true,
		CollapseOffsets:     true,
		CollapseLoops:       true,
		CollapseScanLoops:   true,
	}
}

// Pass rewrites an instruction sequence into a new one. Passes never
// mutate their input and never fail.
type Pass func(code []bfvm.Node) []bfvm.Node

// Optimize rewrites code through the enabled passes. The order is
// fixed: comments go first so later adjacency matching sees none, and
// loop collapsing runs between two movement-deferral rounds because
// deferral both exposes collapsible loops and cleans up the shifts
// that collapsing leaves behind.
func Optimize(code []bfvm.Node, options Options) []bfvm.Node {
	passes := []Pass{
		stripComments,
	}
	if options.MergeOperators {
		passes = append(passes, mergeOperators)
	}
	if options.CollapseAssignments {
		passes = append(passes, collapseAssignments)
	}
	if options.CollapseOffsets {
		passes = append(passes, collapseOffsets)
	}
	if options.CollapseLoops {
		passes = append(passes, deferMovements, collapseSimpleLoops)
		if options.CollapseOffsets {
			passes = append(passes, collapseOffsets)
		}
		passes = append(passes, deferMovements)
	}
	if options.CollapseScanLoops {
		passes = append(passes, collapseScanLoops)
	}

	for _, pass := range passes {
		code = pass(code)
	}
	return code
}

// fitsDisplacement reports whether a summed pointer displacement stays
// in the representable range. Sums outside it stay as separate nodes.
func fitsDisplacement(sum int64) bool {
	return sum >= math.MinInt32 && sum <= math.MaxInt32
}

func signum(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
