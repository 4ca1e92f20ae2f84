package bfopt

import "github.com/reusee/bf/bfvm"

// collapseSimpleLoops rewrites counting loops into multiplications. A
// candidate body holds nothing but non-committing increments and
// decrements and steps its counter down by one each pass, so the loop
// runs exactly counter times. Every counter step is dropped, every
// other node becomes a multiplication by the counter cell, and a final
// assignment zeroes the counter, which the multiplications alone would
// leave intact. The rewrite is spliced into the surrounding sequence.
func collapseSimpleLoops(code []bfvm.Node) []bfvm.Node {
	var out []bfvm.Node
	for _, n := range code {
		if n.Op != bfvm.OpLoop {
			out = append(out, n)
			continue
		}
		if !countingLoop(n.Body) {
			out = append(out, bfvm.Loop(collapseSimpleLoops(n.Body)...))
			continue
		}
		for _, b := range n.Body {
			if isZeroDec(b) {
				continue
			}
			factor := b.Value
			if b.Op == bfvm.OpDec {
				factor = -factor
			}
			out = append(out, bfvm.Mul(factor, b.Off, 0, false))
		}
		out = append(out, bfvm.Assign(0, 0, false))
	}
	return out
}

func countingLoop(body []bfvm.Node) bool {
	if len(body) == 0 {
		return false
	}
	counter := false
	for _, n := range body {
		switch n.Op {
		case bfvm.OpInc, bfvm.OpDec:
			if n.Commit {
				return false
			}
		default:
			return false
		}
		if isZeroDec(n) {
			counter = true
		}
	}
	return counter
}
