package bfopt

import "github.com/reusee/bf/bfvm"

// mergeOperators folds runs of adjacent shifts into one shift and runs
// of adjacent same-offset increments or decrements into one node. A
// merged node keeps merging with whatever follows, so a whole run
// collapses in a single sweep.
func mergeOperators(code []bfvm.Node) []bfvm.Node {
	var out []bfvm.Node
	for _, n := range code {
		if len(out) > 0 {
			if merged, ok := merge(out[len(out)-1], n); ok {
				out[len(out)-1] = merged
				continue
			}
		}
		if n.Op == bfvm.OpLoop {
			n = bfvm.Loop(mergeOperators(n.Body)...)
		}
		out = append(out, n)
	}
	return out
}

func merge(last, n bfvm.Node) (bfvm.Node, bool) {
	switch {

	case last.Op == bfvm.OpShift && n.Op == bfvm.OpShift:
		if !fitsDisplacement(int64(last.Value) + int64(n.Value)) {
			return bfvm.Node{}, false
		}
		return bfvm.Shift(last.Value + n.Value), true

	case last.Op == n.Op && (n.Op == bfvm.OpInc || n.Op == bfvm.OpDec):
		if last.Commit || n.Commit || last.Off != n.Off {
			return bfvm.Node{}, false
		}
		// a cell holds one byte, bigger amounts stay split
		if last.Value+n.Value > 255 {
			return bfvm.Node{}, false
		}
		n.Value += last.Value
		return n, true
	}

	return bfvm.Node{}, false
}
