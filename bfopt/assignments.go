package bfopt

import "github.com/reusee/bf/bfvm"

// isZeroDec matches the unit decrement of the cell under the pointer,
// the counter step of a counting loop.
func isZeroDec(n bfvm.Node) bool {
	return n.Op == bfvm.OpDec && n.Value == 1 && n.Off == 0 && !n.Commit
}

// collapseAssignments rewrites zeroing loops into assignments of zero,
// then folds an increment or decrement right after such an assignment
// into the assigned value. The fold only fires on non-committing nodes
// at the same offset.
func collapseAssignments(code []bfvm.Node) []bfvm.Node {
	var out []bfvm.Node
	for _, n := range code {
		if n.Op == bfvm.OpLoop {
			if len(n.Body) == 1 && isZeroDec(n.Body[0]) {
				n = bfvm.Assign(0, 0, false)
			} else {
				n = bfvm.Loop(collapseAssignments(n.Body)...)
			}
		}
		if len(out) > 0 {
			if folded, ok := foldAssign(out[len(out)-1], n); ok {
				out[len(out)-1] = folded
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func foldAssign(last, n bfvm.Node) (bfvm.Node, bool) {
	if last.Op != bfvm.OpAssign || last.Value != 0 || last.Commit {
		return bfvm.Node{}, false
	}
	if n.Commit || n.Off != last.Off {
		return bfvm.Node{}, false
	}
	switch n.Op {
	case bfvm.OpInc:
		return bfvm.Assign(n.Value, last.Off, false), true
	case bfvm.OpDec:
		return bfvm.Assign(int(byte(0)-byte(n.Value)), last.Off, false), true
	}
	return bfvm.Node{}, false
}
