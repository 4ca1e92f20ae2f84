package bfopt

import "github.com/reusee/bf/bfvm"

// deferMovements pushes pointer movement to the end of each straight
// run of instructions. Shifts inside a run turn into a carried
// displacement added to every following offset, and the carry comes
// out as one shift at the end of the run. Loops and scans depend on
// the pointer, so they delimit runs and pass through whole, loop
// bodies rewritten recursively. A run of one node passes through
// untouched.
func deferMovements(code []bfvm.Node) []bfvm.Node {
	var groups [][]bfvm.Node
	var current []bfvm.Node
	for _, n := range code {
		switch n.Op {
		case bfvm.OpScan:
			groups = append(groups, current, []bfvm.Node{n})
			current = nil
		case bfvm.OpLoop:
			groups = append(groups, current, []bfvm.Node{bfvm.Loop(deferMovements(n.Body)...)})
			current = nil
		default:
			current = append(current, n)
		}
	}
	groups = append(groups, current)

	var out []bfvm.Node
	for _, group := range groups {
		if len(group) == 1 {
			out = append(out, group[0])
			continue
		}
		carry := 0
		for _, n := range group {
			switch n.Op {

			case bfvm.OpShift:
				if sum := int64(carry) + int64(n.Value); fitsDisplacement(sum) {
					carry = int(sum)
				} else {
					out = append(out, bfvm.Shift(carry))
					carry = n.Value
				}

			case bfvm.OpComment:
				// rewritten runs shed comments

			default:
				committed := n.Commit
				offset := n.Off
				n.Off += carry
				n.Commit = false
				out = append(out, n)
				if committed {
					carry += offset
				}
			}
		}
		if carry != 0 {
			out = append(out, bfvm.Shift(carry))
		}
	}
	return out
}
