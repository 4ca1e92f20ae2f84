package bfopt

import "github.com/reusee/bf/bfvm"

// collapseScanLoops rewrites a loop whose whole body is one shift into
// a scan node with that shift as its interval.
func collapseScanLoops(code []bfvm.Node) []bfvm.Node {
	var out []bfvm.Node
	for _, n := range code {
		if n.Op == bfvm.OpLoop {
			if len(n.Body) == 1 && n.Body[0].Op == bfvm.OpShift {
				out = append(out, bfvm.Scan(n.Body[0].Value))
				continue
			}
			n = bfvm.Loop(collapseScanLoops(n.Body)...)
		}
		out = append(out, n)
	}
	return out
}
