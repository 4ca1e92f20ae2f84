package bfopt

import "github.com/reusee/bf/bfvm"

// stripComments drops every comment node, inside loop bodies too.
func stripComments(code []bfvm.Node) []bfvm.Node {
	var out []bfvm.Node
	for _, n := range code {
		switch n.Op {
		case bfvm.OpComment:
		case bfvm.OpLoop:
			out = append(out, bfvm.Loop(stripComments(n.Body)...))
		default:
			out = append(out, n)
		}
	}
	return out
}
