package bfopt

import "github.com/reusee/bf/bfvm"

// collapseOffsets absorbs shifts into the offset field of neighboring
// cell instructions. A shift followed by an offset-zero instruction
// becomes that instruction at the shift's offset, committing so the
// pointer still lands where the shift put it. A committing instruction
// followed by a shift of opposite sign cancels the two displacements
// against each other, leaving at most one residual shift.
func collapseOffsets(code []bfvm.Node) []bfvm.Node {
	var out []bfvm.Node
	for _, n := range code {
		if n.Op == bfvm.OpLoop {
			n = bfvm.Loop(collapseOffsets(n.Body)...)
		}
		if len(out) > 0 {
			if joined, ok := joinOffsets(out[len(out)-1], n); ok {
				out = append(out[:len(out)-1], joined...)
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func offsetable(op bfvm.Op) bool {
	switch op {
	case bfvm.OpInc, bfvm.OpDec, bfvm.OpAssign, bfvm.OpOut, bfvm.OpIn:
		return true
	}
	return false
}

func joinOffsets(last, n bfvm.Node) ([]bfvm.Node, bool) {
	// shift, then an instruction at the pointer
	if last.Op == bfvm.OpShift {
		if !offsetable(n.Op) || n.Off != 0 || n.Commit {
			return nil, false
		}
		n.Off = last.Value
		n.Commit = true
		return []bfvm.Node{n}, true
	}

	// committing instruction, then a shift back toward the pointer
	if n.Op != bfvm.OpShift || !offsetable(last.Op) || !last.Commit {
		return nil, false
	}
	// both must be nonzero and strictly opposed
	if signum(last.Off)*signum(n.Value) != -1 {
		return nil, false
	}
	diff := abs(last.Off) - abs(n.Value)
	switch {

	case diff == 0:
		// the shift undoes the commit exactly
		last.Commit = false
		return []bfvm.Node{last}, true

	case diff > 0:
		// commit overshoots, a shorter shift goes in front
		residual := bfvm.Shift(signum(last.Off) * diff)
		last.Off -= signum(last.Off) * diff
		last.Commit = false
		return []bfvm.Node{residual, last}, true

	default:
		// shift overshoots, the remainder goes behind
		residual := bfvm.Shift(signum(last.Off) * diff)
		last.Commit = false
		return []bfvm.Node{last, residual}, true
	}
}
