package bfvm

import "fmt"

// Op identifies the kind of an instruction node.
type Op uint8

const (
	OpShift Op = iota
	OpInc
	OpDec
	OpMul
	OpAssign
	OpScan
	OpOut
	OpIn
	OpLoop
	OpComment
)

var opNames = [...]string{
	OpShift:   "shift",
	OpInc:     "inc",
	OpDec:     "dec",
	OpMul:     "mul",
	OpAssign:  "assign",
	OpScan:    "scan",
	OpOut:     "out",
	OpIn:      "in",
	OpLoop:    "loop",
	OpComment: "comment",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Node is one instruction of the tree-shaped program form. Which fields
// are meaningful depends on Op:
//
//	OpShift    Value is the pointer displacement
//	OpInc      add Value to the cell at Off
//	OpDec      subtract Value from the cell at Off
//	OpMul      add cell(Off) times Value to cell(Off+Dest), signed Value
//	OpAssign   store Value into the cell at Off
//	OpScan     move the pointer by Value until a zero cell
//	OpOut      write the cell at Off
//	OpIn       read one byte into the cell at Off
//	OpLoop     repeat Body while the current cell is nonzero
//	OpComment  Value is the ignored source byte
//
// Off is relative to the pointer. Commit makes the node move the
// pointer to the cell it addressed, so a rewrite that absorbs a shift
// into Off can keep the pointer movement observable.
type Node struct {
	Op     Op
	Value  int
	Off    int
	Dest   int
	Commit bool
	Body   []Node
}

func Shift(delta int) Node {
	return Node{Op: OpShift, Value: delta}
}

func Inc(amount int, offset int, commit bool) Node {
	return Node{Op: OpInc, Value: amount, Off: offset, Commit: commit}
}

func Dec(amount int, offset int, commit bool) Node {
	return Node{Op: OpDec, Value: amount, Off: offset, Commit: commit}
}

func Mul(factor int, dest int, offset int, commit bool) Node {
	return Node{Op: OpMul, Value: factor, Dest: dest, Off: offset, Commit: commit}
}

func Assign(value int, offset int, commit bool) Node {
	return Node{Op: OpAssign, Value: value, Off: offset, Commit: commit}
}

func Scan(interval int) Node {
	return Node{Op: OpScan, Value: interval}
}

func Out(offset int, commit bool) Node {
	return Node{Op: OpOut, Off: offset, Commit: commit}
}

func In(offset int, commit bool) Node {
	return Node{Op: OpIn, Off: offset, Commit: commit}
}

func Loop(body ...Node) Node {
	return Node{Op: OpLoop, Body: body}
}

func Comment(c byte) Node {
	return Node{Op: OpComment, Value: int(c)}
}
