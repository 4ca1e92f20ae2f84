package bfvm

import (
	"encoding/gob"
	"fmt"
	"io"
	"strings"
)

// DefaultTapeSize is the number of cells on the tape. Addressing wraps
// at this size, so the cell after the last one is cell zero.
const DefaultTapeSize = 1 << 16

// State is the machine state: a circular tape of byte cells and the
// cell pointer. It survives across program runs.
type State struct {
	Pos   int
	Cells []byte
}

func NewState(size int) *State {
	if size <= 0 {
		size = DefaultTapeSize
	}
	return &State{
		Cells: make([]byte, size),
	}
}

// index resolves pos+offset on the circular tape. offset may exceed the
// tape size in either direction.
func (s *State) index(pos int, offset int) int {
	n := len(s.Cells)
	i := (pos + offset) % n
	if i < 0 {
		i += n
	}
	return i
}

// Cell returns the value at offset relative to the pointer.
func (s *State) Cell(offset int) byte {
	return s.Cells[s.index(s.Pos, offset)]
}

// SetCell stores value at offset relative to the pointer.
func (s *State) SetCell(offset int, value byte) {
	s.Cells[s.index(s.Pos, offset)] = value
}

// Snapshot writes the full machine state to w.
func (s *State) Snapshot(w io.Writer) error {
	return gob.NewEncoder(w).Encode(s)
}

// Restore replaces the machine state with one read from r.
func (s *State) Restore(r io.Reader) error {
	return gob.NewDecoder(r).Decode(s)
}

// String renders a window of cells centered on the pointer, one row of
// cell indexes, one of values, and a marker row under the pointer.
func (s *State) String() string {
	const window = 25
	count := min(window, len(s.Cells))

	indexes := make([]int, count)
	for i := range count {
		indexes[i] = s.index(s.Pos, i-count/2)
	}

	var b strings.Builder
	b.WriteString("tape:\n|")
	for _, i := range indexes {
		fmt.Fprintf(&b, "%6d|", i)
	}
	b.WriteString("\n|")
	for _, i := range indexes {
		fmt.Fprintf(&b, "%6d|", s.Cells[i])
	}
	b.WriteString("\n|")
	for _, i := range indexes {
		if i == s.Pos {
			b.WriteString("******|")
		} else {
			b.WriteString("      |")
		}
	}
	return b.String()
}
